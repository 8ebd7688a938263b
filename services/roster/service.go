package roster

import (
	"log"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/viennasultans/club-sync/repos/docstore"
)

type RosterService struct {
	store *docstore.Service
}

func NewRosterService(store *docstore.Service) *RosterService {
	return &RosterService{
		store: store,
	}
}

// View fetches the roster for the public page: all players sorted by
// numeric jersey number, plus the marquee track.
func (s *RosterService) View(c *gin.Context) (*View, error) {
	docs, err := s.store.ListCollection(c, "players")
	if err != nil {
		log.Printf("Failed to list players for roster: %v\n", err)
		return nil, err
	}

	members := make([]Member, 0, len(docs))
	for _, doc := range docs {
		members = append(members, memberFromDocument(doc))
	}
	sortByNumber(members)

	return &View{
		Members: members,
		Track:   marqueeTrack(members),
		Cycle:   len(members),
	}, nil
}

// sortByNumber orders by the numeric value of the jersey number, so "10"
// comes after "2", not before it.
func sortByNumber(members []Member) {
	sort.SliceStable(members, func(i, j int) bool {
		return numericValue(members[i].Number) < numericValue(members[j].Number)
	})
}

// marqueeTrack duplicates the list once. Animating across exactly half the
// doubled track per cycle makes the wraparound seamless.
func marqueeTrack(members []Member) []Member {
	track := make([]Member, 0, len(members)*2)
	track = append(track, members...)
	track = append(track, members...)
	return track
}

func numericValue(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
