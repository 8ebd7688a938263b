package site

import (
	"log"
	"math/rand"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/viennasultans/club-sync/repos/docstore"
)

const dateLayout = "2006-01-02"

type SiteService struct {
	store *docstore.Service
}

func NewSiteService(store *docstore.Service) *SiteService {
	return &SiteService{
		store: store,
	}
}

// Matches returns every fixture, most recent date first, so past results
// and upcoming games share one board.
func (s *SiteService) Matches(c *gin.Context) ([]Fixture, error) {
	docs, err := s.store.ListCollection(c, "matches")
	if err != nil {
		log.Printf("Failed to list matches: %v\n", err)
		return nil, err
	}

	fixtures := make([]Fixture, 0, len(docs))
	for _, doc := range docs {
		fixtures = append(fixtures, fixtureFromDocument(doc))
	}
	sortByDateDesc(fixtures)
	return fixtures, nil
}

// Gallery returns the photo strip in a fresh random order on every request.
func (s *SiteService) Gallery(c *gin.Context) (*GalleryView, error) {
	docs, err := s.store.ListCollection(c, "gallery")
	if err != nil {
		log.Printf("Failed to list gallery: %v\n", err)
		return nil, err
	}

	images := make([]GalleryImage, 0, len(docs))
	for _, doc := range docs {
		images = append(images, imageFromDocument(doc))
	}
	shuffle(images)

	return &GalleryView{
		Images: images,
		Track:  galleryTrack(images),
		Cycle:  len(images),
	}, nil
}

func sortByDateDesc(fixtures []Fixture) {
	sort.SliceStable(fixtures, func(i, j int) bool {
		return parseDate(fixtures[i].Date).After(parseDate(fixtures[j].Date))
	})
}

// parseDate treats unparseable dates as the zero time, which sorts them to
// the bottom of the board.
func parseDate(value string) time.Time {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

func shuffle(images []GalleryImage) {
	rand.Shuffle(len(images), func(i, j int) {
		images[i], images[j] = images[j], images[i]
	})
}

func galleryTrack(images []GalleryImage) []GalleryImage {
	track := make([]GalleryImage, 0, len(images)*2)
	track = append(track, images...)
	track = append(track, images...)
	return track
}
