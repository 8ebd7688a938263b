package roster

import (
	"github.com/viennasultans/club-sync/repos/docstore"
	"github.com/viennasultans/club-sync/services/players"
)

// fallbackImage is shown for players without an uploaded photo.
const fallbackImage = "/images/players/default.jpg"

// Member is the public card for one player.
type Member struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Number   string      `json:"number"`
	Role     string      `json:"role"`
	ImageURL string      `json:"imageUrl"`
	Stats    MemberStats `json:"stats"`
}

// MemberStats is the slimmed-down stat line the roster cards show.
type MemberStats struct {
	Matches float64 `json:"matches"`
	Runs    float64 `json:"runs"`
	Wickets float64 `json:"wickets"`
}

// View is the roster as the public page renders it: the members in display
// order plus the doubled marquee track. The scroll animation traverses half
// the track per cycle, so the seam lines up at index Cycle.
type View struct {
	Members []Member `json:"members"`
	Track   []Member `json:"track"`
	Cycle   int      `json:"cycle"`
}

func memberFromDocument(doc docstore.Document) Member {
	player := players.FromDocument(doc)

	imageURL := fallbackImage
	if player.ImageURL != nil {
		imageURL = *player.ImageURL
	}

	return Member{
		ID:       player.ID,
		Name:     player.Name,
		Number:   player.Number,
		Role:     player.Role,
		ImageURL: imageURL,
		Stats: MemberStats{
			Matches: player.Stats.Matches,
			Runs:    player.Stats.Runs,
			Wickets: player.Stats.Wickets,
		},
	}
}
