package players

import (
	"github.com/viennasultans/club-sync/pkg/cricstats"
	"github.com/viennasultans/club-sync/repos/docstore"
)

// Player is one roster document. The id is store-assigned and never part of
// the writable payload; it is merged back on read.
type Player struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Number       string  `json:"number"`
	Role         string  `json:"role"`
	BattingStyle string  `json:"battingStyle"`
	BowlingStyle string  `json:"bowlingStyle"`
	ImageURL     *string `json:"imageUrl,omitempty"`
	Stats        Stats   `json:"stats"`
}

// Stats holds the raw batting and bowling counters plus the three derived
// fields, persisted alongside them. The store never recomputes anything.
type Stats struct {
	Matches      float64 `json:"matches"`
	Innings      float64 `json:"innings"`
	NotOuts      float64 `json:"notOuts"`
	Runs         float64 `json:"runs"`
	HighestScore float64 `json:"highestScore"`
	Average      float64 `json:"average"`
	BallsFaced   float64 `json:"ballsFaced"`
	StrikeRate   float64 `json:"strikeRate"`
	Hundreds     float64 `json:"hundreds"`
	Fifties      float64 `json:"fifties"`
	Fours        float64 `json:"fours"`
	Sixes        float64 `json:"sixes"`
	Wickets      float64 `json:"wickets"`
	Overs        float64 `json:"overs"`
	RunsConceded float64 `json:"runsConceded"`
	Economy      float64 `json:"economy"`
}

// Recompute refreshes the derived fields whose inputs include the changed
// counter; the empty string means a form submit and refreshes all three.
func (s *Stats) Recompute(changed string) {
	average := changed == "" || changed == "runs" || changed == "matches" || changed == "notOuts"
	strikeRate := changed == "" || changed == "runs" || changed == "ballsFaced"
	economy := changed == "" || changed == "runsConceded" || changed == "overs"

	if average {
		s.Average = cricstats.Coerce(cricstats.Average(s.Runs, s.Matches, s.NotOuts))
	}
	if strikeRate {
		s.StrikeRate = cricstats.Coerce(cricstats.StrikeRate(s.Runs, s.BallsFaced))
	}
	if economy {
		s.Economy = cricstats.Coerce(cricstats.Economy(s.RunsConceded, s.Overs))
	}
}

// FromDocument merges the store-assigned id onto the document's fields. The
// public roster reuses it, so it is exported.
func FromDocument(doc docstore.Document) Player {
	return playerFromDocument(doc)
}

func playerFromDocument(doc docstore.Document) Player {
	player := Player{
		ID:           doc.ID,
		Name:         stringField(doc.Data, "name"),
		Number:       stringField(doc.Data, "number"),
		Role:         stringField(doc.Data, "role"),
		BattingStyle: stringField(doc.Data, "battingStyle"),
		BowlingStyle: stringField(doc.Data, "bowlingStyle"),
	}

	if url := stringField(doc.Data, "imageUrl"); url != "" {
		player.ImageURL = &url
	}

	stats, _ := doc.Data["stats"].(map[string]interface{})
	player.Stats = Stats{
		Matches:      numberField(stats, "matches"),
		Innings:      numberField(stats, "innings"),
		NotOuts:      numberField(stats, "notOuts"),
		Runs:         numberField(stats, "runs"),
		HighestScore: numberField(stats, "highestScore"),
		Average:      numberField(stats, "average"),
		BallsFaced:   numberField(stats, "ballsFaced"),
		StrikeRate:   numberField(stats, "strikeRate"),
		Hundreds:     numberField(stats, "hundreds"),
		Fifties:      numberField(stats, "fifties"),
		Fours:        numberField(stats, "fours"),
		Sixes:        numberField(stats, "sixes"),
		Wickets:      numberField(stats, "wickets"),
		Overs:        numberField(stats, "overs"),
		RunsConceded: numberField(stats, "runsConceded"),
		Economy:      numberField(stats, "economy"),
	}

	return player
}

// payload builds the writable fields. The id stays out; the optional image
// URL is written as null when absent so the store clears it on overwrite.
func (p Player) payload() map[string]interface{} {
	return map[string]interface{}{
		"name":         p.Name,
		"number":       p.Number,
		"role":         p.Role,
		"battingStyle": p.BattingStyle,
		"bowlingStyle": p.BowlingStyle,
		"imageUrl":     p.ImageURL,
		"stats": map[string]interface{}{
			"matches":      p.Stats.Matches,
			"innings":      p.Stats.Innings,
			"notOuts":      p.Stats.NotOuts,
			"runs":         p.Stats.Runs,
			"highestScore": p.Stats.HighestScore,
			"average":      p.Stats.Average,
			"ballsFaced":   p.Stats.BallsFaced,
			"strikeRate":   p.Stats.StrikeRate,
			"hundreds":     p.Stats.Hundreds,
			"fifties":      p.Stats.Fifties,
			"fours":        p.Stats.Fours,
			"sixes":        p.Stats.Sixes,
			"wickets":      p.Stats.Wickets,
			"overs":        p.Stats.Overs,
			"runsConceded": p.Stats.RunsConceded,
			"economy":      p.Stats.Economy,
		},
	}
}

func stringField(data map[string]interface{}, key string) string {
	value, _ := data[key].(string)
	return value
}

// numberField reads a stat counter, defaulting to 0 when the field is
// absent or not numeric.
func numberField(data map[string]interface{}, key string) float64 {
	switch value := data[key].(type) {
	case float64:
		return value
	case int64:
		return float64(value)
	case int:
		return float64(value)
	case string:
		return cricstats.Coerce(value)
	default:
		return 0
	}
}
