package site

import (
	"github.com/xorcare/pointer"

	"github.com/viennasultans/club-sync/repos/docstore"
)

// Fixture is one entry on the public matches board. Result stays nil for
// fixtures that have not been played yet.
type Fixture struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Venue    string  `json:"venue"`
	Opponent string  `json:"opponent"`
	Type     string  `json:"type"`
	Result   *string `json:"result,omitempty"`
}

// GalleryImage is one photo on the public gallery strip.
type GalleryImage struct {
	ID  string `json:"id"`
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// GalleryView carries the shuffled images plus the doubled marquee track,
// same treatment as the roster strip.
type GalleryView struct {
	Images []GalleryImage `json:"images"`
	Track  []GalleryImage `json:"track"`
	Cycle  int            `json:"cycle"`
}

func fixtureFromDocument(doc docstore.Document) Fixture {
	fixture := Fixture{
		ID:       doc.ID,
		Date:     stringField(doc.Data, "date"),
		Time:     stringField(doc.Data, "time"),
		Venue:    stringField(doc.Data, "venue"),
		Opponent: stringField(doc.Data, "opponent"),
		Type:     stringField(doc.Data, "type"),
	}

	if result := stringField(doc.Data, "result"); result != "" {
		fixture.Result = pointer.String(result)
	}

	return fixture
}

func imageFromDocument(doc docstore.Document) GalleryImage {
	return GalleryImage{
		ID:  doc.ID,
		URL: stringField(doc.Data, "url"),
		Alt: stringField(doc.Data, "alt"),
	}
}

func stringField(data map[string]interface{}, key string) string {
	value, _ := data[key].(string)
	return value
}
