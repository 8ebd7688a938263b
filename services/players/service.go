package players

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samborkent/uuidv7"

	"github.com/viennasultans/club-sync/repos/blobstore"
	"github.com/viennasultans/club-sync/repos/docstore"
)

const playersCollection = "players"

// ErrNotFound marks an id that has no document behind it, as opposed to a
// transport failure. The edit view renders the two differently.
var ErrNotFound = errors.New("player not found")

// ErrInvalid marks a payload that fails field validation before any store
// call is attempted.
var ErrInvalid = errors.New("invalid player")

var roles = []string{"Batsman", "Bowler", "All-rounder", "Wicket-keeper"}

var battingStyles = []string{"Right-handed", "Left-handed"}

var bowlingStyles = []string{
	"Right-arm fast",
	"Right-arm medium",
	"Right-arm off-spin",
	"Right-arm leg-spin",
	"Left-arm fast",
	"Left-arm medium",
	"Left-arm orthodox",
	"Left-arm wrist-spin",
	"N/A",
}

type PlayersService struct {
	store *docstore.Service
	files *blobstore.Service
}

func NewPlayersService(store *docstore.Service, files *blobstore.Service) *PlayersService {
	return &PlayersService{
		store: store,
		files: files,
	}
}

// List returns all players for the admin table, stable-sorted by numeric id.
func (s *PlayersService) List(c *gin.Context) ([]Player, error) {
	docs, err := s.store.ListCollection(c, playersCollection)
	if err != nil {
		log.Printf("Failed to list players: %v\n", err)
		return nil, err
	}

	list := make([]Player, 0, len(docs))
	for _, doc := range docs {
		list = append(list, playerFromDocument(doc))
	}
	sortByNumericID(list)
	return list, nil
}

// Get fetches one player for the edit view. A missing id yields ErrNotFound,
// never a generic failure.
func (s *PlayersService) Get(c *gin.Context, id string) (*Player, error) {
	doc, err := s.store.GetDocument(c, playersCollection, id)
	if err != nil {
		log.Printf("Failed to get player %s: %v\n", id, err)
		return nil, err
	}
	if doc == nil {
		return nil, ErrNotFound
	}

	player := playerFromDocument(*doc)
	return &player, nil
}

// Create validates and writes a new player. Derived stats are recomputed
// from the raw counters before the write; the store assigns the id.
func (s *PlayersService) Create(c *gin.Context, player Player) (string, error) {
	if err := validate(player); err != nil {
		return "", err
	}

	player.Stats.Recompute("")
	id, err := s.store.AddDocument(c, playersCollection, player.payload())
	if err != nil {
		log.Printf("Failed to add player: %v\n", err)
		return "", err
	}
	return id, nil
}

// Update overwrites every editable field of an existing player. The id is
// taken from the route and never from the body.
func (s *PlayersService) Update(c *gin.Context, id string, player Player) error {
	if err := validate(player); err != nil {
		return err
	}

	existing, err := s.store.GetDocument(c, playersCollection, id)
	if err != nil {
		log.Printf("Failed to get player %s: %v\n", id, err)
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	player.Stats.Recompute("")
	if err := s.store.UpdateDocument(c, playersCollection, id, player.payload()); err != nil {
		log.Printf("Failed to update player %s: %v\n", id, err)
		return err
	}
	return nil
}

// Delete removes the player unconditionally.
func (s *PlayersService) Delete(c *gin.Context, id string) error {
	if err := s.store.DeleteDocument(c, playersCollection, id); err != nil {
		log.Printf("Failed to delete player %s: %v\n", id, err)
		return err
	}
	return nil
}

// UploadPhoto stores the photo bytes under a fresh object name and points
// the player's imageUrl at the returned public URL. A superseded photo in
// our bucket is deleted best-effort once the new one is in place.
func (s *PlayersService) UploadPhoto(c *gin.Context, id string, data []byte, contentType string) (string, error) {
	existing, err := s.store.GetDocument(c, playersCollection, id)
	if err != nil {
		log.Printf("Failed to get player %s: %v\n", id, err)
		return "", err
	}
	if existing == nil {
		return "", ErrNotFound
	}
	previousURL := stringField(existing.Data, "imageUrl")

	path := fmt.Sprintf("players/%s", uuidv7.New().String())
	url, err := s.files.Upload(c, path, data, contentType)
	if err != nil {
		log.Printf("Failed to upload photo for player %s: %v\n", id, err)
		return "", err
	}

	err = s.store.UpdateDocument(c, playersCollection, id, map[string]interface{}{
		"imageUrl": url,
	})
	if err != nil {
		log.Printf("Failed to set imageUrl on player %s: %v\n", id, err)
		return "", err
	}

	if oldPath, ok := s.files.ObjectPath(previousURL); ok {
		if err := s.files.Delete(c, oldPath); err != nil {
			log.Printf("Failed to delete old photo for player %s: %v\n", id, err)
		}
	}
	return url, nil
}

func validate(player Player) error {
	if player.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if player.Number == "" {
		return fmt.Errorf("%w: number is required", ErrInvalid)
	}
	if !contains(roles, player.Role) {
		return fmt.Errorf("%w: unknown role %q", ErrInvalid, player.Role)
	}
	if !contains(battingStyles, player.BattingStyle) {
		return fmt.Errorf("%w: unknown batting style %q", ErrInvalid, player.BattingStyle)
	}
	if !contains(bowlingStyles, player.BowlingStyle) {
		return fmt.Errorf("%w: unknown bowling style %q", ErrInvalid, player.BowlingStyle)
	}
	return nil
}

// sortByNumericID orders players for the admin list. Ids that do not parse
// as numbers sort as 0, keeping their relative order.
func sortByNumericID(list []Player) {
	sort.SliceStable(list, func(i, j int) bool {
		return numericValue(list[i].ID) < numericValue(list[j].ID)
	})
}

func numericValue(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
