package players

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakePlayers struct {
	player *Player
	getErr error
}

func (f fakePlayers) List(c *gin.Context) ([]Player, error) { return nil, nil }

func (f fakePlayers) Get(c *gin.Context, id string) (*Player, error) {
	return f.player, f.getErr
}

func (f fakePlayers) Create(c *gin.Context, player Player) (string, error) { return "", nil }

func (f fakePlayers) Update(c *gin.Context, id string, player Player) error { return nil }

func (f fakePlayers) Delete(c *gin.Context, id string) error { return nil }

func (f fakePlayers) UploadPhoto(c *gin.Context, id string, data []byte, contentType string) (string, error) {
	return "", nil
}

func getPlayer(service Players) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHTTPHandler(HTTPOptions{
		Service: service,
		Router:  router.Group("/admin/v1"),
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/admin/v1/players/missing", nil))
	return recorder
}

func TestGetHandlerNotFound(t *testing.T) {
	recorder := getPlayer(fakePlayers{getErr: ErrNotFound})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Player not found")
}

func TestGetHandlerTransportFailure(t *testing.T) {
	recorder := getPlayer(fakePlayers{getErr: errors.New("rpc unavailable")})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	// operator detail stays in the log, not the response
	assert.NotContains(t, recorder.Body.String(), "rpc unavailable")
}
