package players

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	PUT(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	DELETE(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Players is the interface for the player directory service.
type Players interface {
	List(c *gin.Context) ([]Player, error)
	Get(c *gin.Context, id string) (*Player, error)
	Create(c *gin.Context, player Player) (string, error)
	Update(c *gin.Context, id string, player Player) error
	Delete(c *gin.Context, id string) error
	UploadPhoto(c *gin.Context, id string, data []byte, contentType string) (string, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Players

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("/players", h.listHandler)
	r.GET("/players/:id", h.getHandler)
	r.POST("/players", h.createHandler)
	r.PUT("/players/:id", h.updateHandler)
	r.DELETE("/players/:id", h.deleteHandler)
	r.POST("/players/:id/photo", h.photoHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (s *httpHandler) listHandler(c *gin.Context) {
	list, err := s.Service.List(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch players"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"players": list})
}

func (s *httpHandler) getHandler(c *gin.Context) {
	player, err := s.Service.Get(c, c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		c.Abort()
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch player"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, player)
}

func (s *httpHandler) createHandler(c *gin.Context) {
	var player Player
	if err := c.ShouldBindJSON(&player); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	id, err := s.Service.Create(c, player)
	if errors.Is(err, ErrInvalid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add player"})
		c.Abort()
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (s *httpHandler) updateHandler(c *gin.Context) {
	var player Player
	if err := c.ShouldBindJSON(&player); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	id := c.Param("id")
	err := s.Service.Update(c, id, player)
	if errors.Is(err, ErrInvalid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		c.Abort()
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update player"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (s *httpHandler) deleteHandler(c *gin.Context) {
	id := c.Param("id")
	if err := s.Service.Delete(c, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete player"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (s *httpHandler) photoHandler(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is missing"})
		c.Abort()
		return
	}

	opened, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read photo"})
		c.Abort()
		return
	}
	defer opened.Close()

	data, err := io.ReadAll(opened)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read photo"})
		c.Abort()
		return
	}

	url, err := s.Service.UploadPhoto(c, c.Param("id"), data, file.Header.Get("Content-Type"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		c.Abort()
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload photo"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}
