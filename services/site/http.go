package site

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Site is the interface for the public site content service.
type Site interface {
	Matches(c *gin.Context) ([]Fixture, error)
	Gallery(c *gin.Context) (*GalleryView, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Site

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("/matches", h.matchesHandler)
	r.GET("/gallery", h.galleryHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (s *httpHandler) matchesHandler(c *gin.Context) {
	fixtures, err := s.Service.Matches(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch matches"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": fixtures})
}

func (s *httpHandler) galleryHandler(c *gin.Context) {
	view, err := s.Service.Gallery(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gallery"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, view)
}
