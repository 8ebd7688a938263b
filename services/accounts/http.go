package accounts

import (
	"errors"
	"log"
	"net/http"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/viennasultans/club-sync/pkg/auth"
	"github.com/viennasultans/club-sync/repos/identity"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Accounts is the interface for the account service.
type Accounts interface {
	Login(c *gin.Context, email, password string) (*identity.Session, error)
	Signup(c *gin.Context, email, password string) (*identity.User, error)
	Logout(c *gin.Context, uid string) error
	Verify(c *gin.Context, idToken string) (*fbauth.Token, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Accounts

	// The router instance to configure the HTTP routes.
	Router Router

	// Where a signed-in user landing on the login view gets sent.
	AdminPath string
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("/login", h.loginViewHandler)
	r.POST("/login", h.loginHandler)
	r.POST("/signup", h.signupHandler)
	r.POST("/logout", h.logoutHandler)
	r.GET("/session", h.sessionHandler)
}

type httpHandler struct {
	HTTPOptions
}

type credentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// loginViewHandler implements the login-side of the session gating: a user
// who already holds a valid session is sent straight to the admin roster.
func (s *httpHandler) loginViewHandler(c *gin.Context) {
	if idToken := auth.BearerToken(c); idToken != "" {
		if _, err := s.Service.Verify(c, idToken); err == nil {
			c.Redirect(http.StatusSeeOther, s.AdminPath)
			c.Abort()
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sign in to your account"})
}

func (s *httpHandler) loginHandler(c *gin.Context) {
	var request credentials
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	session, err := s.Service.Login(c, request.Email, request.Password)
	if errors.Is(err, identity.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to log in. Please check your credentials."})
		c.Abort()
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, session)
}

func (s *httpHandler) signupHandler(c *gin.Context) {
	var request credentials
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	user, err := s.Service.Signup(c, request.Email, request.Password)
	if errors.Is(err, identity.ErrAdminExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "Admin user already exists. Please log in instead."})
		c.Abort()
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (s *httpHandler) logoutHandler(c *gin.Context) {
	idToken := auth.BearerToken(c)
	if idToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}

	token, err := s.Service.Verify(c, idToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid ID token"})
		c.Abort()
		return
	}

	if err := s.Service.Logout(c, token.UID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// sessionHandler exposes the current user, or its absence, without treating
// a missing session as an error. Clients poll this to drive routing.
func (s *httpHandler) sessionHandler(c *gin.Context) {
	idToken := auth.BearerToken(c)
	if idToken == "" {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	token, err := s.Service.Verify(c, idToken)
	if err != nil {
		log.Printf("Failed to verify session token: %v\n", err)
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	email, _ := token.Claims["email"].(string)
	c.JSON(http.StatusOK, gin.H{"user": gin.H{"uid": token.UID, "email": email}})
}
