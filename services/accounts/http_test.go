package accounts

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/viennasultans/club-sync/repos/identity"
)

type fakeAccounts struct {
	session   *identity.Session
	loginErr  error
	user      *identity.User
	signupErr error
	token     *fbauth.Token
	verifyErr error
}

func (f fakeAccounts) Login(c *gin.Context, email, password string) (*identity.Session, error) {
	return f.session, f.loginErr
}

func (f fakeAccounts) Signup(c *gin.Context, email, password string) (*identity.User, error) {
	return f.user, f.signupErr
}

func (f fakeAccounts) Logout(c *gin.Context, uid string) error {
	return nil
}

func (f fakeAccounts) Verify(c *gin.Context, idToken string) (*fbauth.Token, error) {
	return f.token, f.verifyErr
}

func newTestRouter(service Accounts) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHTTPHandler(HTTPOptions{
		Service:   service,
		Router:    router.Group("/auth/v1"),
		AdminPath: "/admin/v1/players",
	})
	return router
}

func TestLoginBadCredentialsMessage(t *testing.T) {
	router := newTestRouter(fakeAccounts{loginErr: identity.ErrInvalidCredentials})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/v1/login", strings.NewReader(`{"email":"a@b.c","password":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	// generic message only, no credential detail
	assert.Contains(t, recorder.Body.String(), "check your credentials")
	assert.NotContains(t, recorder.Body.String(), "password")
}

func TestSignupAdminExists(t *testing.T) {
	router := newTestRouter(fakeAccounts{signupErr: identity.ErrAdminExists})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/v1/signup", strings.NewReader(`{"email":"a@b.c","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "already exists")
}

func TestSessionWithoutToken(t *testing.T) {
	router := newTestRouter(fakeAccounts{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/auth/v1/session", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"user":null`)
}

func TestSessionRejectedToken(t *testing.T) {
	router := newTestRouter(fakeAccounts{verifyErr: errors.New("token expired")})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/auth/v1/session", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	router.ServeHTTP(recorder, req)

	// a rejected token reads the same as no session to the client
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"user":null`)
}

func TestLoginViewRedirectsAuthenticated(t *testing.T) {
	router := newTestRouter(fakeAccounts{token: &fbauth.Token{UID: "uid-123"}})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/auth/v1/login", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/admin/v1/players", recorder.Header().Get("Location"))
}

func TestLoginViewUnauthenticated(t *testing.T) {
	router := newTestRouter(fakeAccounts{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/auth/v1/login", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Sign in")
}
