package auth

import (
	"context"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"

	"github.com/gin-gonic/gin"
)

// Verifier resolves an ID token to the signed-in user. The identity gateway
// is the only implementation outside tests.
type Verifier interface {
	Verify(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// Middleware gates the admin routes: requests without a valid session never
// reach a handler. The login view's path is included so an interactive
// client knows where to send the user.
func Middleware(verifier Verifier, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		idToken := BearerToken(c)
		if idToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing", "location": loginPath})
			c.Abort()
			return
		}

		token, err := verifier.Verify(c, idToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid ID token", "location": loginPath})
			c.Abort()
			return
		}

		// Attach token to the context
		c.Set("token", token)

		c.Next()
	}
}

// BearerToken extracts the ID token from the Authorization header, or ""
// when the request carries none.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}
