package accounts

import (
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/viennasultans/club-sync/repos/identity"
)

// AccountsService adapts the identity gateway for the auth routes.
type AccountsService struct {
	identity *identity.Service
}

func NewAccountsService(identityService *identity.Service) *AccountsService {
	return &AccountsService{
		identity: identityService,
	}
}

func (s *AccountsService) Login(c *gin.Context, email, password string) (*identity.Session, error) {
	return s.identity.Login(c, email, password)
}

func (s *AccountsService) Signup(c *gin.Context, email, password string) (*identity.User, error) {
	return s.identity.Signup(c, email, password)
}

func (s *AccountsService) Logout(c *gin.Context, uid string) error {
	return s.identity.Logout(c, uid)
}

func (s *AccountsService) Verify(c *gin.Context, idToken string) (*fbauth.Token, error) {
	return s.identity.Verify(c, idToken)
}
