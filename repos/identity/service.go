package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	firebase "firebase.google.com/go/v4"
	auth "firebase.google.com/go/v4/auth"
	"golang.org/x/xerrors"

	timehelper "github.com/viennasultans/club-sync/pkg/timeHelper"
	"github.com/viennasultans/club-sync/repos/docstore"
	"github.com/viennasultans/club-sync/repos/mailer"
)

const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

var (
	// ErrInvalidCredentials is returned on a bad email/password pair. The
	// handler maps it to a generic message without credential detail.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAdminExists enforces the single-admin policy on sign-up.
	ErrAdminExists = errors.New("admin already exists")
)

// Session is what the provider hands back for a signed-in admin.
type Session struct {
	UID          string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

// User identifies a created account.
type User struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// userManager is the slice of the provider's admin client that sign-up,
// sign-out and verification need.
type userManager interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// adminStore is the slice of the document store gateway the single-admin
// gate reads and writes.
type adminStore interface {
	ListCollection(ctx context.Context, name string) ([]docstore.Document, error)
	SetDocument(ctx context.Context, name, id string, payload map[string]interface{}) error
}

// welcomeMailer notifies a freshly created admin.
type welcomeMailer interface {
	SendAdminWelcome(ctx context.Context, email string) error
}

// Service wraps sign-in, gated sign-up, sign-out and token verification
// against the managed identity provider.
type Service struct {
	authClient userManager
	store      adminStore
	mailer     welcomeMailer
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// NewService creates the authentication gateway.
func NewService(ctx context.Context, firebaseApp *firebase.App, store *docstore.Service, mailerService *mailer.Service, apiKey string) (*Service, error) {
	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		return nil, xerrors.Errorf("initialize auth client: %w", err)
	}

	return &Service{
		authClient: authClient,
		store:      store,
		mailer:     mailerService,
		apiKey:     apiKey,
		endpoint:   signInEndpoint,
		httpClient: &http.Client{},
	}, nil
}

// Login exchanges email and password for a provider session.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, xerrors.Errorf("encode sign-in request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.endpoint+"?key="+s.apiKey, bytes.NewReader(payload))
	if err != nil {
		return nil, xerrors.Errorf("create sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	response, err := s.httpClient.Do(req)
	if err != nil {
		return nil, xerrors.Errorf("sign-in request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		var failure struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(response.Body).Decode(&failure); err != nil {
			return nil, xerrors.Errorf("sign-in failed with status %d", response.StatusCode)
		}
		log.Printf("Sign-in rejected by provider: %s\n", failure.Error.Message)
		if isCredentialFailure(failure.Error.Message) {
			return nil, ErrInvalidCredentials
		}
		return nil, xerrors.Errorf("sign-in failed: %s", failure.Error.Message)
	}

	var session Session
	if err := json.NewDecoder(response.Body).Decode(&session); err != nil {
		return nil, xerrors.Errorf("decode sign-in response: %w", err)
	}
	return &session, nil
}

// Signup creates the admin account, but only when no admin record exists
// yet. The check-then-act is not race-safe; with a single operator that is
// acceptable.
func (s *Service) Signup(ctx context.Context, email, password string) (*User, error) {
	admins, err := s.store.ListCollection(ctx, "admins")
	if err != nil {
		return nil, xerrors.Errorf("check existing admins: %w", err)
	}
	if len(admins) > 0 {
		return nil, ErrAdminExists
	}

	record, err := s.authClient.CreateUser(ctx, (&auth.UserToCreate{}).
		Email(email).
		Password(password))
	if err != nil {
		return nil, xerrors.Errorf("create user: %w", err)
	}

	err = s.store.SetDocument(ctx, "admins", record.UID, map[string]interface{}{
		"email":     email,
		"role":      "admin",
		"createdAt": timehelper.NowISO8601(),
	})
	if err != nil {
		return nil, xerrors.Errorf("write admin record: %w", err)
	}

	if err := s.mailer.SendAdminWelcome(ctx, email); err != nil {
		log.Printf("Failed to send welcome mail: %v\n", err)
	}

	return &User{UID: record.UID, Email: email}, nil
}

// Logout invalidates every session the uid holds by revoking its refresh
// tokens.
func (s *Service) Logout(ctx context.Context, uid string) error {
	if err := s.authClient.RevokeRefreshTokens(ctx, uid); err != nil {
		return xerrors.Errorf("revoke tokens for %s: %w", uid, err)
	}
	return nil
}

// Verify resolves an ID token to the current user. Routing decisions are
// driven by this and nothing else.
func (s *Service) Verify(ctx context.Context, idToken string) (*auth.Token, error) {
	token, err := s.authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, xerrors.Errorf("verify token: %w", err)
	}
	return token, nil
}

func isCredentialFailure(message string) bool {
	switch message {
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS", "USER_DISABLED":
		return true
	}
	return false
}
