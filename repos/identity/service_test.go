package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	auth "firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"

	"github.com/viennasultans/club-sync/repos/docstore"
)

type fakeUserManager struct {
	created int
	record  *auth.UserRecord
}

func (f *fakeUserManager) CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error) {
	f.created++
	return f.record, nil
}

func (f *fakeUserManager) RevokeRefreshTokens(ctx context.Context, uid string) error {
	return nil
}

func (f *fakeUserManager) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	return nil, nil
}

type fakeAdminStore struct {
	admins []docstore.Document
	writes map[string]map[string]interface{}
}

func (f *fakeAdminStore) ListCollection(ctx context.Context, name string) ([]docstore.Document, error) {
	return f.admins, nil
}

func (f *fakeAdminStore) SetDocument(ctx context.Context, name, id string, payload map[string]interface{}) error {
	if f.writes == nil {
		f.writes = map[string]map[string]interface{}{}
	}
	f.writes[id] = payload
	return nil
}

type fakeMailer struct {
	sent []string
}

func (f *fakeMailer) SendAdminWelcome(ctx context.Context, email string) error {
	f.sent = append(f.sent, email)
	return nil
}

func signInService(url string) *Service {
	return &Service{
		apiKey:     "test-key",
		endpoint:   url,
		httpClient: &http.Client{},
	}
}

func TestLoginSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"localId": "uid-123",
			"email": "admin@viennasultans.at",
			"idToken": "token-abc",
			"refreshToken": "refresh-def",
			"expiresIn": "3600"
		}`))
	}))
	defer server.Close()

	session, err := signInService(server.URL).Login(context.Background(), "admin@viennasultans.at", "secret")

	assert.Nil(t, err)
	assert.Equal(t, "uid-123", session.UID)
	assert.Equal(t, "admin@viennasultans.at", session.Email)
	assert.Equal(t, "token-abc", session.IDToken)
}

func TestLoginBadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"message": "INVALID_LOGIN_CREDENTIALS"}}`))
	}))
	defer server.Close()

	session, err := signInService(server.URL).Login(context.Background(), "admin@viennasultans.at", "wrong")

	assert.Nil(t, session)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginProviderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"message": "INTERNAL"}}`))
	}))
	defer server.Close()

	session, err := signInService(server.URL).Login(context.Background(), "admin@viennasultans.at", "secret")

	assert.Nil(t, session)
	assert.NotNil(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignupRejectedWhenAdminExists(t *testing.T) {
	users := &fakeUserManager{}
	store := &fakeAdminStore{
		admins: []docstore.Document{
			{ID: "uid-existing", Data: map[string]interface{}{"email": "owner@viennasultans.at", "role": "admin"}},
		},
	}
	service := &Service{authClient: users, store: store, mailer: &fakeMailer{}}

	user, err := service.Signup(context.Background(), "second@viennasultans.at", "pw")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrAdminExists)
	// the gate must fail fast: no identity created, no document written
	assert.Equal(t, 0, users.created)
	assert.Empty(t, store.writes)
}

func TestSignupCreatesFirstAdmin(t *testing.T) {
	users := &fakeUserManager{
		record: &auth.UserRecord{UserInfo: &auth.UserInfo{UID: "uid-new"}},
	}
	store := &fakeAdminStore{}
	mail := &fakeMailer{}
	service := &Service{authClient: users, store: store, mailer: mail}

	user, err := service.Signup(context.Background(), "owner@viennasultans.at", "pw")

	assert.Nil(t, err)
	assert.Equal(t, "uid-new", user.UID)
	assert.Equal(t, 1, users.created)

	record, ok := store.writes["uid-new"]
	assert.True(t, ok)
	assert.Equal(t, "owner@viennasultans.at", record["email"])
	assert.Equal(t, "admin", record["role"])
	assert.NotEmpty(t, record["createdAt"])

	assert.Equal(t, []string{"owner@viennasultans.at"}, mail.sent)
}

func TestIsCredentialFailure(t *testing.T) {
	assert.True(t, isCredentialFailure("EMAIL_NOT_FOUND"))
	assert.True(t, isCredentialFailure("INVALID_PASSWORD"))
	assert.False(t, isCredentialFailure("TOO_MANY_ATTEMPTS_TRY_LATER"))
}
