package session_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/pawmart/storefront-go/internal/domain"
	"github.com/pawmart/storefront-go/internal/session"
	"github.com/pawmart/storefront-go/internal/storage"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeAuthGateway struct {
	loginCalls    int
	registerCalls int
	result        domain.AuthResult
	err           error
}

func (f *fakeAuthGateway) Login(context.Context, domain.Credentials) (domain.AuthResult, error) {
	f.loginCalls++
	return f.result, f.err
}

func (f *fakeAuthGateway) Register(context.Context, domain.Registration) (domain.AuthResult, error) {
	f.registerCalls++
	return f.result, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStore(t *testing.T, gw *fakeAuthGateway) (*session.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return session.New(gw, storage.NewFile(path), discardLogger()), path
}

func acceptedResult(id int64) domain.AuthResult {
	return domain.AuthResult{
		ID:       &id,
		Email:    gofakeit.Email(),
		FullName: gofakeit.Name(),
		Phone:    gofakeit.Phone(),
		Role:     "CUSTOMER",
	}
}

func validCredentials() domain.Credentials {
	return domain.Credentials{Email: gofakeit.Email(), Password: "secret1"}
}

func TestRestore(t *testing.T) {
	tests := []struct {
		name     string
		seed     string // file content, empty = no file
		wantUser bool
	}{
		{name: "no persisted record: no session"},
		{
			name:     "valid record: session restored",
			seed:     `{"id":42,"email":"an@example.com","fullName":"Trần Văn An","phone":"0901234567","role":"CUSTOMER"}`,
			wantUser: true,
		},
		{name: "malformed record: fails open", seed: `{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeAuthGateway{}
			store, path := newStore(t, gw)
			if tt.seed != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.seed), 0o600))
			}

			var notified *domain.User
			store.OnChange(func(u *domain.User) { notified = u })

			require.True(t, store.Loading())
			store.Restore()
			require.False(t, store.Loading())

			if !tt.wantUser {
				assert.Nil(t, store.Current())
				assert.Nil(t, notified)
				return
			}

			user := store.Current()
			require.NotNil(t, user)
			assert.Equal(t, int64(42), user.ID)
			assert.Equal(t, "an@example.com", user.Email)
			require.NotNil(t, notified)
			assert.Equal(t, int64(42), notified.ID)
		})
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name        string
		result      domain.AuthResult
		gwErr       error
		wantMessage string
		wantUser    bool
	}{
		{
			name:     "accepted: session set",
			result:   acceptedResult(42),
			wantUser: true,
		},
		{
			name:        "rejected: backend message returned verbatim",
			result:      domain.AuthResult{Message: "Email hoặc mật khẩu không đúng"},
			wantMessage: "Email hoặc mật khẩu không đúng",
		},
		{
			name:        "transport failure: generic connectivity message",
			gwErr:       errors.New("dial tcp: connection refused"),
			wantMessage: "could not reach the server, please try again",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeAuthGateway{result: tt.result, err: tt.gwErr}
			store, path := newStore(t, gw)
			store.Restore()

			err := store.Login(t.Context(), validCredentials())

			if tt.wantUser {
				require.NoError(t, err)
				require.NotNil(t, store.Current())
				assert.Equal(t, int64(42), store.Current().ID)

				// persisted record survives a restart
				raw, readErr := os.ReadFile(path)
				require.NoError(t, readErr)
				assert.Contains(t, string(raw), `"id":42`)
				return
			}

			var authErr *domain.AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.wantMessage, authErr.Message)
			assert.Nil(t, store.Current())
			assert.NoFileExists(t, path)
		})
	}
}

func TestLoginValidation(t *testing.T) {
	tests := []struct {
		name  string
		creds domain.Credentials
	}{
		{name: "missing email", creds: domain.Credentials{Password: "secret1"}},
		{name: "invalid email", creds: domain.Credentials{Email: "not-an-email", Password: "secret1"}},
		{name: "short password", creds: domain.Credentials{Email: "an@example.com", Password: "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeAuthGateway{result: acceptedResult(42)}
			store, _ := newStore(t, gw)
			store.Restore()

			err := store.Login(t.Context(), tt.creds)

			require.Error(t, err)
			assert.Zero(t, gw.loginCalls, "validation failures must not reach the gateway")
			assert.Nil(t, store.Current())
		})
	}
}

func TestRegister(t *testing.T) {
	t.Run("accepted: session set and persisted", func(t *testing.T) {
		gw := &fakeAuthGateway{result: acceptedResult(7)}
		store, path := newStore(t, gw)
		store.Restore()

		err := store.Register(t.Context(), domain.Registration{
			Email:    gofakeit.Email(),
			Password: "secret1",
			FullName: gofakeit.Name(),
			Phone:    "0901234567",
		})

		require.NoError(t, err)
		require.NotNil(t, store.Current())
		assert.Equal(t, int64(7), store.Current().ID)
		assert.FileExists(t, path)
		assert.Equal(t, 1, gw.registerCalls)
	})

	t.Run("missing full name: no gateway call", func(t *testing.T) {
		gw := &fakeAuthGateway{result: acceptedResult(7)}
		store, _ := newStore(t, gw)
		store.Restore()

		err := store.Register(t.Context(), domain.Registration{
			Email:    gofakeit.Email(),
			Password: "secret1",
			Phone:    "0901234567",
		})

		require.Error(t, err)
		assert.Zero(t, gw.registerCalls)
	})
}

func TestLogout(t *testing.T) {
	gw := &fakeAuthGateway{result: acceptedResult(42)}
	store, path := newStore(t, gw)
	store.Restore()
	require.NoError(t, store.Login(t.Context(), validCredentials()))

	var notified *domain.User
	store.OnChange(func(u *domain.User) { notified = u })
	notified = &domain.User{ID: -1} // sentinel, must be overwritten with nil

	store.Logout()

	assert.Nil(t, store.Current())
	assert.Nil(t, notified)
	assert.NoFileExists(t, path)
}

func TestSessionTransitionsNotifySubscribers(t *testing.T) {
	gw := &fakeAuthGateway{result: acceptedResult(42)}
	store, _ := newStore(t, gw)

	var transitions []*domain.User
	store.OnChange(func(u *domain.User) { transitions = append(transitions, u) })

	store.Restore()
	require.NoError(t, store.Login(t.Context(), validCredentials()))
	store.Logout()

	// restore with no record is silent, then one set and one unset
	require.Len(t, transitions, 2)
	assert.NotNil(t, transitions[0])
	assert.Nil(t, transitions[1])
}
