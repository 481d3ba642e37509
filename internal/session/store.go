// Package session owns the authenticated-identity lifecycle: who is signed
// in, durable restore across restarts, and change notification for
// dependents such as the cart.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pawmart/storefront-go/internal/domain"
	"github.com/pawmart/storefront-go/internal/port"
	"github.com/pawmart/storefront-go/pkg/validator"
)

// connectivityMessage is shown for any transport or parse failure during
// login and registration. Raw transport errors never reach the caller.
const connectivityMessage = "could not reach the server, please try again"

type Store struct {
	mu      sync.Mutex
	user    *domain.User
	loading bool
	subs    []func(*domain.User)

	gw       port.AuthGateway
	storage  port.SessionStorage
	validate *validator.Validator
	log      *slog.Logger
}

func New(gw port.AuthGateway, storage port.SessionStorage, log *slog.Logger) *Store {
	return &Store{
		loading:  true,
		gw:       gw,
		storage:  storage,
		validate: validator.New(),
		log:      log,
	}
}

// Restore loads the persisted identity record, once at startup. A missing or
// malformed record fails open to "no session". No network call is made and
// the loading flag flips to false exactly once.
func (s *Store) Restore() {
	user, err := s.storage.Load()
	if err != nil {
		s.log.Warn("discarding unreadable session record", "error", err)
		user = nil
	}

	s.mu.Lock()
	s.user = user
	s.loading = false
	s.mu.Unlock()

	if user != nil {
		s.notify(user)
	}
}

// Login authenticates against the backend. A nil return means the session is
// now set and persisted. Failures come back as *domain.AuthError with a
// user-displayable message, or as a validation error before any network call.
func (s *Store) Login(ctx context.Context, creds domain.Credentials) error {
	if err := s.validate.Validate(creds); err != nil {
		return err
	}

	result, err := s.gw.Login(ctx, creds)
	if err != nil {
		s.log.Error("login request failed", "error", err)
		return &domain.AuthError{Message: connectivityMessage}
	}

	return s.adopt(result)
}

// Register creates an account and signs in, same contract as Login.
func (s *Store) Register(ctx context.Context, reg domain.Registration) error {
	if err := s.validate.Validate(reg); err != nil {
		return err
	}

	result, err := s.gw.Register(ctx, reg)
	if err != nil {
		s.log.Error("register request failed", "error", err)
		return &domain.AuthError{Message: connectivityMessage}
	}

	return s.adopt(result)
}

// adopt turns a gateway auth result into the current session. A result
// without an id is a rejection carrying the backend's message.
func (s *Store) adopt(result domain.AuthResult) error {
	if result.ID == nil {
		return &domain.AuthError{Message: result.Message}
	}

	user := domain.User{
		ID:       *result.ID,
		Email:    result.Email,
		FullName: result.FullName,
		Phone:    result.Phone,
		Role:     result.Role,
	}

	if err := s.storage.Save(user); err != nil {
		// Session still works for this run, it just won't survive a restart.
		s.log.Warn("could not persist session", "error", err)
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	s.notify(&user)
	return nil
}

// Logout clears the session and its persisted record. Synchronous, no
// network call, cannot fail.
func (s *Store) Logout() {
	if err := s.storage.Clear(); err != nil {
		s.log.Warn("could not clear persisted session", "error", err)
	}

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	s.notify(nil)
}

func (s *Store) Current() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// OnChange registers a subscriber invoked after every session transition.
// Subscribers run synchronously and outside the store's lock.
func (s *Store) OnChange(fn func(*domain.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) notify(user *domain.User) {
	s.mu.Lock()
	subs := make([]func(*domain.User), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(user)
	}
}
