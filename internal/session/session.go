// Package session tracks who is currently using the application and gates
// write-oriented operations. The state machine is Anonymous to
// Authenticated (login or register) and back (logout); the authenticated
// user is the one durable record in the system, held in the local store
// under a fixed key and loaded once at construction.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/blog-platform-api/internal/localstore"
	"github.com/blog-platform-api/internal/models"
	"github.com/rs/zerolog"
)

// userKey is the fixed local-store key for the serialized session user.
// Absence of the key means Anonymous.
const userKey = "session:user"

// ErrInvalidCredentials is returned when login is refused. The session
// stays Anonymous.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator checks credentials against an upstream source. It is the
// seam a real deployment fills with an authentication service; the shipped
// implementation is MockAuthenticator.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// Store holds the current session. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	kv      *localstore.Store
	auth    Authenticator
	log     zerolog.Logger
	latency time.Duration
	user    *models.User
	nextID  int
}

// New creates a session store, restoring any persisted user.
func New(kv *localstore.Store, auth Authenticator, latency time.Duration, log zerolog.Logger) (*Store, error) {
	s := &Store{
		kv:      kv,
		auth:    auth,
		log:     log.With().Str("component", "session").Logger(),
		latency: latency,
		nextID:  firstRegisteredID,
	}

	raw, err := kv.Get(userKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if raw != nil {
		var user models.User
		if err := json.Unmarshal(raw, &user); err != nil {
			// A corrupt record degrades to Anonymous rather than failing
			// startup.
			s.log.Warn().Err(err).Msg("Discarding unreadable session record")
		} else {
			s.user = &user
			if user.ID >= s.nextID {
				s.nextID = user.ID + 1
			}
			s.log.Info().Str("email", user.Email).Msg("Session restored")
		}
	}

	return s, nil
}

// Login authenticates the given credentials. On success the user is
// persisted and becomes the current user; on failure the in-memory state
// returns to Anonymous and ErrInvalidCredentials surfaces to the caller.
func (s *Store) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	user, err := s.auth.Authenticate(ctx, email, password)
	if err != nil {
		s.mu.Lock()
		s.user = nil
		s.mu.Unlock()
		return nil, err
	}

	if err := s.persist(user); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	s.log.Info().Str("email", user.Email).Bool("is_admin", user.IsAdmin).Msg("User logged in")
	return user, nil
}

// Register creates a new non-admin user from the supplied name and email,
// persists it, and makes it the current user. Registration always
// succeeds.
func (s *Store) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	user := &models.User{
		ID:    s.nextID,
		Name:  name,
		Email: email,
	}
	s.nextID++
	s.mu.Unlock()

	if err := s.persist(user); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	s.log.Info().Str("email", user.Email).Msg("User registered")
	return user, nil
}

// Logout clears the current user and removes the persisted record. Always
// succeeds short of a store failure.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.kv.Delete(userKey); err != nil {
		return err
	}

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	s.log.Info().Msg("User logged out")
	return nil
}

// CurrentUser returns the authenticated user, if any.
func (s *Store) CurrentUser() (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil, false
	}
	user := *s.user
	return &user, true
}

// IsAuthenticated reports whether a user is logged in.
func (s *Store) IsAuthenticated() bool {
	_, ok := s.CurrentUser()
	return ok
}

// IsAdmin reports whether the current user carries the admin flag.
func (s *Store) IsAdmin() bool {
	user, ok := s.CurrentUser()
	return ok && user.IsAdmin
}

func (s *Store) persist(user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	return s.kv.Set(userKey, raw)
}

// wait models the artificial upstream delay. Unlike the usual
// fire-and-forget timer, it respects cancellation: callers torn down
// mid-call never see a late resume.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
