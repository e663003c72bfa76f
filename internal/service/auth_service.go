package service

import (
	"context"

	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/session"
	"github.com/blog-platform-api/internal/validation"
	"github.com/rs/zerolog"
)

// authService fronts the session store, adding form validation.
type authService struct {
	sessions *session.Store
	log      zerolog.Logger
}

// newAuthService creates the auth service
func newAuthService(sessions *session.Store, log zerolog.Logger) *authService {
	return &authService{
		sessions: sessions,
		log:      log.With().Str("component", "auth_service").Logger(),
	}
}

// Login validates the form and attempts to authenticate.
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if errs := validation.ValidateLogin(email, password); len(errs) > 0 {
		return nil, &ValidationFailure{Errors: errs}
	}
	return s.sessions.Login(ctx, email, password)
}

// Register validates the form and creates a new session user.
func (s *authService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if errs := validation.ValidateRegistration(name, email, password); len(errs) > 0 {
		return nil, &ValidationFailure{Errors: errs}
	}
	return s.sessions.Register(ctx, name, email, password)
}

// Logout ends the session.
func (s *authService) Logout(ctx context.Context) error {
	return s.sessions.Logout(ctx)
}

// CurrentUser returns the authenticated user, if any.
func (s *authService) CurrentUser() (*models.User, bool) {
	return s.sessions.CurrentUser()
}

// IsAuthenticated reports whether a user is logged in.
func (s *authService) IsAuthenticated() bool {
	return s.sessions.IsAuthenticated()
}

// IsAdmin reports whether the current user carries the admin flag.
func (s *authService) IsAdmin() bool {
	return s.sessions.IsAdmin()
}
