package session

import (
	"context"

	"github.com/blog-platform-api/internal/models"
)

// firstRegisteredID is the first id handed to self-registered users; the
// demo accounts below occupy the ids before it.
const firstRegisteredID = 3

// demo credential pairs. This is explicitly a stand-in for a real
// credential check; a real deployment replaces MockAuthenticator behind
// the Authenticator seam instead of extending this table.
var demoUsers = map[string]struct {
	password string
	user     models.User
}{
	"admin@example.com": {
		password: "password",
		user:     models.User{ID: 1, Name: "Admin User", Email: "admin@example.com", IsAdmin: true},
	},
	"user@example.com": {
		password: "password",
		user:     models.User{ID: 2, Name: "Regular User", Email: "user@example.com"},
	},
}

// MockAuthenticator accepts the fixed demo credential pairs.
type MockAuthenticator struct{}

// Authenticate matches email and password against the demo table.
func (MockAuthenticator) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	entry, ok := demoUsers[email]
	if !ok || entry.password != password {
		return nil, ErrInvalidCredentials
	}
	user := entry.user
	return &user, nil
}
