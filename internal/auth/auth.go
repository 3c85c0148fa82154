// Package auth checks login credentials.
package auth

import "github.com/claude/fitcoach/internal/models"

// Authenticator decides whether a username/password pair may log in.
type Authenticator interface {
	Authenticate(username, password string) bool
}

// UserSource looks up registered users.
type UserSource interface {
	Get(username string) (models.User, bool)
}

// Plaintext compares the submitted password with the stored one by exact
// equality. Credentials are stored unhashed; there is no lockout or rate limit.
type Plaintext struct {
	users UserSource
}

// NewPlaintext returns an Authenticator backed by users.
func NewPlaintext(users UserSource) *Plaintext {
	return &Plaintext{users: users}
}

// Authenticate reports whether username is registered and password matches.
func (p *Plaintext) Authenticate(username, password string) bool {
	u, ok := p.users.Get(username)
	if !ok {
		return false
	}
	return u.Password == password
}
