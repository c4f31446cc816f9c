// Package auth implements the credential check and the in-memory session
// registry. Credentials are compared in plaintext against the static user
// file; sessions live only for the lifetime of the process.
package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"ferreteria.lasu.pe/internal/flatfile"
)

// Field names of the user records in usuario.json.
const (
	UserIDField   = "idUsuario"
	UsernameField = "nombreUsu"
	PasswordField = "contraseñaUsu"
)

// Session is one authenticated tab's state: created on successful login,
// destroyed on explicit logout.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"idUsuario"`
	Username  string    `json:"nombreUsu"`
	CreatedAt time.Time `json:"createdAt"`
}

// Authenticate finds the user row whose username and password both match.
// A mismatch is an ordinary failed login: no lockout, no rate limiting of
// its own, retried freely.
func Authenticate(users []flatfile.Row, username, password string) (flatfile.Row, bool) {
	if username == "" || password == "" {
		return nil, false
	}
	for _, user := range users {
		if flatfile.String(user[UsernameField]) == username &&
			flatfile.String(user[PasswordField]) == password {
			return user, true
		}
	}
	return nil, false
}

// Registry holds active sessions keyed by token.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]Session)}
}

// Create issues a new session for an authenticated user.
func (r *Registry) Create(userID, username string) Session {
	session := Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		Username:  username,
		CreatedAt: time.Now(),
	}

	r.mu.Lock()
	r.sessions[session.Token] = session
	r.mu.Unlock()
	return session
}

// Lookup resolves a token to its session.
func (r *Registry) Lookup(token string) (Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[token]
	return session, ok
}

// Destroy removes a session. Returns false when the token was not active.
func (r *Registry) Destroy(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[token]; !ok {
		return false
	}
	delete(r.sessions, token)
	return true
}

// Len returns the number of active sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
