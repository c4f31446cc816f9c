package app

import (
	"net/http"
	"strings"
)

// SessionToken extracts the session token from a request: the Bearer
// authorization header, falling back to the token query parameter.
func SessionToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return r.URL.Query().Get("token")
}

// RequestHasInvalidSession reports whether the request carries no active
// session token.
func (app *Application) RequestHasInvalidSession(r *http.Request) bool {
	token := SessionToken(r)
	if token == "" {
		return true
	}
	_, ok := app.Sessions.Lookup(token)
	return !ok
}
