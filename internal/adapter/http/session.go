package http

import (
	"net/http"

	"github.com/google/uuid"
)

// SessionCookie names the cookie that carries the session id.
const SessionCookie = "dashboard_session"

// sessionID returns the caller's session id, issuing a new one when the
// cookie is missing or malformed.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
