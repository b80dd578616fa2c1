package middleware

import (
	"context"
	"net/http"

	"perfilapp/pkg/claims"
	"perfilapp/pkg/session"
)

// CookieName is the session cookie, a signed wrapper around the session ID.
const CookieName = "sid"

// LoadSession restores the caller's session from the signed cookie and
// puts it on the request context. Requests without a valid live session
// proceed with no session; denying is the guard's job.
func LoadSession(manager *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			sessionID, err := manager.ParseToken(cookie.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			s, err := manager.Restore(sessionID)
			if err != nil || s == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), claims.SessionContextKey, s)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the restored session, or nil when the
// request carries none.
func SessionFromContext(r *http.Request) *session.Session {
	s, _ := r.Context().Value(claims.SessionContextKey).(*session.Session)
	return s
}
