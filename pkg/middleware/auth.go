package middleware

import (
	"errors"
	"net/http"

	"perfilapp/pkg/session"
	"perfilapp/pkg/user"
)

const missingPermissionURL = "/missingpermission"

// RequireAuth gates protected pages. A request passes only with an
// authenticated session whose user still exists; a session left
// dangling by a deleted account is destroyed on the spot.
func RequireAuth(users user.Repository, manager *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := SessionFromContext(r)
			if s == nil || !s.IsAuth {
				http.Redirect(w, r, missingPermissionURL, http.StatusSeeOther)
				return
			}

			if _, err := users.FindByID(s.UserID); err != nil {
				if errors.Is(err, user.ErrNoSuchUser) {
					_ = manager.Destroy(s.ID)
					http.Redirect(w, r, missingPermissionURL, http.StatusSeeOther)
					return
				}
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
