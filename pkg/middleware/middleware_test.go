package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"perfilapp/pkg/claims"
	"perfilapp/pkg/middleware"
	"perfilapp/pkg/session"
	"perfilapp/pkg/user"
)

func authedRequest(s *session.Session) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/perfil", nil)
	if s == nil {
		return r
	}
	ctx := context.WithValue(r.Context(), claims.SessionContextKey, s)
	return r.WithContext(ctx)
}

func TestLoadSession(t *testing.T) {
	manager := session.NewManager(session.NewMemoryRepo(), "secret")
	s, err := manager.Create(&user.User{ID: "uid"}, session.UserRef{Username: "alice"})
	assert.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := middleware.SessionFromContext(r); got != nil {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	handler := middleware.LoadSession(manager)(next)

	t.Run("valid cookie", func(t *testing.T) {
		token, err := manager.SignToken(s.ID)
		assert.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: token})
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("garbage cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: "garbage"})
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("signed token for a destroyed session", func(t *testing.T) {
		token, err := manager.SignToken(s.ID)
		assert.NoError(t, err)
		assert.NoError(t, manager.Destroy(s.ID))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: token})
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestRequireAuth(t *testing.T) {
	users := user.NewMemoryRepo()
	manager := session.NewManager(session.NewMemoryRepo(), "secret")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.RequireAuth(users, manager)(next)

	t.Run("no session", func(t *testing.T) {
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, authedRequest(nil))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/missingpermission", w.Header().Get("Location"))
	})

	t.Run("unauthenticated session", func(t *testing.T) {
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, authedRequest(&session.Session{ID: "s1", IsAuth: false}))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/missingpermission", w.Header().Get("Location"))
	})

	t.Run("authenticated session with live user", func(t *testing.T) {
		u := &user.User{Name: "Alice", Username: "alice", PasswordHash: "h"}
		assert.NoError(t, users.InsertIfAbsent(u))

		s, err := manager.Create(u, session.UserRef{Username: "alice"})
		assert.NoError(t, err)

		w := httptest.NewRecorder()

		handler.ServeHTTP(w, authedRequest(s))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("session whose user is gone", func(t *testing.T) {
		s, err := manager.Create(&user.User{ID: "deleted-uid"}, session.UserRef{Username: "ghost"})
		assert.NoError(t, err)

		w := httptest.NewRecorder()

		handler.ServeHTTP(w, authedRequest(s))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/missingpermission", w.Header().Get("Location"))

		// the dangling session was destroyed on the way out
		restored, err := manager.Restore(s.ID)
		assert.NoError(t, err)
		assert.Nil(t, restored)
	})
}
