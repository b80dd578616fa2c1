package routing_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"perfilapp/internal/routing"
	"perfilapp/pkg/randoms"
	"perfilapp/pkg/session"
	"perfilapp/pkg/user"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	worker := randoms.NewWorker()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go worker.Run(ctx)

	r := mux.NewRouter()
	err := routing.InitRoutes(r, routing.Deps{
		Users:         user.NewMemoryRepo(),
		Sessions:      session.NewMemoryRepo(),
		SessionSecret: "test-secret",
		Worker:        worker,
		Logger:        slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{})),
	})
	assert.NoError(t, err)

	return r
}

func postForm(r *mux.Router, target string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func get(r *mux.Router, target string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestSignupLoginLogoutFlow(t *testing.T) {
	r := newTestRouter(t)

	signup := url.Values{"name": {"Alice"}, "username": {"alice"}, "password": {"pw1"}}

	// signup lands on the login page
	rr := postForm(r, "/signupForm", signup, nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))

	// a second signup for the same username goes back to the form
	rr = postForm(r, "/signupForm", url.Values{
		"name": {"Impostor"}, "username": {"alice"}, "password": {"other"},
	}, nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/signup", rr.Header().Get("Location"))

	// wrong password bounces back to login, no cookie issued
	rr = postForm(r, "/loginForm", url.Values{
		"username": {"alice"}, "password": {"wrong"},
	}, nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
	assert.Empty(t, rr.Result().Cookies())

	// correct password renders the profile and sets the cookie
	rr = postForm(r, "/loginForm", url.Values{
		"username": {"alice"}, "password": {"pw1"},
	}, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "alice")
	cookies := rr.Result().Cookies()
	assert.Len(t, cookies, 1)

	// the cookie opens the guarded pages
	rr = get(r, "/perfil", cookies)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "alice")

	rr = get(r, "/logout", cookies)
	assert.Equal(t, http.StatusOK, rr.Code)

	// logout kills the session; the same cookie no longer works
	rr = postForm(r, "/logout", nil, cookies)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	rr = get(r, "/perfil", cookies)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/missingpermission", rr.Header().Get("Location"))
}

func TestGuardedPagesWithoutSession(t *testing.T) {
	r := newTestRouter(t)

	for _, target := range []string{"/perfil", "/logout"} {
		rr := get(r, target, nil)
		assert.Equal(t, http.StatusSeeOther, rr.Code, target)
		assert.Equal(t, "/missingpermission", rr.Header().Get("Location"), target)
	}
}

func TestPublicPages(t *testing.T) {
	r := newTestRouter(t)

	for _, target := range []string{"/", "/login", "/signup", "/missingpermission", "/info"} {
		rr := get(r, target, nil)
		assert.Equal(t, http.StatusOK, rr.Code, target)
		assert.Contains(t, rr.Header().Get("Content-Type"), "text/html", target)
	}
}

func TestRandomsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	rr := get(r, "/api/randoms?cant=1000", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")

	rr = get(r, "/api/randoms?cant=nope", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
