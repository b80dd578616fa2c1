package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"perfilapp/internal/views"
	"perfilapp/pkg/middleware"
	"perfilapp/pkg/session"
	"perfilapp/pkg/user"
)

type AuthHandler struct {
	Service  user.ServiceInterface
	Sessions *session.Manager
	Views    *views.Renderer
	Logger   *slog.Logger
}

func NewAuthHandler(service user.ServiceInterface, sessions *session.Manager, views *views.Renderer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		Service:  service,
		Sessions: sessions,
		Views:    views,
		Logger:   logger,
	}
}

// SignupForm handles the signup POST. A taken username sends the
// visitor back to the form, exactly once; nothing is written to the
// store in that case.
func (h *AuthHandler) SignupForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	name := r.PostFormValue("name")
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	newUser, err := h.Service.Signup(name, username, password)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateUsername) {
			h.Logger.Info("signup rejected", "reason", "duplicate username", "username", username)
			http.Redirect(w, r, "/signup", http.StatusSeeOther)
			return
		}
		h.Logger.Error("signup", "error", err.Error())
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.Logger.Info("signup", "user", newUser.ID)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// LoginForm handles the login POST. The rendered outcome never says
// whether the username or the password was wrong.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	identity, err := h.Service.Login(username, password)
	if err != nil {
		if errors.Is(err, user.ErrNoSuchUser) || errors.Is(err, user.ErrBadPassword) {
			h.Logger.Info("login rejected", "reason", err.Error(), "username", username)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		h.Logger.Error("login", "error", err.Error())
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// The form copy kept for re-display; the password is not part of it.
	s, err := h.Sessions.Create(identity, session.UserRef{Username: username})
	if err != nil {
		h.Logger.Error("session create", "error", err.Error())
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	token, err := h.Sessions.SignToken(s.ID)
	if err != nil {
		h.Logger.Error("token signing", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(session.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.Logger.Info("login", "user", identity.ID)
	if err := h.Views.Render(w, "perfil", map[string]any{"UserInfo": username}); err != nil {
		h.Logger.Error("render perfil", "error", err.Error())
	}
}

// Logout destroys the session and expires the cookie. Logging out
// twice is harmless.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if s := middleware.SessionFromContext(r); s != nil {
		if err := h.Sessions.Destroy(s.ID); err != nil {
			h.Logger.Error("logout", "error", err.Error())
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		h.Logger.Info("logout", "user", s.UserID)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
