package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"runtime"

	"perfilapp/internal/views"
	"perfilapp/pkg/middleware"
)

type PageHandler struct {
	Views  *views.Renderer
	Logger *slog.Logger
}

func NewPageHandler(views *views.Renderer, logger *slog.Logger) *PageHandler {
	return &PageHandler{Views: views, Logger: logger}
}

func (h *PageHandler) render(w http.ResponseWriter, page string, data any) {
	if err := h.Views.Render(w, page, data); err != nil {
		h.Logger.Error("render", "page", page, "error", err.Error())
	}
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, "home", nil)
}

func (h *PageHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login", nil)
}

func (h *PageHandler) Signup(w http.ResponseWriter, r *http.Request) {
	h.render(w, "signup", nil)
}

func (h *PageHandler) MissingPermission(w http.ResponseWriter, r *http.Request) {
	h.render(w, "missingpermission", nil)
}

// Perfil is guarded; by the time it runs the session exists and is
// authenticated.
func (h *PageHandler) Perfil(w http.ResponseWriter, r *http.Request) {
	s := middleware.SessionFromContext(r)
	if s == nil {
		http.Redirect(w, r, "/missingpermission", http.StatusSeeOther)
		return
	}
	h.render(w, "perfil", map[string]any{"UserInfo": s.UserRef.Username})
}

func (h *PageHandler) LogoutPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "logout", nil)
}

type comando struct {
	Name string
}

// Info renders facts about the running process.
func (h *PageHandler) Info(w http.ResponseWriter, r *http.Request) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	cwd, _ := os.Getwd()

	comandos := []comando{
		{Name: runtime.GOOS},
		{Name: fmt.Sprintf("%d", mem.Sys)},
		{Name: runtime.Version()},
		{Name: fmt.Sprintf("%d", os.Getpid())},
		{Name: cwd},
		{Name: fmt.Sprintf("%v", os.Args)},
		{Name: os.Args[0]},
	}

	h.render(w, "info", map[string]any{"Comandos": comandos})
}
