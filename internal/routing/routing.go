package routing

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"perfilapp/internal/views"
	"perfilapp/pkg/handlers"
	"perfilapp/pkg/middleware"
	"perfilapp/pkg/randoms"
	"perfilapp/pkg/session"
	"perfilapp/pkg/user"
)

const staticPath = "./static"

// Deps carries the stores and collaborators the routes are wired
// against. Tests inject in-memory stores here.
type Deps struct {
	Users         user.Repository
	Sessions      session.Repository
	SessionSecret string
	Worker        *randoms.Worker
	Logger        *slog.Logger
}

func InitRoutes(r *mux.Router, deps Deps) error {
	renderer, err := views.Load()
	if err != nil {
		return fmt.Errorf("failed to load views: %w", err)
	}

	sessionManager := session.NewManager(deps.Sessions, deps.SessionSecret)
	userService := user.NewService(deps.Users)

	authHandler := handlers.NewAuthHandler(userService, sessionManager, renderer, deps.Logger)
	pageHandler := handlers.NewPageHandler(renderer, deps.Logger)
	randomsHandler := handlers.NewRandomsHandler(deps.Worker, deps.Logger)

	r.Use(middleware.Panic(deps.Logger))
	r.Use(middleware.LoadSession(sessionManager))

	/* public pages */
	r.HandleFunc("/", pageHandler.Home).Methods("GET")
	r.HandleFunc("/login", pageHandler.Login).Methods("GET")
	r.HandleFunc("/signup", pageHandler.Signup).Methods("GET")
	r.HandleFunc("/missingpermission", pageHandler.MissingPermission).Methods("GET")
	r.HandleFunc("/info", pageHandler.Info).Methods("GET")

	/* auth forms */
	r.HandleFunc("/signupForm", authHandler.SignupForm).Methods("POST").Name("signup")
	r.HandleFunc("/loginForm", authHandler.LoginForm).Methods("POST").Name("login")
	r.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	/* guarded pages */
	guarded := r.PathPrefix("").Subrouter()
	guarded.Use(middleware.RequireAuth(deps.Users, sessionManager))
	guarded.HandleFunc("/perfil", pageHandler.Perfil).Methods("GET")
	guarded.HandleFunc("/logout", pageHandler.LogoutPage).Methods("GET")

	/* api */
	r.HandleFunc("/api/randoms", randomsHandler.Randoms).Methods("GET")

	return nil
}

func ServeStaticFiles(r *mux.Router) {
	fs := http.FileServer(http.Dir(staticPath))
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", fs))
}

func StartServer(r *mux.Router, port string) {
	fmt.Println("\n\033[32m", "The server is running on http://localhost:"+port, "\033[0m")
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
