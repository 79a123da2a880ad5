package server

import (
	"log/slog"
	"net/http"

	"starfield-server/internal/auth"
	authHandlers "starfield-server/internal/auth/handlers"
	"starfield-server/internal/bookmark"
	bookmarkHandlers "starfield-server/internal/bookmark/handlers"
	"starfield-server/internal/explorer"
	explorerHandlers "starfield-server/internal/explorer/handlers"
	"starfield-server/internal/middleware"
	serverHandlers "starfield-server/internal/server/handlers"
	"starfield-server/internal/starsystem"
	starsystemHandlers "starfield-server/internal/starsystem/handlers"
)

type Dependencies struct {
	StarSystems *starsystem.Service
	Explorers   *explorer.Service
	Bookmarks   *bookmark.Service
	Tokens      *auth.TokenIssuer
	States      *auth.StateManager
	GitHub      *auth.GitHubProvider
	Database    serverHandlers.Pinger

	// Redis is nil when Redis is disabled.
	Redis       serverHandlers.Pinger
	CacheName   string
	FrontendURL string
}

type Routes struct {
	deps Dependencies
}

func NewRoutes(deps Dependencies) *Routes {
	return &Routes{deps: deps}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	d := r.deps
	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(d.Database, d.Redis, d.CacheName)
	starSystemHandler := starsystemHandlers.NewStarSystemHandler(d.StarSystems)
	sessionHandler := authHandlers.NewSessionHandler(d.Explorers, d.Tokens, d.GitHub, d.States, d.FrontendURL)
	meHandler := explorerHandlers.NewMeHandler(d.Explorers)
	bookmarkHandler := bookmarkHandlers.NewBookmarkHandler(d.Bookmarks)

	requireExplorer := middleware.RequireExplorer(d.Tokens)

	// Public endpoints
	mux.Handle("GET /api/server/health", healthHandler)
	mux.HandleFunc("GET /api/sectors/{x}/{y}", starSystemHandler.Probe)
	mux.HandleFunc("GET /api/systems/{x}/{y}", starSystemHandler.Expand)
	mux.HandleFunc("GET /api/region", starSystemHandler.Region)
	mux.HandleFunc("GET /api/palette", starSystemHandler.Palette)

	// Protected endpoints
	mux.Handle("/api/explorers/me", requireExplorer(meHandler))
	mux.Handle("GET /api/bookmarks", requireExplorer(http.HandlerFunc(bookmarkHandler.List)))
	mux.Handle("POST /api/bookmarks", requireExplorer(http.HandlerFunc(bookmarkHandler.Create)))
	mux.Handle("DELETE /api/bookmarks/{id}", requireExplorer(http.HandlerFunc(bookmarkHandler.Delete)))

	// Session endpoints
	mux.HandleFunc("/auth/guest", sessionHandler.Guest)
	mux.HandleFunc("GET /auth/github", sessionHandler.GitHubAuth)
	mux.HandleFunc("GET /auth/github/callback", sessionHandler.GitHubCallback)
	mux.HandleFunc("/auth/logout", sessionHandler.Logout)

	logger.Info("Routes configured successfully",
		"public_endpoints", []string{"/api/server/health", "/api/sectors", "/api/systems", "/api/region", "/api/palette"},
		"protected_endpoints", []string{"/api/explorers/me", "/api/bookmarks"},
		"auth_endpoints", []string{"/auth/guest", "/auth/github", "/auth/logout"},
		"github_configured", d.GitHub.Configured(),
	)

	return mux
}
