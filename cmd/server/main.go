package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"starfield-server/internal/auth"
	"starfield-server/internal/bookmark"
	"starfield-server/internal/explorer"
	"starfield-server/internal/middleware"
	"starfield-server/internal/server"
	serverHandlers "starfield-server/internal/server/handlers"
	"starfield-server/internal/shared/config"
	"starfield-server/internal/shared/database"
	"starfield-server/internal/shared/logger"
	"starfield-server/internal/shared/redis"
	"starfield-server/internal/starsystem"
)

func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize config: %v\n", err)
		os.Exit(1)
	}

	logger.Init()

	if err := run(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.GlobalConfig
	log := slog.With("component", "main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.RunMigrations(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	redisClient, err := redis.Connect(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer redisClient.Close()

	cache, err := newCache(cfg, redisClient)
	if err != nil {
		return err
	}

	generator := starsystem.NewGenerator(starsystem.DefaultRecipe)
	starSystems := starsystem.NewService(generator, cache, cfg.Generator.MaxRegionArea, slog.With("component", "starsystem_service"))

	explorers := explorer.NewService(
		explorer.NewRepository(db, slog.Default()),
		slog.Default(),
	)
	bookmarks := bookmark.NewService(
		bookmark.NewRepository(db, slog.Default()),
		starSystems,
		slog.Default(),
	)

	tokens, err := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiration)
	if err != nil {
		return fmt.Errorf("failed to create token issuer: %w", err)
	}
	states := auth.NewStateManager()
	go states.RunCleanup(ctx, 5*time.Minute)

	deps := server.Dependencies{
		StarSystems: starSystems,
		Explorers:   explorers,
		Bookmarks:   bookmarks,
		Tokens:      tokens,
		States:      states,
		GitHub:      auth.NewGitHubProvider(cfg),
		Database:    db,
		CacheName:   cfg.Generator.CacheBackend,
		FrontendURL: cfg.Frontend.URL,
	}
	if redisClient != nil {
		deps.Redis = serverHandlers.PingFunc(redisClient.Ping)
	}

	mux := server.NewRoutes(deps).Setup()

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)
	go rateLimiter.RunCleanup(ctx, time.Minute)

	cors := middleware.NewCORS(cfg.Frontend)
	handler := middleware.RequestID(cors.Middleware(rateLimiter.Middleware(mux)))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starfield server starting",
			"port", cfg.Server.Port,
			"environment", cfg.Server.Environment,
			"cache", cfg.Generator.CacheBackend,
		)
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}

func newCache(cfg *config.Config, redisClient *redis.Client) (starsystem.Cache, error) {
	cacheLogger := slog.With("component", "starsystem_cache")

	switch cfg.Generator.CacheBackend {
	case config.CacheBackendNone:
		return nil, nil
	case config.CacheBackendRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("redis cache selected but redis is disabled")
		}
		return starsystem.NewRedisCache(redisClient.Client, cfg.Generator.CacheTTL, cfg.Generator.RecipeVersion, cacheLogger), nil
	default:
		cache, err := starsystem.NewMemoryCache(cfg.Generator.CacheSize, cacheLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to create star system cache: %w", err)
		}
		return cache, nil
	}
}
