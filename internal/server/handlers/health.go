package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"starfield-server/internal/shared/response"
)

// Pinger is satisfied by the database and redis handles.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type PingFunc func(ctx context.Context) error

func (f PingFunc) PingContext(ctx context.Context) error {
	return f(ctx)
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
	Redis     string `json:"redis"`
	Cache     string `json:"cache"`
}

type HealthHandler struct {
	db    Pinger
	redis Pinger
	cache string
	now   func() time.Time
}

// NewHealthHandler reports on the given dependencies. A nil redis pinger is
// reported as disabled.
func NewHealthHandler(db, redis Pinger, cacheName string) *HealthHandler {
	return &HealthHandler{db: db, redis: redis, cache: cacheName, now: time.Now}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "health")

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: h.now().Format(time.RFC3339),
		Database:  "disconnected",
		Redis:     "disabled",
		Cache:     h.cache,
	}

	if err := h.db.PingContext(ctx); err == nil {
		resp.Database = "connected"
	} else {
		logger.Warn("Database ping failed", "error", err)
		resp.Status = "degraded"
	}

	if h.redis != nil {
		if err := h.redis.PingContext(ctx); err == nil {
			resp.Redis = "connected"
		} else {
			logger.Warn("Redis ping failed", "error", err)
			resp.Redis = "disconnected"
			resp.Status = "degraded"
		}
	}

	statusCode := http.StatusOK
	if resp.Status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}
	response.Success(w, statusCode, resp)
}
