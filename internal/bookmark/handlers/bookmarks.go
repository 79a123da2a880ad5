package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"starfield-server/internal/bookmark"
	"starfield-server/internal/middleware"
	"starfield-server/internal/shared/errors"
	"starfield-server/internal/shared/response"
	"starfield-server/internal/starsystem"
)

type BookmarkHandler struct {
	service *bookmark.Service
}

func NewBookmarkHandler(service *bookmark.Service) *BookmarkHandler {
	return &BookmarkHandler{service: service}
}

func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "list_bookmarks")

	claims := middleware.ExplorerFromContext(r.Context())
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("authentication required"))
		return
	}

	bookmarks, err := h.service.List(r.Context(), claims.ExplorerID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	logger.Debug("Bookmarks listed", "explorer_id", claims.ExplorerID, "count", len(bookmarks))
	response.Success(w, http.StatusOK, bookmarks)
}

func (h *BookmarkHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "create_bookmark")

	claims := middleware.ExplorerFromContext(r.Context())
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("authentication required"))
		return
	}

	var req bookmark.CreateRequest
	r.Body = http.MaxBytesReader(w, r.Body, 1<<12)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid JSON in request body", err))
		return
	}

	x, err := starsystem.AxisFromInt64(req.X)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	y, err := starsystem.AxisFromInt64(req.Y)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	b, err := h.service.Create(r.Context(), claims.ExplorerID, starsystem.Coordinate{X: x, Y: y}, req.Label)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, b)
}

func (h *BookmarkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "delete_bookmark")

	claims := middleware.ExplorerFromContext(r.Context())
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("authentication required"))
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid bookmark ID format", err))
		return
	}

	if err := h.service.Delete(r.Context(), claims.ExplorerID, id); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
