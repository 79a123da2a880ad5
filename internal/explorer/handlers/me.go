package handlers

import (
	"log/slog"
	"net/http"

	"starfield-server/internal/explorer"
	"starfield-server/internal/middleware"
	"starfield-server/internal/shared/errors"
	"starfield-server/internal/shared/response"
)

type MeHandler struct {
	service *explorer.Service
}

func NewMeHandler(service *explorer.Service) *MeHandler {
	return &MeHandler{service: service}
}

func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "me", "remote_addr", r.RemoteAddr)

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	claims := middleware.ExplorerFromContext(r.Context())
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("authentication required"))
		return
	}

	publicID, err := claims.PublicID()
	if err != nil {
		response.Error(w, r, logger, errors.Unauthorized("invalid token"))
		return
	}

	e, err := h.service.GetByPublicID(r.Context(), publicID)
	if err != nil {
		if errors.IsType(err, errors.ErrorTypeNotFound) {
			err = errors.Unauthorized("explorer no longer exists")
		}
		response.Error(w, r, logger, err)
		return
	}

	logger.Debug("Explorer profile requested", "explorer_id", e.ID)
	response.Success(w, http.StatusOK, e)
}
