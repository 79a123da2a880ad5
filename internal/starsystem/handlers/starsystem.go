package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"starfield-server/internal/shared/errors"
	"starfield-server/internal/shared/response"
	"starfield-server/internal/starsystem"
)

type StarSystemHandler struct {
	service *starsystem.Service
}

func NewStarSystemHandler(service *starsystem.Service) *StarSystemHandler {
	return &StarSystemHandler{service: service}
}

type paletteResponse struct {
	Colors []starsystem.Color `json:"colors"`
}

// Probe reports whether a sector holds a star, with its diameter and color.
func (h *StarSystemHandler) Probe(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "probe_sector")

	c, err := starsystem.ParseCoordinate(r.PathValue("x"), r.PathValue("y"))
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	star, err := h.service.Probe(r.Context(), c)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, star)
}

// Expand returns the full star system of a sector. Empty sectors answer with
// exists=false rather than 404.
func (h *StarSystemHandler) Expand(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "expand_system")

	c, err := starsystem.ParseCoordinate(r.PathValue("x"), r.PathValue("y"))
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	sys, err := h.service.Expand(r.Context(), c)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, sys)
}

func (h *StarSystemHandler) Region(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "scan_region")
	query := r.URL.Query()

	origin, err := starsystem.ParseCoordinate(query.Get("x"), query.Get("y"))
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	width, err := strconv.Atoi(query.Get("width"))
	if err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid width", err))
		return
	}
	height, err := strconv.Atoi(query.Get("height"))
	if err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid height", err))
		return
	}

	region, err := h.service.ScanRegion(r.Context(), origin, width, height)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, region)
}

func (h *StarSystemHandler) Palette(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, paletteResponse{Colors: h.service.Palette()})
}
