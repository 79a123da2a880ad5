package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"starfield-server/internal/auth"
	"starfield-server/internal/explorer"
	"starfield-server/internal/shared/cookies"
	"starfield-server/internal/shared/errors"
	"starfield-server/internal/shared/response"
)

type SessionHandler struct {
	explorers   *explorer.Service
	issuer      *auth.TokenIssuer
	github      *auth.GitHubProvider
	states      *auth.StateManager
	frontendURL string
}

func NewSessionHandler(explorers *explorer.Service, issuer *auth.TokenIssuer, github *auth.GitHubProvider, states *auth.StateManager, frontendURL string) *SessionHandler {
	return &SessionHandler{
		explorers:   explorers,
		issuer:      issuer,
		github:      github,
		states:      states,
		frontendURL: frontendURL,
	}
}

type guestRequest struct {
	DisplayName string `json:"display_name"`
}

type sessionResponse struct {
	Explorer *explorer.Explorer `json:"explorer"`
	Guest    bool               `json:"guest"`
}

// Guest registers an explorer without a sign-in provider and starts a
// session for it.
func (h *SessionHandler) Guest(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "guest_session", "remote_addr", r.RemoteAddr)

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	var req guestRequest
	r.Body = http.MaxBytesReader(w, r.Body, 1<<12)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid JSON in request body", err))
		return
	}

	e, err := h.explorers.CreateGuest(r.Context(), req.DisplayName)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if err := h.startSession(w, e); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	logger.Info("Guest session started", "explorer_id", e.ID)
	response.Success(w, http.StatusCreated, sessionResponse{Explorer: e, Guest: true})
}

func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "logout", "remote_addr", r.RemoteAddr)

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	cookies.ClearSessionCookie(w)
	logger.Debug("Session cleared")
	w.WriteHeader(http.StatusNoContent)
}

// GitHubAuth redirects to GitHub with a fresh state token.
func (h *SessionHandler) GitHubAuth(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "github_oauth_init")

	if !h.github.Configured() {
		response.Error(w, r, logger, errors.External("GitHub OAuth is not configured"))
		return
	}

	state, err := h.states.Generate("github")
	if err != nil {
		response.Error(w, r, logger, errors.WrapInternal("failed to initialize OAuth flow", err))
		return
	}

	http.Redirect(w, r, h.github.AuthURL(state), http.StatusTemporaryRedirect)
}

func (h *SessionHandler) GitHubCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	logger := slog.With(
		"handler", "github_oauth_callback",
		"ip", r.RemoteAddr,
		"has_code", query.Get("code") != "",
	)

	if denied := query.Get("error"); denied != "" {
		logger.Warn("GitHub authorization denied", "oauth_error", denied)
		h.redirectWithError(w, r, "oauth_denied", "Authorization was denied")
		return
	}

	if err := h.states.Validate(query.Get("state"), "github"); err != nil {
		logger.Warn("OAuth state validation failed", "error", err)
		h.redirectWithError(w, r, "oauth_error", "Invalid request state")
		return
	}

	code := query.Get("code")
	if code == "" {
		h.redirectWithError(w, r, "oauth_error", "Missing authorization code")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	token, err := h.github.Exchange(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange GitHub authorization code", "error", err)
		h.redirectWithError(w, r, "oauth_error", "Failed to exchange authorization code")
		return
	}

	user, err := h.github.User(ctx, token)
	if err != nil {
		logger.Error("Failed to get user info from GitHub", "error", err)
		h.redirectWithError(w, r, "oauth_error", "Failed to retrieve user information")
		return
	}

	var avatarURL *string
	if user.AvatarURL != "" {
		avatarURL = &user.AvatarURL
	}

	e, err := h.explorers.FindOrCreateByGitHub(ctx, user.IDString(), user.DisplayName(), avatarURL)
	if err != nil {
		logger.Error("Failed to resolve explorer for GitHub user", "error", err, "github_user_id", user.ID)
		h.redirectWithError(w, r, "database_error", "Failed to create explorer account")
		return
	}

	if err := h.startSession(w, e); err != nil {
		logger.Error("Failed to start session", "error", err, "explorer_id", e.ID)
		h.redirectWithError(w, r, "auth_error", "Failed to create session")
		return
	}

	logger.Info("GitHub sign-in successful", "explorer_id", e.ID)
	http.Redirect(w, r, h.frontendURL+"/auth/callback?success=true", http.StatusTemporaryRedirect)
}

func (h *SessionHandler) startSession(w http.ResponseWriter, e *explorer.Explorer) error {
	token, err := h.issuer.Issue(e)
	if err != nil {
		return errors.WrapInternal("failed to create session token", err)
	}
	cookies.SetSessionCookie(w, token)
	return nil
}

func (h *SessionHandler) redirectWithError(w http.ResponseWriter, r *http.Request, errorType, message string) {
	target := fmt.Sprintf("%s/auth/error?error=%s&message=%s",
		h.frontendURL, url.QueryEscape(errorType), url.QueryEscape(message))
	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}
