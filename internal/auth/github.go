package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"starfield-server/internal/shared/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

const githubUserURL = "https://api.github.com/user"

type GitHubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

func (u *GitHubUser) IDString() string {
	return strconv.FormatInt(u.ID, 10)
}

// DisplayName prefers the profile name and falls back to the login.
func (u *GitHubUser) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Login
}

type GitHubProvider struct {
	config     *oauth2.Config
	userURL    string
	configured bool
}

func NewGitHubProvider(cfg *config.Config) *GitHubProvider {
	logger := slog.With("component", "oauth", "provider", "github")

	oauthConfig := &oauth2.Config{
		ClientID:     cfg.OAuth.GitHub.ClientID,
		ClientSecret: cfg.OAuth.GitHub.ClientSecret,
		RedirectURL:  cfg.OAuth.GitHub.RedirectURL,
		Scopes:       cfg.OAuth.GitHub.Scopes,
		Endpoint:     github.Endpoint,
	}

	configured := cfg.GitHubOAuthConfigured()
	if !configured {
		logger.Warn("GitHub OAuth not configured - missing client credentials")
	} else {
		logger.Info("GitHub OAuth configured", "redirect_url", oauthConfig.RedirectURL)
	}

	return &GitHubProvider{
		config:     oauthConfig,
		userURL:    githubUserURL,
		configured: configured,
	}
}

func (p *GitHubProvider) Configured() bool {
	return p.configured
}

func (p *GitHubProvider) AuthURL(state string) string {
	return p.config.AuthCodeURL(state)
}

func (p *GitHubProvider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return token, nil
}

func (p *GitHubProvider) User(ctx context.Context, token *oauth2.Token) (*GitHubUser, error) {
	client := p.config.Client(ctx, token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build GitHub user request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request user info from GitHub: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	var user GitHubUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode GitHub user info: %w", err)
	}
	if user.ID == 0 {
		return nil, fmt.Errorf("GitHub user info missing user ID")
	}
	return &user, nil
}
