package explorer

import (
	"time"

	"github.com/google/uuid"
)

// Explorer is an account that can bookmark sectors. PublicID is the only
// identifier exposed in tokens and responses.
type Explorer struct {
	ID          int       `json:"-"`
	PublicID    uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	GitHubID    *string   `json:"-"`
	AvatarURL   *string   `json:"avatar_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsGuest reports whether the explorer has no linked sign-in provider.
func (e *Explorer) IsGuest() bool {
	return e.GitHubID == nil
}
