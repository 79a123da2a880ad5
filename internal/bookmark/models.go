package bookmark

import (
	"time"

	"starfield-server/internal/starsystem"
)

// Bookmark remembers a sector for an explorer. Only the coordinate is
// persisted; Star is regenerated whenever the bookmark is read.
type Bookmark struct {
	ID         int                   `json:"id"`
	ExplorerID int                   `json:"-"`
	Coordinate starsystem.Coordinate `json:"coordinate"`
	Label      string                `json:"label"`
	CreatedAt  time.Time             `json:"created_at"`
	Star       *starsystem.Star      `json:"star,omitempty"`
}

type CreateRequest struct {
	X     int64  `json:"x"`
	Y     int64  `json:"y"`
	Label string `json:"label"`
}
