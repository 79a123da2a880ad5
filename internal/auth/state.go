package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const stateTTL = 10 * time.Minute

// StateManager issues one-time OAuth state tokens.
type StateManager struct {
	states map[string]stateEntry
	mutex  sync.Mutex
	now    func() time.Time
}

type stateEntry struct {
	createdAt time.Time
	provider  string
}

func NewStateManager() *StateManager {
	return &StateManager{
		states: make(map[string]stateEntry),
		now:    time.Now,
	}
}

func (sm *StateManager) Generate(provider string) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate state token: %w", err)
	}
	state := base64.URLEncoding.EncodeToString(b)

	sm.mutex.Lock()
	sm.states[state] = stateEntry{createdAt: sm.now(), provider: provider}
	sm.mutex.Unlock()

	return state, nil
}

// Validate consumes the token; a token is accepted at most once.
func (sm *StateManager) Validate(state, provider string) error {
	if state == "" {
		return fmt.Errorf("state token is required")
	}

	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	entry, exists := sm.states[state]
	if !exists {
		return fmt.Errorf("invalid or expired state token")
	}
	delete(sm.states, state)

	if sm.now().Sub(entry.createdAt) > stateTTL {
		return fmt.Errorf("state token has expired")
	}
	if entry.provider != provider {
		return fmt.Errorf("state token provider mismatch")
	}
	return nil
}

// RunCleanup drops expired tokens every interval until ctx is done.
func (sm *StateManager) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger := slog.With("component", "state_manager", "operation", "cleanup")

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := sm.removeExpired(); removed > 0 {
				logger.Debug("Cleaned up expired state tokens", "expired_count", removed)
			}
		}
	}
}

func (sm *StateManager) removeExpired() int {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	now := sm.now()
	removed := 0
	for state, entry := range sm.states {
		if now.Sub(entry.createdAt) > stateTTL {
			delete(sm.states, state)
			removed++
		}
	}
	return removed
}
