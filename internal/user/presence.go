package user

import (
	"context"

	"github.com/osse101/QuestBoard_Go/internal/cache"
)

// Presence marks users as online for PresenceTTL after their last request
type Presence struct {
	cache cache.Cache
}

// NewPresence creates a presence tracker on top of a cache
func NewPresence(c cache.Cache) *Presence {
	return &Presence{cache: c}
}

// MarkOnline records a request from the user, keeping them online for PresenceTTL
func (p *Presence) MarkOnline(ctx context.Context, userID string) error {
	return p.cache.Set(ctx, PresenceKeyPrefix+userID, []byte{1}, PresenceTTL)
}

// IsOnline reports whether the user made a request within PresenceTTL
func (p *Presence) IsOnline(ctx context.Context, userID string) (bool, error) {
	return p.cache.Exists(ctx, PresenceKeyPrefix+userID)
}
