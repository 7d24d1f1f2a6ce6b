package repository

import (
	"context"

	"github.com/osse101/QuestBoard_Go/internal/domain"
)

// User defines the interface for user data access
type User interface {
	GetUser(ctx context.Context, userID string) (*domain.User, error)

	// ListOtherUsers returns up to limit users excluding the given one, highest level first
	ListOtherUsers(ctx context.Context, excludeUserID string, limit int) ([]domain.User, error)

	// UpsertUser creates the user on first sight and refreshes the display name otherwise
	UpsertUser(ctx context.Context, userID, name string) (*domain.User, error)
}
