package domain

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgNotFound               = "not found"
	ErrMsgUnauthorized           = "you do not own this item"
	ErrMsgOnCooldown             = "mission is on cooldown"
	ErrMsgConcurrentModification = "mission was completed by a concurrent request, please retry"
	ErrMsgStoreFailure           = "store failure"
	ErrMsgInvalidQuantity        = "quantity must be positive"
	ErrMsgInvalidInput           = "invalid input"

	// ErrMsgTxClosed matches pgx.ErrTxClosed so rollback after commit stays quiet
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNotFound = errors.New(ErrMsgNotFound)

	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrItemNotFound    = fmt.Errorf("item %w", ErrNotFound)
	ErrMissionNotFound = fmt.Errorf("mission %w", ErrNotFound)
	ErrStackNotFound   = fmt.Errorf("inventory stack %w", ErrNotFound)

	ErrUnauthorized           = errors.New(ErrMsgUnauthorized)
	ErrOnCooldown             = errors.New(ErrMsgOnCooldown)
	ErrConcurrentModification = errors.New(ErrMsgConcurrentModification)
	ErrStoreFailure           = errors.New(ErrMsgStoreFailure)
	ErrInvalidQuantity        = errors.New(ErrMsgInvalidQuantity)
	ErrInvalidInput           = errors.New(ErrMsgInvalidInput)
)

// OnCooldownError carries the time left before a mission can be completed again.
// errors.Is(err, ErrOnCooldown) matches it.
type OnCooldownError struct {
	MissionID string
	Remaining time.Duration
}

// RemainingSeconds rounds the remaining cooldown up to whole seconds
func (e OnCooldownError) RemainingSeconds() int64 {
	if e.Remaining <= 0 {
		return 0
	}
	return int64(math.Ceil(e.Remaining.Seconds()))
}

func (e OnCooldownError) Error() string {
	return fmt.Sprintf("Mission is on cooldown. Wait %ds", e.RemainingSeconds())
}

func (e OnCooldownError) Is(target error) bool {
	return target == ErrOnCooldown
}

// IsRetryable reports whether the caller may retry the operation that produced err.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConcurrentModification) || errors.Is(err, ErrStoreFailure)
}
