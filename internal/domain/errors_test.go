package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrors_WrapNotFound(t *testing.T) {
	for _, err := range []error{ErrUserNotFound, ErrItemNotFound, ErrMissionNotFound, ErrStackNotFound} {
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), ErrMsgNotFound)
	}
	assert.Equal(t, "mission not found", ErrMissionNotFound.Error())
}

func TestOnCooldownError(t *testing.T) {
	t.Run("rounds remaining seconds up", func(t *testing.T) {
		err := OnCooldownError{MissionID: "m1", Remaining: 1500 * time.Millisecond}
		assert.Equal(t, int64(2), err.RemainingSeconds())
		assert.Equal(t, "Mission is on cooldown. Wait 2s", err.Error())
	})

	t.Run("whole seconds stay exact", func(t *testing.T) {
		err := OnCooldownError{Remaining: time.Second}
		assert.Equal(t, int64(1), err.RemainingSeconds())
	})

	t.Run("non-positive remaining is zero", func(t *testing.T) {
		assert.Equal(t, int64(0), OnCooldownError{Remaining: -time.Second}.RemainingSeconds())
	})

	t.Run("matches sentinel when wrapped", func(t *testing.T) {
		wrapped := fmt.Errorf("complete mission: %w", OnCooldownError{Remaining: 30 * time.Second})
		assert.ErrorIs(t, wrapped, ErrOnCooldown)

		var cdErr OnCooldownError
		assert.True(t, errors.As(wrapped, &cdErr))
		assert.Equal(t, int64(30), cdErr.RemainingSeconds())
	})
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(ErrConcurrentModification))
	assert.True(t, IsRetryable(fmt.Errorf("apply: %w: %w", ErrStoreFailure, errors.New("timeout"))))
	assert.False(t, IsRetryable(ErrMissionNotFound))
	assert.False(t, IsRetryable(OnCooldownError{Remaining: time.Second}))
	assert.False(t, IsRetryable(nil))
}
