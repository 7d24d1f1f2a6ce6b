package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/QuestBoard_Go/internal/domain"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		status    int
		message   string
		retryable bool
	}{
		{"mission not found", fmt.Errorf("load: %w", domain.ErrMissionNotFound), http.StatusNotFound, "mission not found", false},
		{"item not found", domain.ErrItemNotFound, http.StatusNotFound, "item not found", false},
		{"generic not found", domain.ErrNotFound, http.StatusNotFound, ErrMsgResourceNotFound, false},
		{"unauthorized", domain.ErrUnauthorized, http.StatusForbidden, domain.ErrMsgUnauthorized, false},
		{"bare cooldown sentinel", domain.ErrOnCooldown, http.StatusTooManyRequests, domain.ErrMsgOnCooldown, false},
		{"conflict", domain.ErrConcurrentModification, http.StatusConflict, domain.ErrMsgConcurrentModification, true},
		{"store failure", fmt.Errorf("x: %w", domain.ErrStoreFailure), http.StatusServiceUnavailable, ErrMsgUnavailable, true},
		{"invalid quantity", fmt.Errorf("%w: got 0", domain.ErrInvalidQuantity), http.StatusBadRequest, domain.ErrMsgInvalidQuantity, false},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, domain.ErrMsgInvalidInput, false},
		{"unexpected", errors.New("segfault in the matrix"), http.StatusInternalServerError, ErrMsgGenericServerError, false},
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := mapServiceError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, resp.Error)
			assert.Equal(t, tt.retryable, resp.Retryable)
		})
	}

	t.Run("cooldown carries remaining seconds", func(t *testing.T) {
		err := fmt.Errorf("complete: %w", &domain.OnCooldownError{Remaining: 1500 * time.Millisecond})
		status, resp := mapServiceError(err)
		assert.Equal(t, http.StatusTooManyRequests, status)
		assert.Equal(t, int64(2), resp.RetryAfterSeconds)
		assert.Equal(t, "Mission is on cooldown. Wait 2s", resp.Error)
	})
}
