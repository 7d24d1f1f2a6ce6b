package mission

import (
	"time"

	"github.com/gosimple/slug"

	"github.com/osse101/QuestBoard_Go/internal/domain"
)

// Availability resolves a mission against a user's completion record at now.
// A mission is on cooldown while less than its cooldown has elapsed since the last
// completion; the returned time is when it becomes available again and is nil otherwise.
func Availability(m domain.Mission, state *domain.UserMissionState, now time.Time) (domain.Availability, *time.Time) {
	if Remaining(m, state, now) <= 0 {
		return domain.AvailabilityAvailable, nil
	}
	next := state.CompletedAt.Add(m.Cooldown())
	return domain.AvailabilityCooldown, &next
}

// Remaining returns how long the mission stays on cooldown, or zero when available
func Remaining(m domain.Mission, state *domain.UserMissionState, now time.Time) time.Duration {
	if state == nil || state.CompletedAt.IsZero() {
		return 0
	}
	remaining := m.Cooldown() - now.Sub(state.CompletedAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// BuildView combines a mission with the user's record for display
func BuildView(m domain.Mission, state *domain.UserMissionState, now time.Time) domain.MissionView {
	status, next := Availability(m, state, now)
	view := domain.MissionView{
		Mission:         m,
		Slug:            slug.Make(m.Title),
		Status:          status,
		NextAvailableAt: next,
	}
	if state != nil && !state.CompletedAt.IsZero() {
		completed := state.CompletedAt
		view.CompletedAt = &completed
	}
	return view
}
