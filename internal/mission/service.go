package mission

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/QuestBoard_Go/internal/domain"
	"github.com/osse101/QuestBoard_Go/internal/logger"
	"github.com/osse101/QuestBoard_Go/internal/metrics"
	"github.com/osse101/QuestBoard_Go/internal/repository"
)

// Service defines the mission operations
type Service interface {
	// CompleteMission applies every effect of completing a mission in one transaction,
	// or none of them. Losing a concurrent race returns domain.ErrConcurrentModification
	// and the caller may retry.
	CompleteMission(ctx context.Context, userID, missionID string) (*domain.CompletionResult, error)

	// ListMissions resolves every mission against the user's completion records
	ListMissions(ctx context.Context, userID string) ([]domain.MissionView, error)

	// RefreshCatalog reloads the cached mission snapshot
	RefreshCatalog(ctx context.Context) error
}

type service struct {
	repo    repository.Mission
	catalog *Catalog
	clock   clockwork.Clock
}

// NewService creates a new mission service
func NewService(repo repository.Mission, catalog *Catalog, clock clockwork.Clock) Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &service{
		repo:    repo,
		catalog: catalog,
		clock:   clock,
	}
}

func (s *service) CompleteMission(ctx context.Context, userID, missionID string) (*domain.CompletionResult, error) {
	log := logger.FromContext(ctx)

	result, err := s.completeMission(ctx, userID, missionID)
	if err != nil {
		metrics.MissionCompletionFailures.WithLabelValues(failureReason(err)).Inc()

		var cooldown *domain.OnCooldownError
		switch {
		case errors.As(err, &cooldown):
			log.Info(LogMsgMissionOnCooldown, "user_id", userID, "mission_id", missionID,
				"remaining_seconds", cooldown.RemainingSeconds())
		case errors.Is(err, domain.ErrConcurrentModification):
			log.Warn(LogMsgCompletionConflict, "user_id", userID, "mission_id", missionID)
		default:
			log.Warn(LogMsgCompletionFailed, "user_id", userID, "mission_id", missionID, "error", err)
		}
		return nil, err
	}

	metrics.MissionsCompleted.Inc()
	metrics.XPAwarded.Add(float64(result.XPAwarded))
	metrics.MoneyAwarded.Add(float64(result.MoneyAwarded))
	if result.LeveledUp {
		metrics.LevelUps.Inc()
	}
	for _, item := range result.Items {
		metrics.ItemsGranted.WithLabelValues(metrics.SourceMission).Add(float64(item.Quantity))
	}

	log.Info(LogMsgMissionCompleted, "user_id", userID, "mission_id", missionID,
		"xp", result.XPAwarded, "money", result.MoneyAwarded,
		"level", result.NewLevel, "leveled_up", result.LeveledUp, "items", len(result.Items))
	return result, nil
}

func (s *service) completeMission(ctx context.Context, userID, missionID string) (*domain.CompletionResult, error) {
	// One clock reading for the whole transaction
	now := s.clock.Now()

	tx, err := s.repo.BeginMissionTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	m, err := tx.GetMission(ctx, missionID)
	if err != nil {
		return nil, err
	}

	// Locking the user first serializes every completion by this user
	user, err := tx.GetUserForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	state, err := tx.GetMissionState(ctx, userID, missionID)
	if err != nil {
		return nil, err
	}
	if remaining := Remaining(*m, state, now); remaining > 0 {
		return nil, &domain.OnCooldownError{MissionID: missionID, Remaining: remaining}
	}

	c := completion{mission: *m, state: state, user: *user, now: now}
	for _, line := range foldRewards(m.Rewards) {
		item, err := tx.GetItem(ctx, line.ItemID)
		if err != nil {
			return nil, err
		}
		stacks, err := tx.GetStacksForUpdate(ctx, userID, line.ItemID)
		if err != nil {
			return nil, err
		}
		c.grants = append(c.grants, grant{item: *item, stacks: stacks, quantity: line.Quantity})
	}

	cs, result, err := c.plan()
	if err != nil {
		return nil, err
	}

	if err := tx.Apply(ctx, cs); err != nil {
		return nil, fmt.Errorf(ErrMsgApplyFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitFailed, err)
	}
	return result, nil
}

func (s *service) ListMissions(ctx context.Context, userID string) ([]domain.MissionView, error) {
	missions, err := s.catalog.Missions(ctx)
	if err != nil {
		return nil, err
	}

	states, err := s.repo.GetMissionStates(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadStatesFailed, err)
	}
	byMission := make(map[string]*domain.UserMissionState, len(states))
	for i := range states {
		byMission[states[i].MissionID] = &states[i]
	}

	now := s.clock.Now()
	views := make([]domain.MissionView, 0, len(missions))
	for _, m := range missions {
		views = append(views, BuildView(m, byMission[m.ID], now))
	}
	return views, nil
}

func (s *service) RefreshCatalog(ctx context.Context) error {
	return s.catalog.Refresh(ctx)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return metrics.ReasonNotFound
	case errors.Is(err, domain.ErrOnCooldown):
		return metrics.ReasonCooldown
	case errors.Is(err, domain.ErrConcurrentModification):
		return metrics.ReasonConflict
	case errors.Is(err, domain.ErrStoreFailure):
		return metrics.ReasonStoreFailure
	default:
		return metrics.ReasonOther
	}
}
