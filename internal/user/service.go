package user

import (
	"context"

	"github.com/osse101/QuestBoard_Go/internal/activity"
	"github.com/osse101/QuestBoard_Go/internal/auth"
	"github.com/osse101/QuestBoard_Go/internal/domain"
	"github.com/osse101/QuestBoard_Go/internal/leveling"
	"github.com/osse101/QuestBoard_Go/internal/logger"
	"github.com/osse101/QuestBoard_Go/internal/repository"
)

// Service defines the user-facing profile operations
type Service interface {
	// Dashboard returns the user's stats, recent activity and other players
	Dashboard(ctx context.Context, userID string) (*domain.Dashboard, error)

	// RecordSeen marks the caller online and registers them on their first visit
	RecordSeen(ctx context.Context, id auth.Identity) error
}

type service struct {
	repo     repository.User
	activity activity.Service
	presence *Presence
}

// NewService creates a new user service
func NewService(repo repository.User, activityService activity.Service, presence *Presence) Service {
	return &service{
		repo:     repo,
		activity: activityService,
		presence: presence,
	}
}

func (s *service) Dashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	log := logger.FromContext(ctx)

	u, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	dashboard := &domain.Dashboard{
		User:     *u,
		Progress: leveling.ProgressWithinLevel(u.Experience, u.Level),
	}

	// The feed is decorative, a failure here must not hide the stats
	recent, err := s.activity.Recent(ctx, userID, DashboardActivityLimit)
	if err != nil {
		log.Warn(LogMsgActivityFailed, "user_id", userID, "error", err)
	}
	dashboard.RecentActivities = recent

	others, err := s.repo.ListOtherUsers(ctx, userID, DashboardPlayerLimit)
	if err != nil {
		return nil, err
	}
	dashboard.Players = make([]domain.PlayerSummary, 0, len(others))
	for _, o := range others {
		online, err := s.presence.IsOnline(ctx, o.ID)
		if err != nil {
			log.Debug(LogMsgPresenceLookup, "user_id", o.ID, "error", err)
		}
		dashboard.Players = append(dashboard.Players, domain.PlayerSummary{
			ID:     o.ID,
			Name:   o.Name,
			Level:  o.Level,
			Online: online,
		})
	}

	return dashboard, nil
}

func (s *service) RecordSeen(ctx context.Context, id auth.Identity) error {
	log := logger.FromContext(ctx)

	online, err := s.presence.IsOnline(ctx, id.UserID)
	if err != nil {
		log.Warn(LogMsgPresenceFailed, "user_id", id.UserID, "error", err)
	}
	if online {
		s.markOnline(ctx, id.UserID)
		return nil
	}

	// First request in a presence window: make sure the user row exists.
	// The user is only marked online once the row is known to be there.
	if _, err := s.repo.UpsertUser(ctx, id.UserID, DisplayName(id)); err != nil {
		return err
	}
	log.Debug(LogMsgUserRegistered, "user_id", id.UserID)

	s.markOnline(ctx, id.UserID)
	return nil
}

func (s *service) markOnline(ctx context.Context, userID string) {
	if err := s.presence.MarkOnline(ctx, userID); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPresenceFailed, "user_id", userID, "error", err)
	}
}

// DisplayName returns the identity's name or a generated one
func DisplayName(id auth.Identity) string {
	if id.Name != "" {
		return id.Name
	}
	short := id.UserID
	if len(short) > 8 {
		short = short[:8]
	}
	return DefaultNamePrefix + short
}
