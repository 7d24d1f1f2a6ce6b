package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/osse101/QuestBoard_Go/internal/activity"
	"github.com/osse101/QuestBoard_Go/internal/auth"
	"github.com/osse101/QuestBoard_Go/internal/cache"
	"github.com/osse101/QuestBoard_Go/internal/config"
	"github.com/osse101/QuestBoard_Go/internal/inventory"
	"github.com/osse101/QuestBoard_Go/internal/mission"
	"github.com/osse101/QuestBoard_Go/internal/user"
)

// Services holds the application services built on top of the repositories
type Services struct {
	Mission   mission.Service
	Inventory inventory.Service
	User      user.Service
	Activity  activity.Service
	Tokens    *auth.Manager
}

// InitializeServices wires every service. The cache backs the mission catalog and presence.
func InitializeServices(cfg *config.Config, repos *Repositories, c cache.Cache, clock clockwork.Clock) (*Services, error) {
	secret := cfg.SessionSecret
	if secret == "" {
		// Only reachable in dev; Validate rejects a missing secret elsewhere
		slog.Warn(LogMsgGeneratedDevSecret)
		secret = uuid.NewString() + uuid.NewString()
	}

	tokens, err := auth.NewManager(secret, cfg.SessionTTL, clock)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateTokens, err)
	}

	activityService := activity.NewService(repos.Activity)
	catalog := mission.NewCatalog(repos.Mission, c, cfg.CatalogTTL)

	return &Services{
		Mission:   mission.NewService(repos.Mission, catalog, clock),
		Inventory: inventory.NewService(repos.Inventory),
		User:      user.NewService(repos.User, activityService, user.NewPresence(c)),
		Activity:  activityService,
		Tokens:    tokens,
	}, nil
}
