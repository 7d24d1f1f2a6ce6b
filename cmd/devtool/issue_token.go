package main

import (
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/QuestBoard_Go/internal/auth"
	"github.com/osse101/QuestBoard_Go/internal/config"
)

// IssueTokenCommand mints a session token signed with SESSION_SECRET, for local testing
type IssueTokenCommand struct{}

func (c *IssueTokenCommand) Name() string {
	return "issue-token"
}

func (c *IssueTokenCommand) Description() string {
	return "Print a session token the server accepts for the given user"
}

func (c *IssueTokenCommand) Usage() string {
	return "<user-id> [display-name]"
}

func (c *IssueTokenCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: user id required", errUsage)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET must be set so the server accepts the token")
	}

	tokens, err := auth.NewManager(cfg.SessionSecret, cfg.SessionTTL, clockwork.NewRealClock())
	if err != nil {
		return err
	}

	id := auth.Identity{UserID: args[0]}
	if len(args) > 1 {
		id.Name = args[1]
	}

	token, err := tokens.IssueToken(id)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
