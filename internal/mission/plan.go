package mission

import (
	"fmt"
	"sort"
	"time"

	"github.com/osse101/QuestBoard_Go/internal/domain"
	"github.com/osse101/QuestBoard_Go/internal/inventory"
	"github.com/osse101/QuestBoard_Go/internal/leveling"
	"github.com/osse101/QuestBoard_Go/internal/repository"
)

// grant is one folded reward line together with the rows read for it
type grant struct {
	item     domain.Item
	stacks   []domain.InventoryStack
	quantity int
}

// completion holds everything read inside the transaction
type completion struct {
	mission domain.Mission
	state   *domain.UserMissionState
	user    domain.User
	grants  []grant
	now     time.Time
}

// foldRewards orders reward lines by position and merges lines of the same item,
// so one item's stacks are planned once against a single read.
func foldRewards(lines []domain.RewardLine) []domain.RewardLine {
	ordered := make([]domain.RewardLine, len(lines))
	copy(ordered, lines)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})

	index := make(map[string]int, len(ordered))
	folded := make([]domain.RewardLine, 0, len(ordered))
	for _, line := range ordered {
		if i, ok := index[line.ItemID]; ok {
			folded[i].Quantity += line.Quantity
			continue
		}
		index[line.ItemID] = len(folded)
		folded = append(folded, line)
	}
	return folded
}

// plan stages every effect of a completion. It performs no I/O and fails
// without staging anything when a reward cannot be placed.
func (c completion) plan() (*repository.Changeset, *domain.CompletionResult, error) {
	cs := &repository.Changeset{}

	stateChange := &repository.MissionStateChange{
		UserID:      c.user.ID,
		MissionID:   c.mission.ID,
		CompletedAt: c.now,
		Insert:      c.state == nil,
	}
	if c.state != nil {
		stateChange.ExpectedVersion = c.state.Version
	}
	cs.MissionState = stateChange

	experience := c.user.Experience + c.mission.XPReward
	money := c.user.Money + c.mission.MoneyReward
	level := leveling.LevelFor(experience)
	cs.UserStats = &repository.UserStatsChange{
		UserID:     c.user.ID,
		Experience: experience,
		Level:      level,
		Money:      money,
		UpdatedAt:  c.now,
	}

	granted := make([]domain.GrantedItem, 0, len(c.grants))
	rewardMeta := make([]map[string]interface{}, 0, len(c.grants))
	for _, g := range c.grants {
		stackPlan, err := inventory.PlanAdd(c.user.ID, g.item, g.stacks, g.quantity)
		if err != nil {
			return nil, nil, fmt.Errorf("reward %s: %w", g.item.Name, err)
		}
		cs.AddStackPlan(stackPlan)

		granted = append(granted, domain.GrantedItem{
			ItemID:   g.item.ID,
			ItemName: g.item.Name,
			Quantity: g.quantity,
		})
		rewardMeta = append(rewardMeta, map[string]interface{}{
			domain.MetaKeyItemID:   g.item.ID,
			domain.MetaKeyQuantity: g.quantity,
		})
	}

	cs.AddActivity(domain.ActivityLogEntry{
		UserID:      c.user.ID,
		Type:        domain.ActivityMissionCompleted,
		Description: fmt.Sprintf(ActivityDescriptionFormat, c.mission.Title),
		Metadata: map[string]interface{}{
			domain.MetaKeyMissionID:   c.mission.ID,
			domain.MetaKeyXPReward:    c.mission.XPReward,
			domain.MetaKeyMoneyReward: c.mission.MoneyReward,
			domain.MetaKeyRewards:     rewardMeta,
		},
		CreatedAt: c.now,
	})

	result := &domain.CompletionResult{
		MissionID:     c.mission.ID,
		MissionTitle:  c.mission.Title,
		XPAwarded:     c.mission.XPReward,
		MoneyAwarded:  c.mission.MoneyReward,
		PreviousLevel: c.user.Level,
		NewLevel:      level,
		LeveledUp:     level > c.user.Level,
		Experience:    experience,
		Money:         money,
		CompletedAt:   c.now,
		Items:         granted,
	}
	if cooldown := c.mission.Cooldown(); cooldown > 0 {
		next := c.now.Add(cooldown)
		result.NextAvailableAt = &next
	}

	return cs, result, nil
}
