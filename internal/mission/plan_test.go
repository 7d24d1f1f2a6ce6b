package mission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/QuestBoard_Go/internal/domain"
)

func TestFoldRewards(t *testing.T) {
	lines := []domain.RewardLine{
		{ItemID: "gem", Quantity: 2, Position: 2},
		{ItemID: "wood", Quantity: 5, Position: 1},
		{ItemID: "gem", Quantity: 3, Position: 3},
	}

	folded := foldRewards(lines)
	require.Len(t, folded, 2)
	assert.Equal(t, "wood", folded[0].ItemID)
	assert.Equal(t, 5, folded[0].Quantity)
	assert.Equal(t, "gem", folded[1].ItemID)
	assert.Equal(t, 5, folded[1].Quantity)

	// Input untouched
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCompletionPlan(t *testing.T) {
	gem := domain.Item{ID: "gem", Name: "Gem", Stackable: true, MaxStack: 10}
	m := domain.Mission{ID: "m1", Title: "Mine", XPReward: 150, MoneyReward: 20, CooldownSeconds: 60}
	user := domain.User{ID: "u1", Experience: 300, Level: 2, Money: 5}

	t.Run("first completion inserts state", func(t *testing.T) {
		c := completion{
			mission: m,
			user:    user,
			now:     baseTime,
			grants: []grant{{
				item:     gem,
				stacks:   []domain.InventoryStack{{ID: "s1", UserID: "u1", ItemID: "gem", Quantity: 8}},
				quantity: 5,
			}},
		}

		cs, result, err := c.plan()
		require.NoError(t, err)

		require.NotNil(t, cs.MissionState)
		assert.True(t, cs.MissionState.Insert)
		assert.Equal(t, int64(1), cs.MissionState.NextVersion())
		assert.Equal(t, baseTime, cs.MissionState.CompletedAt)

		require.NotNil(t, cs.UserStats)
		assert.Equal(t, int64(450), cs.UserStats.Experience)
		assert.Equal(t, 3, cs.UserStats.Level)
		assert.Equal(t, int64(25), cs.UserStats.Money)

		require.Len(t, cs.StackUpdates, 1)
		assert.Equal(t, 10, cs.StackUpdates[0].Quantity)
		require.Len(t, cs.StackCreates, 1)
		assert.Equal(t, 3, cs.StackCreates[0].Quantity)

		require.Len(t, cs.Activities, 1)
		entry := cs.Activities[0]
		assert.Equal(t, domain.ActivityMissionCompleted, entry.Type)
		assert.Equal(t, "Completed mission: Mine", entry.Description)
		assert.Equal(t, "m1", entry.Metadata[domain.MetaKeyMissionID])
		assert.Equal(t, int64(150), entry.Metadata[domain.MetaKeyXPReward])
		assert.Equal(t, int64(20), entry.Metadata[domain.MetaKeyMoneyReward])

		assert.True(t, result.LeveledUp)
		assert.Equal(t, 2, result.PreviousLevel)
		assert.Equal(t, 3, result.NewLevel)
		require.NotNil(t, result.NextAvailableAt)
		assert.Equal(t, baseTime.Add(time.Minute), *result.NextAvailableAt)
		assert.Equal(t, []domain.GrantedItem{{ItemID: "gem", ItemName: "Gem", Quantity: 5}}, result.Items)
	})

	t.Run("repeat completion swaps on version", func(t *testing.T) {
		c := completion{
			mission: m,
			user:    user,
			state:   &domain.UserMissionState{Version: 4, CompletedAt: baseTime.Add(-time.Hour)},
			now:     baseTime,
		}
		cs, _, err := c.plan()
		require.NoError(t, err)
		assert.False(t, cs.MissionState.Insert)
		assert.Equal(t, int64(4), cs.MissionState.ExpectedVersion)
		assert.Equal(t, int64(5), cs.MissionState.NextVersion())
	})

	t.Run("invalid reward quantity fails the whole plan", func(t *testing.T) {
		c := completion{
			mission: m,
			user:    user,
			now:     baseTime,
			grants:  []grant{{item: gem, quantity: 0}},
		}
		cs, result, err := c.plan()
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
		assert.Nil(t, cs)
		assert.Nil(t, result)
	})
}
