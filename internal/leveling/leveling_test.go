package leveling

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXPRequiredThrough(t *testing.T) {
	tests := []struct {
		level    int
		expected int64
	}{
		{-3, 0},
		{0, 0},
		{1, 100},
		{2, 400},
		{3, 900},
		{10, 10000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, XPRequiredThrough(tt.level), "level %d", tt.level)
	}
}

func TestLevelFor_ConcreteValues(t *testing.T) {
	tests := []struct {
		xp       int64
		expected int
	}{
		{-50, 1},
		{0, 1},
		{99, 1},
		{100, 2},
		{399, 2},
		{400, 3},
		{500, 3},
		{899, 3},
		{900, 4},
		{1_000_000, 101},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, LevelFor(tt.xp), "xp %d", tt.xp)
	}
}

// TestLevelFor_InverseProperty checks that every XP amount falls inside the band of its level
func TestLevelFor_InverseProperty(t *testing.T) {
	check := func(xp int64) {
		level := LevelFor(xp)
		assert.LessOrEqual(t, XPRequiredThrough(level-1), xp, "lower bound for xp %d", xp)
		assert.Less(t, xp, XPRequiredThrough(level), "upper bound for xp %d", xp)
	}

	for xp := int64(0); xp <= 20_000; xp++ {
		check(xp)
	}

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 5000; i++ {
		check(r.Int63n(1 << 50))
	}
}

func TestLevelFor_Monotonic(t *testing.T) {
	prev := LevelFor(0)
	for xp := int64(1); xp <= 50_000; xp += 7 {
		level := LevelFor(xp)
		assert.GreaterOrEqual(t, level, prev, "xp %d", xp)
		prev = level
	}
}

func TestProgressWithinLevel(t *testing.T) {
	t.Run("start of level is zero percent", func(t *testing.T) {
		p := ProgressWithinLevel(400, 3)
		assert.Equal(t, int64(0), p.Current)
		assert.Equal(t, int64(500), p.Needed)
		assert.Equal(t, 0.0, p.Percentage)
	})

	t.Run("midway through level", func(t *testing.T) {
		p := ProgressWithinLevel(650, 3)
		assert.Equal(t, int64(250), p.Current)
		assert.InDelta(t, 50.0, p.Percentage, 0.0001)
	})

	t.Run("level one starts at zero xp", func(t *testing.T) {
		p := ProgressWithinLevel(0, 1)
		assert.Equal(t, int64(100), p.Needed)
		assert.Equal(t, 0.0, p.Percentage)
	})

	t.Run("stale level clamps to 100", func(t *testing.T) {
		p := ProgressWithinLevel(5000, 2)
		assert.Equal(t, 100.0, p.Percentage)
	})

	t.Run("xp below level floor clamps to 0", func(t *testing.T) {
		p := ProgressWithinLevel(10, 5)
		assert.Equal(t, 0.0, p.Percentage)
	})

	t.Run("level zero is treated as level one", func(t *testing.T) {
		p := ProgressWithinLevel(50, 0)
		assert.Greater(t, p.Needed, int64(0))
		assert.InDelta(t, 50.0, p.Percentage, 0.0001)
	})

	t.Run("percentage always within bounds", func(t *testing.T) {
		for xp := int64(0); xp < 5000; xp += 13 {
			for level := 0; level < 10; level++ {
				p := ProgressWithinLevel(xp, level)
				assert.GreaterOrEqual(t, p.Percentage, 0.0)
				assert.LessOrEqual(t, p.Percentage, 100.0)
				assert.Greater(t, p.Needed, int64(0))
			}
		}
	})
}
