package leveling

import (
	"math"

	"github.com/osse101/QuestBoard_Go/internal/domain"
)

// XPBase scales the quadratic level curve: reaching level N takes XPBase * N² total XP
const XPBase int64 = 100

// MinLevel is the level of a player with no experience
const MinLevel = 1

// XPRequiredThrough returns the total XP needed to have reached the given level.
// Levels at or below zero need no XP.
func XPRequiredThrough(level int) int64 {
	if level <= 0 {
		return 0
	}
	l := int64(level)
	return XPBase * l * l
}

// LevelFor returns the level for a total XP amount: floor(sqrt(totalXP / XPBase)) + 1.
// Negative XP is treated as zero, so the result is never below MinLevel.
func LevelFor(totalXP int64) int {
	if totalXP <= 0 {
		return MinLevel
	}
	return int(isqrt(totalXP/XPBase)) + 1
}

// ProgressWithinLevel reports how far totalXP is into the given level.
// Percentage is clamped to [0, 100]; levels below MinLevel are treated as MinLevel.
func ProgressWithinLevel(totalXP int64, level int) domain.XPProgress {
	if level < MinLevel {
		level = MinLevel
	}

	floor := XPRequiredThrough(level - 1)
	needed := XPRequiredThrough(level) - floor
	current := totalXP - floor

	pct := float64(current) / float64(needed) * 100
	pct = math.Max(0, math.Min(100, pct))

	return domain.XPProgress{
		Current:    current,
		Needed:     needed,
		Percentage: pct,
	}
}

// isqrt returns floor(sqrt(n)) for n >= 0 without float rounding errors at perfect squares
func isqrt(n int64) int64 {
	if n < 2 {
		return n
	}
	r := int64(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
