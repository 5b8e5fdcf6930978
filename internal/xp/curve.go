package xp

import "math"

// Curve constants: requiredXP(level) = floor(curveBase * level^curveExponent).
const (
	curveBase     = 100
	curveExponent = 1.5
)

// RequiredXP returns the cumulative XP needed to reach level.
// Level 1 (and below) costs nothing.
func RequiredXP(level int) int {
	if level <= 1 {
		return 0
	}
	return int(math.Floor(curveBase * math.Pow(float64(level), curveExponent)))
}

// LevelFromXP returns the level reached with totalXP. Inputs at or below
// zero map to level 1. Exact left-inverse of RequiredXP at level
// boundaries: LevelFromXP(RequiredXP(L)) == L for all L >= 1.
func LevelFromXP(totalXP int) int {
	if totalXP <= 0 {
		return 1
	}
	level := int(math.Floor(math.Pow(float64(totalXP)/curveBase, 1/curveExponent)))
	if level < 1 {
		level = 1
	}
	// The float estimate can land one off at exact thresholds
	// (RequiredXP floors its result). Settle against the integer curve.
	for RequiredXP(level+1) <= totalXP {
		level++
	}
	for level > 1 && RequiredXP(level) > totalXP {
		level--
	}
	return level
}

// LevelProgress returns the fraction [0,1] of the way from the current
// level's threshold to the next.
func LevelProgress(totalXP int) float64 {
	if totalXP < 0 {
		totalXP = 0
	}
	level := LevelFromXP(totalXP)
	current := RequiredXP(level)
	next := RequiredXP(level + 1)
	if next <= current {
		return 0
	}
	p := float64(totalXP-current) / float64(next-current)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// XPToNextLevel returns the XP still needed to reach the next level,
// floored at zero.
func XPToNextLevel(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	next := RequiredXP(LevelFromXP(totalXP) + 1)
	if remaining := next - totalXP; remaining > 0 {
		return remaining
	}
	return 0
}
