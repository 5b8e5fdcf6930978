package reward

import "math"

// DifficultyMultiplier returns the base-XP multiplier for a difficulty
// tier. Unknown tiers fall back to easy.
func DifficultyMultiplier(d Difficulty) float64 {
	switch d {
	case DifficultyMedium:
		return 1.5
	case DifficultyHard:
		return 2.0
	default:
		return 1.0
	}
}

// AccuracyMultiplier returns the multiplier for an accuracy percentage.
// Highest breakpoint met wins. Below 70% the multiplier drops under 1.0,
// which makes the accuracy component of the breakdown a penalty.
func AccuracyMultiplier(accuracy float64) float64 {
	switch {
	case accuracy >= 100:
		return 2.0
	case accuracy >= 90:
		return 1.5
	case accuracy >= 80:
		return 1.2
	case accuracy >= 70:
		return 1.0
	case accuracy >= 60:
		return 0.8
	default:
		return 0.5
	}
}

// StreakMultiplier returns the multiplier for a daily practice streak.
func StreakMultiplier(streakDays int) float64 {
	switch {
	case streakDays >= 100:
		return 2.0
	case streakDays >= 60:
		return 1.75
	case streakDays >= 30:
		return 1.5
	case streakDays >= 14:
		return 1.4
	case streakDays >= 7:
		return 1.25
	case streakDays >= 3:
		return 1.1
	default:
		return 1.0
	}
}

const (
	xpPerStep       = 5
	firstTopicBonus = 50
)

// ProblemReward computes the XP for a completed problem with a
// per-component breakdown. Pure: same input, same output.
func ProblemReward(in ProblemInput) Reward {
	baseXP := in.BaseXP
	if baseXP == 0 {
		baseXP = DefaultBaseXP
	}

	base := int(math.Floor(float64(baseXP) * DifficultyMultiplier(in.Difficulty)))

	// Accuracy and streak bonuses are relative to base, not independent
	// rewards. Accuracy below 70% yields a negative component.
	accuracyBonus := int(math.Floor(float64(base) * (AccuracyMultiplier(in.Accuracy) - 1)))
	streakBonus := int(math.Floor(float64(base) * (StreakMultiplier(in.StreakDays) - 1)))

	stepBonus := in.StepsCompleted * xpPerStep

	first := 0
	if in.IsFirstInTopic {
		first = firstTopicBonus
	}

	b := Breakdown{
		Base:       base,
		Accuracy:   accuracyBonus,
		Streak:     streakBonus,
		Steps:      stepBonus,
		FirstTopic: first,
	}
	return Reward{
		Total:     base + accuracyBonus + streakBonus + stepBonus + first,
		Breakdown: b,
	}
}

// ForMode computes the problem reward and applies the completion-mode
// adjustment. Guided completions earn x0.75, independent x1.25. A reveal
// forfeits almost everything: accuracy and streak inputs are zeroed and
// the result is scaled to 10%, floored, minimum 1.
func ForMode(in ProblemInput, mode Mode) Reward {
	if mode == ModeReveal {
		in.Accuracy = 0
		in.StreakDays = 0
		r := ProblemReward(in)
		r.Total = int(math.Floor(float64(r.Total) * 0.10))
		if r.Total < 1 {
			r.Total = 1
		}
		return r
	}

	r := ProblemReward(in)
	switch mode {
	case ModeGuided:
		r.Total = int(math.Floor(float64(r.Total) * 0.75))
	case ModeIndependent:
		r.Total = int(math.Floor(float64(r.Total) * 1.25))
	}
	return r
}
