package reward

// Arcade (speed drill) scoring: flat XP per correct answer plus a single
// streak bonus per award call.
const (
	xpPerCorrectAnswer = 10

	arcadeStreakBonusBig   = 75 // answer streak >= 10
	arcadeStreakBonusSmall = 25 // answer streak >= 5
)

// ArithmeticReward computes the XP for one arcade round.
func ArithmeticReward(correctAnswers, streak int) Reward {
	base := correctAnswers * xpPerCorrectAnswer

	bonus := 0
	switch {
	case streak >= 10:
		bonus = arcadeStreakBonusBig
	case streak >= 5:
		bonus = arcadeStreakBonusSmall
	}

	return Reward{
		Total:     base + bonus,
		Breakdown: Breakdown{Base: base, Streak: bonus},
	}
}

// Multiplayer game XP: winner takes the full award, loser keeps a
// participation award.
const (
	multiplayerWinXP           = 100
	multiplayerParticipationXP = 25
)

// MultiplayerReward returns the XP for finishing a multiplayer game.
func MultiplayerReward(won bool) int {
	if won {
		return multiplayerWinXP
	}
	return multiplayerParticipationXP
}
