package league

import "time"

// ProcessWeekEnd closes the profile's current competitive week and opens
// the week containing now. The final rank is injected by the caller (the
// engine has no leaderboard of its own; today's product always passes
// rank 1). Pure: no clock reads outside the now parameter.
//
// The league moves at most one ladder position per rollover, the closed
// week is appended to the bounded history, and WeeklyXP restarts at zero.
func ProcessWeekEnd(p Profile, rank int, now time.Time) Profile {
	current, ok := ByID(p.CurrentLeague)
	if !ok {
		current = Ladder[0]
	}

	outcome := ClassifyRank(current, rank)

	newLeague := current.ID
	switch outcome {
	case OutcomePromote:
		if next, ok := Next(current.ID); ok {
			newLeague = next
		}
	case OutcomeDemote:
		if prev, ok := Previous(current.ID); ok {
			newLeague = prev
		}
	}

	history := append(append([]HistoryEntry(nil), p.History...), HistoryEntry{
		League:    current.ID,
		WeekStart: p.WeekStart,
		FinalRank: rank,
		Outcome:   outcome,
	})
	if len(history) > historyCap {
		history = history[len(history)-historyCap:]
	}

	return Profile{
		CurrentLeague: newLeague,
		WeeklyXP:      0,
		WeekStart:     WeekStart(now),
		History:       history,
	}
}

// AddWeeklyXP credits amount to the current week. Callers must settle a
// pending week boundary (BoundaryDue + ProcessWeekEnd) first so XP is
// never credited to a week that should already have closed.
func AddWeeklyXP(p Profile, amount int) Profile {
	if amount < 0 {
		return p
	}
	p.WeeklyXP += amount
	return p
}
