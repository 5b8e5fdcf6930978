package league

import "time"

// historyCap bounds the audit trail of past weeks.
const historyCap = 10

// HistoryEntry records the outcome of one finished competitive week.
type HistoryEntry struct {
	League    ID        `json:"leagueId"`
	WeekStart time.Time `json:"weekStart"`
	FinalRank int       `json:"finalRank"`
	Outcome   Outcome   `json:"outcome"`
}

// Profile is a user's weekly competitive state.
type Profile struct {
	CurrentLeague ID             `json:"currentLeagueId"`
	WeeklyXP      int            `json:"weeklyXP"`
	WeekStart     time.Time      `json:"weekStartDate"`
	History       []HistoryEntry `json:"history"`
}

// NewProfile returns the starting profile: bottom league, empty week
// anchored at the current week's Monday.
func NewProfile(now time.Time) Profile {
	return Profile{
		CurrentLeague: Bronze,
		WeeklyXP:      0,
		WeekStart:     WeekStart(now),
	}
}
