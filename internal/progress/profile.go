package progress

import "time"

// DateLayout is the calendar-day format used for streak anchoring.
const DateLayout = "2006-01-02"

// Profile is a user's activity record, decoupled from XP. All counters
// are monotonically non-decreasing; CurrentStreak is the only field that
// can move backwards (a skipped day resets it).
type Profile struct {
	TotalProblemsCompleted int            `json:"totalProblemsCompleted"`
	TotalTimeSpentSeconds  int            `json:"totalTimeSpentSeconds"`
	CurrentStreak          int            `json:"currentStreak"`
	LongestStreak          int            `json:"longestStreak"`
	LastPracticeDate       string         `json:"lastPracticeDate,omitempty"` // YYYY-MM-DD, local day
	ProblemsByTopic        map[string]int `json:"problemsByTopic"`
}

// NewProfile returns the zero-activity profile.
func NewProfile() Profile {
	return Profile{ProblemsByTopic: map[string]int{}}
}

// Day formats t as a local calendar day.
func Day(t time.Time) string {
	return t.Format(DateLayout)
}
