package progress

import "time"

// maxProblemSeconds caps one problem's contribution to total time, so a
// problem left open overnight cannot inflate the stats.
const maxProblemSeconds = 600

// RecordCompletion returns a copy of p with one completed problem folded
// in: counters bumped, time capped per problem, and the daily streak
// advanced against now's calendar day. Pure reducer; now is the only
// clock input.
//
// Streak rules: first completion of a new consecutive day increments the
// streak, later completions the same day leave it unchanged, and a
// skipped calendar day restarts it at 1.
func RecordCompletion(p Profile, topic string, seconds int, now time.Time) Profile {
	out := p
	out.TotalProblemsCompleted++

	if seconds < 0 {
		seconds = 0
	}
	if seconds > maxProblemSeconds {
		seconds = maxProblemSeconds
	}
	out.TotalTimeSpentSeconds += seconds

	out.ProblemsByTopic = make(map[string]int, len(p.ProblemsByTopic)+1)
	for k, v := range p.ProblemsByTopic {
		out.ProblemsByTopic[k] = v
	}
	if topic != "" {
		out.ProblemsByTopic[topic]++
	}

	today := Day(now)
	yesterday := Day(now.AddDate(0, 0, -1))
	switch p.LastPracticeDate {
	case today:
		// Already practiced today; streak unchanged.
	case yesterday:
		out.CurrentStreak = p.CurrentStreak + 1
	default:
		out.CurrentStreak = 1
	}
	out.LastPracticeDate = today

	if out.CurrentStreak > out.LongestStreak {
		out.LongestStreak = out.CurrentStreak
	}
	return out
}
