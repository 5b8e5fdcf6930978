package progress

// Merge combines two independently-evolved activity snapshots into one
// that is at least as advanced as either input. Monotonic counters take
// the max, the per-topic map takes the per-key max over the key union,
// and the streak pair (CurrentStreak, LastPracticeDate) is taken whole
// from the side with the more recent practice day — streak state is only
// meaningful relative to its own anchor. Symmetric and idempotent.
func Merge(local, remote Profile) Profile {
	out := Profile{
		TotalProblemsCompleted: max(local.TotalProblemsCompleted, remote.TotalProblemsCompleted),
		TotalTimeSpentSeconds:  max(local.TotalTimeSpentSeconds, remote.TotalTimeSpentSeconds),
		LongestStreak:          max(local.LongestStreak, remote.LongestStreak),
		ProblemsByTopic:        mergeTopicCounts(local.ProblemsByTopic, remote.ProblemsByTopic),
	}

	// ISO dates compare lexicographically; an unset date loses to any
	// set one. Equal anchors take the larger streak, keeping the merge
	// symmetric.
	switch {
	case local.LastPracticeDate > remote.LastPracticeDate:
		out.CurrentStreak = local.CurrentStreak
		out.LastPracticeDate = local.LastPracticeDate
	case remote.LastPracticeDate > local.LastPracticeDate:
		out.CurrentStreak = remote.CurrentStreak
		out.LastPracticeDate = remote.LastPracticeDate
	default:
		out.CurrentStreak = max(local.CurrentStreak, remote.CurrentStreak)
		out.LastPracticeDate = local.LastPracticeDate
	}

	if out.LongestStreak < out.CurrentStreak {
		out.LongestStreak = out.CurrentStreak
	}
	return out
}

func mergeTopicCounts(a, b map[string]int) map[string]int {
	out := make(map[string]int, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		if v > out[k] {
			out[k] = v
		}
	}
	return out
}
