package xp

import "sort"

// Profile is a user's lifetime XP record. Level is a cache of
// LevelFromXP(TotalXP) and the two are only ever updated together.
// The three award sets are append-only outside of an explicit reset.
type Profile struct {
	TotalXP            int      `json:"totalXP"`
	Level              int      `json:"level"`
	MasteredSubtopics  []string `json:"masteredSubtopics"`
	MasteredTopics     []string `json:"masteredTopics"`
	FirstProblemTopics []string `json:"firstProblemTopics"`
}

// NewProfile returns the zero-progress profile.
func NewProfile() Profile {
	return Profile{TotalXP: 0, Level: 1}
}

// ApplyResult reports the outcome of an XP grant.
type ApplyResult struct {
	LeveledUp bool
	NewLevel  int
}

// ApplyXP returns a copy of p with amount added and the level cache
// recomputed. Amount is expected to be non-negative; there is no
// XP-removal operation.
func ApplyXP(p Profile, amount int) (Profile, ApplyResult) {
	out := p
	out.TotalXP = p.TotalXP + amount
	out.Level = LevelFromXP(out.TotalXP)
	return out, ApplyResult{
		LeveledUp: out.Level > p.Level,
		NewLevel:  out.Level,
	}
}

// HasMasteredSubtopic reports whether the subtopic bonus was already paid.
func (p Profile) HasMasteredSubtopic(id string) bool { return contains(p.MasteredSubtopics, id) }

// HasMasteredTopic reports whether the topic bonus was already paid.
func (p Profile) HasMasteredTopic(id string) bool { return contains(p.MasteredTopics, id) }

// HasFirstProblemIn reports whether the first-problem-in-topic bonus was
// already paid for the topic.
func (p Profile) HasFirstProblemIn(topic string) bool { return contains(p.FirstProblemTopics, topic) }

// MarkMasteredSubtopic returns a copy of p with the subtopic recorded as
// paid. No-op if already present.
func MarkMasteredSubtopic(p Profile, id string) Profile {
	p.MasteredSubtopics = addToSet(p.MasteredSubtopics, id)
	return p
}

// MarkMasteredTopic returns a copy of p with the topic recorded as paid.
func MarkMasteredTopic(p Profile, id string) Profile {
	p.MasteredTopics = addToSet(p.MasteredTopics, id)
	return p
}

// MarkFirstProblem returns a copy of p with the first-problem bonus for
// topic recorded as paid.
func MarkFirstProblem(p Profile, topic string) Profile {
	p.FirstProblemTopics = addToSet(p.FirstProblemTopics, topic)
	return p
}

func contains(set []string, id string) bool {
	for _, s := range set {
		if s == id {
			return true
		}
	}
	return false
}

// addToSet appends id if absent, keeping the set sorted for stable
// serialization.
func addToSet(set []string, id string) []string {
	if contains(set, id) {
		return set
	}
	out := append(append([]string(nil), set...), id)
	sort.Strings(out)
	return out
}

func unionSets(a, b []string) []string {
	out := append([]string(nil), a...)
	for _, id := range b {
		out = addToSet(out, id)
	}
	sort.Strings(out)
	return out
}

// Merge combines two independently-evolved XP profiles without losing
// progress from either side: max on TotalXP, union on the award sets,
// level recomputed. Symmetric and idempotent.
func Merge(local, remote Profile) Profile {
	out := Profile{
		TotalXP:            max(local.TotalXP, remote.TotalXP),
		MasteredSubtopics:  unionSets(local.MasteredSubtopics, remote.MasteredSubtopics),
		MasteredTopics:     unionSets(local.MasteredTopics, remote.MasteredTopics),
		FirstProblemTopics: unionSets(local.FirstProblemTopics, remote.FirstProblemTopics),
	}
	out.Level = LevelFromXP(out.TotalXP)
	return out
}
