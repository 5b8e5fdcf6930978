package reward

// MasteryKind distinguishes the two one-time mastery milestones.
type MasteryKind string

const (
	MasterySubtopic MasteryKind = "subtopic"
	MasteryTopic    MasteryKind = "topic"
)

const (
	subtopicMasteryXP = 200
	topicMasteryXP    = 500
)

// MasteryReward returns the one-time bonus for mastering id, or ok=false
// if the bonus was already paid (a normal no-op, not an error). Callers
// must record id in the awarded set together with applying the reward so
// the bonus stays exactly-once for the lifetime of the profile.
func MasteryReward(kind MasteryKind, id string, awarded []string) (amount int, ok bool) {
	for _, a := range awarded {
		if a == id {
			return 0, false
		}
	}
	if kind == MasteryTopic {
		return topicMasteryXP, true
	}
	return subtopicMasteryXP, true
}
