package league

// Outcome is the result of a week-end rank classification.
type Outcome string

const (
	OutcomePromote Outcome = "promote"
	OutcomeDemote  Outcome = "demote"
	OutcomeSafe    Outcome = "safe"
)

// ClassifyRank maps a final weekly rank to an outcome within l. A league
// with PromotionZone 0 never promotes and one with DemotionZone 0 never
// demotes; these are hard ceiling/floor conditions on the ladder.
func ClassifyRank(l League, rank int) Outcome {
	if l.PromotionZone > 0 && rank <= l.PromotionZone {
		return OutcomePromote
	}
	if l.DemotionZone > 0 && rank > l.MaxRank-l.DemotionZone {
		return OutcomeDemote
	}
	return OutcomeSafe
}
