package league

// ID identifies a league on the ladder.
type ID string

const (
	Bronze   ID = "bronze"
	Silver   ID = "silver"
	Gold     ID = "gold"
	Platinum ID = "platinum"
	Diamond  ID = "diamond"
	Master   ID = "master"
)

// League is one rung of the weekly competitive ladder. The top N ranks
// promote and the bottom N demote; everything between is safe.
type League struct {
	ID            ID
	Name          string
	MaxRank       int
	PromotionZone int // 0 for the top league: promotion impossible
	DemotionZone  int // 0 for the bottom league: demotion impossible
}

// Ladder lists all leagues in ascending order.
var Ladder = []League{
	{ID: Bronze, Name: "Bronze", MaxRank: 30, PromotionZone: 10, DemotionZone: 0},
	{ID: Silver, Name: "Silver", MaxRank: 30, PromotionZone: 10, DemotionZone: 5},
	{ID: Gold, Name: "Gold", MaxRank: 30, PromotionZone: 8, DemotionZone: 5},
	{ID: Platinum, Name: "Platinum", MaxRank: 30, PromotionZone: 7, DemotionZone: 6},
	{ID: Diamond, Name: "Diamond", MaxRank: 30, PromotionZone: 5, DemotionZone: 8},
	{ID: Master, Name: "Master", MaxRank: 30, PromotionZone: 0, DemotionZone: 10},
}

// ByID returns the league with the given id.
func ByID(id ID) (League, bool) {
	for _, l := range Ladder {
		if l.ID == id {
			return l, true
		}
	}
	return League{}, false
}

func position(id ID) int {
	for i, l := range Ladder {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// Next returns the league one step above id, or ok=false at the top.
func Next(id ID) (ID, bool) {
	i := position(id)
	if i < 0 || i+1 >= len(Ladder) {
		return "", false
	}
	return Ladder[i+1].ID, true
}

// Previous returns the league one step below id, or ok=false at the bottom.
func Previous(id ID) (ID, bool) {
	i := position(id)
	if i <= 0 {
		return "", false
	}
	return Ladder[i-1].ID, true
}
