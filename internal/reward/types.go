package reward

// Difficulty identifies the problem difficulty tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Mode identifies how the learner completed the problem.
type Mode string

const (
	// ModeGuided is a step-by-step completion with hints.
	ModeGuided Mode = "guided"
	// ModeIndependent is an unassisted full-problem completion.
	ModeIndependent Mode = "independent"
	// ModeReveal means the learner gave up and saw the solution.
	ModeReveal Mode = "reveal"
)

// Breakdown itemizes a problem reward for display.
type Breakdown struct {
	Base       int `json:"base"`
	Accuracy   int `json:"accuracy"`
	Streak     int `json:"streak"`
	Steps      int `json:"steps"`
	FirstTopic int `json:"firstTopic"`
}

// Reward is an XP delta plus its breakdown.
type Reward struct {
	Total     int       `json:"total"`
	Breakdown Breakdown `json:"breakdown"`
}

// ProblemInput describes a completed problem.
type ProblemInput struct {
	Accuracy       float64 // percent, 0-100
	Difficulty     Difficulty
	StreakDays     int
	StepsCompleted int
	IsFirstInTopic bool
	BaseXP         int // 0 means DefaultBaseXP
}

// DefaultBaseXP is the base reward for a problem before multipliers.
const DefaultBaseXP = 25
