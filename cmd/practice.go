package cmd

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathrush/internal/app"
	"github.com/abhisek/mathrush/internal/reward"
	"github.com/abhisek/mathrush/internal/ui/theme"
)

var (
	practiceCount      int
	practiceDifficulty string
	practiceGuided     bool
)

var practiceCmd = &cobra.Command{
	Use:   "practice [topic]",
	Short: "Practice problems in a topic",
	Long: `Practice problems in a topic (arithmetic, fractions, percentages or
equations). Each problem is rewarded on its own: answer to earn full
credit, or type ? to reveal the solution and forfeit most of the XP.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := "arithmetic"
		if len(args) > 0 {
			topic = args[0]
		}
		difficulty, err := parseDifficulty(practiceDifficulty)
		if err != nil {
			return err
		}
		mode := reward.ModeIndependent
		if practiceGuided {
			mode = reward.ModeGuided
		}

		ctx := cmd.Context()
		st, engine, err := openEngine(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		scanner := bufio.NewScanner(os.Stdin)

		totalXP, solved := 0, 0
		for i := 0; i < practiceCount; i++ {
			q, answer := practiceQuestion(rng, topic, difficulty)
			fmt.Printf("%s ", theme.Value.Render(q+" ="))

			start := time.Now()
			if !scanner.Scan() {
				break
			}
			input := strings.TrimSpace(scanner.Text())

			ev := app.ProblemEvent{
				Topic:           topic,
				Difficulty:      difficulty,
				Mode:            mode,
				DurationSeconds: int(time.Since(start).Seconds()),
			}
			if input == "?" {
				ev.Mode = reward.ModeReveal
				fmt.Println(theme.Label.Render(fmt.Sprintf("answer: %d", answer)))
			} else if given, convErr := strconv.Atoi(input); convErr == nil && given == answer {
				ev.Accuracy = 100
				ev.StepsCompleted = 1
				solved++
				fmt.Println(theme.Good.Render("✓"))
			} else {
				fmt.Println(theme.Bad.Render(fmt.Sprintf("✗ (%d)", answer)))
			}

			res, err := engine.ProblemCompleted(ctx, ev)
			if err != nil {
				return err
			}
			totalXP += res.Reward.Total
			if res.LeveledUp {
				fmt.Println(theme.Good.Render(fmt.Sprintf("Level up! You are now level %d.", res.NewLevel)))
			}
		}

		fmt.Println()
		fmt.Printf("%s %s\n",
			theme.Highlight.Render(fmt.Sprintf("+%d XP", totalXP)),
			theme.Label.Render(fmt.Sprintf("(%d/%d solved in %s)", solved, practiceCount, topic)))
		return nil
	},
}

func init() {
	practiceCmd.Flags().IntVarP(&practiceCount, "count", "n", 5, "Number of problems")
	practiceCmd.Flags().StringVar(&practiceDifficulty, "difficulty", "easy", "Problem difficulty (easy, medium, hard)")
	practiceCmd.Flags().BoolVar(&practiceGuided, "guided", false, "Step-by-step mode (reduced reward)")
}

func parseDifficulty(s string) (reward.Difficulty, error) {
	switch reward.Difficulty(s) {
	case reward.DifficultyEasy, reward.DifficultyMedium, reward.DifficultyHard:
		return reward.Difficulty(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q (easy, medium or hard)", s)
}

// practiceQuestion generates one integer-answer question for the topic.
// Difficulty widens the operand range.
func practiceQuestion(rng *rand.Rand, topic string, d reward.Difficulty) (string, int) {
	limit := 12
	switch d {
	case reward.DifficultyMedium:
		limit = 25
	case reward.DifficultyHard:
		limit = 60
	}

	switch topic {
	case "fractions":
		// n/d of a multiple of d, so the answer stays whole.
		den := []int{2, 3, 4, 5}[rng.Intn(4)]
		num := rng.Intn(den-1) + 1
		whole := (rng.Intn(limit) + 1) * den
		return fmt.Sprintf("%d/%d of %d", num, den, whole), whole / den * num
	case "percentages":
		pct := []int{10, 20, 25, 50, 75}[rng.Intn(5)]
		base := (rng.Intn(limit) + 1) * 20
		return fmt.Sprintf("%d%% of %d", pct, base), base * pct / 100
	case "equations":
		x := rng.Intn(limit) + 1
		a := rng.Intn(8) + 2
		b := rng.Intn(limit)
		return fmt.Sprintf("%dx + %d = %d, x", a, b, a*x+b), x
	default:
		a, b := rng.Intn(limit)+1, rng.Intn(limit)+1
		switch rng.Intn(3) {
		case 0:
			return fmt.Sprintf("%d + %d", a, b), a + b
		case 1:
			if a < b {
				a, b = b, a
			}
			return fmt.Sprintf("%d - %d", a, b), a - b
		default:
			return fmt.Sprintf("%d × %d", a, b), a * b
		}
	}
}
