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

	"github.com/abhisek/mathrush/internal/ui/theme"
)

var drillCount int

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Run a quick arithmetic drill",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, engine, err := openEngine(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		scanner := bufio.NewScanner(os.Stdin)
		start := time.Now()

		correct, streak, bestStreak := 0, 0, 0
		for i := 0; i < drillCount; i++ {
			q, answer := makeQuestion(rng)
			fmt.Printf("%s ", theme.Value.Render(q+" ="))

			if !scanner.Scan() {
				break
			}
			given, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
			if err == nil && given == answer {
				correct++
				streak++
				if streak > bestStreak {
					bestStreak = streak
				}
				fmt.Println(theme.Good.Render("✓"))
			} else {
				streak = 0
				fmt.Println(theme.Bad.Render(fmt.Sprintf("✗ (%d)", answer)))
			}
		}

		res, err := engine.ArcadeFinished(ctx, correct, bestStreak, int(time.Since(start).Seconds()))
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Printf("%s %s\n",
			theme.Highlight.Render(fmt.Sprintf("+%d XP", res.Reward.Total)),
			theme.Label.Render(fmt.Sprintf("(%d/%d correct, best streak %d)", correct, drillCount, bestStreak)))
		if res.LeveledUp {
			fmt.Println(theme.Good.Render(fmt.Sprintf("Level up! You are now level %d.", res.NewLevel)))
		}
		return nil
	},
}

func init() {
	drillCmd.Flags().IntVarP(&drillCount, "count", "n", 10, "Number of questions")
}

// makeQuestion generates one arithmetic question and its answer.
func makeQuestion(rng *rand.Rand) (string, int) {
	a, b := rng.Intn(12)+1, rng.Intn(12)+1
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
