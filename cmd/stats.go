package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathrush/internal/league"
	"github.com/abhisek/mathrush/internal/ui/theme"
	"github.com/abhisek/mathrush/internal/xp"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progression statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, engine, err := openEngine(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		// Settle a pending week boundary so the numbers shown are current.
		if err := engine.CheckWeek(ctx); err != nil {
			return err
		}
		snap := engine.Snapshot()

		var b strings.Builder
		b.WriteString(theme.Title.Render(fmt.Sprintf("Level %d — %s", snap.XP.Level, xp.LevelTitle(snap.XP.Level))))
		b.WriteString("\n\n")

		b.WriteString(theme.Bar(xp.LevelProgress(snap.XP.TotalXP), 30))
		b.WriteString(theme.Label.Render(fmt.Sprintf("  %d XP to next level", xp.XPToNextLevel(snap.XP.TotalXP))))
		b.WriteString("\n\n")

		row := func(label string, value any) {
			b.WriteString(theme.Label.Render(fmt.Sprintf("%-18s", label)))
			b.WriteString(theme.Value.Render(fmt.Sprint(value)))
			b.WriteString("\n")
		}
		row("Total XP", snap.XP.TotalXP)
		row("Problems solved", snap.Progress.TotalProblemsCompleted)
		row("Time practicing", fmt.Sprintf("%dm", snap.Progress.TotalTimeSpentSeconds/60))
		row("Current streak", fmt.Sprintf("%d days", snap.Progress.CurrentStreak))
		row("Longest streak", fmt.Sprintf("%d days", snap.Progress.LongestStreak))
		row("Topics mastered", len(snap.XP.MasteredTopics))

		if l, ok := league.ByID(snap.League.CurrentLeague); ok {
			b.WriteString("\n")
			b.WriteString(theme.Highlight.Render(l.Name + " League"))
			b.WriteString(theme.Label.Render(fmt.Sprintf("  %d XP this week", snap.League.WeeklyXP)))
			b.WriteString("\n")
		}

		fmt.Println(theme.Card.Render(b.String()))
		return nil
	},
}
