package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathrush/internal/league"
	"github.com/abhisek/mathrush/internal/ui/theme"
)

var leagueCmd = &cobra.Command{
	Use:   "league",
	Short: "Show league standing and recent week history",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, engine, err := openEngine(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := engine.CheckWeek(ctx); err != nil {
			return err
		}
		snap := engine.Snapshot()

		var b strings.Builder
		for _, l := range league.Ladder {
			marker := "  "
			style := theme.Label
			if l.ID == snap.League.CurrentLeague {
				marker = "> "
				style = theme.Highlight
			}
			b.WriteString(style.Render(marker + l.Name))
			b.WriteString("\n")
		}

		b.WriteString("\n")
		b.WriteString(theme.Value.Render(fmt.Sprintf("%d XP this week (started %s)",
			snap.League.WeeklyXP, snap.League.WeekStart.Format("Mon Jan 2"))))
		b.WriteString("\n")

		if len(snap.League.History) > 0 {
			b.WriteString("\n")
			b.WriteString(theme.Label.Render("Recent weeks"))
			b.WriteString("\n")
			for i := len(snap.League.History) - 1; i >= 0; i-- {
				h := snap.League.History[i]
				l, _ := league.ByID(h.League)
				style := theme.Value
				switch h.Outcome {
				case league.OutcomePromote:
					style = theme.Good
				case league.OutcomeDemote:
					style = theme.Bad
				}
				b.WriteString(style.Render(fmt.Sprintf("%s  %s  rank %d  %s",
					h.WeekStart.Format("2006-01-02"), l.Name, h.FinalRank, h.Outcome)))
				b.WriteString("\n")
			}
		}

		fmt.Println(theme.Card.Render(strings.TrimRight(b.String(), "\n")))
		return nil
	},
}
