package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all progression data",
	Long:  "Reset XP, streaks, league standing and mastery awards to their starting values. Irreversible.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("refusing to reset without --yes")
		}

		ctx := cmd.Context()
		st, engine, err := openEngine(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := engine.Reset(ctx); err != nil {
			return err
		}
		fmt.Printf("Reset progression for %s\n", engine.Identity())
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Confirm the irreversible reset")
}
