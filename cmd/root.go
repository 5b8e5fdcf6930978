package cmd

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathrush/internal/app"
	"github.com/abhisek/mathrush/internal/identity"
	"github.com/abhisek/mathrush/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mathrush",
	Short: "Math practice progression engine",
	Long:  "Mathrush — XP, streaks and weekly leagues for math practice, with offline-first sync.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Optional .env for local development; absence is fine.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHRUSH_DB env var)")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(leagueCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then MATHRUSH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openEngine opens the store and builds an engine for the current
// identity. The caller must Close the returned store.
func openEngine(ctx context.Context, cmd *cobra.Command) (*store.Store, *app.Engine, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	who, err := identity.NewProvider(st.MetaRepo()).Current(ctx)
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("resolve identity: %w", err)
	}

	engine, err := app.New(ctx, app.Options{
		Identity: who,
		Profiles: st.ProfileRepo(),
		Events:   st.EventRepo(),
	})
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return st, engine, nil
}
