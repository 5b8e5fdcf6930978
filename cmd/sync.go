package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathrush/internal/identity"
	"github.com/abhisek/mathrush/internal/store"
	"github.com/abhisek/mathrush/internal/sync"
)

var (
	syncServer   string
	syncWatch    bool
	syncInterval time.Duration
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile local progress with the snapshot service",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		baseURL := syncServer
		if baseURL == "" {
			baseURL = os.Getenv("MATHRUSH_SYNC_URL")
		}
		if baseURL == "" {
			return fmt.Errorf("no snapshot service configured (--server or MATHRUSH_SYNC_URL)")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		who, err := identity.NewProvider(st.MetaRepo()).Current(ctx)
		if err != nil {
			return fmt.Errorf("resolve identity: %w", err)
		}

		syncer := sync.NewSyncer(sync.NewClient(baseURL), st.ProfileRepo(), who)

		if !syncWatch {
			if err := syncer.SyncNow(ctx); err != nil {
				// Not fatal for the data: local state stays authoritative.
				return fmt.Errorf("sync failed (will retry on next run): %w", err)
			}
			fmt.Printf("Synced %s with %s\n", who, baseURL)
			return nil
		}

		// Watch mode: attempt once, then keep retrying on the background
		// schedule until a cycle lands. Useful after a stretch of offline
		// practice on a flaky connection.
		syncer.MarkPending()
		if err := syncer.SyncNow(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "sync attempt failed, retrying every %s: %v\n", syncInterval, err)
		}
		if err := syncer.Start(syncInterval); err != nil {
			return fmt.Errorf("start sync schedule: %w", err)
		}
		defer syncer.Stop()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		tick := time.NewTicker(time.Second)
		defer tick.Stop()
		for {
			select {
			case <-sig:
				return fmt.Errorf("interrupted before sync completed")
			case <-tick.C:
				if !syncer.Status().Pending {
					fmt.Printf("Synced %s with %s\n", who, baseURL)
					return nil
				}
			}
		}
	},
}

func init() {
	syncCmd.Flags().StringVar(&syncServer, "server", "", "Snapshot service base URL")
	syncCmd.Flags().BoolVar(&syncWatch, "watch", false, "Keep retrying on a schedule until the sync succeeds")
	syncCmd.Flags().DurationVar(&syncInterval, "interval", 30*time.Second, "Retry interval for --watch")
}
