package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathrush/internal/remote"
	"github.com/abhisek/mathrush/internal/store"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the reference snapshot service",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		return remote.NewServer(st.RemoteRepo()).ListenAndServe(serveAddr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8480", "Listen address")
}
