package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/bloompath/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset <learner>",
	Short: "Wipe a learner's saved progress",
	Long:  "Deletes every snapshot for the learner. The event log is append-only and is kept.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		learner := strings.ToLower(args[0])

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		if err := st.SnapshotRepo().Delete(context.Background(), learner); err != nil {
			return err
		}

		fmt.Printf("Cleared saved progress for %q.\n", learner)
		return nil
	},
}
