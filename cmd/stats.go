package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/bloompath/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats [learner]",
	Short: "Show learner statistics from the event log",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()

		if len(args) == 1 {
			return learnerStats(ctx, st, strings.ToLower(args[0]))
		}

		learners, err := st.SnapshotRepo().Learners(ctx)
		if err != nil {
			return err
		}
		if len(learners) == 0 {
			fmt.Println("No learners found.")
			return nil
		}
		for _, name := range learners {
			if err := learnerStats(ctx, st, name); err != nil {
				return err
			}
			fmt.Println()
		}
		return nil
	},
}

func learnerStats(ctx context.Context, st *store.Store, learner string) error {
	events := st.EventRepo()

	logins, err := events.LoginCount(ctx, learner)
	if err != nil {
		return err
	}
	responses, err := events.Responses(ctx, learner, store.QueryOpts{})
	if err != nil {
		return err
	}
	accuracy, err := events.Accuracy(ctx, learner)
	if err != nil {
		return err
	}

	correct := 0
	byConcept := make(map[string]int)
	for _, e := range responses {
		if e.Correct {
			correct++
		}
		byConcept[e.ConceptID]++
	}

	fmt.Printf("Learner:   %s\n", learner)
	fmt.Printf("Logins:    %d\n", logins)
	fmt.Printf("Responses: %d (%d correct, %.0f%%)\n", len(responses), correct, accuracy*100)

	if snap, err := st.SnapshotRepo().Latest(ctx, learner); err == nil && snap != nil {
		mastered := 0
		for _, rec := range snap.Data.Mastery {
			if rec.Mastered {
				mastered++
			}
		}
		fmt.Printf("Mastered:  %d concepts\n", mastered)
	}

	if len(byConcept) > 0 {
		fmt.Println("\nResponses by concept:")
		for concept, n := range byConcept {
			fmt.Printf("  %-36s %d\n", concept, n)
		}
	}
	return nil
}
