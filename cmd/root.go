package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/bloompath/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "bloompath",
	Short: "Adaptive learning tutor in the terminal",
	Long:  "BloomPath walks a learner through guided lesson frames, then serves adaptive practice questions along a concept graph, climbing Bloom's taxonomy one level at a time.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// Optional .env for BLOOMPATH_DB and friends; absence is not an error.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides BLOOMPATH_DB env var)")
	rootCmd.Flags().String("content", "", "Path to a concept graph YAML file")
	rootCmd.Flags().String("bank", "", "Path to a question bank YAML file")
	rootCmd.Flags().String("frames", "", "Path to a learning frames workbook (.xlsx or .csv)")
	rootCmd.Flags().String("redirects", "", "Path to a redirection map JSON file")

	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then BLOOMPATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
