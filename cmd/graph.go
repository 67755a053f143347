package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/bloompath/internal/conceptgraph"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Validate and print the concept graph",
	RunE: func(cmd *cobra.Command, args []string) error {
		graph := conceptgraph.Default()
		if path, _ := cmd.Flags().GetString("content"); path != "" {
			g, err := conceptgraph.LoadFile(path)
			if err != nil {
				return err
			}
			graph = g
		}

		fmt.Printf("%-36s  %-30s  %s\n", "Concept", "Requires", "Bloom levels")
		fmt.Println(strings.Repeat("─", 110))

		for _, c := range graph.TopologicalOrder() {
			levels := make([]string, len(c.BloomLevels))
			for i, l := range c.BloomLevels {
				levels[i] = string(l)
			}

			requires := strings.Join(c.Prerequisites, ", ")
			if requires == "" {
				requires = "(root)"
			}
			fmt.Printf("%-36s  %-30s  %s\n",
				c.ID, truncate(requires, 30), strings.Join(levels, " > "))
		}

		fmt.Printf("\n%d concepts, %d roots, graph is acyclic\n",
			graph.Len(), len(graph.Roots()))
		return nil
	},
}

// truncate shortens s to at most max runes. Slicing by runes keeps
// non-ASCII names from authored packs intact.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

func init() {
	graphCmd.Flags().String("content", "", "Path to a concept graph YAML file")
}
