package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/bloompath/internal/app"
	"github.com/abhisek/bloompath/internal/bank"
	"github.com/abhisek/bloompath/internal/conceptgraph"
	"github.com/abhisek/bloompath/internal/engine"
	"github.com/abhisek/bloompath/internal/frames"
	"github.com/abhisek/bloompath/internal/redirect"
	"github.com/abhisek/bloompath/internal/session"
	"github.com/abhisek/bloompath/internal/store"
)

// runApp loads content, opens the store, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	graph, questions, err := loadContent(cmd)
	if err != nil {
		return err
	}

	redirects, err := loadRedirects(cmd)
	if err != nil {
		return err
	}

	course, err := loadCourse(cmd)
	if err != nil {
		return err
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

	eng := engine.New(graph, questions, redirects)
	manager := session.NewManager(eng, course, st)

	return app.Run(manager)
}

// loadContent resolves the concept graph and question bank, from flags or
// the built-in set.
func loadContent(cmd *cobra.Command) (*conceptgraph.Graph, *bank.Bank, error) {
	contentPath, _ := cmd.Flags().GetString("content")
	bankPath, _ := cmd.Flags().GetString("bank")

	if contentPath == "" && bankPath == "" {
		return conceptgraph.Default(), bank.Default(), nil
	}
	if contentPath == "" || bankPath == "" {
		return nil, nil, fmt.Errorf("--content and --bank go together: the bank's concept tags must match the graph")
	}

	graph, err := conceptgraph.LoadFile(contentPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load concept graph: %w", err)
	}
	questions, err := bank.LoadFile(bankPath, graph)
	if err != nil {
		return nil, nil, fmt.Errorf("load question bank: %w", err)
	}
	return graph, questions, nil
}

// loadRedirects loads the redirection map; without a flag the map is empty.
func loadRedirects(cmd *cobra.Command) (*redirect.Map, error) {
	path, _ := cmd.Flags().GetString("redirects")
	if path == "" {
		return redirect.Empty(), nil
	}
	m, err := redirect.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load redirect map: %w", err)
	}
	return m, nil
}

// loadCourse loads the learning frames workbook, or the built-in course.
func loadCourse(cmd *cobra.Command) (*frames.Course, error) {
	path, _ := cmd.Flags().GetString("frames")
	if path == "" {
		return frames.Default(), nil
	}
	c, err := frames.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load learning frames: %w", err)
	}
	return c, nil
}
