package bank

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/bloompath/internal/conceptgraph"
)

// bankPack is the on-disk YAML shape for a custom question bank.
type bankPack struct {
	Questions []Question `yaml:"questions"`
}

// LoadFile reads a question bank from a YAML pack and validates it against
// the given graph.
func LoadFile(path string, graph *conceptgraph.Graph) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question pack: %w", err)
	}
	return Parse(data, graph)
}

// Parse builds a bank from raw YAML pack bytes.
func Parse(data []byte, graph *conceptgraph.Graph) (*Bank, error) {
	var pack bankPack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("parse question pack: %w", err)
	}
	b, err := New(pack.Questions, graph)
	if err != nil {
		return nil, fmt.Errorf("question pack: %w", err)
	}
	return b, nil
}
