package conceptgraph

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// contentPack is the on-disk YAML shape for a custom concept graph.
type contentPack struct {
	Concepts []Concept `yaml:"concepts"`
}

// LoadFile reads and validates a concept graph from a YAML content pack.
// The file's declaration order becomes the graph's traversal order.
func LoadFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read concept pack: %w", err)
	}
	return Parse(data)
}

// Parse builds a graph from raw YAML content-pack bytes.
func Parse(data []byte) (*Graph, error) {
	var pack contentPack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("parse concept pack: %w", err)
	}
	g, err := New(pack.Concepts)
	if err != nil {
		return nil, fmt.Errorf("concept pack: %w", err)
	}
	return g, nil
}
