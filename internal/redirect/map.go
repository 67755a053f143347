package redirect

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Rule holds the decoded directives for one question text.
type Rule struct {
	IfCorrect   Directive
	IfIncorrect Directive
}

// Map is the read-only redirection table, keyed by question text.
// A nil *Map is valid and yields no overrides.
type Map struct {
	rules map[string]Rule
}

// rawEntry is the on-disk JSON shape for one map entry.
type rawEntry struct {
	IfCorrect   string `json:"if_correct"`
	IfIncorrect string `json:"if_incorrect"`
}

// mapSchema describes the expected file shape. Validation failures are
// reported at load; individual directive strings still degrade to no-op.
var mapSchema = map[string]any{
	"type": "object",
	"additionalProperties": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"if_correct":   map[string]any{"type": "string"},
			"if_incorrect": map[string]any{"type": "string"},
		},
		"additionalProperties": false,
	},
}

// Empty returns a map with no rules.
func Empty() *Map {
	return &Map{rules: map[string]Rule{}}
}

// LoadFile reads a redirection map from a JSON file. A missing file is not
// an error: it degrades to an empty map.
func LoadFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Empty(), nil
		}
		return nil, fmt.Errorf("read redirection map: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates raw redirection map JSON. Directive strings
// are decoded once here; later lookups never re-parse.
func Parse(data []byte) (*Map, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("redirection map: invalid JSON: %w", err)
	}

	compiled, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("redirection map: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("redirection map: schema validation failed: %w", err)
	}

	var entries map[string]rawEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("redirection map: %w", err)
	}

	m := Empty()
	for text, e := range entries {
		m.rules[text] = Rule{
			IfCorrect:   parseDirective(e.IfCorrect),
			IfIncorrect: parseDirective(e.IfIncorrect),
		}
	}
	return m, nil
}

// compileSchema compiles the map schema. The schema is a fixed in-process
// value, so compilation cannot realistically fail, but errors are still
// surfaced rather than swallowed.
func compileSchema() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	const url = "schema://redirection-map.json"
	if err := c.AddResource(url, mapSchema); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return compiled, nil
}

// Len returns the number of rules in the map.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.rules)
}

// OnCorrect returns the directive for a correct answer to the given
// question text. Missing entries yield None.
func (m *Map) OnCorrect(questionText string) Directive {
	if m == nil {
		return None
	}
	return m.rules[questionText].IfCorrect
}

// OnIncorrect returns the directive for an incorrect answer to the given
// question text. Missing entries yield None.
func (m *Map) OnIncorrect(questionText string) Directive {
	if m == nil {
		return None
	}
	return m.rules[questionText].IfIncorrect
}
