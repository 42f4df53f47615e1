package syntax

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed syntaxdb.yaml
var builtinDB []byte

// LoadDatabase parses the compiled-in file-type table (spec.md §6). It is
// called once at startup; the returned slice is never mutated afterwards.
func LoadDatabase() ([]Definition, error) {
	var defs []Definition
	if err := yaml.Unmarshal(builtinDB, &defs); err != nil {
		return nil, fmt.Errorf("parse builtin syntax database: %w", err)
	}
	return defs, nil
}
