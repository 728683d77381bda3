package evolution

import (
	"fmt"
	"io"
	"os"

	yaml "go.yaml.in/yaml/v3"

	"github.com/pokedex-labs/pokeadvisor-cli/internal/apperr"
)

// LoadGraph reads and validates the evolution graph from a YAML file.
// An unreadable, empty, or structurally invalid source is a DataLoadError.
func LoadGraph(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.DataLoad("evolution graph", err)
	}
	defer f.Close()

	g, err := ParseGraph(f)
	if err != nil {
		return nil, apperr.DataLoad("evolution graph", err)
	}
	return g, nil
}

// ParseGraph decodes a YAML record list from r and builds the graph.
func ParseGraph(r io.Reader) (*Graph, error) {
	var records []Record
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding records: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no evolution records")
	}
	return Build(records)
}
