package graph

import (
	"fmt"

	"github.com/matzehuels/graphloom/pkg/io"
)

// ReadFile reads, converts and validates an input graph file. The format
// follows the file extension.
func ReadFile(path string) (*Graph, error) {
	v, err := io.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := Load(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Parse decodes, converts and validates an input graph.
func Parse(data []byte, format io.Format) (*Graph, error) {
	v, err := io.Decode(data, format)
	if err != nil {
		return nil, err
	}
	return Load(v)
}

// Load converts and validates a decoded document.
func Load(v any) (*Graph, error) {
	g, err := FromMap(v)
	if err != nil {
		return nil, err
	}
	if err := Validate(g); err != nil {
		return nil, err
	}
	return g, nil
}
