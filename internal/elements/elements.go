package elements

import (
	"encoding/json"
	"fmt"
	"os"
)

// Element is one record of the dependency scanner's output artifact.
// Each record wraps a single data object that is either a node descriptor
// or an edge descriptor; edge descriptors carry source/target.
type Element struct {
	Data Data `json:"data"`
}

// Data holds the fields of a node or edge descriptor.
type Data struct {
	ID         string `json:"id,omitempty"`
	Type       string `json:"type,omitempty"`
	Label      string `json:"label,omitempty"`
	SourceFile string `json:"sourceFile,omitempty"`
	Source     string `json:"source,omitempty"`
	Target     string `json:"target,omitempty"`
}

// IsEdge reports whether the record describes an edge rather than a node.
func (d Data) IsEdge() bool {
	return d.Source != "" || d.Target != ""
}

// Load reads a scanner artifact from path. A missing file is not an error:
// the graph must still build (empty) when the scan artifact is unavailable.
func Load(path string) ([]Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read elements: %w", err)
	}

	var elems []Element
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("unmarshal elements: %w", err)
	}
	return elems, nil
}
