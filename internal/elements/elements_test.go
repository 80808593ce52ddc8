package elements

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsEdge(t *testing.T) {
	tests := []struct {
		data Data
		want bool
	}{
		{Data{ID: "a.ts"}, false},
		{Data{Source: "a.ts", Target: "b.ts"}, true},
		{Data{Source: "a.ts"}, true},
		{Data{}, false},
	}
	for _, tt := range tests {
		if got := tt.data.IsEdge(); got != tt.want {
			t.Errorf("IsEdge(%+v) = %v, want %v", tt.data, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elements.json")
	content := `[
		{"data": {"id": "a.ts", "label": "a"}},
		{"data": {"id": "b.ts"}},
		{"data": {"source": "a.ts", "target": "b.ts", "type": "import"}}
	]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	elems, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(elems) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(elems))
	}
	if elems[0].Data.ID != "a.ts" || elems[0].Data.Label != "a" {
		t.Errorf("unexpected first element: %+v", elems[0].Data)
	}
	if !elems[2].Data.IsEdge() {
		t.Error("third element should be an edge")
	}
}

func TestLoadMissingFile(t *testing.T) {
	elems, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if elems != nil {
		t.Errorf("expected nil for missing artifact, got %d elements", len(elems))
	}
}

func TestFilter(t *testing.T) {
	elems := []Element{
		{Data: Data{ID: "src/a.ts"}},
		{Data: Data{ID: "node_modules/react/index.js"}},
		{Data: Data{ID: "src/b.test.ts"}},
		{Data: Data{Source: "src/a.ts", Target: "node_modules/react/index.js"}},
		{Data: Data{Source: "src/a.ts", Target: "src/b.test.ts"}},
	}

	kept := Filter(elems, []string{"node_modules/**", "**/*.test.*"})

	if len(kept) != 1 {
		t.Fatalf("expected 1 element, got %d: %+v", len(kept), kept)
	}
	if kept[0].Data.ID != "src/a.ts" {
		t.Errorf("unexpected survivor: %+v", kept[0].Data)
	}
}

func TestFilterNoPatterns(t *testing.T) {
	elems := []Element{{Data: Data{ID: "a.ts"}}}
	if got := Filter(elems, nil); len(got) != 1 {
		t.Errorf("expected input unchanged, got %d elements", len(got))
	}
}
