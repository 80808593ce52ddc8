// Package session owns the single-owner state of the explorer: the
// workspace (base graph, base positions, search index, annotation snapshot)
// and the per-client sessions holding interactive view state.
package session

import (
	"context"
	"log"
	"sync"

	"github.com/yc815/depviz/internal/annotations"
	"github.com/yc815/depviz/internal/elements"
	"github.com/yc815/depviz/internal/graph"
	"github.com/yc815/depviz/internal/layout"
	"github.com/yc815/depviz/internal/search"
)

// ElementSource supplies the scanner's raw elements.
type ElementSource interface {
	Elements(ctx context.Context) ([]elements.Element, error)
}

// AnnotationSource supplies the annotation snapshot.
type AnnotationSource interface {
	Annotations(ctx context.Context) (*annotations.Store, error)
}

// Workspace holds the base graph and everything derived directly from it.
// A load replaces the whole snapshot at once; nothing is patched in place.
type Workspace struct {
	mu        sync.Mutex
	gen       uint64
	graph     *graph.Graph
	positions map[string]layout.Position
	index     *search.Index
	store     *annotations.Store
	layoutCfg layout.Config
}

// NewWorkspace returns an empty workspace with the given layout defaults.
func NewWorkspace(cfg layout.Config) *Workspace {
	return &Workspace{
		gen:       0,
		graph:     graph.NewGraph(),
		positions: make(map[string]layout.Position),
		index:     search.Build(nil),
		store:     annotations.Empty(),
		layoutCfg: cfg,
	}
}

// Load fetches raw elements and annotations, builds the graph, lays it out
// and rebuilds the search index. The two fetches degrade independently: a
// failed annotation fetch yields an empty store and the graph still builds
// with file nodes only; failed elements yield an empty element list.
//
// If another Load starts before this one installs its result, the stale
// result is discarded so a slow fetch can never overwrite fresher state.
func (w *Workspace) Load(ctx context.Context, src ElementSource, ann AnnotationSource) error {
	w.mu.Lock()
	w.gen++
	gen := w.gen
	w.mu.Unlock()

	var elems []elements.Element
	if src != nil {
		loaded, err := src.Elements(ctx)
		if err != nil {
			log.Printf("session: elements fetch failed, rendering without scan data: %v", err)
		} else {
			elems = loaded
		}
	}

	store := annotations.Empty()
	if ann != nil {
		loaded, err := ann.Annotations(ctx)
		if err != nil {
			log.Printf("session: annotation fetch failed, rendering file nodes only: %v", err)
		} else if loaded != nil {
			store = loaded
		}
	}

	g := graph.Build(elems, store)
	positions := layout.Compute(g.Nodes, g.Edges, w.layoutCfg)
	index := search.Build(g.Nodes)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.gen != gen {
		// A newer load superseded this one while it was fetching.
		return nil
	}
	w.graph = g
	w.positions = positions
	w.index = index
	w.store = store
	return nil
}

// Snapshot returns the current generation, graph, base positions, index and
// annotation store as one consistent view.
func (w *Workspace) Snapshot() (uint64, *graph.Graph, map[string]layout.Position, *search.Index, *annotations.Store) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.gen, w.graph, w.positions, w.index, w.store
}

// LayoutConfig returns the workspace layout configuration.
func (w *Workspace) LayoutConfig() layout.Config {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.layoutCfg
}

// Search queries the current index.
func (w *Workspace) Search(term string) []search.Match {
	w.mu.Lock()
	ix := w.index
	w.mu.Unlock()
	return ix.Query(term)
}

// Stats aggregates display-only counts over the current snapshot.
func (w *Workspace) Stats() WorkspaceStats {
	w.mu.Lock()
	g, store := w.graph, w.store
	w.mu.Unlock()

	stats := WorkspaceStats{
		Annotations: store.ComputeStats(),
		Categories:  make(map[graph.Category]int),
	}
	for _, n := range g.Nodes {
		switch n.Kind {
		case graph.KindFile:
			stats.FileNodes++
			stats.Categories[n.Category]++
		default:
			stats.CapabilityNodes++
		}
	}
	stats.Edges = len(g.Edges)
	return stats
}

// WorkspaceStats is the aggregate view served for display. It never feeds
// back into graph logic.
type WorkspaceStats struct {
	FileNodes       int                    `json:"file_nodes"`
	CapabilityNodes int                    `json:"capability_nodes"`
	Edges           int                    `json:"edges"`
	Categories      map[graph.Category]int `json:"categories"`
	Annotations     annotations.Stats      `json:"annotations"`
}
