package view

import (
	"github.com/yc815/depviz/internal/annotations"
	"github.com/yc815/depviz/internal/graph"
	"github.com/yc815/depviz/internal/layout"
)

// DisplayNode is a base node decorated with its position and visual flags
// for the rendering surface.
type DisplayNode struct {
	graph.Node
	Position    layout.Position `json:"position"`
	Dimmed      bool            `json:"dimmed,omitempty"`
	Highlighted bool            `json:"highlighted,omitempty"`
	Selected    bool            `json:"selected,omitempty"`
}

// Derive computes the displayed node and edge subset from the base graph
// and the current state. It applies, in order: the Docker-only exclusion,
// Docker capability node visibility, category dimming, then highlight and
// selection flags. The base graph is never modified, so dropping a filter
// restores the previous view exactly.
func Derive(g *graph.Graph, positions map[string]layout.Position, st *State, docker map[string]annotations.Analysis) ([]DisplayNode, []graph.Edge) {
	visible := make(map[string]bool, len(g.Nodes))
	nodes := make([]DisplayNode, 0, len(g.Nodes))

	for _, n := range g.Nodes {
		if st.DockerOnlyFilter && !dockerRelated(n, docker) {
			continue
		}
		if !st.DockerNodesVisible && n.Kind != graph.KindFile {
			continue
		}

		dn := DisplayNode{Node: n, Position: positions[n.ID]}
		if len(st.CategoryFilters) > 0 && !st.CategoryFilters[n.Category] {
			dn.Dimmed = true
		}
		if n.ID == st.HighlightedID {
			dn.Highlighted = true
		}
		if n.ID == st.SelectedID {
			dn.Selected = true
		}

		visible[n.ID] = true
		nodes = append(nodes, dn)
	}

	edges := make([]graph.Edge, 0, len(g.Edges))
	for _, e := range g.Edges {
		if visible[e.Source] && visible[e.Target] {
			edges = append(edges, e)
		}
	}
	return nodes, edges
}

// dockerRelated reports whether a node survives the Docker-only filter:
// capability nodes always do, file nodes only when they have a
// Docker-integration record.
func dockerRelated(n graph.Node, docker map[string]annotations.Analysis) bool {
	if n.Kind != graph.KindFile {
		return true
	}
	canon, _ := annotations.CanonicalKey(n.ID)
	a, ok := docker[canon]
	return ok && a.HasDockerIntegration
}
