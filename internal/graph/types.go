// Package graph builds the unified dependency graph: file nodes and
// dependency edges from the scanner's raw elements, plus synthesized Docker
// capability nodes derived from the annotation store.
package graph

import "fmt"

// Kind distinguishes file nodes from synthesized capability nodes.
type Kind string

const (
	KindFile Kind = "file"
	KindAPI  Kind = "api"
	KindTool Kind = "tool"
)

// Category classifies a file node by its role in the codebase.
type Category string

const (
	CategoryPage      Category = "page"
	CategoryComponent Category = "component"
	CategoryUtil      Category = "util"
	CategoryLibrary   Category = "library"
	CategoryHook      Category = "hook"
	CategoryType      Category = "type"
	CategoryAPI       Category = "api"
	CategoryOther     Category = "other"
)

// EdgeKind distinguishes scanner dependency edges from synthesized
// file-to-capability edges.
type EdgeKind string

const (
	EdgeDependency EdgeKind = "dependency"
	EdgeCapability EdgeKind = "capability"
)

// Node is one node of the unified graph. For file nodes the ID is the
// repository-relative path. For capability nodes the ID is synthesized from
// kind, owning file, capability name and ordinal, and OwnerFile points back
// at the file the capability was detected in.
type Node struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Kind        Kind     `json:"kind"`
	Category    Category `json:"category"`
	Origin      string   `json:"origin,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	Description string   `json:"description,omitempty"`
	OwnerFile   string   `json:"ownerFile,omitempty"`
}

// Edge connects two nodes by id. The edge id is source + "->" + target.
type Edge struct {
	ID     string   `json:"id"`
	Source string   `json:"source"`
	Target string   `json:"target"`
	Kind   EdgeKind `json:"kind"`
}

// Graph is the base graph produced by Build. Nodes and Edges preserve
// insertion order, which layout and derivation depend on for determinism.
type Graph struct {
	Nodes []Node
	Edges []Edge

	nodeIndex map[string]int
	edgeIndex map[string]int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodeIndex: make(map[string]int),
		edgeIndex: make(map[string]int),
	}
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.nodeIndex[id]
	if !ok {
		return Node{}, false
	}
	return g.Nodes[i], true
}

// HasNode reports whether a node with the given id exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodeIndex[id]
	return ok
}

// HasEdge reports whether an edge with the given id exists.
func (g *Graph) HasEdge(id string) bool {
	_, ok := g.edgeIndex[id]
	return ok
}

// addNode inserts a node unless its id is already taken. First write wins.
func (g *Graph) addNode(n Node) bool {
	if _, ok := g.nodeIndex[n.ID]; ok {
		return false
	}
	g.nodeIndex[n.ID] = len(g.Nodes)
	g.Nodes = append(g.Nodes, n)
	return true
}

// addEdge inserts an edge unless its id is already taken. First write wins.
func (g *Graph) addEdge(e Edge) bool {
	if _, ok := g.edgeIndex[e.ID]; ok {
		return false
	}
	g.edgeIndex[e.ID] = len(g.Edges)
	g.Edges = append(g.Edges, e)
	return true
}

// EdgeID builds the canonical edge identifier for an ordered pair.
func EdgeID(source, target string) string {
	return source + "->" + target
}

// Validate checks the structural invariants of a built graph: unique node
// and edge ids, and both endpoints of every edge present.
func (g *Graph) Validate() error {
	seen := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if seen[n.ID] {
			return fmt.Errorf("duplicate node id %q", n.ID)
		}
		seen[n.ID] = true
	}

	seenEdges := make(map[string]bool, len(g.Edges))
	for _, e := range g.Edges {
		if seenEdges[e.ID] {
			return fmt.Errorf("duplicate edge id %q", e.ID)
		}
		seenEdges[e.ID] = true
		if !seen[e.Source] {
			return fmt.Errorf("edge %q references missing source %q", e.ID, e.Source)
		}
		if !seen[e.Target] {
			return fmt.Errorf("edge %q references missing target %q", e.ID, e.Target)
		}
	}
	return nil
}
