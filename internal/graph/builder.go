package graph

import (
	"fmt"
	"path"
	"sort"

	"github.com/yc815/depviz/internal/annotations"
	"github.com/yc815/depviz/internal/elements"
)

// Build assembles the base graph from the scanner's raw elements and the
// annotation snapshot. Node descriptors are applied first, then dependency
// edges, then Docker augmentation; the result is deterministic for
// identical inputs.
//
// Malformed or dangling entries never fail the build: edges whose endpoints
// are missing are dropped, duplicate node/edge ids keep the first
// occurrence, and nameless Docker entries get generated fallback names.
func Build(elems []elements.Element, store *annotations.Store) *Graph {
	if store == nil {
		store = annotations.Empty()
	}

	g := NewGraph()

	// Pass 1: file nodes.
	for _, el := range elems {
		if el.Data.IsEdge() || el.Data.ID == "" {
			continue
		}
		g.addNode(newFileNode(el.Data, store))
	}

	// Pass 2: dependency edges. Edges referencing files outside the scanned
	// subtree are dropped, not errors.
	for _, el := range elems {
		if !el.Data.IsEdge() {
			continue
		}
		src, dst := el.Data.Source, el.Data.Target
		if src == "" || dst == "" || !g.HasNode(src) || !g.HasNode(dst) {
			continue
		}
		g.addEdge(Edge{
			ID:     EdgeID(src, dst),
			Source: src,
			Target: dst,
			Kind:   EdgeDependency,
		})
	}

	// Pass 3: Docker augmentation, in sorted key order so rebuilds are
	// byte-identical.
	keys := make([]string, 0, len(store.Docker))
	for key := range store.Docker {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, owner := range keys {
		analysis := store.Docker[owner]
		if !analysis.HasDockerIntegration {
			continue
		}
		augmentFile(g, store, owner, analysis)
	}

	return g
}

// augmentFile synthesizes the capability nodes and edges for one
// Docker-integrated file. The owning file may sit outside the scanned
// subtree; it then gets a file node of its own so every capability edge
// has both endpoints in the graph.
func augmentFile(g *Graph, store *annotations.Store, owner string, analysis annotations.Analysis) {
	if !g.HasNode(owner) {
		g.addNode(newFileNode(elements.Data{ID: owner}, store))
	}

	for i, api := range analysis.DockerAPIs {
		name := api.CapabilityName()
		if name == "" {
			name = fmt.Sprintf("api_%d", i)
		}
		id := capabilityID(KindAPI, owner, name, i)
		g.addNode(Node{
			ID:          id,
			Label:       FriendlyDockerName(name),
			Kind:        KindAPI,
			Category:    CategoryOther,
			Description: api.Description,
			OwnerFile:   owner,
		})
		g.addEdge(Edge{
			ID:     EdgeID(owner, id),
			Source: owner,
			Target: id,
			Kind:   EdgeCapability,
		})
	}

	for i, tool := range analysis.DockerTools {
		name := tool
		if name == "" {
			name = fmt.Sprintf("tool_%d", i)
		}
		id := capabilityID(KindTool, owner, name, i)
		g.addNode(Node{
			ID:        id,
			Label:     FriendlyDockerName(name),
			Kind:      KindTool,
			Category:  CategoryOther,
			OwnerFile: owner,
		})
		g.addEdge(Edge{
			ID:     EdgeID(owner, id),
			Source: owner,
			Target: id,
			Kind:   EdgeCapability,
		})
	}
}

// newFileNode builds a file node from a node descriptor, resolving its
// category and attaching the annotation summary and origin tag when present.
func newFileNode(data elements.Data, store *annotations.Store) Node {
	label := data.Label
	if label == "" {
		label = path.Base(data.ID)
	}

	n := Node{
		ID:       data.ID,
		Label:    label,
		Kind:     KindFile,
		Category: ResolveCategory(data.ID, data.Type),
	}

	if summary, ok := store.Summary(data.ID); ok {
		n.Summary = summary
	}
	canon, _ := annotations.CanonicalKey(data.ID)
	if origin, ok := store.Origins[canon]; ok {
		n.Origin = origin
	}
	return n
}

// capabilityID synthesizes the identifier of a capability node. The ordinal
// keeps repeated capability names within or across files unique.
func capabilityID(kind Kind, owner, name string, ordinal int) string {
	return fmt.Sprintf("%s:%s:%s:%d", kind, owner, name, ordinal)
}
