// Package search provides the fuzzy text index over graph nodes. The index
// is rebuilt wholesale after every graph build and queried synchronously
// per keystroke.
package search

import (
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/yc815/depviz/internal/graph"
)

// minScore discards very poor fuzzy matches. sahilm/fuzzy scores penalize
// scattered, late matches heavily; anything below this is noise.
const minScore = -100

// Match is one ranked search hit.
type Match struct {
	NodeID string `json:"node_id"`
	Label  string `json:"label"`
	Score  int    `json:"score"`
}

// entry is one searchable string with the node it belongs to.
type entry struct {
	text   string
	nodeID string
	label  string
}

// Index is an immutable fuzzy index over node ids and display labels.
type Index struct {
	entries []entry
}

func (ix *Index) String(i int) string { return ix.entries[i].text }
func (ix *Index) Len() int            { return len(ix.entries) }

// Build indexes the full path and the display label of every node.
func Build(nodes []graph.Node) *Index {
	ix := &Index{entries: make([]entry, 0, len(nodes)*2)}
	for _, n := range nodes {
		ix.entries = append(ix.entries, entry{text: n.ID, nodeID: n.ID, label: n.Label})
		if n.Label != "" && n.Label != n.ID {
			ix.entries = append(ix.entries, entry{text: n.Label, nodeID: n.ID, label: n.Label})
		}
	}
	return ix
}

// Query returns nodes matching the term, best first. A node indexed under
// both its path and label is reported once with its better score. An empty
// term matches nothing.
func (ix *Index) Query(term string) []Match {
	if term == "" || ix == nil {
		return nil
	}

	results := fuzzy.FindFrom(term, ix)

	best := make(map[string]Match)
	order := make([]string, 0, len(results))
	for _, r := range results {
		if r.Score < minScore {
			continue
		}
		e := ix.entries[r.Index]
		prev, seen := best[e.nodeID]
		if !seen {
			order = append(order, e.nodeID)
		}
		if !seen || r.Score > prev.Score {
			best[e.nodeID] = Match{NodeID: e.nodeID, Label: e.label, Score: r.Score}
		}
	}

	matches := make([]Match, 0, len(order))
	for _, id := range order {
		matches = append(matches, best[id])
	}
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score > matches[b].Score
	})
	return matches
}

// BestMatch returns the top-ranked node id for a term, if any.
func (ix *Index) BestMatch(term string) (string, bool) {
	matches := ix.Query(term)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].NodeID, true
}
