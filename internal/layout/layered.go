// Package layout assigns 2D coordinates to a graph using a layered
// (hierarchical) algorithm: rank assignment, crossing reduction by
// barycenter sweeps, then coordinate assignment on a uniform node grid.
//
// Every call builds its own internal representation and discards it; no
// layout state survives between invocations, so unrelated graphs can never
// leak nodes into each other.
package layout

import (
	"sort"

	"github.com/yc815/depviz/internal/graph"
)

// Direction controls the flow of ranks across the canvas.
type Direction string

const (
	TopBottom Direction = "TB"
	BottomTop Direction = "BT"
	LeftRight Direction = "LR"
	RightLeft Direction = "RL"
)

// Config holds the layout parameters. All nodes share one fixed footprint
// regardless of label length; long labels truncate at render time.
type Config struct {
	Direction  Direction
	NodeWidth  float64
	NodeHeight float64
	NodeSep    float64 // gap between nodes within a rank
	RankSep    float64 // gap between ranks
}

// DefaultConfig returns the spacing used when none is configured.
func DefaultConfig() Config {
	return Config{
		Direction:  TopBottom,
		NodeWidth:  180,
		NodeHeight: 48,
		NodeSep:    40,
		RankSep:    90,
	}
}

// Position is the computed center coordinate of a node.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// orderSweeps is the number of barycenter passes run during crossing
// reduction. Two down/up rounds settle all but pathological graphs.
const orderSweeps = 4

// Compute lays out the given nodes and edges and returns a position per
// node id. Edges pass through untouched; edges referencing ids outside the
// node set are ignored. The result is deterministic for identical inputs.
func Compute(nodes []graph.Node, edges []graph.Edge, cfg Config) map[string]Position {
	if cfg.Direction == "" {
		cfg.Direction = TopBottom
	}
	if cfg.NodeWidth <= 0 || cfg.NodeHeight <= 0 {
		def := DefaultConfig()
		cfg.NodeWidth, cfg.NodeHeight = def.NodeWidth, def.NodeHeight
		if cfg.NodeSep <= 0 {
			cfg.NodeSep = def.NodeSep
		}
		if cfg.RankSep <= 0 {
			cfg.RankSep = def.RankSep
		}
	}

	l := newLayered(nodes, edges)
	l.assignRanks()
	l.orderRanks()
	return l.coordinates(cfg)
}

// layered is the throwaway internal representation of one layout run.
type layered struct {
	ids   []string
	index map[string]int
	succ  [][]int // forward adjacency, acyclic subset
	pred  [][]int
	rank  []int
	order [][]int // node indexes per rank, in horizontal order
}

func newLayered(nodes []graph.Node, edges []graph.Edge) *layered {
	l := &layered{
		ids:   make([]string, len(nodes)),
		index: make(map[string]int, len(nodes)),
	}
	for i, n := range nodes {
		l.ids[i] = n.ID
		l.index[n.ID] = i
	}

	l.succ = make([][]int, len(nodes))
	l.pred = make([][]int, len(nodes))

	// Drop edges that would close a cycle so ranking terminates. Edges are
	// examined in input order, so the same edge is dropped every run.
	for _, e := range edges {
		src, ok := l.index[e.Source]
		if !ok {
			continue
		}
		dst, ok := l.index[e.Target]
		if !ok || src == dst {
			continue
		}
		if l.reaches(dst, src) {
			continue
		}
		l.succ[src] = append(l.succ[src], dst)
		l.pred[dst] = append(l.pred[dst], src)
	}
	return l
}

// reaches reports whether target is reachable from start over the edges
// accepted so far.
func (l *layered) reaches(start, target int) bool {
	if start == target {
		return true
	}
	stack := []int{start}
	seen := map[int]bool{start: true}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range l.succ[cur] {
			if next == target {
				return true
			}
			if !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	return false
}

// assignRanks gives every node the length of the longest acyclic path from
// a root, so each edge points from a lower rank to a strictly higher one.
func (l *layered) assignRanks() {
	l.rank = make([]int, len(l.ids))
	indegree := make([]int, len(l.ids))
	for i := range l.pred {
		indegree[i] = len(l.pred[i])
	}

	queue := make([]int, 0, len(l.ids))
	for i := range l.ids {
		if indegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range l.succ[cur] {
			if l.rank[cur]+1 > l.rank[next] {
				l.rank[next] = l.rank[cur] + 1
			}
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}
}

// orderRanks seeds each rank in insertion order, then runs alternating
// down/up barycenter sweeps to reduce edge crossings.
func (l *layered) orderRanks() {
	maxRank := 0
	for _, r := range l.rank {
		if r > maxRank {
			maxRank = r
		}
	}

	l.order = make([][]int, maxRank+1)
	for i := range l.ids {
		r := l.rank[i]
		l.order[r] = append(l.order[r], i)
	}

	pos := make([]int, len(l.ids))
	refresh := func() {
		for _, row := range l.order {
			for p, node := range row {
				pos[node] = p
			}
		}
	}
	refresh()

	for sweep := 0; sweep < orderSweeps; sweep++ {
		down := sweep%2 == 0
		if down {
			for r := 1; r <= maxRank; r++ {
				l.sortByBarycenter(l.order[r], l.pred, pos)
			}
		} else {
			for r := maxRank - 1; r >= 0; r-- {
				l.sortByBarycenter(l.order[r], l.succ, pos)
			}
		}
		refresh()
	}
}

// sortByBarycenter reorders one rank by the mean position of each node's
// neighbors in the adjacent rank. Nodes without neighbors, and ties, keep
// their current relative order.
func (l *layered) sortByBarycenter(row []int, adjacency [][]int, pos []int) {
	bary := make(map[int]float64, len(row))
	for _, node := range row {
		neighbors := adjacency[node]
		if len(neighbors) == 0 {
			bary[node] = float64(pos[node])
			continue
		}
		sum := 0
		for _, n := range neighbors {
			sum += pos[n]
		}
		bary[node] = float64(sum) / float64(len(neighbors))
	}
	sort.SliceStable(row, func(a, b int) bool {
		return bary[row[a]] < bary[row[b]]
	})
}

// coordinates converts ranks and orders into centered grid positions,
// honoring the configured direction. The node footprint follows the
// direction: in LR/RL the rank axis runs along node widths and the
// within-rank axis along node heights, so the pitches swap with it.
func (l *layered) coordinates(cfg Config) map[string]Position {
	positions := make(map[string]Position, len(l.ids))
	maxRank := len(l.order) - 1

	horizontal := cfg.Direction == LeftRight || cfg.Direction == RightLeft
	crossSize, depthSize := cfg.NodeWidth, cfg.NodeHeight
	if horizontal {
		crossSize, depthSize = cfg.NodeHeight, cfg.NodeWidth
	}
	crossPitch := crossSize + cfg.NodeSep
	depthPitch := depthSize + cfg.RankSep

	for r, row := range l.order {
		span := float64(len(row))*crossPitch - cfg.NodeSep
		start := -span / 2

		for p, node := range row {
			cross := start + float64(p)*crossPitch + crossSize/2
			depth := float64(r) * depthPitch

			var pt Position
			switch cfg.Direction {
			case LeftRight:
				pt = Position{X: depth, Y: cross}
			case RightLeft:
				pt = Position{X: float64(maxRank)*depthPitch - depth, Y: cross}
			case BottomTop:
				pt = Position{X: cross, Y: float64(maxRank)*depthPitch - depth}
			default: // TopBottom
				pt = Position{X: cross, Y: depth}
			}
			positions[l.ids[node]] = pt
		}
	}
	return positions
}
