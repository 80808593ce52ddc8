// Package view owns the transient per-session interaction state and derives
// the displayed graph from the base graph without ever mutating it.
package view

import "github.com/yc815/depviz/internal/graph"

// State is the interactive view state of one session. It is created at
// session start, mutated by user interaction and discarded with the
// session; nothing here is persisted.
type State struct {
	SearchTerm         string
	CategoryFilters    map[graph.Category]bool
	HighlightedID      string
	SelectedID         string
	DockerNodesVisible bool
	DockerOnlyFilter   bool
}

// NewState returns the initial view state: no filters, Docker nodes shown.
func NewState() *State {
	return &State{
		CategoryFilters:    make(map[graph.Category]bool),
		DockerNodesVisible: true,
	}
}

// SetSearchTerm records the current search term.
func (s *State) SetSearchTerm(term string) {
	s.SearchTerm = term
}

// ToggleCategoryFilter flips a category in the active filter set. An empty
// set means no category filtering.
func (s *State) ToggleCategoryFilter(c graph.Category) {
	if s.CategoryFilters[c] {
		delete(s.CategoryFilters, c)
		return
	}
	s.CategoryFilters[c] = true
}

// SetHighlighted sets the highlighted node id; empty clears it.
func (s *State) SetHighlighted(id string) {
	s.HighlightedID = id
}

// SetSelected sets the selected node id; empty clears it.
func (s *State) SetSelected(id string) {
	s.SelectedID = id
}

// ToggleDockerNodesVisible flips visibility of Docker capability nodes.
func (s *State) ToggleDockerNodesVisible() {
	s.DockerNodesVisible = !s.DockerNodesVisible
}

// ToggleDockerOnlyFilter flips the Docker-only filter.
func (s *State) ToggleDockerOnlyFilter() {
	s.DockerOnlyFilter = !s.DockerOnlyFilter
}
