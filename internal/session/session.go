package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/yc815/depviz/internal/graph"
	"github.com/yc815/depviz/internal/layout"
	"github.com/yc815/depviz/internal/view"
)

// Session couples one client's view state with the shared workspace. The
// view state lives and dies with the session; the workspace outlives it.
type Session struct {
	ID string

	mu        sync.Mutex
	workspace *Workspace
	state     *view.State

	// positions overrides the workspace base positions after a relayout.
	// gen records which workspace generation they were computed against;
	// a workspace rebuild invalidates them.
	positions map[string]layout.Position
	gen       uint64
}

// newSession creates a session bound to the workspace.
func newSession(w *Workspace) *Session {
	return &Session{
		ID:        uuid.NewString(),
		workspace: w,
		state:     view.NewState(),
	}
}

// Display derives the currently displayed graph for this session.
func (s *Session) Display() ([]view.DisplayNode, []graph.Edge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gen, g, positions, _, store := s.workspace.Snapshot()

	if s.positions != nil && s.gen == gen {
		positions = s.positions
	} else {
		s.positions = nil
	}
	return view.Derive(g, positions, s.state, store.Docker)
}

// Relayout recomputes coordinates for the currently displayed subset only.
// Nodes hidden by filters keep their previous coordinates; the next
// workspace rebuild resets everything to base positions.
func (s *Session) Relayout(direction layout.Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gen, g, base, _, store := s.workspace.Snapshot()

	current := base
	if s.positions != nil && s.gen == gen {
		current = s.positions
	}

	displayed, edges := view.Derive(g, current, s.state, store.Docker)
	nodes := make([]graph.Node, len(displayed))
	for i, dn := range displayed {
		nodes[i] = dn.Node
	}

	cfg := s.workspace.LayoutConfig()
	if direction != "" {
		cfg.Direction = direction
	}
	fresh := layout.Compute(nodes, edges, cfg)

	merged := make(map[string]layout.Position, len(current))
	for id, pt := range current {
		merged[id] = pt
	}
	for id, pt := range fresh {
		merged[id] = pt
	}
	s.positions = merged
	s.gen = gen
}

// SetSearchTerm updates the search term.
func (s *Session) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SetSearchTerm(term)
}

// ToggleCategoryFilter flips a category filter.
func (s *Session) ToggleCategoryFilter(c graph.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ToggleCategoryFilter(c)
}

// SetHighlighted sets the highlighted node.
func (s *Session) SetHighlighted(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SetHighlighted(id)
}

// Select marks a node selected and returns its current position so the
// rendering surface can center its camera on it.
func (s *Session) Select(id string) (layout.Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gen, g, positions, _, _ := s.workspace.Snapshot()

	if !g.HasNode(id) {
		return layout.Position{}, false
	}
	s.state.SetSelected(id)

	if s.positions != nil && s.gen == gen {
		positions = s.positions
	}
	pt, ok := positions[id]
	return pt, ok
}

// ToggleDockerNodesVisible flips capability node visibility.
func (s *Session) ToggleDockerNodesVisible() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ToggleDockerNodesVisible()
}

// ToggleDockerOnlyFilter flips the Docker-only filter.
func (s *Session) ToggleDockerOnlyFilter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ToggleDockerOnlyFilter()
}

// State returns a copy of the current view state for display.
func (s *Session) State() view.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := *s.state
	filters := make(map[graph.Category]bool, len(st.CategoryFilters))
	for c, on := range s.state.CategoryFilters {
		filters[c] = on
	}
	st.CategoryFilters = filters
	return st
}

// Manager tracks live sessions by id.
type Manager struct {
	mu        sync.Mutex
	workspace *Workspace
	sessions  map[string]*Session
}

// NewManager creates a session manager over the workspace.
func NewManager(w *Workspace) *Manager {
	return &Manager{
		workspace: w,
		sessions:  make(map[string]*Session),
	}
}

// Create starts a new session.
func (m *Manager) Create() *Session {
	s := newSession(m.workspace)
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session with the given id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Drop discards a session. Its view state is gone for good.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
