package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yc815/depviz/internal/graph"
	"github.com/yc815/depviz/internal/layout"
	"github.com/yc815/depviz/internal/session"
	"github.com/yc815/depviz/internal/view"
)

// displayPayload is the graph the rendering surface draws.
type displayPayload struct {
	Nodes []view.DisplayNode `json:"nodes"`
	Edges []graph.Edge       `json:"edges"`
}

// registerRoutes mounts the explorer API.
func (s *Server) registerRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/sessions", s.handleCreateSession)
		r.Delete("/sessions/{id}", s.handleDropSession)

		r.Get("/graph", s.handleGraph)
		r.Post("/reload", s.handleReload)
		r.Post("/layout", s.handleRelayout)

		r.Get("/search", s.handleSearch)
		r.Get("/stats", s.handleStats)

		r.Route("/view", func(r chi.Router) {
			r.Post("/search-term", s.handleSetSearchTerm)
			r.Post("/filter", s.handleToggleFilter)
			r.Post("/highlight", s.handleHighlight)
			r.Post("/select", s.handleSelect)
			r.Post("/docker-nodes", s.handleToggleDockerNodes)
			r.Post("/docker-only", s.handleToggleDockerOnly)
		})
	})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Create()
	writeJSON(w, map[string]string{"session_id": sess.ID})
}

func (s *Server) handleDropSession(w http.ResponseWriter, r *http.Request) {
	s.sessions.Drop(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.resolveSession(r)
	if !ok {
		http.Error(w, `{"error":"unknown session"}`, http.StatusNotFound)
		return
	}
	nodes, edges := sess.Display()
	writeJSON(w, displayPayload{Nodes: nodes, Edges: edges})
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if err := s.Reload(r.Context()); err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}
	s.handleGraph(w, r)
}

type relayoutRequest struct {
	Direction string `json:"direction,omitempty"`
}

func (s *Server) handleRelayout(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.resolveSession(r)
	if !ok {
		http.Error(w, `{"error":"unknown session"}`, http.StatusNotFound)
		return
	}
	// An empty body keeps the current direction; anything else must parse.
	var req relayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	sess.Relayout(layout.Direction(req.Direction))
	s.handleGraph(w, r)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	writeJSON(w, s.workspace.Search(term))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.workspace.Stats())
}

type termRequest struct {
	Term string `json:"term"`
}

func (s *Server) handleSetSearchTerm(w http.ResponseWriter, r *http.Request) {
	sess, req, ok := decodeMutation[termRequest](s, w, r)
	if !ok {
		return
	}
	sess.SetSearchTerm(req.Term)
	s.handleGraph(w, r)
}

type filterRequest struct {
	Category string `json:"category"`
}

func (s *Server) handleToggleFilter(w http.ResponseWriter, r *http.Request) {
	sess, req, ok := decodeMutation[filterRequest](s, w, r)
	if !ok {
		return
	}
	if req.Category == "" {
		http.Error(w, `{"error":"category is required"}`, http.StatusBadRequest)
		return
	}
	sess.ToggleCategoryFilter(graph.Category(req.Category))
	s.handleGraph(w, r)
}

type nodeRequest struct {
	ID string `json:"id"`
}

func (s *Server) handleHighlight(w http.ResponseWriter, r *http.Request) {
	sess, req, ok := decodeMutation[nodeRequest](s, w, r)
	if !ok {
		return
	}
	sess.SetHighlighted(req.ID)
	s.handleGraph(w, r)
}

// selectResponse carries the selected node's position so the client can
// center its camera on it.
type selectResponse struct {
	ID       string          `json:"id"`
	Position layout.Position `json:"position"`
	Found    bool            `json:"found"`
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	sess, req, ok := decodeMutation[nodeRequest](s, w, r)
	if !ok {
		return
	}
	pos, found := sess.Select(req.ID)
	writeJSON(w, selectResponse{ID: req.ID, Position: pos, Found: found})
}

func (s *Server) handleToggleDockerNodes(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.resolveSession(r)
	if !ok {
		http.Error(w, `{"error":"unknown session"}`, http.StatusNotFound)
		return
	}
	sess.ToggleDockerNodesVisible()
	s.handleGraph(w, r)
}

func (s *Server) handleToggleDockerOnly(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.resolveSession(r)
	if !ok {
		http.Error(w, `{"error":"unknown session"}`, http.StatusNotFound)
		return
	}
	sess.ToggleDockerOnlyFilter()
	s.handleGraph(w, r)
}

// decodeMutation resolves the request's session and decodes its JSON body.
func decodeMutation[T any](s *Server, w http.ResponseWriter, r *http.Request) (*session.Session, T, bool) {
	var req T
	sess, ok := s.resolveSession(r)
	if !ok {
		http.Error(w, `{"error":"unknown session"}`, http.StatusNotFound)
		return nil, req, false
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return nil, req, false
	}
	return sess, req, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
