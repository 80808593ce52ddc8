package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/yc815/depviz/internal/graph"
	"github.com/yc815/depviz/internal/layout"
	"github.com/yc815/depviz/internal/session"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming WebSocket message format. Each message applies
// one view mutation; the reply is the refreshed display graph.
type wsRequest struct {
	Type      string `json:"type"` // search-term, filter, highlight, select, docker-nodes, docker-only, relayout, graph
	Term      string `json:"term,omitempty"`
	Category  string `json:"category,omitempty"`
	ID        string `json:"id,omitempty"`
	Direction string `json:"direction,omitempty"`
}

// wsResponse is the outgoing WebSocket message format.
type wsResponse struct {
	Type    string           `json:"type"` // graph, camera or error
	Graph   *displayPayload  `json:"graph,omitempty"`
	Camera  *layout.Position `json:"camera,omitempty"`
	Error   string           `json:"error,omitempty"`
	Session string           `json:"session,omitempty"`
}

// handleWebSocket runs one session per connection: the session is created
// on upgrade and dropped when the socket closes, taking its view state
// with it.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	sess := s.sessions.Create()
	defer s.sessions.Drop(sess.ID)

	// Initial payload so the client can draw immediately.
	s.sendGraph(conn, sess, wsResponse{Session: sess.ID})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("server: websocket read: %v", err)
			}
			return
		}

		var req wsRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.sendError(conn, "invalid message format")
			continue
		}

		switch req.Type {
		case "graph":
			s.sendGraph(conn, sess, wsResponse{})
		case "search-term":
			sess.SetSearchTerm(req.Term)
			s.sendGraph(conn, sess, wsResponse{})
		case "filter":
			if req.Category == "" {
				s.sendError(conn, "category is required")
				continue
			}
			sess.ToggleCategoryFilter(graph.Category(req.Category))
			s.sendGraph(conn, sess, wsResponse{})
		case "highlight":
			sess.SetHighlighted(req.ID)
			s.sendGraph(conn, sess, wsResponse{})
		case "select":
			pos, found := sess.Select(req.ID)
			resp := wsResponse{}
			if found {
				resp.Camera = &pos
			}
			s.sendGraph(conn, sess, resp)
		case "docker-nodes":
			sess.ToggleDockerNodesVisible()
			s.sendGraph(conn, sess, wsResponse{})
		case "docker-only":
			sess.ToggleDockerOnlyFilter()
			s.sendGraph(conn, sess, wsResponse{})
		case "relayout":
			sess.Relayout(layout.Direction(req.Direction))
			s.sendGraph(conn, sess, wsResponse{})
		default:
			s.sendError(conn, "unknown message type: "+req.Type)
		}
	}
}

// sendGraph fills in the current display graph and writes the response.
func (s *Server) sendGraph(conn *websocket.Conn, sess *session.Session, resp wsResponse) {
	nodes, edges := sess.Display()
	resp.Type = "graph"
	if resp.Camera != nil {
		resp.Type = "camera"
	}
	resp.Graph = &displayPayload{Nodes: nodes, Edges: edges}
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("server: websocket write: %v", err)
	}
}

func (s *Server) sendError(conn *websocket.Conn, message string) {
	if err := conn.WriteJSON(wsResponse{Type: "error", Error: message}); err != nil {
		log.Printf("server: websocket write: %v", err)
	}
}
