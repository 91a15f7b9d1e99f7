package monitor

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// Server is the HTTP + websocket front end for a Hub. Grounded on
// api.Server, pared down to the read-only routes an observer needs:
// health, a state snapshot, and the websocket stream.
type Server struct {
	hub    *Hub
	mux    *http.ServeMux
	server *http.Server
	addr   string
}

// NewServer builds a Server listening on addr (host:port) and observing
// hub.
func NewServer(addr string, hub *Hub) *Server {
	s := &Server{hub: hub, mux: http.NewServeMux(), addr: addr}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/v1/state", s.handleState)
	s.mux.HandleFunc("/api/v1/ws", s.handleWebSocket)
}

// Handler returns the server's HTTP handler, for use with httptest or an
// embedding process.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start runs the HTTP server until it errors or is shut down.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("monitor server starting on http://%s", s.addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server and closes the broadcaster.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Broadcaster.Close()
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"subscribers": s.hub.Broadcaster.SubscriptionCount(),
		"time":        time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, stateSnapshot(s.hub.Session))
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("monitor: error encoding JSON: %v", err)
	}
}

