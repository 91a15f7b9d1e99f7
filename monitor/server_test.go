package monitor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ikle/enigma/block"
	"github.com/ikle/enigma/code"
	"github.com/ikle/enigma/stepper"
)

func newTestServer() (*Server, *httptest.Server) {
	blocks := []*block.Block{
		block.New(block.Position{Line: 1}).Code(code.G00).Set(code.X, 1).Build(),
	}
	hub := NewHub(stepper.NewSession(blocks))
	srv := NewServer("", hub)
	return srv, httptest.NewServer(srv.Handler())
}

func TestHealthEndpoint(t *testing.T) {
	srv, ts := newTestServer()
	defer ts.Close()
	defer srv.hub.Broadcaster.Close()

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status=ok, got %v", body["status"])
	}
}

func TestHealthRejectsNonGet(t *testing.T) {
	srv, ts := newTestServer()
	defer ts.Close()
	defer srv.hub.Broadcaster.Close()

	resp, err := http.Post(ts.URL+"/health", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /health failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.StatusCode)
	}
}

func TestStateEndpoint(t *testing.T) {
	srv, ts := newTestServer()
	defer ts.Close()
	defer srv.hub.Broadcaster.Close()

	resp, err := http.Get(ts.URL + "/api/v1/state")
	if err != nil {
		t.Fatalf("GET /api/v1/state failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if _, ok := body["index"]; !ok {
		t.Errorf("expected a state snapshot with an index field, got %v", body)
	}
}
