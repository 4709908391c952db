package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	srv, err := New(Config{Address: ":0"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return srv
}

func TestHandleHealth(t *testing.T) {
	srv := testServer(t)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatalf("GET /api/health: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decoding health response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", body["status"])
	}
}

func TestHandleRenderReturnsPNG(t *testing.T) {
	srv := testServer(t)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/render?scene=head-on&width=16&height=12&mode=par")
	if err != nil {
		t.Fatalf("GET /api/render: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}
}

func TestHandleRenderValidation(t *testing.T) {
	srv := testServer(t)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	tests := []string{
		"/api/render?width=0",
		"/api/render?height=-5",
		"/api/render?width=9000",
		"/api/render?mode=gpu",
		"/api/render?scene=cornell",
		"/api/render?width=abc",
	}
	for _, path := range tests {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, resp.StatusCode)
		}
	}
}

func TestHandleRenderWSStreamsToCompletion(t *testing.T) {
	srv := testServer(t)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/render?scene=head-on&width=32&height=24"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	sawProgress := false
	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("ReadJSON: %v", err)
		}

		switch msg.Type {
		case "progress":
			sawProgress = true
			if msg.ColumnsDone <= 0 || msg.ColumnsDone > msg.TotalColumns {
				t.Errorf("Bad progress %d/%d", msg.ColumnsDone, msg.TotalColumns)
			}
		case "complete":
			if msg.ImageData == "" {
				t.Error("Expected image data in completion message")
			}
			if msg.ThumbData == "" {
				t.Error("Expected thumbnail data in completion message")
			}
			if !sawProgress {
				t.Error("Expected at least one progress message before completion")
			}
			return
		case "error":
			t.Fatalf("Render error: %s", msg.Error)
		default:
			t.Fatalf("Unexpected message type %q", msg.Type)
		}
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9999")
	t.Setenv("S3_BUCKET", "renders")

	cfg := ConfigFromEnv()
	if cfg.Address != ":9999" {
		t.Errorf("Expected address :9999, got %q", cfg.Address)
	}
	if cfg.S3Bucket != "renders" {
		t.Errorf("Expected bucket renders, got %q", cfg.S3Bucket)
	}
}
