package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lumaui/luma/pkg/ui"
)

// testConfig returns a config suitable for fast tests. Metrics are off
// so repeated Server construction never collides on the default
// Prometheus registry.
func testConfig() *ServerConfig {
	cfg := DefaultServerConfig()
	cfg.EnableMetrics = false
	cfg.ReadTimeout = 2 * time.Second
	cfg.WriteTimeout = 2 * time.Second
	cfg.HeartbeatInterval = time.Hour
	return cfg
}

func startServer(t *testing.T, root RootFunc) (*Server, *httptest.Server) {
	t.Helper()
	s := New(testConfig())
	s.SetRoot(root)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg map[string]any
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read error: %v", err)
	}
	return msg
}

func TestHealthz(t *testing.T) {
	_, ts := startServer(t, nil)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestEventRoundTrip(t *testing.T) {
	root := func(c *ui.Client) {
		label := c.NewElement("q-label")
		label.On("click", func(ui.Event) {
			label.SetText("clicked")
		})
	}
	_, ts := startServer(t, root)
	conn := dial(t, ts)

	frame, _ := json.Marshal(map[string]any{"id": 0, "type": "click"})
	if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		t.Fatalf("write error: %v", err)
	}

	msg := readMessage(t, conn)
	if msg["event"] != ui.EventUpdate {
		t.Fatalf("event = %v, want %q", msg["event"], ui.EventUpdate)
	}
	payload, ok := msg["payload"].(map[string]any)
	if !ok {
		t.Fatalf("payload = %v, want object", msg["payload"])
	}
	elements, ok := payload["elements"].(map[string]any)
	if !ok {
		t.Fatalf("elements = %v, want object", payload["elements"])
	}
	el, ok := elements["0"].(map[string]any)
	if !ok {
		t.Fatalf("element 0 missing from %v", elements)
	}
	if el["text"] != "clicked" {
		t.Errorf("text = %v, want clicked", el["text"])
	}
}

func TestMalformedFrameDoesNotKillSession(t *testing.T) {
	root := func(c *ui.Client) {
		btn := c.NewElement("q-btn")
		btn.On("click", func(ui.Event) {
			btn.SetText("ok")
		})
	}
	_, ts := startServer(t, root)
	conn := dial(t, ts)

	// Garbage first, then a valid frame. The session must survive.
	conn.WriteMessage(websocket.TextMessage, []byte(`not json`))
	conn.WriteMessage(websocket.TextMessage, []byte(`{"id": 99, "type": "click"}`))

	frame, _ := json.Marshal(map[string]any{"id": 0, "type": "click"})
	if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		t.Fatalf("write error: %v", err)
	}

	msg := readMessage(t, conn)
	if msg["event"] != ui.EventUpdate {
		t.Errorf("event = %v, want update after recovery", msg["event"])
	}
}

func TestHandlerPanicIsContained(t *testing.T) {
	root := func(c *ui.Client) {
		btn := c.NewElement("q-btn")
		btn.On("boom", func(ui.Event) {
			panic("handler exploded")
		})
		btn.On("click", func(ui.Event) {
			btn.SetText("alive")
		})
	}
	_, ts := startServer(t, root)
	conn := dial(t, ts)

	conn.WriteMessage(websocket.TextMessage, []byte(`{"id": 0, "type": "boom"}`))
	conn.WriteMessage(websocket.TextMessage, []byte(`{"id": 0, "type": "click"}`))

	msg := readMessage(t, conn)
	if msg["event"] != ui.EventUpdate {
		t.Errorf("event = %v, session must survive a handler panic", msg["event"])
	}
}

func TestSessionLifecycle(t *testing.T) {
	s, ts := startServer(t, nil)

	conn := dial(t, ts)
	waitFor(t, func() bool { return s.SessionCount() == 1 })

	conn.Close()
	waitFor(t, func() bool { return s.SessionCount() == 0 })
}

func TestMetricsEndpoint(t *testing.T) {
	cfg := testConfig()
	cfg.EnableMetrics = true

	s := New(cfg)
	// Swap in an isolated registry so parallel tests never clash with
	// the default registerer.
	s.metrics = newMetrics(prometheus.NewRegistry())
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}
