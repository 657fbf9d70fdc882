package livereload

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/goleak"

	"github.com/jayshree-infra/website/internal/content"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	return conn
}

func TestHubBroadcast(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()

	a, b := dial(t, srv), dial(t, srv)
	defer a.Close()
	defer b.Close()
	waitFor(t, func() bool { return hub.Clients() == 2 })

	hub.Broadcast(ReloadMessage)
	for _, conn := range []*websocket.Conn{a, b} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if string(msg) != ReloadMessage {
			t.Errorf("got %q, want %q", msg, ReloadMessage)
		}
	}

	hub.Close()
	if hub.Clients() != 0 {
		t.Error("clients left after Close")
	}
	for _, conn := range []*websocket.Conn{a, b} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		if _, _, err := conn.ReadMessage(); !websocket.IsCloseError(err, websocket.CloseGoingAway) {
			t.Errorf("expected going-away close, got %v", err)
		}
	}
}

func TestHubClientDisconnect(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, srv)
	waitFor(t, func() bool { return hub.Clients() == 1 })
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()
	waitFor(t, func() bool { return hub.Clients() == 0 })

	// Broadcasting to nobody is fine.
	hub.Broadcast(ReloadMessage)
}

func TestHubRejectsAfterClose(t *testing.T) {
	hub := NewHub()
	hub.Close()
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("expected the connection to be dropped")
	}
	if hub.Clients() != 0 {
		t.Error("closed hub accepted a client")
	}
}

func TestReloadCallback(t *testing.T) {
	hub := NewHub()
	var applied *content.Directory
	apply := func(d *content.Directory) error { applied = d; return nil }

	hub.Reload(func() (*content.Directory, error) { return nil, errors.New("bad yaml") }, apply)()
	if applied != nil {
		t.Fatal("failed load should not be applied")
	}

	dir := content.Default()
	hub.Reload(func() (*content.Directory, error) { return dir, nil }, apply)()
	if applied != dir {
		t.Error("loaded directory not applied")
	}
}
