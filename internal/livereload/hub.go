// Package livereload tells open pages to refresh when the site content
// changes on disk.
package livereload

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jayshree-infra/website/internal/content"
)

// ReloadMessage is sent to every page after the content has been swapped.
const ReloadMessage = "reload"

const writeWait = 5 * time.Second

// Hub is the /ws/reload endpoint. It keeps one socket per open page.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool
}

type client struct {
	conn *websocket.Conn
	send chan string
}

// NewHub creates an empty hub. Only same-origin pages may connect.
func NewHub() *Hub {
	return &Hub{clients: make(map[*client]struct{})}
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("livereload: websocket upgrade: %v", err)
		return
	}
	c := &client{conn: conn, send: make(chan string, 4)}
	if !h.add(c) {
		conn.Close()
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range c.send {
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				conn.Close()
				return
			}
		}
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))
	}()

	// Pages never send anything; reading only detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("livereload: websocket read: %v", err)
			}
			break
		}
	}
	h.remove(c)
	<-done
	conn.Close()
}

func (h *Hub) add(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// Clients returns the number of connected pages.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast queues msg for every connected page. Pages that are not keeping
// up miss the message.
func (h *Hub) Broadcast(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
		}
	}
}

// Close disconnects every page and refuses new connections.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

// Reload returns a change callback for Watcher. It loads fresh content,
// hands it to apply and then tells pages to reload. When loading or applying
// fails the current content stays in place and the error is logged.
func (h *Hub) Reload(load func() (*content.Directory, error), apply func(*content.Directory) error) func() {
	return func() {
		dir, err := load()
		if err != nil {
			log.Printf("livereload: keeping current content: %v", err)
			return
		}
		if err := apply(dir); err != nil {
			log.Printf("livereload: keeping current content: %v", err)
			return
		}
		log.Printf("livereload: content reloaded (%d categories)", len(dir.Names()))
		h.Broadcast(ReloadMessage)
	}
}
