package live

import (
	"context"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/louisbranch/userboard/internal/platform/timeouts"
	"github.com/louisbranch/userboard/internal/services/admin/userlist"
)

const (
	pingPeriod     = (timeouts.WebsocketPong * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 16
)

// Hub fans events out to every connected users view.
type Hub struct {
	upgrader   websocket.Upgrader
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	done       chan struct{}
	clients    atomic.Int64
	now        func() time.Time
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates a hub. Call Run before serving connections.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, sendBuffer),
		done:       make(chan struct{}),
		now:        time.Now,
	}
}

// Run dispatches events until ctx ends, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	clients := make(map[*client]struct{})
	defer func() {
		close(h.done)
		for c := range clients {
			close(c.send)
		}
		h.clients.Store(0)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			clients[c] = struct{}{}
			h.clients.Store(int64(len(clients)))
		case c := <-h.unregister:
			if _, ok := clients[c]; ok {
				delete(clients, c)
				close(c.send)
				h.clients.Store(int64(len(clients)))
			}
		case payload := <-h.broadcast:
			for c := range clients {
				select {
				case c.send <- payload:
				default:
					// Slow client; it reconnects and re-fetches on its own.
					delete(clients, c)
					close(c.send)
				}
			}
			h.clients.Store(int64(len(clients)))
		}
	}
}

// Clients reports the number of connected clients.
func (h *Hub) Clients() int {
	return int(h.clients.Load())
}

// Broadcast queues event for every client. Events are dropped when the hub
// is stopped or its queue is full.
func (h *Hub) Broadcast(event Event) {
	payload, err := encodeEvent(event)
	if err != nil {
		log.Printf("live broadcast: %v", err)
		return
	}
	select {
	case <-h.done:
	case h.broadcast <- payload:
	default:
		log.Printf("live broadcast: queue full, dropping %s event", event.Type)
	}
}

// Refresher announces a refresh to local clients.
func (h *Hub) Refresher() userlist.Refresher {
	return userlist.RefresherFunc(func(context.Context) {
		h.Broadcast(RefreshEvent(h.now()))
	})
}

// ServeHTTP upgrades the request and streams events until either side
// closes.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("live upgrade: %v", err)
		return
	}
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()
		return
	case <-r.Context().Done():
		_ = conn.Close()
		return
	}

	go h.writePump(c)
	h.readPump(c)
}

// readPump only tracks liveness; browsers never send data.
func (h *Hub) readPump(c *client) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(timeouts.WebsocketPong))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(timeouts.WebsocketPong))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("live client closed: %v", err)
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(timeouts.WebsocketWrite))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(timeouts.WebsocketWrite))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
