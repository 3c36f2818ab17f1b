package realtime

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans ledger events out to connected dashboard clients. Delivery is
// best-effort: a failed write drops the client.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Conn]struct{})}
}

// Conn wraps a websocket connection with a write mutex to serialize writes.
type Conn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Register adds a dashboard connection to the hub.
func (h *Hub) Register(conn *websocket.Conn) *Conn {
	c := &Conn{conn: conn}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	return c
}

// Unregister removes and closes a connection.
func (h *Hub) Unregister(c *Conn) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		c.conn.Close()
		delete(h.clients, c)
	}
	h.mu.Unlock()
}

// Broadcast sends a typed event payload to every connected client. Clients
// whose write fails are dropped.
func (h *Hub) Broadcast(event string, payload any) {
	h.mu.RLock()
	clients := make([]*Conn, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	msg := map[string]any{"event": event, "data": payload}
	for _, c := range clients {
		c.mu.Lock()
		err := c.conn.WriteJSON(msg)
		c.mu.Unlock()
		if err != nil {
			log.Printf("ws: write failed for event %s: %v", event, err)
			h.Unregister(c)
		}
	}
}

// TransactionPayload is broadcast when a sale, order or payment is recorded.
type TransactionPayload struct {
	CustomerID uint    `json:"customer_id"`
	Type       string  `json:"type"`
	Amount     float64 `json:"amount"`
}
