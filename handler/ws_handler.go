package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/ramesh-vyboina/cluck-credit-tracker/realtime"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// WSHandler upgrades dashboard connections and registers them on the hub.
type WSHandler struct {
	hub *realtime.Hub
}

func NewWSHandler(hub *realtime.Hub) *WSHandler { return &WSHandler{hub: hub} }

// DashboardSocket upgrades to WS; the client only listens for ledger events.
func (h *WSHandler) DashboardSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		wc := h.hub.Register(conn)
		// no inbound events are expected; hold the connection until closed
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.hub.Unregister(wc)
				break
			}
		}
	}
}
