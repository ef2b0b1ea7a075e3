// Live order feed over websocket. The feed is wired to the order store's
// Subscribe hook so every created or updated order is pushed to all
// connected dashboard clients.
package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/HA2345567/buttonhaus/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// OrderFeed fans order events out to websocket clients.
type OrderFeed struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	log     zerolog.Logger
}

func NewOrderFeed(log zerolog.Logger) *OrderFeed {
	return &OrderFeed{
		clients: make(map[*websocket.Conn]bool),
		log:     log,
	}
}

// Handler upgrades the connection and parks it in the client set. The read
// loop only exists to detect the client going away.
func (f *OrderFeed) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			f.log.Warn().Err(err).Msg("websocket upgrade failed")
			return
		}
		defer conn.Close()

		f.mu.Lock()
		f.clients[conn] = true
		f.mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				f.mu.Lock()
				delete(f.clients, conn)
				f.mu.Unlock()
				break
			}
		}
	}
}

// Broadcast pushes one order to every connected client. Dead connections
// are dropped on write failure.
func (f *OrderFeed) Broadcast(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for client := range f.clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			client.Close()
			delete(f.clients, client)
		}
	}
}
