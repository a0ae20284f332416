package live

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"fulfill-backend/internal/metrics"
	"fulfill-backend/internal/progress"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ProgressEvent is pushed to connected dashboards whenever an order's derived
// progress changes (QC decision, evidence submission, lifecycle transition).
type ProgressEvent struct {
	OrderID     int                    `json:"order_id"`
	OrderLineID int                    `json:"order_line_id,omitempty"`
	Kind        string                 `json:"kind"` // 'qc_submitted', 'qc_decided', 'line_status'
	Aggregate   progress.Vector        `json:"aggregate"`
	Rejection   progress.RejectionInfo `json:"rejection"`
	Timestamp   time.Time              `json:"timestamp"`
}

// Hub fans progress events out to websocket clients. Slow clients are
// dropped rather than blocking the broadcast loop.
type Hub struct {
	clients    map[*websocket.Conn]bool
	clientsMux sync.Mutex
	broadcast  chan ProgressEvent
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan ProgressEvent, 64),
	}
}

// Run drains the broadcast channel; call in a goroutine from main
func (h *Hub) Run() {
	for event := range h.broadcast {
		h.clientsMux.Lock()
		for conn := range h.clients {
			conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := conn.WriteJSON(event); err != nil {
				conn.Close()
				delete(h.clients, conn)
				metrics.LiveClientsGauge.Dec()
			}
		}
		h.clientsMux.Unlock()
	}
}

// Publish queues an event for broadcast. Never blocks: if the buffer is full
// the event is dropped, clients recover on their next full fetch.
func (h *Hub) Publish(event ProgressEvent) {
	event.Timestamp = time.Now()
	select {
	case h.broadcast <- event:
	default:
		log.Printf("[Live] broadcast buffer full, dropping event for order %d", event.OrderID)
	}
}

// HandleWebSocket upgrades the connection and registers the client
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Live] websocket upgrade failed: %v", err)
		return
	}

	h.clientsMux.Lock()
	h.clients[conn] = true
	h.clientsMux.Unlock()
	metrics.LiveClientsGauge.Inc()

	// Reader loop exists only to detect close
	go func() {
		defer func() {
			h.clientsMux.Lock()
			if h.clients[conn] {
				delete(h.clients, conn)
				metrics.LiveClientsGauge.Dec()
			}
			h.clientsMux.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
