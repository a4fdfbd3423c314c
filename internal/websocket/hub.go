package websocket

import (
	"encoding/json"
	"sync"

	"task-scheduler/internal/models"

	"github.com/gofiber/websocket/v2"
)

// Event is a task change notification pushed to connected clients.
type Event struct {
	Action string      `json:"action"` // created, updated, deleted
	Task   models.Task `json:"task"`
}

// Client represents a connected WebSocket client.
type Client struct {
	Conn *websocket.Conn
	Mu   sync.Mutex
}

// Hub manages WebSocket connections. All client state is owned by the
// Run goroutine.
type Hub struct {
	Clients    map[*Client]bool
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Broadcast:  make(chan []byte, 64),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Publish queues a task event without blocking the request path. Events
// are dropped when the hub is saturated or not running.
func (h *Hub) Publish(action string, task models.Task) {
	payload, err := json.Marshal(Event{Action: action, Task: task})
	if err != nil {
		return
	}
	select {
	case h.Broadcast <- payload:
	default:
	}
}

// Run manages register, unregister, and broadcast.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true
		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				client.Conn.Close()
			}
		case message := <-h.Broadcast:
			for client := range h.Clients {
				client.Mu.Lock()
				err := client.Conn.WriteMessage(websocket.TextMessage, message)
				client.Mu.Unlock()
				if err != nil {
					delete(h.Clients, client)
					client.Conn.Close()
				}
			}
		}
	}
}
