package server

import (
	"context"
	"sync"

	"github.com/sheikhrachel/go-wireworld/utils"
)

// Hub maintains the set of active clients and broadcasts frames to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	stopped    chan struct{}
	last       []byte
	mu         sync.Mutex
	logger     *utils.Logger
}

// NewHub initializes a new WebSocket Hub.
func NewHub(log *utils.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		stopped:    make(chan struct{}),
		clients:    make(map[*Client]bool),
		logger:     log,
	}
}

// Run starts the Hub's main loop to handle client connections and broadcasts.
// A newly registered client immediately receives the latest frame.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.stopped)
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("WebSocket hub shutting down")
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			if h.last != nil {
				select {
				case client.send <- h.last:
				default:
				}
			}
			h.mu.Unlock()
			h.logger.Info("WebSocket client connected")
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Info("WebSocket client disconnected")
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			h.last = message
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
					h.logger.Warn("Dropped slow WebSocket client")
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast hands a frame to the hub. Frames are shared between clients and
// must not be modified afterwards.
func (h *Hub) Broadcast(ctx context.Context, frame []byte) {
	select {
	case h.broadcast <- frame:
	case <-ctx.Done():
	case <-h.stopped:
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.stopped:
	}
}

// Unregister removes a client from the hub.
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.stopped:
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
