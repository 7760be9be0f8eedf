package server

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Maximum message size allowed from peer.
	maxMessageSize = 512
	// Frames buffered per client before it is considered slow.
	sendBuffer = 16
)

// Client is a browser connected over WebSocket.
type Client struct {
	hub     *Hub
	session *Session
	conn    *websocket.Conn
	send    chan []byte
}

// NewClient creates a new WebSocket client and returns it.
func NewClient(hub *Hub, session *Session, conn *websocket.Conn) *Client {
	return &Client{
		hub:     hub,
		session: session,
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
	}
}

// ReadPump decodes commands from the connection and queues them on the
// session. Invalid commands are logged and dropped.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("WebSocket read failed: %v", err)
			}
			return
		}

		var cmd Command
		if err := json.Unmarshal(message, &cmd); err != nil {
			c.hub.logger.Warn("Failed to parse command: %v", err)
			continue
		}
		if err := c.session.Submit(cmd); err != nil {
			c.hub.logger.Warn("Rejected command: %v", err)
		}
	}
}

// WritePump sends frames from the hub as binary messages and keeps the
// connection alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case frame, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
