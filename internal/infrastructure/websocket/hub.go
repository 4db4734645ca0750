package websocket

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"familymarket/pkg/logger"
)

// Client is one connected browser session, keyed by user ID.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte
}

// Hub tracks connected clients and pushes notification payloads to them.
// FCM covers devices that are offline; the hub covers tabs that are open.
type Hub struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	mutex      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte),
	}
}

// Start runs the hub's main loop in a goroutine until ctx is done.
func (h *Hub) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-h.Register:
				h.mutex.Lock()
				h.clients[client.UserID] = client
				h.mutex.Unlock()
				logger.Debug("Notification client connected: %s", client.UserID)

			case client := <-h.Unregister:
				h.mutex.Lock()
				if _, ok := h.clients[client.UserID]; ok {
					delete(h.clients, client.UserID)
					close(client.Send)
				}
				h.mutex.Unlock()
				logger.Debug("Notification client disconnected: %s", client.UserID)

			case message := <-h.broadcast:
				h.mutex.Lock()
				for userID, client := range h.clients {
					select {
					case client.Send <- message:
					default:
						close(client.Send)
						delete(h.clients, userID)
					}
				}
				h.mutex.Unlock()

			case <-ctx.Done():
				return
			}
		}
	}()
}

// SendToUser pushes a payload to one user's open connection, if any.
func (h *Hub) SendToUser(userID string, message []byte) {
	h.mutex.RLock()
	client, ok := h.clients[userID]
	h.mutex.RUnlock()

	if ok {
		select {
		case client.Send <- message:
		default:
		}
	}
}

// Broadcast pushes a payload to every connected client.
func (h *Hub) Broadcast(message []byte) {
	h.broadcast <- message
}

// ReadPump drains the connection until the client disconnects. Inbound
// messages are ignored; the notification channel is one-way.
func (c *Client) ReadPump(h *Hub) {
	defer func() {
		h.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("WebSocket read error: %v", err)
			}
			break
		}
	}
}

// WritePump forwards queued payloads to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Warn("WebSocket write error: %v", err)
			return
		}
	}
}
