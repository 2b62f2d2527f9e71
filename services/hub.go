package services

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans answer-submission events out to websocket clients watching a
// quiz. Delivery is best effort: a slow client is dropped rather than
// blocking submissions. A nil hub is a no-op.
type Hub struct {
	mutex   sync.RWMutex
	clients map[*Client]bool
}

type Client struct {
	hub    *Hub
	socket *websocket.Conn
	send   chan []byte
	quizID uint
}

type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]bool),
	}
}

// RegisterClient attaches a websocket connection to a quiz feed and starts
// its pumps. The hub owns the connection from here on.
func (h *Hub) RegisterClient(conn *websocket.Conn, quizID uint) {
	client := &Client{
		hub:    h,
		socket: conn,
		send:   make(chan []byte, 16),
		quizID: quizID,
	}

	h.mutex.Lock()
	h.clients[client] = true
	h.mutex.Unlock()
	log.Printf("Client subscribed to quiz %d - total clients: %d", quizID, h.clientCount())

	go client.writePump()
	go client.readPump()
}

// BroadcastToQuiz sends a typed message to every client watching the quiz.
func (h *Hub) BroadcastToQuiz(quizID uint, messageType string, payload interface{}) {
	if h == nil {
		return
	}

	data, err := json.Marshal(Message{Type: messageType, Payload: payload})
	if err != nil {
		log.Printf("Error marshaling %s message: %v", messageType, err)
		return
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()
	for client := range h.clients {
		if client.quizID != quizID {
			continue
		}
		select {
		case client.send <- data:
		default:
			// Client is not keeping up; let its writePump exit.
			go h.unregister(client)
		}
	}
}

func (h *Hub) unregister(client *Client) {
	h.mutex.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	h.mutex.Unlock()
}

func (h *Hub) clientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

func (c *Client) writePump() {
	defer c.socket.Close()
	for message := range c.send {
		if err := c.socket.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

// readPump discards client frames; the feed is one-way. It exists to notice
// the peer closing the connection.
func (c *Client) readPump() {
	defer c.hub.unregister(c)
	for {
		if _, _, err := c.socket.ReadMessage(); err != nil {
			return
		}
	}
}
