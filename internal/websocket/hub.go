package chatws

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"sync"
	"time"

	websocket "github.com/gofiber/contrib/websocket"

	"github.com/vytal-health/DashboardBack/internal/models"
)

// Hub fans assistant replies out to every open connection a user has, so a
// second tab sees the same conversation.
type Hub struct {
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	deliver    chan *delivery
}

type delivery struct {
	userID  string
	payload []byte
}

type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	userID string

	mu     sync.Mutex
	closed bool
	send   chan []byte
}

// trySend queues a payload unless the channel is closed or full. The mutex
// keeps it safe against a concurrent closeSend from the hub goroutine.
func (c *Client) trySend(payload []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

type assistant interface {
	Chat(ctx context.Context, userID int64, message string) (*models.ChatExchange, error)
}

type Message struct {
	Type        string   `json:"type"`
	Content     string   `json:"content"`
	Topic       string   `json:"topic,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Timestamp   string   `json:"timestamp"`
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		deliver:    make(chan *delivery, 64),
	}
}

func NewClient(hub *Hub, conn *websocket.Conn, userID string) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		userID: userID,
		send:   make(chan []byte, 32),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			set, ok := h.clients[client.userID]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[client.userID] = set
			}
			set[client] = struct{}{}
		case client := <-h.unregister:
			set, ok := h.clients[client.userID]
			if !ok {
				continue
			}
			if _, exists := set[client]; exists {
				delete(set, client)
				client.closeSend()
			}
			if len(set) == 0 {
				delete(h.clients, client.userID)
			}
		case d := <-h.deliver:
			h.sendToUser(d.userID, d.payload)
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (h *Hub) sendToUser(userID string, payload []byte) {
	set, ok := h.clients[userID]
	if !ok {
		return
	}

	for client := range set {
		if !client.trySend(payload) {
			delete(set, client)
			client.closeSend()
		}
	}
	if len(set) == 0 {
		delete(h.clients, userID)
	}
}

func (c *Client) ReadPump(service assistant) {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	actorID, err := strconv.ParseInt(c.userID, 10, 64)
	if err != nil {
		writeError(c, "invalid user")
		return
	}

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var incoming struct {
			Type    string `json:"type"`
			Content string `json:"content"`
		}
		if err := json.Unmarshal(payload, &incoming); err != nil {
			writeError(c, "invalid message payload")
			continue
		}
		if incoming.Type != "message" {
			writeError(c, "unsupported message type")
			continue
		}

		exchange, err := service.Chat(context.Background(), actorID, incoming.Content)
		if err != nil {
			writeError(c, "failed to answer message")
			continue
		}

		encoded, err := json.Marshal(Message{
			Type:        "reply",
			Content:     exchange.Reply,
			Topic:       exchange.Topic,
			Suggestions: exchange.Suggestions,
			Timestamp:   FormatTimestamp(exchange.CreatedAt),
		})
		if err != nil {
			log.Printf("assistant hub encode reply: %v", err)
			continue
		}

		c.hub.deliver <- &delivery{userID: c.userID, payload: encoded}
	}
}

func (c *Client) WritePump() {
	defer func() {
		_ = c.conn.Close()
	}()

	for payload := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

func writeError(client *Client, message string) {
	payload, err := json.Marshal(Message{
		Type:      "error",
		Content:   message,
		Timestamp: FormatTimestamp(time.Now().UTC()),
	})
	if err != nil {
		return
	}
	if !client.trySend(payload) {
		client.hub.Unregister(client)
	}
}

func FormatTimestamp(ts time.Time) string {
	return ts.UTC().Format(time.RFC3339)
}
