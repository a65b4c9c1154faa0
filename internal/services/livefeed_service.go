package services

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"dukatrack-backend/internal/utils"
)

// FeedMessage is the envelope pushed to dashboard clients
type FeedMessage struct {
	Type    string      `json:"type"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// feedClient represents one connected dashboard
type feedClient struct {
	conn *websocket.Conn
	send chan FeedMessage
	hub  *feedHub
}

// feedHub maintains the set of connected dashboards and fans messages out
type feedHub struct {
	clients    map[*feedClient]bool
	broadcast  chan FeedMessage
	register   chan *feedClient
	unregister chan *feedClient
	mutex      sync.RWMutex
}

// LiveFeedService pushes the refreshed sales summary to connected owner
// dashboards whenever a sale is created, completed or rejected.
type LiveFeedService struct {
	hub      *feedHub
	upgrader websocket.Upgrader
	reports  *ReportService
}

// NewLiveFeedService creates a new live feed service
func NewLiveFeedService(reports *ReportService) *LiveFeedService {
	hub := &feedHub{
		clients:    make(map[*feedClient]bool),
		broadcast:  make(chan FeedMessage),
		register:   make(chan *feedClient),
		unregister: make(chan *feedClient),
	}

	service := &LiveFeedService{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// The endpoint already sits behind token auth
				return true
			},
		},
		reports: reports,
	}

	go hub.run()
	return service
}

func (h *feedHub) run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mutex.Unlock()

		case message := <-h.broadcast:
			h.mutex.RLock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow client; drop it rather than block the hub
					go func(c *feedClient) { h.unregister <- c }(client)
				}
			}
			h.mutex.RUnlock()
		}
	}
}

// HandleWebSocket upgrades the request and streams summary updates.
func (s *LiveFeedService) HandleWebSocket(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &feedClient{
		conn: conn,
		send: make(chan FeedMessage, 16),
		hub:  s.hub,
	}
	s.hub.register <- client

	go client.writePump()
	go client.readPump()
}

// PublishSummary recomputes the shop-wide summary and broadcasts it.
// Failures are logged and swallowed; a missed push never fails the
// operation that triggered it.
func (s *LiveFeedService) PublishSummary(ctx context.Context, shopID string) {
	summary, err := s.reports.SalesSummary(ctx, shopID, "", utils.NowEAT())
	if err != nil {
		log.Printf("Failed to compute summary for live feed: %v", err)
		return
	}
	s.hub.broadcast <- FeedMessage{
		Type: "sales_summary",
		Data: gin.H{"shopId": shopID, "summary": summary},
	}
}

// Broadcast sends an arbitrary message to every connected dashboard
func (s *LiveFeedService) Broadcast(msgType string, data interface{}) {
	s.hub.broadcast <- FeedMessage{Type: msgType, Data: data}
}

func (c *feedClient) writePump() {
	ticker := time.NewTicker(50 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(message); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *feedClient) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	for {
		// Dashboards only listen; drain and ignore anything they send
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
