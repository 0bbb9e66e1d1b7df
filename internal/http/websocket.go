package http

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"auto360_server/internal/models"
	"auto360_server/pkg/colors"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Console and server may run on different origins
		return true
	},
}

// WebSocketHub fans intake events out to connected admin consoles so the
// intake monitor updates without polling
type WebSocketHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mutex      sync.RWMutex
}

// WebSocketMessage represents a message sent through WebSocket
type WebSocketMessage struct {
	Type      string      `json:"type"`
	Timestamp string      `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// IntakeFileEvent is broadcast when a device upload is recorded
type IntakeFileEvent struct {
	ID         string `json:"id"`
	StoreID    string `json:"store_id"`
	DeviceID   string `json:"device_id"`
	SourceType string `json:"source_type"`
	FileName   string `json:"file_name"`
	FileHash   string `json:"file_hash"`
	Status     string `json:"status"`
	Duplicate  bool   `json:"duplicate"`
}

// Global WebSocket hub instance
var WSHub *WebSocketHub

// NewWebSocketHub creates a new WebSocket hub
func NewWebSocketHub() *WebSocketHub {
	return &WebSocketHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan []byte),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// InitializeWebSocket starts the global hub
func InitializeWebSocket() {
	WSHub = NewWebSocketHub()
	go WSHub.Run()
}

// Run starts the WebSocket hub
func (h *WebSocketHub) Run() {
	colors.PrintServer("WebSocket hub started - intake monitor ready")

	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()
			colors.PrintConnection("WebSocket client connected. Total clients: %d", len(h.clients))

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
			}
			h.mutex.Unlock()
			colors.PrintConnection("WebSocket client disconnected. Total clients: %d", len(h.clients))

		case message := <-h.broadcast:
			h.mutex.RLock()
			for client := range h.clients {
				if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
					client.Close()
					delete(h.clients, client)
				}
			}
			h.mutex.RUnlock()
		}
	}
}

// BroadcastIntakeFile notifies connected consoles of a new upload event
func (h *WebSocketHub) BroadcastIntakeFile(file *models.IntakeFile, duplicate bool) {
	msg := WebSocketMessage{
		Type:      "intake_file",
		Timestamp: time.Now().Format(time.RFC3339),
		Data: IntakeFileEvent{
			ID:         file.ID,
			StoreID:    file.StoreID,
			DeviceID:   file.DeviceID,
			SourceType: file.SourceType,
			FileName:   file.FileName,
			FileHash:   file.FileHash,
			Status:     string(file.Status),
			Duplicate:  duplicate,
		},
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		colors.PrintError("Failed to marshal intake event: %v", err)
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		// No listeners draining the channel; drop rather than block intake
	}
}

// HandleWebSocket upgrades the connection and parks it in the hub
func HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		colors.PrintError("WebSocket upgrade failed: %v", err)
		return
	}

	WSHub.register <- conn

	// Reader loop only detects disconnects; clients never send data
	go func() {
		defer func() {
			WSHub.unregister <- conn
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}()
}
