package services

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"daylist-app/daylist/broker"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type StreamServiceInterface interface {
	Start() error
	Stop()
	HandleConnection(c *gin.Context)
}

// streamClient is one connected WebSocket subscriber.
type streamClient struct {
	userID string
	conn   *websocket.Conn
	send   chan []byte
}

// StreamService forwards a user's own todo events from the broker to that
// user's connected WebSocket clients. Without a consumer (broker down or
// disabled) connections are still accepted; they just receive nothing.
type StreamService struct {
	consumer *broker.Consumer

	mu      sync.RWMutex
	clients map[*streamClient]bool

	upgrader websocket.Upgrader
}

func NewStreamService(consumer *broker.Consumer) *StreamService {
	return &StreamService{
		consumer: consumer,
		clients:  make(map[*streamClient]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (s *StreamService) Start() error {
	if s.consumer == nil {
		log.Println("Event stream is running without a broker; no events will be delivered")
		return nil
	}
	return s.consumer.Subscribe(broker.TodoEventsSubject, s.dispatch)
}

func (s *StreamService) Stop() {
	if s.consumer != nil {
		s.consumer.Close()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for client := range s.clients {
		close(client.send)
		client.conn.Close()
		delete(s.clients, client)
	}
}

// dispatch fans an event out to the clients of its owning user only.
func (s *StreamService) dispatch(event *broker.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal event %s: %v", event.ID, err)
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for client := range s.clients {
		if client.userID != event.UserID {
			continue
		}
		select {
		case client.send <- data:
		default:
			// Slow client; drop the event rather than block dispatch.
		}
	}
}

func (s *StreamService) HandleConnection(c *gin.Context) {
	userIDValue, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	userID := userIDValue.(uuid.UUID)

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	client := &streamClient{
		userID: userID.String(),
		conn:   conn,
		send:   make(chan []byte, 64),
	}

	s.mu.Lock()
	s.clients[client] = true
	s.mu.Unlock()

	go s.writePump(client)
	go s.readPump(client)
}

func (s *StreamService) writePump(client *streamClient) {
	for message := range client.send {
		if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

// readPump discards inbound frames; its job is noticing the close.
func (s *StreamService) readPump(client *streamClient) {
	defer s.unregister(client)
	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *StreamService) unregister(client *streamClient) {
	s.mu.Lock()
	if _, ok := s.clients[client]; ok {
		delete(s.clients, client)
		close(client.send)
	}
	s.mu.Unlock()
	client.conn.Close()
}
