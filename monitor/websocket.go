package monitor

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wsClient is one connected websocket observer.
type wsClient struct {
	conn         *websocket.Conn
	send         chan Event
	subscription *Subscription
	broadcaster  *Broadcaster
	mu           sync.Mutex
}

// subscribeRequest is the client message that selects which event types
// to receive; an empty Types list means "everything".
type subscribeRequest struct {
	Types []string `json:"types"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("monitor: websocket upgrade error: %v", err)
		return
	}

	client := &wsClient{
		conn:        conn,
		send:        make(chan Event, 256),
		broadcaster: s.hub.Broadcaster,
	}

	go client.writePump()
	go client.readPump()
}

func (c *wsClient) readPump() {
	defer func() {
		c.cleanup()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("monitor: websocket error: %v", err)
			}
			break
		}

		var req subscribeRequest
		if err := json.Unmarshal(message, &req); err != nil {
			log.Printf("monitor: failed to parse subscribe request: %v", err)
			continue
		}
		c.subscribe(req)
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(event); err != nil {
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

func (c *wsClient) subscribe(req subscribeRequest) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.subscription != nil {
		c.broadcaster.Unsubscribe(c.subscription)
	}

	types := make([]EventType, len(req.Types))
	for i, t := range req.Types {
		types[i] = EventType(t)
	}

	c.subscription = c.broadcaster.Subscribe(types)
	go c.forwardEvents()
}

func (c *wsClient) forwardEvents() {
	c.mu.Lock()
	sub := c.subscription
	c.mu.Unlock()
	if sub == nil {
		return
	}

	for event := range sub.Channel {
		select {
		case c.send <- event:
		default:
		}
	}
}

func (c *wsClient) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.subscription != nil {
		c.broadcaster.Unsubscribe(c.subscription)
		c.subscription = nil
	}
}
