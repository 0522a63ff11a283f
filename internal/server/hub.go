package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// #region messages
// StatusMessage is broadcast to every connected client when a geometry
// job changes state.
type StatusMessage struct {
	Type       string `json:"type"`
	Stage      string `json:"stage"` // "processing" | "done"
	Material   string `json:"material,omitempty"`
	Style      string `json:"style,omitempty"`
	Price      int    `json:"price,omitempty"`
	ServerTime int64  `json:"serverTime"`
}

// #endregion messages

// #region hub
type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Hub tracks websocket subscribers for the job status stream. Writes to
// each connection are serialized per subscriber.
type Hub struct {
	mu          sync.Mutex
	subscribers map[string]*subscriber
	nextID      atomic.Uint64
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[string]*subscriber)}
}

func (h *Hub) subscribe(conn *websocket.Conn) string {
	id := fmt.Sprintf("client-%d", h.nextID.Add(1))
	h.mu.Lock()
	h.subscribers[id] = &subscriber{conn: conn}
	h.mu.Unlock()
	return id
}

func (h *Hub) disconnect(id string) {
	h.mu.Lock()
	sub, ok := h.subscribers[id]
	delete(h.subscribers, id)
	h.mu.Unlock()
	if ok {
		sub.conn.Close()
	}
}

// Broadcast sends a status message to every subscriber. Subscribers
// whose writes fail are dropped.
func (h *Hub) Broadcast(msg StatusMessage) {
	msg.ServerTime = time.Now().UnixMilli()
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[SERVER] failed to marshal status message: %v", err)
		return
	}

	h.mu.Lock()
	subs := make(map[string]*subscriber, len(h.subscribers))
	for id, sub := range h.subscribers {
		subs[id] = sub
	}
	h.mu.Unlock()

	for id, sub := range subs {
		sub.mu.Lock()
		sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
		err := sub.conn.WriteMessage(websocket.TextMessage, data)
		sub.mu.Unlock()
		if err != nil {
			log.Printf("[SERVER] dropping subscriber %s: %v", id, err)
			h.disconnect(id)
		}
	}
}

// #endregion hub

// #region ws-handler
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// handleWS upgrades the connection and keeps it registered until the
// client goes away. Incoming messages are drained and discarded; the
// stream is server-to-client only.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[SERVER] websocket upgrade failed: %v", err)
		return
	}

	id := s.hub.subscribe(conn)
	defer s.hub.disconnect(id)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// #endregion ws-handler
