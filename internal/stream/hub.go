// Package stream publishes meshes to browser viewers over websocket.
package stream

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"voxlife/internal/mesh"
)

const writeWait = 2 * time.Second

// Frame is the JSON message sent for every installed mesh.
type Frame struct {
	Type      string       `json:"type"`
	ID        mesh.ID      `json:"id"`
	Faces     int          `json:"faces"`
	Positions [][3]float32 `json:"positions"`
	Normals   [][3]float32 `json:"normals"`
	States    []uint8      `json:"states"`
	Indices   []uint32     `json:"indices"`
}

// clearFrame is sent when the installed mesh is destroyed.
type clearFrame struct {
	Type string  `json:"type"`
	ID   mesh.ID `json:"id"`
}

// Hub is a mesh.Sink that forwards meshes to every connected client. A
// client that connects late receives the current mesh straight away.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*websocket.Conn]*sync.Mutex
	next    mesh.ID
	current []byte
}

// NewHub returns a hub accepting connections from any origin.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]*sync.Mutex),
	}
}

// EncodeFrame builds the wire frame for m.
func EncodeFrame(id mesh.ID, m *mesh.Mesh) Frame {
	f := Frame{
		Type:      "mesh",
		ID:        id,
		Faces:     m.FaceCount,
		Positions: make([][3]float32, len(m.Positions)),
		Normals:   make([][3]float32, len(m.Normals)),
		States:    append([]uint8(nil), m.States...),
		Indices:   append([]uint32(nil), m.Indices...),
	}
	for i, p := range m.Positions {
		f.Positions[i] = p
	}
	for i, n := range m.Normals {
		f.Normals[i] = n
	}
	return f
}

// CreateMesh encodes m once and sends it to every client.
func (h *Hub) CreateMesh(m *mesh.Mesh) mesh.ID {
	h.mu.Lock()
	h.next++
	id := h.next
	h.mu.Unlock()

	payload, err := json.Marshal(EncodeFrame(id, m))
	if err != nil {
		log.Printf("stream: encode mesh %d: %v", id, err)
		return id
	}
	h.mu.Lock()
	h.current = payload
	h.mu.Unlock()
	h.broadcast(payload)
	return id
}

// DestroyMesh tells clients to drop the mesh.
func (h *Hub) DestroyMesh(id mesh.ID) {
	payload, err := json.Marshal(clearFrame{Type: "clear", ID: id})
	if err != nil {
		log.Printf("stream: encode clear %d: %v", id, err)
		return
	}
	h.mu.Lock()
	h.current = nil
	h.mu.Unlock()
	h.broadcast(payload)
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) broadcast(payload []byte) {
	h.mu.RLock()
	conns := make(map[*websocket.Conn]*sync.Mutex, len(h.clients))
	for c, m := range h.clients {
		conns[c] = m
	}
	h.mu.RUnlock()

	for conn, connMu := range conns {
		if err := send(conn, connMu, payload); err != nil {
			log.Printf("stream: write to %s: %v", conn.RemoteAddr(), err)
			h.drop(conn)
		}
	}
}

func send(conn *websocket.Conn, connMu *sync.Mutex, payload []byte) error {
	connMu.Lock()
	defer connMu.Unlock()
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	h.mu.Unlock()
	if ok {
		conn.Close()
	}
}

// ServeHTTP upgrades the request and keeps the client registered until it
// disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("stream: websocket upgrade:", err)
		return
	}
	connMu := &sync.Mutex{}

	h.mu.Lock()
	h.clients[conn] = connMu
	current := h.current
	h.mu.Unlock()
	defer h.drop(conn)

	if current != nil {
		if err := send(conn, connMu, current); err != nil {
			log.Printf("stream: initial mesh to %s: %v", conn.RemoteAddr(), err)
			return
		}
	}

	// Clients only listen; reading keeps control frames flowing and notices
	// disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Handler returns a mux serving the hub at /ws.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]int{"clients": h.Clients()})
	})
	return mux
}
