package hub

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"gamereviews/internal/logging"
	"gamereviews/internal/metrics"
	"gamereviews/internal/service"
)

// KeepAliveInterval is how often an idle stream receives a comment line
var KeepAliveInterval = 30 * time.Second

// Client represents a connected SSE client
type Client struct {
	id     string
	events chan []byte
}

// Hub manages SSE client connections
type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan interface{}
	stopped    chan struct{}
}

// New creates a new Hub
func New() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan interface{}, 256),
		stopped:    make(chan struct{}),
	}
}

// Run starts the hub's event loop and returns when ctx is cancelled.
// Connected streams are closed on return.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		h.mu.Lock()
		for client := range h.clients {
			delete(h.clients, client)
			close(client.events)
			metrics.TrackStreamClient(false)
		}
		h.mu.Unlock()
		close(h.stopped)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			total := len(h.clients)
			h.mu.Unlock()
			metrics.TrackStreamClient(true)
			logging.Debug().Str("client_id", client.id).Int("total", total).Msg("SSE client connected")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.events)
				metrics.TrackStreamClient(false)
			}
			total := len(h.clients)
			h.mu.Unlock()
			logging.Debug().Str("client_id", client.id).Int("total", total).Msg("SSE client disconnected")

		case event := <-h.broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				logging.Error().Err(err).Msg("Failed to marshal event")
				continue
			}

			msg := []byte(fmt.Sprintf("data: %s\n\n", data))

			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.events <- msg:
				default:
					logging.Warn().Str("client_id", client.id).Msg("SSE client is slow, skipping message")
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast sends an event to all connected clients
func (h *Hub) Broadcast(event interface{}) {
	select {
	case h.broadcast <- event:
	default:
		logging.Warn().Msg("Broadcast channel full, dropping event")
	}
}

// Relay subscribes to the event bus and broadcasts every event until ctx
// is cancelled
func (h *Hub) Relay(ctx context.Context, bus *service.EventBus) {
	events := make(chan service.Event, 64)
	bus.Subscribe(events)
	defer bus.Unsubscribe(events)

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			h.Broadcast(ev)
		}
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeHTTP handles SSE connections
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "SSE not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	// Streams outlive the server's WriteTimeout
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
		logging.Debug().Err(err).Msg("Could not clear write deadline")
	}

	client := &Client{
		id:     uuid.NewString(),
		events: make(chan []byte, 64),
	}

	select {
	case h.register <- client:
	case <-h.stopped:
		http.Error(w, "event stream closed", http.StatusServiceUnavailable)
		return
	case <-r.Context().Done():
		return
	}

	defer func() {
		select {
		case h.unregister <- client:
		case <-h.stopped:
		}
	}()

	fmt.Fprintf(w, ": connected\n\n")
	flusher.Flush()

	ticker := time.NewTicker(KeepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-client.events:
			if !ok {
				return
			}
			if _, err := w.Write(msg); err != nil {
				return
			}
			flusher.Flush()

		case <-ticker.C:
			if _, err := fmt.Fprintf(w, ": keepalive\n\n"); err != nil {
				return
			}
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
