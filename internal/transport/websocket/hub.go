// Package websocket
package websocket

import (
	"encoding/json"

	"pulsedeck-server/internal/logger"
)

type Event struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// Hub fans metric sweeps out to connected dashboard clients. All client
// bookkeeping happens on the Run goroutine.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	events     chan Event
	log        logger.Logger
}

func NewHub(log logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan Event, 100),
		log:        log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.log.Info("ws: client registered", "total_clients", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.log.Info("ws: client unregistered", "total_clients", len(h.clients))
			}

		case event := <-h.events:
			h.broadcast(event)
		}
	}
}

// Emit queues an event for all connected clients. Dropped when the hub is
// saturated rather than blocking the sampling loop.
func (h *Hub) Emit(event string, payload any) {
	select {
	case h.events <- Event{Event: event, Payload: payload}:
	default:
		h.log.Warn("ws: event buffer full, dropping", "event", event)
	}
}

func (h *Hub) broadcast(event Event) {
	message, err := json.Marshal(event)
	if err != nil {
		h.log.Error("ws: failed to marshal event", "error", err)
		return
	}

	for client := range h.clients {
		select {
		case client.send <- message:
		default:
			h.log.Warn("ws: client send buffer full, disconnecting")
			delete(h.clients, client)
			close(client.send)
		}
	}
}
