package ws

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/voxlink/relay/internal/core/domain"
	"github.com/voxlink/relay/internal/core/port"
)

// Hub tracks every connected endpoint by its endpoint id and implements
// port.SignalGateway. Exactly one presence record may point at a given live
// endpoint, so the id is the only routing key the hub needs.
type Hub struct {
	mu         sync.Mutex
	clients    map[string]port.Client
	register   chan port.Client
	unregister chan port.Client
	quit       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]port.Client),
		register:   make(chan port.Client),
		unregister: make(chan port.Client),
		quit:       make(chan struct{}),
	}
}

// SendToEndpoint delivers evt to one endpoint. An unknown endpoint id is a
// silent no-op: a stale presence record pointing at a dead connection is not
// a routing error.
func (h *Hub) SendToEndpoint(ctx context.Context, endpointID string, evt domain.Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	client, ok := h.clients[endpointID]
	if !ok {
		return nil
	}
	if err := client.Send(evt); err != nil {
		log.Error().Err(err).Str("endpoint_id", endpointID).Msg("Error sending event")
		client.Close()
		delete(h.clients, endpointID)
	}
	return nil
}

// BroadcastExcept delivers evt to every connected endpoint except the named
// one.
func (h *Hub) BroadcastExcept(ctx context.Context, endpointID string, evt domain.Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, client := range h.clients {
		if id == endpointID {
			continue
		}
		if err := client.Send(evt); err != nil {
			log.Error().Err(err).Str("endpoint_id", id).Msg("Error broadcasting event")
			client.Close()
			delete(h.clients, id)
		}
	}
	return nil
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.quit:
			h.mu.Lock()
			for id, client := range h.clients {
				client.Close()
				delete(h.clients, id)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID()] = client
			h.mu.Unlock()
			log.Info().Str("endpoint_id", client.ID()).Msg("Endpoint registered")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID()]; ok {
				delete(h.clients, client.ID())
				client.Close()
				log.Info().Str("endpoint_id", client.ID()).Msg("Endpoint unregistered")
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) Register(c port.Client) {
	h.register <- c
}

func (h *Hub) Unregister(c port.Client) {
	h.unregister <- c
}

func (h *Hub) Stop() {
	close(h.quit)
}
