package port

import (
	"context"

	"github.com/voxlink/relay/internal/core/domain"
)

type SignalGateway interface {
	// SendToEndpoint delivers an event to one live endpoint. An unknown or
	// already-dead endpoint id is a silent no-op, not an error.
	SendToEndpoint(ctx context.Context, endpointID string, evt domain.Event) error
	// BroadcastExcept delivers an event to every connected endpoint but the
	// named one.
	BroadcastExcept(ctx context.Context, endpointID string, evt domain.Event) error
}
