package port

import "github.com/voxlink/relay/internal/core/domain"

type Client interface {
	ID() string
	Send(evt domain.Event) error
	Close() error
}
