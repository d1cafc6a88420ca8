package port

import (
	"context"
	"errors"

	"github.com/voxlink/relay/internal/core/domain"
)

// ErrNotFound is returned by Get when no presence record exists for the
// user id.
var ErrNotFound = errors.New("presence record not found")

// PresenceStore is a document key-value store keyed by user id. Each Get and
// Set is a single atomic operation against one document; the relay never
// needs multi-document transactions.
type PresenceStore interface {
	Get(ctx context.Context, userID string) (domain.PresenceRecord, error)
	Set(ctx context.Context, rec domain.PresenceRecord) error
}
