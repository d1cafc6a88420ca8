package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/voxlink/relay/internal/core/domain"
	"github.com/voxlink/relay/internal/core/port"
)

// Registry reconciles live transport endpoints with persisted presence
// records. It is the sole writer of the store; the router only reads.
type Registry struct {
	store port.PresenceStore
}

func NewRegistry(store port.PresenceStore) *Registry {
	return &Registry{store: store}
}

// Register upserts the presence record for userID to online at endpointID.
// Re-registering the same endpoint is a no-op, so a reconnect storm from one
// client costs at most one persisted write. The push token is replaced only
// when the client supplied one. A store failure is logged and reported to
// the caller but leaves the previous record intact.
func (r *Registry) Register(ctx context.Context, userID, endpointID, pushToken string) error {
	existing, err := r.store.Get(ctx, userID)
	if err != nil && !errors.Is(err, port.ErrNotFound) {
		log.Error().Err(err).Str("user_id", userID).Msg("Register: presence read failed")
		return err
	}

	if err == nil && existing.EndpointID == endpointID {
		return nil
	}

	rec := domain.PresenceRecord{
		UserID:     userID,
		EndpointID: endpointID,
		PushToken:  existing.PushToken,
		Status:     domain.StatusOnline,
		LastSeen:   time.Now(),
	}
	if pushToken != "" {
		rec.PushToken = pushToken
	}

	if err := r.store.Set(ctx, rec); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Register: presence write failed")
		return err
	}

	log.Info().Str("user_id", userID).Str("endpoint_id", endpointID).Msg("User registered")
	return nil
}

// Lookup reads the current record straight from the store, so routing always
// reflects the latest registration even across relay restarts sharing the
// same store.
func (r *Registry) Lookup(ctx context.Context, userID string) (domain.PresenceRecord, error) {
	return r.store.Get(ctx, userID)
}

// MarkOffline clears the endpoint binding for userID. Unknown user ids are a
// no-op; store failures are logged and swallowed.
func (r *Registry) MarkOffline(ctx context.Context, userID string) {
	existing, err := r.store.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, port.ErrNotFound) {
			log.Error().Err(err).Str("user_id", userID).Msg("MarkOffline: presence read failed")
		}
		return
	}

	existing.EndpointID = ""
	existing.Status = domain.StatusOffline
	existing.LastSeen = time.Now()

	if err := r.store.Set(ctx, existing); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("MarkOffline: presence write failed")
		return
	}

	log.Info().Str("user_id", userID).Msg("User marked offline")
}
