package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/voxlink/relay/internal/core/domain"
	"github.com/voxlink/relay/internal/core/port"
)

const keyPrefix = "users:"

// Store persists presence records as JSON documents keyed by user id,
// relying on Redis's per-key atomicity. Records have no TTL; a user that
// registered once stays in the store as an offline record.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// NewClient parses url, selects db and verifies the connection with a ping.
func NewClient(ctx context.Context, url string, db int) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	opt.DB = db

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func (s *Store) Get(ctx context.Context, userID string) (domain.PresenceRecord, error) {
	data, err := s.client.Get(ctx, keyPrefix+userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.PresenceRecord{}, port.ErrNotFound
		}
		return domain.PresenceRecord{}, fmt.Errorf("failed to get presence: %w", err)
	}

	var rec domain.PresenceRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return domain.PresenceRecord{}, fmt.Errorf("failed to unmarshal presence record: %w", err)
	}
	return rec, nil
}

func (s *Store) Set(ctx context.Context, rec domain.PresenceRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal presence record: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+rec.UserID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set presence: %w", err)
	}
	return nil
}
