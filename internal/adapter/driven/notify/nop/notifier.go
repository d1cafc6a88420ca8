package nop

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Notifier stands in for FCM when no credentials are configured. It logs the
// wakeup and drops it, so the relay stays runnable in development.
type Notifier struct{}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Send(ctx context.Context, token string, data map[string]string) error {
	log.Warn().Str("caller_id", data["callerId"]).Msg("Push notifier not configured, dropping wakeup")
	return nil
}
