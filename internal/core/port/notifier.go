package port

import "context"

// PushNotifier delivers a data-only wakeup to a device token. Delivery is
// best effort; the caller treats failure as logged-and-done.
type PushNotifier interface {
	Send(ctx context.Context, token string, data map[string]string) error
}
