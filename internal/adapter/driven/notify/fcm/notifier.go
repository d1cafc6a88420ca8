package fcm

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Notifier sends data-only FCM messages. No notification body is attached;
// the receiving app decides how to surface the wakeup.
type Notifier struct {
	client *messaging.Client
}

func NewNotifier(ctx context.Context, credentialsFile, projectID string) (*Notifier, error) {
	var cfg *firebase.Config
	if projectID != "" {
		cfg = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, cfg, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create FCM client: %w", err)
	}
	return &Notifier{client: client}, nil
}

func (n *Notifier) Send(ctx context.Context, token string, data map[string]string) error {
	_, err := n.client.Send(ctx, &messaging.Message{
		Token: token,
		Data:  data,
	})
	return err
}
