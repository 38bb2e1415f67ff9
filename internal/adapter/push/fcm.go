package push

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCMNotifier delivers notifications through Firebase Cloud Messaging to
// the single configured device.
type FCMNotifier struct {
	client *messaging.Client
	token  string
}

func NewFCMNotifier(ctx context.Context, credentialsFile, projectID, deviceToken string) (*FCMNotifier, error) {
	var conf *firebase.Config
	if projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init fcm client: %w", err)
	}
	return &FCMNotifier{client: client, token: deviceToken}, nil
}

func (n *FCMNotifier) Send(ctx context.Context, title, body string) error {
	_, err := n.client.Send(ctx, &messaging.Message{
		Token: n.token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	})
	return err
}
