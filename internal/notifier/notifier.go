package notifier

import (
	"context"
	"fmt"
	"time"

	"firebase.google.com/go/v4/messaging"
	"github.com/anonto42/boujee-triggers/internal/models"
)

// Notifier sends one push notification to one device token.
type Notifier interface {
	Send(ctx context.Context, token string, payload models.NotificationPayload) (string, error)
}

// FCMNotifier implements Notifier with Firebase Cloud Messaging.
type FCMNotifier struct {
	client  *messaging.Client
	timeout time.Duration
}

// NewFCMNotifier creates a notifier; a zero timeout leaves the caller's deadline alone.
func NewFCMNotifier(client *messaging.Client, timeout time.Duration) *FCMNotifier {
	return &FCMNotifier{client: client, timeout: timeout}
}

// Send returns the FCM message id.
func (n *FCMNotifier) Send(ctx context.Context, token string, payload models.NotificationPayload) (string, error) {
	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	id, err := n.client.Send(ctx, BuildMessage(token, payload))
	if err != nil {
		return "", fmt.Errorf("fcm send: %w", err)
	}
	return id, nil
}

// BuildMessage maps a payload onto an FCM message. Badge and sound go to the
// APNs aps dictionary; sound is mirrored on the Android notification.
func BuildMessage(token string, payload models.NotificationPayload) *messaging.Message {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
	}
	if len(payload.Data) > 0 {
		msg.Data = payload.Data
	}

	if payload.Badge != nil || payload.Sound != "" {
		msg.APNS = &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Badge: payload.Badge,
					Sound: payload.Sound,
				},
			},
		}
	}
	if payload.Sound != "" {
		msg.Android = &messaging.AndroidConfig{
			Notification: &messaging.AndroidNotification{Sound: payload.Sound},
		}
	}
	return msg
}
