package service

import "context"

// NotificationService pushes short alerts to the admin dashboard devices.
type NotificationService interface {
	// SendTopicNotification fans the message out to every device subscribed to topic.
	SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error
}
