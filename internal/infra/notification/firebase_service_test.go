package notification

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"bartile/config"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.sent = append(f.sent, message)

	return "projects/test/messages/1", f.err
}

func TestFirebaseService_SendTopicNotification(t *testing.T) {
	sender := &fakeSender{}
	svc := &firebaseService{client: sender}

	err := svc.SendTopicNotification(context.Background(), "admin-quotes", "New quote request", "Jane Doe", map[string]string{"quoteId": "q1"})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "admin-quotes", msg.Topic)
	assert.Equal(t, "New quote request", msg.Notification.Title)
	assert.Equal(t, "q1", msg.Data["quoteId"])
}

func TestFirebaseService_SendTopicNotification_Errors(t *testing.T) {
	svc := &firebaseService{client: &fakeSender{err: errors.New("unavailable")}}

	err := svc.SendTopicNotification(context.Background(), "", "t", "b", nil)
	assert.Error(t, err)

	err = svc.SendTopicNotification(context.Background(), "admin-quotes", "t", "b", nil)
	assert.ErrorContains(t, err, "unavailable")
}

func TestNewNotificationService_WithoutCredentials(t *testing.T) {
	svc, err := NewNotificationService(Params{
		Config: &config.Config{Firebase: &config.FirebaseConfig{}},
		Logger: slog.Default(),
	})
	require.NoError(t, err)
	assert.IsType(t, &noopService{}, svc)
	assert.NoError(t, svc.SendTopicNotification(context.Background(), "admin-quotes", "t", "b", nil))
}
