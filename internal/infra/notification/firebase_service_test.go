package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessagingClient struct {
	sent []*messaging.Message
	err  error
}

func (c *fakeMessagingClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	c.sent = append(c.sent, message)

	return "projects/test/messages/1", nil
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFirebaseService_SendTopicNotification(t *testing.T) {
	client := &fakeMessagingClient{}
	svc := &firebaseService{client: client, logger: newDiscardLogger()}

	err := svc.SendTopicNotification(context.Background(), "orders-kit", "New order", "KIT-1 placed", map[string]string{"reference": "KIT-1"})
	require.NoError(t, err)

	require.Len(t, client.sent, 1)
	assert.Equal(t, "orders-kit", client.sent[0].Topic)
	assert.Equal(t, "New order", client.sent[0].Notification.Title)
	assert.Equal(t, "KIT-1", client.sent[0].Data["reference"])
}

func TestFirebaseService_SendTopicNotification_Error(t *testing.T) {
	svc := &firebaseService{client: &fakeMessagingClient{err: errors.New("unavailable")}, logger: newDiscardLogger()}

	err := svc.SendTopicNotification(context.Background(), "orders-kit", "t", "b", nil)
	assert.ErrorContains(t, err, "orders-kit")
}

func TestNewNotificationService_NoopWhenUnconfigured(t *testing.T) {
	svc, err := NewNotificationService(context.Background(), &config.Config{}, newDiscardLogger())
	require.NoError(t, err)

	_, isNoop := svc.(*noopService)
	assert.True(t, isNoop)
	assert.NoError(t, svc.SendTopicNotification(context.Background(), "orders-tour", "t", "b", nil))
}
