// Package notification delivers admin push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"bartile/config"
	"bartile/internal/domain/lifecycle"
	"bartile/internal/domain/service"

	"go.uber.org/fx"
)

// Params holds dependencies for creating a NotificationService.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService returns a Firebase-backed service, or a logging no-op when
// no credentials are configured.
func NewNotificationService(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase credentials not configured, admin push notifications disabled")

		return &noopService{logger: params.Logger}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	return NewFirebaseService(ctx, cfg)
}

type noopService struct {
	logger *slog.Logger
}

func (s *noopService) SendTopicNotification(ctx context.Context, topic, title, _ string, _ map[string]string) error {
	s.logger.DebugContext(ctx, "Notification skipped",
		slog.String("topic", topic),
		slog.String("title", title))

	return nil
}
