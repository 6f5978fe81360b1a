package notification

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/varoOP/videoplayer/internal/domain"
)

var _ domain.NotificationService = (*Service)(nil)

// Service fans notifications out to every configured channel.
// With no channel configured every call is a no-op.
type Service struct {
	discord *DiscordService
}

func NewService(log zerolog.Logger, webhookURL string) *Service {
	var discord *DiscordService
	if webhookURL != "" {
		discord = NewDiscordService(log, webhookURL)
	}

	return &Service{discord: discord}
}

// Enabled reports whether any channel is configured
func (s *Service) Enabled() bool {
	return s.discord != nil
}

func (s *Service) SendSuccess(ctx context.Context, stats domain.Statistics) error {
	if s.discord == nil {
		return nil
	}
	return s.discord.SendSuccess(ctx, stats)
}

func (s *Service) SendError(ctx context.Context, err error) error {
	if s.discord == nil {
		return nil
	}
	return s.discord.SendError(ctx, err)
}
