package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/varoOP/videoplayer/internal/domain"
)

const (
	colorSuccess = 0x2ecc71
	colorFailure = 0xe74c3c

	// discord rejects embed descriptions above 4096 characters
	maxDescription = 4000
)

// DiscordService posts catalog import reports to a Discord webhook
type DiscordService struct {
	log        zerolog.Logger
	webhookURL string
	httpClient *http.Client
	now        func() time.Time
}

func NewDiscordService(log zerolog.Logger, webhookURL string) *DiscordService {
	return &DiscordService{
		log:        log.With().Str("module", "notification").Str("type", "discord").Logger(),
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		now: time.Now,
	}
}

// SendSuccess reports a finished import with its catalog statistics
func (s *DiscordService) SendSuccess(ctx context.Context, stats domain.Statistics) error {
	if s.webhookURL == "" {
		return nil
	}

	embed := discordEmbed{
		Title:       "Catalog import finished",
		Description: fmt.Sprintf("Imported `%s`", stats.Source),
		Color:       colorSuccess,
		Timestamp:   s.now().UTC().Format(time.RFC3339),
		Fields: []discordField{
			{Name: "Movies", Value: fmt.Sprintf("%d", stats.TotalMovies), Inline: true},
			{Name: "With trailer", Value: fmt.Sprintf("%d (%.1f%%)", stats.WithTrailer, stats.TrailerCoverage), Inline: true},
			{Name: "With subtitles", Value: fmt.Sprintf("%d", stats.WithSubtitles), Inline: true},
			{Name: "With thumbnail", Value: fmt.Sprintf("%d", stats.WithThumbnail), Inline: true},
			{Name: "Genres", Value: fmt.Sprintf("%d", stats.DistinctGenres), Inline: true},
		},
	}

	return s.sendWebhook(ctx, discordWebhook{Embeds: []discordEmbed{embed}})
}

// SendError reports a failed import
func (s *DiscordService) SendError(ctx context.Context, err error) error {
	if s.webhookURL == "" || err == nil {
		return nil
	}

	msg := err.Error()
	if len(msg) > maxDescription {
		msg = msg[:maxDescription]
	}

	embed := discordEmbed{
		Title:       "Catalog import failed",
		Description: fmt.Sprintf("```%s```", msg),
		Color:       colorFailure,
		Timestamp:   s.now().UTC().Format(time.RFC3339),
	}

	return s.sendWebhook(ctx, discordWebhook{Embeds: []discordEmbed{embed}})
}

func (s *DiscordService) sendWebhook(ctx context.Context, payload discordWebhook) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to marshal webhook payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to send webhook request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("webhook request failed with status %d", resp.StatusCode)
	}

	s.log.Debug().Msg("discord notification sent")
	return nil
}

type discordWebhook struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Color       int            `json:"color"`
	Timestamp   string         `json:"timestamp,omitempty"`
	Fields      []discordField `json:"fields,omitempty"`
}

type discordField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}
