package notification

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varoOP/videoplayer/internal/domain"
)

func webhookServer(t *testing.T, status int) (*httptest.Server, *[]discordWebhook) {
	t.Helper()

	var received []discordWebhook
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload discordWebhook
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		received = append(received, payload)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, &received
}

func TestDiscordService_SendSuccess(t *testing.T) {
	srv, received := webhookServer(t, http.StatusNoContent)

	d := NewDiscordService(zerolog.Nop(), srv.URL)
	d.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	err := d.SendSuccess(context.Background(), domain.Statistics{
		Source:          "catalog.json",
		TotalMovies:     4,
		WithTrailer:     3,
		WithSubtitles:   2,
		WithThumbnail:   4,
		DistinctGenres:  5,
		TrailerCoverage: 75,
	})
	require.NoError(t, err)

	require.Len(t, *received, 1)
	embed := (*received)[0].Embeds[0]
	assert.Equal(t, "Catalog import finished", embed.Title)
	assert.Equal(t, "2024-05-01T12:00:00Z", embed.Timestamp)
	assert.Equal(t, colorSuccess, embed.Color)
	require.Len(t, embed.Fields, 5)
	assert.Equal(t, "4", embed.Fields[0].Value)
	assert.Equal(t, "3 (75.0%)", embed.Fields[1].Value)
}

func TestDiscordService_SendError(t *testing.T) {
	srv, received := webhookServer(t, http.StatusOK)

	d := NewDiscordService(zerolog.Nop(), srv.URL)
	require.NoError(t, d.SendError(context.Background(), errors.New(strings.Repeat("x", 5000))))

	require.Len(t, *received, 1)
	embed := (*received)[0].Embeds[0]
	assert.Equal(t, colorFailure, embed.Color)
	assert.Len(t, embed.Description, maxDescription+6)
}

func TestDiscordService_BadStatus(t *testing.T) {
	srv, _ := webhookServer(t, http.StatusBadRequest)

	d := NewDiscordService(zerolog.Nop(), srv.URL)
	err := d.SendSuccess(context.Background(), domain.Statistics{})
	assert.Error(t, err)
}

func TestService_Disabled(t *testing.T) {
	s := NewService(zerolog.Nop(), "")
	assert.False(t, s.Enabled())
	assert.NoError(t, s.SendSuccess(context.Background(), domain.Statistics{}))
	assert.NoError(t, s.SendError(context.Background(), errors.New("boom")))
}
