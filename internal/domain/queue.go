package domain

import (
	"context"
	"time"
)

// QueueEntry is one queued YouTube video
type QueueEntry struct {
	VideoID string    `json:"video_id"`
	Title   string    `json:"title,omitempty"`
	AddedAt time.Time `json:"added_at"`
}

// TitleResolver looks up the display title of a YouTube video
type TitleResolver interface {
	ResolveTitle(ctx context.Context, videoID string) (string, error)
}
