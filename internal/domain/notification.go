package domain

import "context"

// NotificationService defines the interface for notification services
type NotificationService interface {
	// SendSuccess sends a success notification with statistics
	SendSuccess(ctx context.Context, stats Statistics) error

	// SendError sends an error notification with error details
	SendError(ctx context.Context, err error) error
}

// Statistics summarizes a catalog
type Statistics struct {
	Source          string
	TotalMovies     int
	WithTrailer     int
	WithSubtitles   int
	WithThumbnail   int
	DistinctGenres  int
	TrailerCoverage float64
}
