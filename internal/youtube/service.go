package youtube

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/varoOP/videoplayer/internal/domain"
)

// Service appends pasted URLs to session queues and optionally resolves titles
type Service struct {
	log      zerolog.Logger
	sessions *Sessions
	resolver domain.TitleResolver
}

// NewService builds the queue service. A nil resolver disables title lookups.
func NewService(log zerolog.Logger, sessions *Sessions, resolver domain.TitleResolver) *Service {
	if sessions == nil {
		sessions = NewSessions()
	}
	return &Service{
		log:      log.With().Str("module", "youtube").Logger(),
		sessions: sessions,
		resolver: resolver,
	}
}

func (s *Service) Sessions() *Sessions {
	return s.sessions
}

// Queue returns the queue of a session, see Sessions.Get
func (s *Service) Queue(sessionID string) (string, *Queue) {
	return s.sessions.Get(sessionID)
}

// Enqueue extracts the id from raw and appends it to q.
// Reports false and leaves q untouched when no id is found.
func (s *Service) Enqueue(ctx context.Context, q *Queue, raw string) (domain.QueueEntry, bool) {
	entry, ok := q.AddURL(strings.TrimSpace(raw))
	if !ok {
		s.log.Debug().Str("input", raw).Msg("no video id found")
		return entry, false
	}
	s.log.Debug().Str("videoId", entry.VideoID).Msg("queued video")

	if s.resolver == nil {
		return entry, true
	}

	title, err := s.resolver.ResolveTitle(ctx, entry.VideoID)
	if err != nil {
		s.log.Warn().Err(err).Str("videoId", entry.VideoID).Msg("could not resolve title")
		return entry, true
	}

	q.SetTitle(entry.VideoID, title)
	entry.Title = title
	return entry, true
}
