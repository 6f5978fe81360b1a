package catalog

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/varoOP/videoplayer/internal/domain"
)

type Service interface {
	Load(ctx context.Context) domain.CatalogResult
	Reload(ctx context.Context) domain.CatalogResult
	Movies(ctx context.Context) []domain.Movie
	Movie(ctx context.Context, id string) (domain.Movie, bool)
}

type service struct {
	log  zerolog.Logger
	repo domain.CatalogRepository

	mu     sync.Mutex
	loaded bool
	result domain.CatalogResult
}

func NewService(log zerolog.Logger, repo domain.CatalogRepository) Service {
	return &service{
		log:  log.With().Str("module", "catalog").Logger(),
		repo: repo,
	}
}

// Load reads the catalog on first use and memoizes the result
func (s *service) Load(ctx context.Context) domain.CatalogResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.result = s.read(ctx)
		s.loaded = true
	}
	return s.result
}

// Reload drops the memoized result and reads the catalog again
func (s *service) Reload(ctx context.Context) domain.CatalogResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.result = s.read(ctx)
	s.loaded = true
	return s.result
}

// Movies never fails: any load failure is logged and yields an empty list
func (s *service) Movies(ctx context.Context) []domain.Movie {
	res := s.Load(ctx)
	if !res.OK() {
		return []domain.Movie{}
	}
	return res.Movies
}

func (s *service) Movie(ctx context.Context, id string) (domain.Movie, bool) {
	if id == "" {
		return domain.Movie{}, false
	}
	for _, m := range s.Movies(ctx) {
		if m.ID == id {
			return m, true
		}
	}
	return domain.Movie{}, false
}

func (s *service) read(ctx context.Context) domain.CatalogResult {
	movies, err := s.repo.Movies(ctx)
	if err != nil {
		status := classify(err)
		s.log.Error().Err(err).Str("status", string(status)).Msg("failed to load catalog")
		return domain.CatalogResult{Status: status, Movies: []domain.Movie{}, Err: err}
	}

	if len(movies) == 0 {
		s.log.Warn().Msg("catalog is empty")
		return domain.CatalogResult{Status: domain.CatalogStatusEmpty, Movies: []domain.Movie{}}
	}

	s.log.Debug().Int("count", len(movies)).Msg("loaded catalog")
	return domain.CatalogResult{Status: domain.CatalogStatusOK, Movies: movies}
}

func classify(err error) domain.CatalogStatus {
	var ce *domain.CatalogError
	if errors.As(err, &ce) {
		return ce.Status
	}
	return domain.CatalogStatusIOError
}
