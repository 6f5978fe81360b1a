package catalog

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/varoOP/videoplayer/internal/domain"
)

type fakeRepo struct {
	movies []domain.Movie
	err    error
	calls  int
}

func (f *fakeRepo) Movies(ctx context.Context) ([]domain.Movie, error) {
	f.calls++
	return f.movies, f.err
}

func TestService_LoadOK(t *testing.T) {
	repo := &fakeRepo{movies: []domain.Movie{{ID: "a"}, {ID: "b"}}}
	s := NewService(zerolog.Nop(), repo)

	res := s.Load(context.Background())
	assert.Equal(t, domain.CatalogStatusOK, res.Status)
	assert.Len(t, res.Movies, 2)
	assert.NoError(t, res.Err)
}

func TestService_LoadIsMemoized(t *testing.T) {
	repo := &fakeRepo{movies: []domain.Movie{{ID: "a"}}}
	s := NewService(zerolog.Nop(), repo)
	ctx := context.Background()

	s.Load(ctx)
	s.Movies(ctx)
	s.Movie(ctx, "a")
	assert.Equal(t, 1, repo.calls)

	repo.movies = append(repo.movies, domain.Movie{ID: "b"})
	res := s.Reload(ctx)
	assert.Equal(t, 2, repo.calls)
	assert.Len(t, res.Movies, 2)
}

func TestService_EmptyCatalog(t *testing.T) {
	s := NewService(zerolog.Nop(), &fakeRepo{movies: []domain.Movie{}})

	res := s.Load(context.Background())
	assert.Equal(t, domain.CatalogStatusEmpty, res.Status)
	assert.True(t, res.OK())
	assert.NotNil(t, res.Movies)
}

func TestService_FailuresYieldEmptyMovies(t *testing.T) {
	cases := map[string]struct {
		err  error
		want domain.CatalogStatus
	}{
		"parse": {
			err:  &domain.CatalogError{Status: domain.CatalogStatusParseError, Source: "data.json", Err: errors.New("bad")},
			want: domain.CatalogStatusParseError,
		},
		"io": {
			err:  &domain.CatalogError{Status: domain.CatalogStatusIOError, Source: "data.json", Err: errors.New("missing")},
			want: domain.CatalogStatusIOError,
		},
		"wrapped parse": {
			err:  errors.Wrap(&domain.CatalogError{Status: domain.CatalogStatusParseError, Err: errors.New("bad")}, "repo"),
			want: domain.CatalogStatusParseError,
		},
		"unclassified": {
			err:  errors.New("database locked"),
			want: domain.CatalogStatusIOError,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			s := NewService(zerolog.Nop(), &fakeRepo{err: tc.err})
			ctx := context.Background()

			res := s.Load(ctx)
			assert.Equal(t, tc.want, res.Status)
			assert.False(t, res.OK())
			assert.Error(t, res.Err)

			movies := s.Movies(ctx)
			assert.NotNil(t, movies)
			assert.Empty(t, movies)
		})
	}
}

func TestService_MovieLookup(t *testing.T) {
	s := NewService(zerolog.Nop(), &fakeRepo{movies: []domain.Movie{{ID: "1", Title: "One"}, {ID: "2", Title: "Two"}}})
	ctx := context.Background()

	m, ok := s.Movie(ctx, "2")
	assert.True(t, ok)
	assert.Equal(t, "Two", m.Title)

	_, ok = s.Movie(ctx, "3")
	assert.False(t, ok)

	_, ok = s.Movie(ctx, "")
	assert.False(t, ok)
}
