package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/varoOP/videoplayer/internal/domain"
)

func newTestRepo(t *testing.T) *CatalogRepo {
	t.Helper()
	db, err := NewDB(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewCatalogRepo(zerolog.Nop(), db)
}

func TestNewDB_MigrateIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	db, err := NewDB(dir, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	require.NoError(t, db.Ping(context.Background()))
	require.NoError(t, db.Close())

	db, err = NewDB(dir, zerolog.Nop())
	require.NoError(t, err)
	defer db.Close()

	var version int
	require.NoError(t, db.handler.QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, len(migrations), version)
}

func TestCatalogRepo_ReplaceAndReadPreservesOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	movies := []domain.Movie{
		{ID: "z", Title: "Last alphabetically", Genres: "Drama"},
		{ID: "a", Title: "First alphabetically", TrailerURL: "https://example.com/a.mp4"},
		{ID: "m", Title: "Middle", Bio: "It's <b>bold</b>"},
	}
	require.NoError(t, repo.ReplaceMoviesFrom(ctx, "data.json", movies))

	got, err := repo.Movies(ctx)
	require.NoError(t, err)
	assert.Equal(t, movies, got)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	imp, err := repo.LastImport(ctx)
	require.NoError(t, err)
	require.NotNil(t, imp)
	assert.Equal(t, "data.json", imp.Source)
	assert.Equal(t, 3, imp.MovieCount)
	assert.False(t, imp.ImportedAt.IsZero())
}

func TestCatalogRepo_ReplaceDropsPrevious(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceMovies(ctx, []domain.Movie{{ID: "old"}}))
	require.NoError(t, repo.ReplaceMovies(ctx, []domain.Movie{{ID: "new1"}, {ID: "new2"}}))

	got, err := repo.Movies(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new1", got[0].ID)

	_, err = repo.Movie(ctx, "old")
	assert.True(t, errors.Is(err, domain.ErrMovieNotFound))
}

func TestCatalogRepo_LargeImportSpansBatches(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	movies := make([]domain.Movie, insertBatchSize*2+7)
	for i := range movies {
		movies[i] = domain.Movie{ID: fmt.Sprintf("m%04d", i), Title: fmt.Sprintf("Movie %d", i)}
	}
	require.NoError(t, repo.ReplaceMovies(ctx, movies))

	got, err := repo.Movies(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(movies))
	assert.Equal(t, movies[len(movies)-1], got[len(got)-1])

	m, err := repo.Movie(ctx, "m0300")
	require.NoError(t, err)
	assert.Equal(t, "Movie 300", m.Title)
}

func TestCatalogRepo_EmptyDatabase(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	got, err := repo.Movies(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	imp, err := repo.LastImport(ctx)
	require.NoError(t, err)
	assert.Nil(t, imp)
}
