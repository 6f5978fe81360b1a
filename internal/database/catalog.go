package database

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/varoOP/videoplayer/internal/domain"
)

// insertBatchSize keeps multi-row inserts well below SQLite's variable limit
const insertBatchSize = 200

var movieColumns = []string{"movie_id", "title", "trailer_url", "thumbnail", "banner", "subtitle", "bio", "year", "genres"}

// CatalogRepo implements domain.CatalogStore
type CatalogRepo struct {
	log zerolog.Logger
	db  *DB
}

// NewCatalogRepo creates a new catalog repository
func NewCatalogRepo(log zerolog.Logger, db *DB) *CatalogRepo {
	return &CatalogRepo{
		log: log.With().Str("repo", "catalog").Logger(),
		db:  db,
	}
}

var _ domain.CatalogStore = (*CatalogRepo)(nil)

// Import describes a completed catalog import
type Import struct {
	Source     string
	MovieCount int
	ImportedAt time.Time
}

// ReplaceMovies swaps the stored catalog for movies in one transaction
func (r *CatalogRepo) ReplaceMovies(ctx context.Context, movies []domain.Movie) error {
	return r.ReplaceMoviesFrom(ctx, "", movies)
}

// ReplaceMoviesFrom is ReplaceMovies recording source in the import log
func (r *CatalogRepo) ReplaceMoviesFrom(ctx context.Context, source string, movies []domain.Movie) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query, args, err := r.db.squirrel.Delete("movies").ToSql()
	if err != nil {
		return errors.Wrap(err, "error building delete query")
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "error executing delete query")
	}

	now := time.Now().Format(time.RFC3339)
	for start := 0; start < len(movies); start += insertBatchSize {
		end := min(start+insertBatchSize, len(movies))

		queryBuilder := r.db.squirrel.
			Insert("movies").
			Columns(append([]string{"position"}, append(movieColumns, "imported_at")...)...)
		for i, m := range movies[start:end] {
			queryBuilder = queryBuilder.Values(start+i, m.ID, m.Title, m.TrailerURL, m.Thumbnail, m.Banner, m.Subtitle, m.Bio, m.Year, m.Genres, now)
		}

		query, args, err := queryBuilder.ToSql()
		if err != nil {
			return errors.Wrap(err, "error building insert query")
		}

		r.log.Trace().Str("query", query).Int("rows", end-start).Msg("ReplaceMovies")

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return errors.Wrap(err, "error executing insert query")
		}
	}

	query, args, err = r.db.squirrel.
		Insert("imports").
		Columns("source", "movie_count", "imported_at").
		Values(source, len(movies), now).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "error building import log query")
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "error executing import log query")
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "error committing catalog import")
	}
	return nil
}

// Movies returns the stored catalog in import order
func (r *CatalogRepo) Movies(ctx context.Context) ([]domain.Movie, error) {
	queryBuilder := r.db.squirrel.
		Select(movieColumns...).
		From("movies").
		OrderBy("position ASC")

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("Movies")

	rows, err := r.db.handler.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &domain.CatalogError{Status: domain.CatalogStatusIOError, Source: r.db.path, Err: errors.Wrap(err, "error executing query")}
	}
	defer rows.Close()

	movies := []domain.Movie{}
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, &domain.CatalogError{Status: domain.CatalogStatusParseError, Source: r.db.path, Err: err}
		}
		movies = append(movies, m)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.CatalogError{Status: domain.CatalogStatusIOError, Source: r.db.path, Err: errors.Wrap(err, "error iterating rows")}
	}

	return movies, nil
}

// Movie returns the first stored movie with id
func (r *CatalogRepo) Movie(ctx context.Context, id string) (*domain.Movie, error) {
	queryBuilder := r.db.squirrel.
		Select(movieColumns...).
		From("movies").
		Where(sq.Eq{"movie_id": id}).
		OrderBy("position ASC").
		Limit(1)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("Movie")

	m, err := scanMovie(r.db.handler.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Count returns the number of stored movies
func (r *CatalogRepo) Count(ctx context.Context) (int, error) {
	query, args, err := r.db.squirrel.Select("COUNT(*)").From("movies").ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "error building query")
	}

	var n int
	if err := r.db.handler.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "error executing query")
	}
	return n, nil
}

// LastImport returns the most recent import, or nil when nothing was imported
func (r *CatalogRepo) LastImport(ctx context.Context) (*Import, error) {
	query, args, err := r.db.squirrel.
		Select("source", "movie_count", "imported_at").
		From("imports").
		OrderBy("id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error building query")
	}

	var (
		imp Import
		at  string
	)
	err = r.db.handler.QueryRowContext(ctx, query, args...).Scan(&imp.Source, &imp.MovieCount, &at)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "error executing query")
	}

	imp.ImportedAt, err = time.Parse(time.RFC3339Nano, at)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing import time")
	}
	return &imp, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovie(row rowScanner) (domain.Movie, error) {
	var m domain.Movie
	err := row.Scan(&m.ID, &m.Title, &m.TrailerURL, &m.Thumbnail, &m.Banner, &m.Subtitle, &m.Bio, &m.Year, &m.Genres)
	if err != nil {
		return domain.Movie{}, errors.Wrap(err, "error scanning row")
	}
	return m, nil
}
