package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/varoOP/videoplayer/internal/catalog"
	"github.com/varoOP/videoplayer/internal/config"
	"github.com/varoOP/videoplayer/internal/database"
	"github.com/varoOP/videoplayer/internal/domain"
	"github.com/varoOP/videoplayer/internal/logger"
	"github.com/varoOP/videoplayer/internal/notification"
	"github.com/varoOP/videoplayer/internal/repository"
)

// App represents the main application with all dependencies initialized
type App struct {
	log                 zerolog.Logger
	config              *domain.Config
	paths               *domain.Paths
	fileRepo            *repository.FileRepository
	notificationService domain.NotificationService
}

// NewApp loads the configuration and builds the application
func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return New(cfg), nil
}

// New builds the application from an already validated config
func New(cfg *domain.Config) *App {
	log := logger.NewLoggerWithLevel(cfg.LogLevel)

	return &App{
		log:                 log,
		config:              cfg,
		paths:               domain.NewPaths(cfg.DataDir),
		fileRepo:            repository.NewFileRepository(log),
		notificationService: notification.NewService(log, cfg.DiscordWebhookURL),
	}
}

func (a *App) Logger() zerolog.Logger {
	return a.log
}

func (a *App) Config() *domain.Config {
	return a.config
}

func sourceName(path string) string {
	if path == "" {
		return repository.BundledSource
	}
	return path
}

// catalogRepository opens the configured catalog source.
// The returned close func must be called once the repository is no longer used.
func (a *App) catalogRepository() (domain.CatalogRepository, func(), error) {
	switch a.config.CatalogSource {
	case domain.CatalogSourceSQLite:
		db, err := database.NewDB(a.paths.DataDir, a.log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		closeDB := func() {
			if err := db.Close(); err != nil {
				a.log.Warn().Err(err).Msg("failed to close database")
			}
		}
		return database.NewCatalogRepo(a.log, db), closeDB, nil

	default:
		return a.fileRepo.Catalog(a.config.CatalogPath), func() {}, nil
	}
}

// ListCatalog loads the configured catalog once
func (a *App) ListCatalog(ctx context.Context) (domain.CatalogResult, error) {
	repo, closeRepo, err := a.catalogRepository()
	if err != nil {
		return domain.CatalogResult{}, err
	}
	defer closeRepo()

	return catalog.NewService(a.log, repo).Load(ctx), nil
}

// CatalogStats describes the configured catalog
func (a *App) CatalogStats(ctx context.Context) (domain.Statistics, domain.CatalogResult, error) {
	res, err := a.ListCatalog(ctx)
	if err != nil {
		return domain.Statistics{}, res, err
	}

	source := sourceName(a.config.CatalogPath)
	if a.config.CatalogSource == domain.CatalogSourceSQLite {
		source = a.paths.DatabasePath
	}

	return catalog.DescribeStatistics(source, res.Movies), res, nil
}

// FormatCatalog rewrites a catalog document in canonical form.
// An empty out rewrites in place; the bundled catalog always needs an out path.
func (a *App) FormatCatalog(ctx context.Context, in, out string) (int, error) {
	if out == "" {
		out = in
	}
	if out == "" {
		return 0, fmt.Errorf("an output path is required to format the bundled catalog")
	}

	movies, err := a.fileRepo.Get(ctx, in)
	if err != nil {
		return 0, fmt.Errorf("failed to read catalog: %w", err)
	}

	if err := a.fileRepo.Store(ctx, out, movies); err != nil {
		return 0, fmt.Errorf("failed to store catalog: %w", err)
	}

	a.log.Info().Str("in", sourceName(in)).Str("out", out).Int("count", len(movies)).Msg("formatted catalog")
	return len(movies), nil
}

// ImportCatalog copies a catalog document into the database and reports the outcome
func (a *App) ImportCatalog(ctx context.Context, path string) (stats domain.Statistics, err error) {
	defer func() {
		if err != nil {
			if notifyErr := a.notificationService.SendError(ctx, err); notifyErr != nil {
				a.log.Warn().Err(notifyErr).Msg("failed to send error notification")
			}
		}
	}()

	source := sourceName(path)

	movies, err := a.fileRepo.Get(ctx, path)
	if err != nil {
		return stats, fmt.Errorf("failed to read catalog: %w", err)
	}

	db, err := database.NewDB(a.paths.DataDir, a.log)
	if err != nil {
		return stats, fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repo := database.NewCatalogRepo(a.log, db)
	if err := repo.ReplaceMoviesFrom(ctx, source, movies); err != nil {
		return stats, fmt.Errorf("failed to import catalog: %w", err)
	}

	stats = catalog.DescribeStatistics(source, movies)
	a.log.Info().
		Str("source", stats.Source).
		Str("database", db.Path()).
		Int("total_movies", stats.TotalMovies).
		Int("with_trailer", stats.WithTrailer).
		Int("with_subtitles", stats.WithSubtitles).
		Int("distinct_genres", stats.DistinctGenres).
		Float64("trailer_coverage_pct", stats.TrailerCoverage).
		Msg("catalog imported")

	if notifyErr := a.notificationService.SendSuccess(ctx, stats); notifyErr != nil {
		a.log.Warn().Err(notifyErr).Msg("failed to send success notification")
	}

	return stats, nil
}

// LastImport returns the most recent catalog import, or nil when nothing was imported
func (a *App) LastImport(ctx context.Context) (*database.Import, error) {
	db, err := database.NewDB(a.paths.DataDir, a.log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	return database.NewCatalogRepo(a.log, db).LastImport(ctx)
}
