package repository

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/varoOP/videoplayer/internal/assets"
	"github.com/varoOP/videoplayer/internal/catalog"
	"github.com/varoOP/videoplayer/internal/domain"
)

// BundledSource names the embedded catalog in logs and errors
const BundledSource = "bundled:" + assets.CatalogFile

// FileRepository implements domain.CatalogFileRepository using file storage.
// An empty path reads the bundled catalog.
type FileRepository struct {
	log     zerolog.Logger
	bundled fs.FS
}

// NewFileRepository creates a new file-based repository
func NewFileRepository(log zerolog.Logger) *FileRepository {
	return NewFileRepositoryWithFS(log, assets.FS)
}

// NewFileRepositoryWithFS creates a repository whose bundled catalog is read from fsys
func NewFileRepositoryWithFS(log zerolog.Logger, fsys fs.FS) *FileRepository {
	return &FileRepository{
		log:     log.With().Str("module", "repository").Logger(),
		bundled: fsys,
	}
}

var _ domain.CatalogFileRepository = (*FileRepository)(nil)

// Get retrieves the movies of a catalog file
func (r *FileRepository) Get(ctx context.Context, path string) ([]domain.Movie, error) {
	source, rc, err := r.open(path)
	if err != nil {
		return nil, &domain.CatalogError{Status: domain.CatalogStatusIOError, Source: source, Err: err}
	}
	defer rc.Close()

	movies, err := catalog.DecodeNamed(source, catalog.FormatForPath(path), rc)
	if err != nil {
		return nil, err
	}

	r.log.Debug().Str("path", source).Int("count", len(movies)).Msg("read catalog")
	return movies, nil
}

func (r *FileRepository) open(path string) (string, io.ReadCloser, error) {
	if path == "" {
		f, err := r.bundled.Open(assets.CatalogFile)
		if err != nil {
			return BundledSource, nil, errors.Wrap(err, "failed to open bundled catalog")
		}
		return BundledSource, f, nil
	}

	// Check if path exists and is a file (not a directory)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return path, nil, errors.Wrapf(err, "file does not exist: %s", path)
		}
		return path, nil, errors.Wrapf(err, "failed to stat file %s", path)
	}
	if info.IsDir() {
		return path, nil, errors.Errorf("path is a directory, not a file: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return path, nil, errors.Wrapf(err, "failed to open file %s", path)
	}
	return path, f, nil
}

// Store writes movies to path in canonical form, replacing the file atomically
func (r *FileRepository) Store(ctx context.Context, path string, movies []domain.Movie) error {
	if path == "" {
		return errors.New("cannot store to the bundled catalog")
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "failed to create file %s", tmp)
	}

	if err := catalog.Encode(f, catalog.FormatForPath(path), movies); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "failed to write catalog %s", path)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "failed to close %s", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "failed to rename %s", tmp)
	}

	r.log.Debug().Str("path", path).Int("count", len(movies)).Msg("stored catalog")
	return nil
}

// Catalog binds the repository to one path
func (r *FileRepository) Catalog(path string) domain.CatalogRepository {
	return &fileCatalog{repo: r, path: path}
}

type fileCatalog struct {
	repo *FileRepository
	path string
}

func (c *fileCatalog) Movies(ctx context.Context) ([]domain.Movie, error) {
	return c.repo.Get(ctx, c.path)
}
