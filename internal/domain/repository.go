package domain

import (
	"context"
)

// CatalogFileRepository reads and writes catalog documents
type CatalogFileRepository interface {
	Get(ctx context.Context, path string) ([]Movie, error)
	Store(ctx context.Context, path string, movies []Movie) error
}

// CatalogStore persists an imported catalog
type CatalogStore interface {
	CatalogRepository
	ReplaceMovies(ctx context.Context, movies []Movie) error
	Movie(ctx context.Context, id string) (*Movie, error)
	Count(ctx context.Context) (int, error)
}
