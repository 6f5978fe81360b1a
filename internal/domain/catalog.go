package domain

import (
	"context"
	"errors"
	"fmt"
)

// CatalogStatus classifies the outcome of a catalog load
type CatalogStatus string

const (
	// CatalogStatusOK - at least one movie was decoded
	CatalogStatusOK CatalogStatus = "ok"
	// CatalogStatusEmpty - the document was valid but held no movies
	CatalogStatusEmpty CatalogStatus = "empty"
	// CatalogStatusParseError - the document was malformed or did not match the schema
	CatalogStatusParseError CatalogStatus = "parse_error"
	// CatalogStatusIOError - the source could not be opened or read
	CatalogStatusIOError CatalogStatus = "io_error"
)

// CatalogResult is the explicit outcome of loading a catalog.
// Movies is never nil, so callers can render it directly.
type CatalogResult struct {
	Status CatalogStatus
	Movies []Movie
	Err    error
}

// OK reports whether the load succeeded, with or without movies
func (r CatalogResult) OK() bool {
	return r.Status == CatalogStatusOK || r.Status == CatalogStatusEmpty
}

// CatalogError carries the failure class of a catalog read
type CatalogError struct {
	Status CatalogStatus
	Source string
	Err    error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog %s: %s: %v", e.Status, e.Source, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// CatalogRepository reads the movies of a catalog in order
type CatalogRepository interface {
	Movies(ctx context.Context) ([]Movie, error)
}

// CatalogSource selects where the server reads its catalog from
type CatalogSource string

const (
	CatalogSourceFile   CatalogSource = "file"
	CatalogSourceSQLite CatalogSource = "sqlite"
)

// ErrMovieNotFound is returned by stores when no movie has the requested id
var ErrMovieNotFound = errors.New("movie not found")
