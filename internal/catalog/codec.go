package catalog

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/varoOP/videoplayer/internal/domain"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a catalog document
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the format from the file extension, defaulting to JSON
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode reads a JSON catalog document shaped as {"result": [...]}.
// Movies keep the order of the result array.
func Decode(r io.Reader) ([]domain.Movie, error) {
	return DecodeNamed("stream", FormatJSON, r)
}

// DecodeNamed decodes a catalog document, naming source in errors
func DecodeNamed(source string, format Format, r io.Reader) ([]domain.Movie, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, &domain.CatalogError{Status: domain.CatalogStatusIOError, Source: source, Err: errors.Wrap(err, "failed to read catalog")}
	}

	resp := domain.CatalogResponse{}
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(body, &resp)
	default:
		if len(bytes.TrimSpace(body)) == 0 {
			err = errors.New("empty document")
		} else {
			err = json.Unmarshal(body, &resp)
		}
	}
	if err != nil {
		return nil, &domain.CatalogError{Status: domain.CatalogStatusParseError, Source: source, Err: errors.Wrapf(err, "failed to unmarshal %s", format)}
	}

	if resp.Result == nil {
		return []domain.Movie{}, nil
	}
	return resp.Result, nil
}

// Encode writes movies as a canonical catalog document
func Encode(w io.Writer, format Format, movies []domain.Movie) error {
	if movies == nil {
		movies = []domain.Movie{}
	}
	resp := domain.CatalogResponse{Result: movies}

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(resp); err != nil {
			return errors.Wrap(err, "failed to marshal yaml")
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "   ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(resp); err != nil {
			return errors.Wrap(err, "failed to marshal json")
		}
		return nil
	}
}
