package domain

import "strings"

// Movie stores the display and playback metadata of one catalog entry
type Movie struct {
	ID         string `json:"id" yaml:"id"`
	Title      string `json:"title" yaml:"title"`
	TrailerURL string `json:"trailer_url" yaml:"trailer_url"`
	Thumbnail  string `json:"thumbnail" yaml:"thumbnail"`
	Banner     string `json:"banner" yaml:"banner"`
	Subtitle   string `json:"subtitle" yaml:"subtitle"`
	Bio        string `json:"bio" yaml:"bio"`
	Year       string `json:"year" yaml:"year"`
	Genres     string `json:"genres" yaml:"genres"`
}

// CatalogResponse is the envelope of a bundled catalog document
type CatalogResponse struct {
	Result []Movie `json:"result" yaml:"result"`
}

// GenreList splits the comma-joined genres into trimmed entries
func (m Movie) GenreList() []string {
	if m.Genres == "" {
		return nil
	}

	parts := strings.Split(m.Genres, ",")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			genres = append(genres, p)
		}
	}
	return genres
}

// HasTrailer reports whether the movie can be played
func (m Movie) HasTrailer() bool {
	return strings.TrimSpace(m.TrailerURL) != ""
}
