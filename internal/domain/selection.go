package domain

// Legacy extra keys passed between the grid, detail and player screens
const (
	ExtraTrailerURL = "Key"
	ExtraTitle      = "Title"
	ExtraSubtitle   = "Sub"
	ExtraBio        = "Bio"
	ExtraThumbnail  = "thumbnail"
	ExtraYear       = "Year"
	ExtraGenres     = "Genres"
)

// Selection is the movie handed from one page to the next
type Selection struct {
	MovieID     string
	TrailerURL  string
	Title       string
	SubtitleURL string
	Bio         string
	Thumbnail   string
	Year        string
	Genres      string
}

// SelectionFromMovie captures the fields the detail and player pages need
func SelectionFromMovie(m Movie) Selection {
	return Selection{
		MovieID:     m.ID,
		TrailerURL:  m.TrailerURL,
		Title:       m.Title,
		SubtitleURL: m.Subtitle,
		Bio:         m.Bio,
		Thumbnail:   m.Thumbnail,
		Year:        m.Year,
		Genres:      m.Genres,
	}
}

// SelectionFromExtras reads a selection from the legacy key/value form.
// Missing keys leave the field empty.
func SelectionFromExtras(extras map[string]string) Selection {
	return Selection{
		TrailerURL:  extras[ExtraTrailerURL],
		Title:       extras[ExtraTitle],
		SubtitleURL: extras[ExtraSubtitle],
		Bio:         extras[ExtraBio],
		Thumbnail:   extras[ExtraThumbnail],
		Year:        extras[ExtraYear],
		Genres:      extras[ExtraGenres],
	}
}

// Extras renders the selection with the legacy keys
func (s Selection) Extras() map[string]string {
	return map[string]string{
		ExtraTrailerURL: s.TrailerURL,
		ExtraTitle:      s.Title,
		ExtraSubtitle:   s.SubtitleURL,
		ExtraBio:        s.Bio,
		ExtraThumbnail:  s.Thumbnail,
		ExtraYear:       s.Year,
		ExtraGenres:     s.Genres,
	}
}
