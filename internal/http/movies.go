package http

import (
	"bytes"
	"io"
	nethttp "net/http"
	"net/url"
	"path"
	"strings"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/varoOP/videoplayer/internal/catalog"
	"github.com/varoOP/videoplayer/internal/domain"
	"github.com/varoOP/videoplayer/internal/player"
)

const (
	excerptLength = 140
	// original language is not part of the catalog document
	originalLanguage = "English"
	maxSubtitleBytes = 4 << 20
)

type card struct {
	Title     string
	Thumbnail string
	Excerpt   string
	Link      string
}

type homeView struct {
	Columns int
	Cards   []card
}

type detailView struct {
	Movie    domain.Movie
	Image    string
	Bio      string
	Year     string
	Language string
	Genres   string
	PlayLink string
}

type playerView struct {
	Title       string
	Source      domain.MediaSource
	MimeType    string
	SubtitleSrc string
	Error       string
}

func moviePath(id string) string {
	return "/movies/" + url.PathEscape(id)
}

func extrasQuery(sel domain.Selection) string {
	q := url.Values{}
	for k, v := range sel.Extras() {
		if v != "" {
			q.Set(k, v)
		}
	}
	return q.Encode()
}

func extrasFromQuery(q url.Values) map[string]string {
	extras := make(map[string]string)
	for _, k := range []string{
		domain.ExtraTrailerURL, domain.ExtraTitle, domain.ExtraSubtitle, domain.ExtraBio,
		domain.ExtraThumbnail, domain.ExtraYear, domain.ExtraGenres,
	} {
		if v := q.Get(k); v != "" {
			extras[k] = v
		}
	}
	return extras
}

// playLink points at the catalog player, or at the legacy player for movies without an id
func playLink(m domain.Movie) string {
	if m.ID == "" {
		return "/play?" + extrasQuery(domain.SelectionFromMovie(m))
	}
	return moviePath(m.ID) + "/play"
}

func (s *Server) handleHome(w nethttp.ResponseWriter, r *nethttp.Request) {
	movies := s.catalog.Movies(r.Context())

	view := homeView{Columns: s.columns, Cards: make([]card, 0, len(movies))}
	for _, m := range movies {
		link := playLink(m)
		if m.ID != "" {
			link = moviePath(m.ID)
		}
		view.Cards = append(view.Cards, card{
			Title:     m.Title,
			Thumbnail: m.Thumbnail,
			Excerpt:   catalog.Excerpt(m.Bio, excerptLength),
			Link:      link,
		})
	}

	s.render(w, nethttp.StatusOK, "home", view)
}

func (s *Server) handleDetail(w nethttp.ResponseWriter, r *nethttp.Request) {
	m, ok := s.catalog.Movie(r.Context(), mux.Vars(r)["id"])
	if !ok {
		s.render(w, nethttp.StatusNotFound, "error", "Movie not found")
		return
	}

	image := m.Banner
	if image == "" {
		image = m.Thumbnail
	}

	s.render(w, nethttp.StatusOK, "detail", detailView{
		Movie:    m,
		Image:    image,
		Bio:      catalog.PlainText(m.Bio),
		Year:     m.Year,
		Language: originalLanguage,
		Genres:   strings.Join(m.GenreList(), ", "),
		PlayLink: playLink(m),
	})
}

func (s *Server) handleMoviePlayer(w nethttp.ResponseWriter, r *nethttp.Request) {
	m, ok := s.catalog.Movie(r.Context(), mux.Vars(r)["id"])
	if !ok {
		s.render(w, nethttp.StatusNotFound, "error", "Movie not found")
		return
	}

	subtitle := ""
	if strings.TrimSpace(m.Subtitle) != "" {
		subtitle = moviePath(m.ID) + "/subtitles.vtt"
	}
	s.renderPlayer(w, domain.SelectionFromMovie(m), subtitle)
}

// handleLegacyPlayer accepts the Key/Title/Sub extras as query values.
// Only subtitle urls that belong to a catalog movie are converted.
func (s *Server) handleLegacyPlayer(w nethttp.ResponseWriter, r *nethttp.Request) {
	sel := domain.SelectionFromExtras(extrasFromQuery(r.URL.Query()))

	subtitle := ""
	if sel.SubtitleURL != "" {
		for _, m := range s.catalog.Movies(r.Context()) {
			if m.ID != "" && m.Subtitle == sel.SubtitleURL {
				subtitle = moviePath(m.ID) + "/subtitles.vtt"
				break
			}
		}
		if subtitle == "" {
			s.log.Debug().Str("subtitle", sel.SubtitleURL).Msg("subtitle not in catalog, skipping track")
		}
	}

	s.renderPlayer(w, sel, subtitle)
}

func (s *Server) renderPlayer(w nethttp.ResponseWriter, sel domain.Selection, subtitleSrc string) {
	src, err := player.BuildSource(sel)
	if err != nil {
		s.log.Warn().Err(err).Str("title", sel.Title).Msg("cannot play selection")
		s.render(w, nethttp.StatusUnprocessableEntity, "player", playerView{
			Title: sel.Title,
			Error: "This video cannot be played: " + err.Error(),
		})
		return
	}

	if len(src.Subtitles) == 0 {
		subtitleSrc = ""
	}

	s.render(w, nethttp.StatusOK, "player", playerView{
		Title:       src.Title,
		Source:      src,
		MimeType:    src.ContentType.MimeType(),
		SubtitleSrc: subtitleSrc,
	})
}

// handleSubtitles fetches the SubRip track of a catalog movie and serves it as WebVTT
func (s *Server) handleSubtitles(w nethttp.ResponseWriter, r *nethttp.Request) {
	m, ok := s.catalog.Movie(r.Context(), mux.Vars(r)["id"])
	if !ok || strings.TrimSpace(m.Subtitle) == "" {
		httpError(w, nethttp.StatusNotFound, "no subtitle track")
		return
	}

	body, err := s.fetchSubtitle(r, m.Subtitle)
	if err != nil {
		s.log.Error().Err(err).Str("movie", m.ID).Msg("failed to fetch subtitle")
		httpError(w, nethttp.StatusBadGateway, "unable to fetch subtitle track")
		return
	}

	var out bytes.Buffer
	if isWebVTT(m.Subtitle, body) {
		out.Write(body)
	} else if err := player.SubRipToWebVTT(bytes.NewReader(body), &out); err != nil {
		s.log.Error().Err(err).Str("movie", m.ID).Msg("failed to convert subtitle")
		httpError(w, nethttp.StatusBadGateway, "unable to convert subtitle track")
		return
	}

	w.Header().Set("Content-Type", domain.MimeTypeWebVTT+"; charset=utf-8")
	w.WriteHeader(nethttp.StatusOK)
	_, _ = w.Write(out.Bytes())
}

func (s *Server) fetchSubtitle(r *nethttp.Request, rawURL string) ([]byte, error) {
	req, err := nethttp.NewRequestWithContext(r.Context(), nethttp.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch")
	}
	defer resp.Body.Close()

	if resp.StatusCode != nethttp.StatusOK {
		return nil, errors.Errorf("unexpected status code %d from %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSubtitleBytes))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}
	return body, nil
}

func isWebVTT(rawURL string, body []byte) bool {
	if u, err := url.Parse(rawURL); err == nil && strings.EqualFold(path.Ext(u.Path), ".vtt") {
		return true
	}
	return bytes.HasPrefix(bytes.TrimPrefix(body, []byte("\ufeff")), []byte("WEBVTT"))
}
