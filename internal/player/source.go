package player

import (
	"net/url"
	"path"
	"strings"

	"github.com/pkg/errors"

	"github.com/varoOP/videoplayer/internal/domain"
)

// SubtitleLanguage is the language every side-loaded track is tagged with
const SubtitleLanguage = "en"

var (
	ErrNoTrailer   = errors.New("movie has no trailer url")
	ErrUnsupported = errors.New("unsupported content type")
)

// InferContentType guesses the streaming format of rawURL.
// A non-empty overrideExtension is used instead of the url's own extension.
func InferContentType(rawURL, overrideExtension string) domain.ContentType {
	if overrideExtension != "" {
		return typeForExtension(strings.ToLower(strings.TrimPrefix(overrideExtension, ".")))
	}

	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return domain.ContentTypeProgressive
	}

	if strings.EqualFold(u.Scheme, "rtsp") {
		return domain.ContentTypeRTSP
	}

	p := strings.ToLower(u.Path)

	// smooth streaming manifests are addressed as foo.ism/Manifest(...)
	dir, file := path.Split(p)
	if ext := path.Ext(strings.TrimSuffix(dir, "/")); ext == ".ism" || ext == ".isml" {
		if file == "manifest" || strings.HasPrefix(file, "manifest(") {
			switch {
			case strings.Contains(file, "format=mpd-time-csf"):
				return domain.ContentTypeDASH
			case strings.Contains(file, "format=m3u8-aapl"):
				return domain.ContentTypeHLS
			}
			return domain.ContentTypeSmoothStreaming
		}
	}

	return typeForExtension(strings.TrimPrefix(path.Ext(p), "."))
}

func typeForExtension(ext string) domain.ContentType {
	switch ext {
	case "mpd":
		return domain.ContentTypeDASH
	case "m3u8":
		return domain.ContentTypeHLS
	case "ism", "isml":
		return domain.ContentTypeSmoothStreaming
	default:
		return domain.ContentTypeProgressive
	}
}

// BuildSource prepares the media source for a selection.
// The subtitle track is attached only when the selection names one.
func BuildSource(sel domain.Selection) (domain.MediaSource, error) {
	trailer := strings.TrimSpace(sel.TrailerURL)
	if trailer == "" {
		return domain.MediaSource{}, ErrNoTrailer
	}

	ct := InferContentType(trailer, "")
	if ct == domain.ContentTypeRTSP {
		return domain.MediaSource{}, errors.Wrapf(ErrUnsupported, "%s", ct)
	}

	src := domain.MediaSource{
		Title:       sel.Title,
		URL:         trailer,
		ContentType: ct,
	}

	if sub := strings.TrimSpace(sel.SubtitleURL); sub != "" {
		src.Subtitles = []domain.SubtitleTrack{{
			URL:      sub,
			MimeType: domain.MimeTypeSubRip,
			Language: SubtitleLanguage,
		}}
	}

	return src, nil
}
