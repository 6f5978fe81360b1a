package domain

// ContentType is the streaming format of a media URL
type ContentType string

const (
	ContentTypeDASH            ContentType = "dash"
	ContentTypeHLS             ContentType = "hls"
	ContentTypeSmoothStreaming ContentType = "smoothstreaming"
	ContentTypeProgressive     ContentType = "progressive"
	ContentTypeRTSP            ContentType = "rtsp"
)

// MimeType returns the mime type a media element expects for the format
func (c ContentType) MimeType() string {
	switch c {
	case ContentTypeDASH:
		return "application/dash+xml"
	case ContentTypeHLS:
		return "application/x-mpegURL"
	case ContentTypeSmoothStreaming:
		return "application/vnd.ms-sstr+xml"
	default:
		return ""
	}
}

const (
	MimeTypeSubRip = "application/x-subrip"
	MimeTypeWebVTT = "text/vtt"
)

// SubtitleTrack is a side-loaded text track
type SubtitleTrack struct {
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
	Language string `json:"language"`
}

// MediaSource is everything a player needs to start playback
type MediaSource struct {
	Title       string          `json:"title"`
	URL         string          `json:"url"`
	ContentType ContentType     `json:"content_type"`
	Subtitles   []SubtitleTrack `json:"subtitles,omitempty"`
}
