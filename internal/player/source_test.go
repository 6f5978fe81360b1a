package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varoOP/videoplayer/internal/domain"
)

func TestInferContentType(t *testing.T) {
	tests := []struct {
		url      string
		override string
		want     domain.ContentType
	}{
		{url: "https://cdn.example.com/live/stream.mpd", want: domain.ContentTypeDASH},
		{url: "https://cdn.example.com/hls/master.M3U8?token=1", want: domain.ContentTypeHLS},
		{url: "https://cdn.example.com/ss/movie.ism/Manifest", want: domain.ContentTypeSmoothStreaming},
		{url: "https://cdn.example.com/ss/movie.isml/manifest", want: domain.ContentTypeSmoothStreaming},
		{url: "https://cdn.example.com/ss/movie.ism", want: domain.ContentTypeSmoothStreaming},
		{url: "https://cdn.example.com/ss/movie.ism/Manifest(format=mpd-time-csf)", want: domain.ContentTypeDASH},
		{url: "https://cdn.example.com/ss/movie.ism/Manifest(format=m3u8-aapl)", want: domain.ContentTypeHLS},
		{url: "rtsp://camera.local/feed", want: domain.ContentTypeRTSP},
		{url: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4", want: domain.ContentTypeProgressive},
		{url: "https://cdn.example.com/video", want: domain.ContentTypeProgressive},
		{url: "https://cdn.example.com/video", override: "m3u8", want: domain.ContentTypeHLS},
		{url: "https://cdn.example.com/video.mpd", override: ".mp4", want: domain.ContentTypeProgressive},
		{url: "://bad url", want: domain.ContentTypeProgressive},
	}

	for _, tt := range tests {
		t.Run(tt.url+tt.override, func(t *testing.T) {
			assert.Equal(t, tt.want, InferContentType(tt.url, tt.override))
		})
	}
}

func TestBuildSource(t *testing.T) {
	sel := domain.Selection{
		Title:       "Sintel",
		TrailerURL:  "https://cdn.example.com/sintel.mp4",
		SubtitleURL: "https://cdn.example.com/sintel.srt",
	}

	src, err := BuildSource(sel)
	require.NoError(t, err)
	assert.Equal(t, "Sintel", src.Title)
	assert.Equal(t, domain.ContentTypeProgressive, src.ContentType)
	require.Len(t, src.Subtitles, 1)
	assert.Equal(t, domain.SubtitleTrack{
		URL:      "https://cdn.example.com/sintel.srt",
		MimeType: "application/x-subrip",
		Language: "en",
	}, src.Subtitles[0])
}

func TestBuildSource_WithoutSubtitle(t *testing.T) {
	src, err := BuildSource(domain.Selection{TrailerURL: "https://cdn.example.com/a.m3u8"})
	require.NoError(t, err)
	assert.Equal(t, domain.ContentTypeHLS, src.ContentType)
	assert.Empty(t, src.Subtitles)
}

func TestBuildSource_Errors(t *testing.T) {
	_, err := BuildSource(domain.Selection{TrailerURL: "   "})
	assert.ErrorIs(t, err, ErrNoTrailer)

	_, err = BuildSource(domain.Selection{TrailerURL: "rtsp://camera.local/feed"})
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestContentType_MimeType(t *testing.T) {
	assert.Equal(t, "application/dash+xml", domain.ContentTypeDASH.MimeType())
	assert.Equal(t, "application/x-mpegURL", domain.ContentTypeHLS.MimeType())
	assert.Equal(t, "", domain.ContentTypeProgressive.MimeType())
}
