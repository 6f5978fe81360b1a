package app

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varoOP/videoplayer/internal/domain"
)

const twoMovies = `{"result":[
  {"id":"a","title":"First","trailer_url":"https://cdn.example.com/a.mp4","genres":"Drama"},
  {"id":"b","title":"Second","trailer_url":"https://cdn.example.com/b.m3u8","subtitle":"https://cdn.example.com/b.srt","genres":"Drama, Comedy"}
]}`

func testConfig(t *testing.T) *domain.Config {
	t.Helper()
	return &domain.Config{
		CatalogSource:  domain.CatalogSourceFile,
		DataDir:        t.TempDir(),
		ListenAddr:     "127.0.0.1:0",
		GridColumns:    2,
		LogLevel:       zerolog.Disabled,
		YouTubeBaseURL: "https://www.youtube.com",
	}
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestApp_ListCatalogBundled(t *testing.T) {
	a := New(testConfig(t))

	res, err := a.ListCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.CatalogStatusOK, res.Status)
	require.Len(t, res.Movies, 4)
	assert.Equal(t, "Big Buck Bunny", res.Movies[0].Title)
}

func TestApp_ListCatalogMissingFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.CatalogPath = filepath.Join(t.TempDir(), "missing.json")

	res, err := New(cfg).ListCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.CatalogStatusIOError, res.Status)
	assert.Empty(t, res.Movies)
}

func TestApp_ImportThenReadFromSQLite(t *testing.T) {
	cfg := testConfig(t)
	path := writeCatalog(t, twoMovies)

	stats, err := New(cfg).ImportCatalog(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, stats.Source)
	assert.Equal(t, 2, stats.TotalMovies)
	assert.Equal(t, 1, stats.WithSubtitles)

	cfg.CatalogSource = domain.CatalogSourceSQLite
	sqliteApp := New(cfg)

	res, err := sqliteApp.ListCatalog(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.CatalogStatusOK, res.Status)
	require.Len(t, res.Movies, 2)
	assert.Equal(t, "First", res.Movies[0].Title)
	assert.Equal(t, "Second", res.Movies[1].Title)

	stats, _, err = sqliteApp.CatalogStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.DistinctGenres)
	assert.True(t, strings.HasSuffix(stats.Source, string(domain.DatabaseFile)))

	imp, err := sqliteApp.LastImport(context.Background())
	require.NoError(t, err)
	require.NotNil(t, imp)
	assert.Equal(t, path, imp.Source)
	assert.Equal(t, 2, imp.MovieCount)
}

func TestApp_ImportFailureNotifies(t *testing.T) {
	var mu sync.Mutex
	var titles []string
	webhook := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var payload struct {
			Embeds []struct {
				Title string `json:"title"`
			} `json:"embeds"`
		}
		_ = json.NewDecoder(r.Body).Decode(&payload)
		mu.Lock()
		for _, e := range payload.Embeds {
			titles = append(titles, e.Title)
		}
		mu.Unlock()
		w.WriteHeader(nethttp.StatusNoContent)
	}))
	defer webhook.Close()

	cfg := testConfig(t)
	cfg.DiscordWebhookURL = webhook.URL
	a := New(cfg)

	_, err := a.ImportCatalog(context.Background(), writeCatalog(t, `{"result": [`))
	require.Error(t, err)

	_, err = a.ImportCatalog(context.Background(), writeCatalog(t, twoMovies))
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"Catalog import failed", "Catalog import finished"}, titles)
}

func TestApp_FormatCatalog(t *testing.T) {
	cfg := testConfig(t)
	a := New(cfg)
	out := filepath.Join(t.TempDir(), "catalog.yaml")

	n, err := a.FormatCatalog(context.Background(), "", out)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	cfg.CatalogPath = out
	res, err := New(cfg).ListCatalog(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Movies, 4)

	_, err = a.FormatCatalog(context.Background(), "", "")
	assert.Error(t, err)
}

func TestApp_ServerHandler(t *testing.T) {
	a := New(testConfig(t))

	s, err := a.newServer(context.Background())
	require.NoError(t, err)
	defer s.close()

	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	require.Equal(t, 200, rr.Code)
	assert.Contains(t, rr.Body.String(), "Big Buck Bunny")

	rr = httptest.NewRecorder()
	s.handler.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, 200, rr.Code)
}

func TestApp_Schedule(t *testing.T) {
	cfg := testConfig(t)
	a := New(cfg)

	s, err := a.newServer(context.Background())
	require.NoError(t, err)
	defer s.close()

	c, err := a.schedule(context.Background(), s)
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)

	cfg.ReloadSchedule = "@every 1h"
	c, err = a.schedule(context.Background(), s)
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 2)
}

func TestApp_ServeStopsOnCancel(t *testing.T) {
	a := New(testConfig(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Serve(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
