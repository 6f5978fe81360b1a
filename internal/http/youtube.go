package http

import (
	"encoding/json"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/varoOP/videoplayer/internal/domain"
	"github.com/varoOP/videoplayer/internal/youtube"
)

const (
	sessionCookie = "videoplayer_session"
	maxFormBytes  = 64 << 10
)

type queueItem struct {
	VideoID      string    `json:"video_id"`
	Title        string    `json:"title,omitempty"`
	AddedAt      time.Time `json:"added_at"`
	WatchURL     string    `json:"watch_url"`
	EmbedURL     string    `json:"embed_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
}

type youtubeView struct {
	Items   []queueItem
	Invalid bool
}

type extractResponse struct {
	Found        bool   `json:"found"`
	VideoID      string `json:"video_id,omitempty"`
	WatchURL     string `json:"watch_url,omitempty"`
	EmbedURL     string `json:"embed_url,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

type queueResponse struct {
	Entries []queueItem `json:"entries"`
}

type enqueueRequest struct {
	URL string `json:"url"`
}

func toQueueItem(e domain.QueueEntry) queueItem {
	return queueItem{
		VideoID:      e.VideoID,
		Title:        e.Title,
		AddedAt:      e.AddedAt,
		WatchURL:     youtube.WatchURL(e.VideoID),
		EmbedURL:     youtube.EmbedURL(e.VideoID),
		ThumbnailURL: youtube.ThumbnailURL(e.VideoID),
	}
}

func toQueueItems(entries []domain.QueueEntry) []queueItem {
	items := make([]queueItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, toQueueItem(e))
	}
	return items
}

// sessionQueue resolves the queue of the requesting browser, setting the cookie
// whenever a new session was started
func (s *Server) sessionQueue(w nethttp.ResponseWriter, r *nethttp.Request) *youtube.Queue {
	current := ""
	if c, err := r.Cookie(sessionCookie); err == nil {
		current = c.Value
	}

	id, q := s.youtube.Queue(current)
	if id != current {
		nethttp.SetCookie(w, &nethttp.Cookie{
			Name:     sessionCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: nethttp.SameSiteLaxMode,
		})
	}
	return q
}

func (s *Server) handleYouTubePage(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := s.sessionQueue(w, r)
	s.render(w, nethttp.StatusOK, "youtube", youtubeView{
		Items:   toQueueItems(q.Entries()),
		Invalid: r.URL.Query().Get("invalid") != "",
	})
}

func (s *Server) handleYouTubeSubmit(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := s.sessionQueue(w, r)

	r.Body = nethttp.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		httpError(w, nethttp.StatusBadRequest, "invalid form")
		return
	}

	target := "/youtube"
	if _, ok := s.youtube.Enqueue(r.Context(), q, r.PostForm.Get("url")); !ok {
		target += "?invalid=1"
	}
	nethttp.Redirect(w, r, target, nethttp.StatusSeeOther)
}

func (s *Server) handleAPIExtract(w nethttp.ResponseWriter, r *nethttp.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("url"))
	if raw == "" {
		s.writeJSON(w, nethttp.StatusBadRequest, apiError{Error: "missing url parameter"})
		return
	}

	id, ok := youtube.ExtractVideoID(raw)
	if !ok {
		s.writeJSON(w, nethttp.StatusOK, extractResponse{Found: false})
		return
	}

	s.writeJSON(w, nethttp.StatusOK, extractResponse{
		Found:        true,
		VideoID:      id,
		WatchURL:     youtube.WatchURL(id),
		EmbedURL:     youtube.EmbedURL(id),
		ThumbnailURL: youtube.ThumbnailURL(id),
	})
}

func (s *Server) handleAPIQueue(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := s.sessionQueue(w, r)
	s.writeJSON(w, nethttp.StatusOK, queueResponse{Entries: toQueueItems(q.Entries())})
}

// handleAPIEnqueue accepts {"url": "..."} or a url form value
func (s *Server) handleAPIEnqueue(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := s.sessionQueue(w, r)
	r.Body = nethttp.MaxBytesReader(w, r.Body, maxFormBytes)

	var raw string
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req enqueueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeJSON(w, nethttp.StatusBadRequest, apiError{Error: "invalid json body"})
			return
		}
		raw = req.URL
	} else {
		if err := r.ParseForm(); err != nil {
			s.writeJSON(w, nethttp.StatusBadRequest, apiError{Error: "invalid form"})
			return
		}
		raw = r.PostForm.Get("url")
	}

	entry, ok := s.youtube.Enqueue(r.Context(), q, raw)
	if !ok {
		s.writeJSON(w, nethttp.StatusUnprocessableEntity, apiError{Error: "no video id found"})
		return
	}

	s.writeJSON(w, nethttp.StatusCreated, toQueueItem(entry))
}

func (s *Server) handleAPIClearQueue(w nethttp.ResponseWriter, r *nethttp.Request) {
	s.sessionQueue(w, r).Clear()
	w.WriteHeader(nethttp.StatusNoContent)
}
