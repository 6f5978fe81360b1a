package http

import (
	"encoding/json"
	"html/template"
	nethttp "net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/varoOP/videoplayer/internal/catalog"
	"github.com/varoOP/videoplayer/internal/youtube"
)

const defaultGridColumns = 2

// Options tunes the server; zero values select the defaults
type Options struct {
	GridColumns int
	// HTTPClient fetches subtitle tracks for conversion
	HTTPClient *nethttp.Client
}

type Server struct {
	log     zerolog.Logger
	catalog catalog.Service
	youtube *youtube.Service
	client  *nethttp.Client
	columns int
	tpl     *template.Template
}

func NewServer(log zerolog.Logger, catalogSvc catalog.Service, youtubeSvc *youtube.Service, opts Options) *Server {
	if opts.GridColumns < 1 {
		opts.GridColumns = defaultGridColumns
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &nethttp.Client{Timeout: 15 * time.Second}
	}
	if youtubeSvc == nil {
		youtubeSvc = youtube.NewService(log, nil, nil)
	}

	return &Server{
		log:     log.With().Str("module", "http").Logger(),
		catalog: catalogSvc,
		youtube: youtubeSvc,
		client:  opts.HTTPClient,
		columns: opts.GridColumns,
		tpl:     template.Must(template.New("pages").Parse(pageTemplates)),
	}
}

// Handler builds the router serving every page and API route
func (s *Server) Handler() nethttp.Handler {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/", s.handleHome).Methods(nethttp.MethodGet)
	r.HandleFunc("/movies/{id}", s.handleDetail).Methods(nethttp.MethodGet)
	r.HandleFunc("/movies/{id}/play", s.handleMoviePlayer).Methods(nethttp.MethodGet)
	r.HandleFunc("/movies/{id}/subtitles.vtt", s.handleSubtitles).Methods(nethttp.MethodGet)
	r.HandleFunc("/play", s.handleLegacyPlayer).Methods(nethttp.MethodGet)

	r.HandleFunc("/youtube", s.handleYouTubePage).Methods(nethttp.MethodGet)
	r.HandleFunc("/youtube", s.handleYouTubeSubmit).Methods(nethttp.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/catalog", s.handleAPICatalog).Methods(nethttp.MethodGet)
	api.HandleFunc("/movies/{id}", s.handleAPIMovie).Methods(nethttp.MethodGet)
	api.HandleFunc("/youtube/extract", s.handleAPIExtract).Methods(nethttp.MethodGet)
	api.HandleFunc("/youtube/queue", s.handleAPIQueue).Methods(nethttp.MethodGet)
	api.HandleFunc("/youtube/queue", s.handleAPIEnqueue).Methods(nethttp.MethodPost)
	api.HandleFunc("/youtube/queue", s.handleAPIClearQueue).Methods(nethttp.MethodDelete)

	r.Handle("/health", HealthHandler()).Methods(nethttp.MethodGet)

	return r
}

type statusRecorder struct {
	nethttp.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next nethttp.Handler) nethttp.Handler {
	return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: nethttp.StatusOK}
		next.ServeHTTP(rec, r)

		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func (s *Server) render(w nethttp.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tpl.ExecuteTemplate(w, name, data); err != nil {
		s.log.Error().Err(err).Str("template", name).Msg("failed to render page")
	}
}

func (s *Server) writeJSON(w nethttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("failed to write response")
	}
}

type apiError struct {
	Error string `json:"error"`
}

func httpError(w nethttp.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(msg))
}
