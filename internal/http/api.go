package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"

	"github.com/varoOP/videoplayer/internal/domain"
	"github.com/varoOP/videoplayer/internal/player"
)

type catalogResponse struct {
	Status domain.CatalogStatus `json:"status"`
	Count  int                  `json:"count"`
	Movies []domain.Movie       `json:"movies"`
	Error  string               `json:"error,omitempty"`
}

type movieResponse struct {
	Movie  domain.Movie        `json:"movie"`
	Source *domain.MediaSource `json:"source,omitempty"`
	Error  string              `json:"error,omitempty"`
}

// handleAPICatalog reports the load status so failures differ from an empty catalog
func (s *Server) handleAPICatalog(w nethttp.ResponseWriter, r *nethttp.Request) {
	res := s.catalog.Load(r.Context())

	resp := catalogResponse{
		Status: res.Status,
		Count:  len(res.Movies),
		Movies: res.Movies,
	}
	if resp.Movies == nil {
		resp.Movies = []domain.Movie{}
	}

	status := nethttp.StatusOK
	if !res.OK() {
		status = nethttp.StatusServiceUnavailable
		if res.Err != nil {
			resp.Error = res.Err.Error()
		}
	}

	s.writeJSON(w, status, resp)
}

func (s *Server) handleAPIMovie(w nethttp.ResponseWriter, r *nethttp.Request) {
	m, ok := s.catalog.Movie(r.Context(), mux.Vars(r)["id"])
	if !ok {
		s.writeJSON(w, nethttp.StatusNotFound, apiError{Error: domain.ErrMovieNotFound.Error()})
		return
	}

	resp := movieResponse{Movie: m}
	src, err := player.BuildSource(domain.SelectionFromMovie(m))
	if err != nil {
		resp.Error = err.Error()
	} else {
		resp.Source = &src
	}

	s.writeJSON(w, nethttp.StatusOK, resp)
}
