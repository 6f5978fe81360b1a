package app

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/varoOP/videoplayer/internal/catalog"
	"github.com/varoOP/videoplayer/internal/domain"
	apphttp "github.com/varoOP/videoplayer/internal/http"
	"github.com/varoOP/videoplayer/internal/youtube"
)

const (
	sessionSweepSchedule = "@every 10m"
	sessionMaxIdle       = 6 * time.Hour
	shutdownTimeout      = 10 * time.Second
)

type server struct {
	handler  nethttp.Handler
	catalog  catalog.Service
	sessions *youtube.Sessions
	close    func()
}

func (a *App) newServer(ctx context.Context) (*server, error) {
	repo, closeRepo, err := a.catalogRepository()
	if err != nil {
		return nil, err
	}

	catalogSvc := catalog.NewService(a.log, repo)
	res := catalogSvc.Load(ctx)
	a.log.Info().Str("status", string(res.Status)).Int("count", len(res.Movies)).Msg("catalog loaded")

	var resolver domain.TitleResolver
	if a.config.YouTubeLookupTitles {
		resolver = youtube.NewCollyResolver(a.log, a.config.YouTubeBaseURL)
	}
	sessions := youtube.NewSessions()
	youtubeSvc := youtube.NewService(a.log, sessions, resolver)

	srv := apphttp.NewServer(a.log, catalogSvc, youtubeSvc, apphttp.Options{
		GridColumns: a.config.GridColumns,
	})

	return &server{
		handler:  srv.Handler(),
		catalog:  catalogSvc,
		sessions: sessions,
		close:    closeRepo,
	}, nil
}

// schedule registers the catalog reload and the session sweep
func (a *App) schedule(ctx context.Context, s *server) (*cron.Cron, error) {
	cronLog := a.log.With().Str("module", "scheduler").Logger()
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(&cronLog))))

	if a.config.ReloadSchedule != "" {
		if _, err := c.AddFunc(a.config.ReloadSchedule, func() {
			res := s.catalog.Reload(ctx)
			cronLog.Info().Str("status", string(res.Status)).Int("count", len(res.Movies)).Msg("catalog reloaded")
		}); err != nil {
			return nil, fmt.Errorf("failed to schedule catalog reload: %w", err)
		}
	}

	if _, err := c.AddFunc(sessionSweepSchedule, func() {
		if n := s.sessions.Sweep(sessionMaxIdle); n > 0 {
			cronLog.Debug().Int("removed", n).Msg("swept idle sessions")
		}
	}); err != nil {
		return nil, fmt.Errorf("failed to schedule session sweep: %w", err)
	}

	return c, nil
}

// Serve runs the HTTP server until ctx is cancelled
func (a *App) Serve(ctx context.Context) error {
	s, err := a.newServer(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	c, err := a.schedule(ctx, s)
	if err != nil {
		return err
	}
	c.Start()
	defer c.Stop()

	httpServer := &nethttp.Server{
		Addr:              a.config.ListenAddr,
		Handler:           s.handler,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", a.config.ListenAddr).Msg("server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != nethttp.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("listen failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		a.log.Warn().Err(err).Msg("graceful shutdown failed")
		_ = httpServer.Close()
	}
	a.log.Info().Msg("server stopped")

	return nil
}
