package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"FrontendMastery/internal/config"
	"FrontendMastery/internal/handlers/health"
	"FrontendMastery/internal/handlers/landing"
	"FrontendMastery/internal/middleware"
	"FrontendMastery/internal/viewstate"
	"FrontendMastery/internal/web/components"
)

type Server struct {
	config  config.Config
	log     *slog.Logger
	landing *landing.Handler
	http    *http.Server
}

func New(cfg config.Config, log *slog.Logger, opts ...landing.Option) (*Server, error) {
	codec, err := viewstate.New(cfg.StateHashKey, cfg.StateBlockKey, cfg.StateMaxAge)
	if err != nil {
		return nil, fmt.Errorf("view state codec: %w", err)
	}

	s := &Server{
		config:  cfg,
		log:     log,
		landing: landing.New(codec, log, cfg.NotifyTTL, cfg.NotifyLimit, opts...),
	}
	s.http = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(log.Handler(), slog.LevelError),
	}
	return s, nil
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.WithRequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.WithLogging(s.log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.CleanPath)
	r.Use(chimw.Compress(5))

	// Serve static files
	r.Handle("/static/*", http.StripPrefix("/static/",
		http.FileServer(http.Dir(s.config.StaticDir))))

	r.Get("/health", health.Handler)

	r.Get("/", s.landing.Index)
	r.Post(components.ActionTheme, s.landing.ToggleTheme)
	r.Post(components.ActionMenu, s.landing.ToggleMobileMenu)
	r.Post(components.ActionSubscribe, s.landing.Subscribe)
	r.Post(components.ActionPurchase, s.landing.Purchase)

	return r
}

// ListenAndServe blocks until ctx is cancelled, then shuts the server down
// within the configured timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.log.Info("http_listen", "addr", s.http.Addr)
		errc <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutdown_begin")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info("shutdown_complete")
	return nil
}
