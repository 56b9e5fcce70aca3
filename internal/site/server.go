// Package site provides the portfolio web server.
package site

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"golang.org/x/sync/errgroup"

	"github.com/ticuv/showcase/internal/catalog"
	"github.com/ticuv/showcase/internal/site/assets"
	"github.com/ticuv/showcase/internal/site/features/contact"
	"github.com/ticuv/showcase/internal/site/features/work"
	"github.com/ticuv/showcase/internal/site/notifier"
	"github.com/ticuv/showcase/internal/site/router"
)

// reloadDebounce coalesces bursts of filesystem events into one reload.
const reloadDebounce = 100 * time.Millisecond

// Server is the main site server.
type Server struct {
	store        *catalog.Store
	sessionStore *sessions.CookieStore
	port         int
	watch        bool
	catalogPath  string
	backupsDir   string
	adminToken   string
	page         work.PageConfig
	mailer       contact.Mailer
	dev          bool
	logger       *slog.Logger
	notifier     *notifier.Notifier
}

// Config holds configuration for the site server.
type Config struct {
	Store         *catalog.Store
	Port          int
	Watch         bool
	CatalogPath   string // empty for remote catalogs
	BackupsDir    string
	SessionSecret string
	AdminToken    string
	Page          work.PageConfig
	Mailer        contact.Mailer
	Dev           bool
	Logger        *slog.Logger
}

// NewServer creates a new site server instance.
func NewServer(cfg Config) *Server {
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.MaxAge(86400 * 30) // 30 days
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Server{
		store:        cfg.Store,
		sessionStore: sessionStore,
		port:         cfg.Port,
		watch:        cfg.Watch,
		catalogPath:  cfg.CatalogPath,
		backupsDir:   cfg.BackupsDir,
		adminToken:   cfg.AdminToken,
		page:         cfg.Page,
		mailer:       cfg.Mailer,
		dev:          cfg.Dev,
		logger:       logger,
		notifier:     notifier.New(),
	}
}

// Notifier returns the server's notifier for SSE updates.
func (s *Server) Notifier() *notifier.Notifier {
	return s.notifier
}

// Serve starts the site server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting site server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	bundle, err := assets.Build(!s.dev)
	if err != nil {
		return fmt.Errorf("failed to build assets: %w", err)
	}

	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	err = router.SetupRoutes(r, router.Deps{
		Store:        s.store,
		SessionStore: s.sessionStore,
		Notifier:     s.notifier,
		Assets:       assets.NewHandler(bundle, s.dev),
		Page:         s.page,
		Mailer:       s.mailer,
		AdminToken:   s.adminToken,
		CatalogPath:  s.catalogPath,
		BackupsDir:   s.backupsDir,
		Logger:       s.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to setup routes: %w", err)
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start catalog watcher if enabled
	if s.watch && s.catalogPath != "" {
		eg.Go(func() error {
			return s.watchCatalog(egctx)
		})
	}

	// Start HTTP server
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down site server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// watchCatalog reloads the catalog when the document changes on disk. The
// parent directory is watched because editors often replace the file rather
// than writing it in place.
func (s *Server) watchCatalog(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(s.catalogPath)
	if err := watcher.Add(dir); err != nil {
		s.logger.Error("failed to watch catalog directory", "dir", dir, "error", err)
		// Don't fail - continue without watching
		<-ctx.Done()
		return nil
	}

	target := filepath.Clean(s.catalogPath)

	// Debounce timer
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != target {
				continue
			}

			// Debounce
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(reloadDebounce, func() {
				s.logger.Debug("catalog changed, reloading", "file", event.Name)

				if _, err := s.store.Load(ctx); err != nil {
					s.logger.Error("catalog reload failed", "error", err)
					return
				}

				// Notify all SSE clients
				s.notifier.Broadcast()
			})

		case err := <-watcher.Errors:
			s.logger.Error("watcher error", "error", err)
		}
	}
}
