package commands

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ticuv/showcase/internal/site"
	"github.com/ticuv/showcase/internal/site/features/contact"
	"github.com/ticuv/showcase/internal/site/features/work"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Port      int
	NoBrowser bool
	Watch     bool
	Dev       bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the portfolio site server",
		Long: `Start the web server for the portfolio site.

The server renders the work archive with search, filters, and the project
viewer, and watches the catalog file so edits show up without a restart.`,
		Example: `  # Start on the default port
  showcase serve

  # Start on a custom port
  showcase serve --port 3000

  # Start without auto-opening a browser
  showcase serve --no-browser`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8765)")
	cmd.Flags().BoolVar(&opts.NoBrowser, "no-browser", false, "Don't auto-open browser")
	cmd.Flags().BoolVar(&opts.Watch, "watch", true, "Watch the catalog for changes")
	cmd.Flags().BoolVar(&opts.Dev, "dev", false, "Serve unminified assets without caching")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	cfg := cc.Cfg

	// CLI flags override config file
	port := cfg.Server.Port
	if opts.Port != 0 {
		port = opts.Port
	}

	autoOpen := cfg.Server.AutoOpen
	if opts.NoBrowser {
		autoOpen = false
	}

	watch := cfg.Server.Watch
	if cmd.Flags().Changed("watch") {
		watch = opts.Watch
	}

	var mailer contact.Mailer
	if cfg.SMTP != nil && cfg.SMTP.Host != "" {
		mailer = contact.NewSMTPMailer(*cfg.SMTP)
	}

	serverCfg := site.Config{
		Store:         cc.Store,
		Port:          port,
		Watch:         watch,
		CatalogPath:   catalogPathForWrites(cfg),
		BackupsDir:    cfg.BackupsDir,
		SessionSecret: sessionSecret(cfg.Server.SessionSecret),
		AdminToken:    cfg.Server.AdminToken,
		Page: work.PageConfig{
			Title:            cfg.Title,
			PageSize:         cfg.Archive.PageSize,
			LoadMoreStep:     cfg.Archive.LoadMoreStep,
			SearchDebounceMs: cfg.Archive.SearchDebounceMs,
		},
		Mailer: mailer,
		Dev:    opts.Dev,
		Logger: cc.Logger,
	}

	server := site.NewServer(serverCfg)

	if autoOpen {
		url := fmt.Sprintf("http://localhost:%d", port)
		go openBrowser(url)
	}

	fmt.Printf("Starting site server on http://localhost:%d\n", port)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Serve(ctx)
}

// sessionSecret returns the configured secret or a development fallback.
func sessionSecret(configured string) string {
	if configured != "" {
		return configured
	}
	if secret := os.Getenv("SHOWCASE_SESSION_SECRET"); secret != "" {
		return secret
	}
	// Default secret for development (nolint:gosec)
	return "showcase-dev-secret-change-in-production" //nolint:gosec
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url) //nolint:noctx
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:noctx
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:noctx
	default:
		return
	}

	_ = cmd.Start()
}
