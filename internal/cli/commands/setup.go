package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ticuv/showcase/internal/catalog"
	"github.com/ticuv/showcase/internal/config"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
	Store  *catalog.Store
}

// NewCommandContext creates a CommandContext with a loaded catalog store.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cc := NewCommandContextWithoutCatalog(cmd)

	store := catalog.NewStore(catalog.SourceFor(cc.Cfg.Catalog), cc.Logger)
	if _, err := store.Load(cmd.Context()); err != nil {
		return nil, err
	}
	cc.Store = store
	return cc, nil
}

// NewCommandContextWithoutCatalog creates a CommandContext without loading
// the catalog. Useful for commands that only touch configuration or files.
func NewCommandContextWithoutCatalog(cmd *cobra.Command) *CommandContext {
	return &CommandContext{
		Cfg:    getConfig(),
		Logger: config.GetLogger(cmd.Context()),
	}
}

// getConfig returns the current configuration, falling back to environment
// variables when no config has been loaded yet.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	cfg := &config.Config{
		Catalog:    getEnvOrDefault("SHOWCASE_CATALOG", config.DefaultCatalog),
		BackupsDir: getEnvOrDefault("SHOWCASE_BACKUPS_DIR", config.DefaultBackupsDir),
		Verbose:    os.Getenv("SHOWCASE_VERBOSE") == "true",
	}
	cfg.ApplyDefaults()
	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// catalogPathForWrites returns the local catalog path, or empty when the
// catalog is fetched over HTTP and cannot be backed up or rewritten.
func catalogPathForWrites(cfg *config.Config) string {
	if _, ok := catalog.SourceFor(cfg.Catalog).(catalog.FileSource); ok {
		return cfg.Catalog
	}
	return ""
}
