package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config file names, in lookup order.
const (
	ConfigFileName    = "showcase.yaml"
	ConfigFileNameAlt = "showcase.yml"
)

// maxUpwardSearchLevels limits how far up the directory tree to search for a
// config file.
const maxUpwardSearchLevels = 10

var (
	configFileUsed string
	currentConfig  *Config
)

// findConfigFile finds the config file to use.
// Priority: explicit path > showcase.yaml in dir > showcase.yml in dir.
func findConfigFile(explicit, dir string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// FindProjectRoot searches upward from startDir for a showcase config file.
// Returns startDir when none is found.
func FindProjectRoot(startDir string) string {
	dir := startDir
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if findConfigFile("", dir) != "" {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return startDir
}

// Load loads configuration with precedence (highest to lowest):
// flags > env vars (SHOWCASE_ prefix) > config file > defaults.
// Relative paths in the file resolve against the project root.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults.
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"catalog":                    DefaultCatalog,
		"title":                      DefaultTitle,
		"backups_dir":                DefaultBackupsDir,
		"verbose":                    false,
		"server.port":                DefaultPort,
		"server.watch":               true,
		"server.auto_open":           true,
		"archive.page_size":          DefaultPageSize,
		"archive.load_more_step":     DefaultLoadMoreStep,
		"archive.search_debounce_ms": DefaultSearchDebounceMs,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file, searched upward from the working directory.
	root, _ := os.Getwd()
	if root == "" {
		root = "."
	}
	if cfgFile == "" {
		root = FindProjectRoot(root)
	}
	configFileUsed = findConfigFile(cfgFile, root)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
		if abs, err := filepath.Abs(configFileUsed); err == nil {
			root = filepath.Dir(abs)
		}
	}

	// 3. Environment variables: SHOWCASE_SERVER__PORT -> server.port.
	// A double underscore separates nesting levels so flat keys keep their
	// single underscores (SHOWCASE_BACKUPS_DIR -> backups_dir).
	if err := k.Load(env.Provider("SHOWCASE_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "SHOWCASE_"))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags (highest priority), only those explicitly set.
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			switch f.Name {
			case "catalog":
				return "catalog", posflag.FlagVal(flags, f)
			case "backups-dir":
				return "backups_dir", posflag.FlagVal(flags, f)
			case "verbose":
				return "verbose", posflag.FlagVal(flags, f)
			case "port":
				return "server.port", posflag.FlagVal(flags, f)
			case "watch":
				return "server.watch", posflag.FlagVal(flags, f)
			}
			return "", nil
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.ApplyDefaults()

	// Resolve the catalog and backups paths against the project root, unless
	// the catalog is served over HTTP.
	if !strings.HasPrefix(cfg.Catalog, "http://") && !strings.HasPrefix(cfg.Catalog, "https://") {
		cfg.Catalog = resolvePathRelativeTo(cfg.Catalog, root)
	}
	cfg.BackupsDir = resolvePathRelativeTo(cfg.BackupsDir, root)

	if cfg.SMTP != nil {
		expandSMTPEnvVars(cfg.SMTP)
	}

	currentConfig = &cfg

	return &cfg, nil
}

// GetCurrentConfig returns the most recently loaded configuration, or nil
// before the first Load.
func GetCurrentConfig() *Config {
	return currentConfig
}

// GetConfigFileUsed returns the path of the config file last loaded, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

type loggerKey struct{}

// LoggerKey returns the context key used for storing the logger. This allows
// the commands package to retrieve the logger from context without creating
// an import cycle with the cli package.
func LoggerKey() interface{} {
	return loggerKey{}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}

// NewLogger creates the CLI logger. Verbose mode lowers the level to debug.
func NewLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// resolvePathRelativeTo resolves a path relative to baseDir if it's not
// absolute.
func resolvePathRelativeTo(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// expandEnvVars expands ${VAR} patterns with environment variable values.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	return re.ReplaceAllStringFunc(s, func(match string) string {
		if val := os.Getenv(match[2 : len(match)-1]); val != "" {
			return val
		}
		return match
	})
}

// expandSMTPEnvVars expands environment references in credential fields.
func expandSMTPEnvVars(s *SMTPConfig) {
	s.Host = expandEnvVars(s.Host)
	s.User = expandEnvVars(s.User)
	s.Password = expandEnvVars(s.Password)
	s.To = expandEnvVars(s.To)
}
