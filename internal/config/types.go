// Package config loads showcase configuration from file, environment
// variables, and CLI flags.
package config

// ServerConfig holds settings for the web server.
type ServerConfig struct {
	Port          int    `koanf:"port"`
	Watch         bool   `koanf:"watch"`
	AutoOpen      bool   `koanf:"auto_open"`
	SessionSecret string `koanf:"session_secret"`
	AdminToken    string `koanf:"admin_token"`
}

// ArchiveConfig holds pagination and search tuning for the work section.
type ArchiveConfig struct {
	PageSize         int `koanf:"page_size"`
	LoadMoreStep     int `koanf:"load_more_step"`
	SearchDebounceMs int `koanf:"search_debounce_ms"`
}

// SMTPConfig holds the contact-form relay settings. Credential fields accept
// ${VAR} references expanded from the environment.
type SMTPConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	To       string `koanf:"to"`
}

// Config holds all showcase configuration options.
type Config struct {
	// Catalog is the projects.json location: a file path or an HTTP URL.
	Catalog    string         `koanf:"catalog"`
	Title      string         `koanf:"title"`
	BackupsDir string         `koanf:"backups_dir"`
	Verbose    bool           `koanf:"verbose"`
	Server     *ServerConfig  `koanf:"server"`
	Archive    *ArchiveConfig `koanf:"archive"`
	SMTP       *SMTPConfig    `koanf:"smtp"`
}
