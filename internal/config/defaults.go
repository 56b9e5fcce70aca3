package config

// Default configuration values.
const (
	DefaultCatalog          = "data/projects.json"
	DefaultTitle            = "ticu.v"
	DefaultBackupsDir       = "backups"
	DefaultPort             = 8765
	DefaultPageSize         = 6
	DefaultLoadMoreStep     = 6
	DefaultSearchDebounceMs = 300
	DefaultSMTPPort         = 587
)

// ApplyDefaults fills unset values so callers never nil-check the nested
// sections.
func (c *Config) ApplyDefaults() {
	if c.Catalog == "" {
		c.Catalog = DefaultCatalog
	}
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.BackupsDir == "" {
		c.BackupsDir = DefaultBackupsDir
	}
	if c.Server == nil {
		c.Server = &ServerConfig{Watch: true, AutoOpen: true}
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Archive == nil {
		c.Archive = &ArchiveConfig{}
	}
	if c.Archive.PageSize == 0 {
		c.Archive.PageSize = DefaultPageSize
	}
	if c.Archive.LoadMoreStep == 0 {
		c.Archive.LoadMoreStep = DefaultLoadMoreStep
	}
	if c.Archive.SearchDebounceMs == 0 {
		c.Archive.SearchDebounceMs = DefaultSearchDebounceMs
	}
	if c.SMTP != nil && c.SMTP.Port == 0 {
		c.SMTP.Port = DefaultSMTPPort
	}
}
