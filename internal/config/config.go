package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// BasicAuthConfig holds HTTP Basic Auth credentials for the API.
type BasicAuthConfig struct {
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
}

// TicketingConfig describes the upstream ticketing (Discovery) API.
type TicketingConfig struct {
	// BaseURL is the Discovery API root, e.g.
	// "https://app.ticketmaster.com/discovery/v2". Override in tests.
	BaseURL string `yaml:"base_url" json:"base_url"`

	// APIKeyEnv names the environment variable holding the API key.
	// The key itself never lives in the config file.
	APIKeyEnv string `yaml:"api_key_env" json:"api_key_env"`
}

// Config is the top-level application configuration.
type Config struct {
	// Listen is the HTTP listen address for the API.
	Listen string `yaml:"listen" json:"listen"`

	// Timezone is the IANA timezone used for all calendar arithmetic
	// (date filters, "tonight"), e.g. "America/Chicago".
	Timezone string `yaml:"timezone" json:"timezone"`

	// LogLevel is one of DEBUG / INFO / ERROR.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// DefaultLatitude / DefaultLongitude are the fallback coordinates
	// used when no location is supplied. Defaults to Chicago.
	DefaultLatitude  float64 `yaml:"default_latitude" json:"default_latitude"`
	DefaultLongitude float64 `yaml:"default_longitude" json:"default_longitude"`

	// RadiusMiles is the search radius for upstream event queries.
	RadiusMiles int `yaml:"radius_miles" json:"radius_miles"`

	// PageSize is the upstream page size for featured queries.
	PageSize int `yaml:"page_size" json:"page_size"`

	// CacheTTLMinutes is the response cache time-to-live.
	CacheTTLMinutes int `yaml:"cache_ttl_minutes" json:"cache_ttl_minutes"`

	// RefreshCron is a cron-style schedule (e.g. "*/30 * * * *") used to
	// re-warm the featured events cache in the background.
	RefreshCron string `yaml:"refresh" json:"refresh"`

	// CoupleID identifies the couple whose saved events this instance
	// serves. Opaque string.
	CoupleID string `yaml:"couple_id" json:"couple_id"`

	Ticketing TicketingConfig `yaml:"ticketing" json:"ticketing"`

	// BasicAuth, if non-nil, enables HTTP Basic Authentication on all
	// endpoints except /health.
	BasicAuth *BasicAuthConfig `yaml:"basic_auth,omitempty" json:"basic_auth,omitempty"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Listen:           "127.0.0.1:8080",
		Timezone:         "America/Chicago",
		LogLevel:         "INFO",
		DefaultLatitude:  41.8781,
		DefaultLongitude: -87.6298,
		RadiusMiles:      25,
		PageSize:         50,
		CacheTTLMinutes:  30,
		RefreshCron:      "*/30 * * * *",
		CoupleID:         "default",
		Ticketing: TicketingConfig{
			BaseURL:   "https://app.ticketmaster.com/discovery/v2",
			APIKeyEnv: "TICKETING_API_KEY",
		},
	}
}

// Normalize fills in missing/zero values with defaults so that partially
// filled configs still behave correctly.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.Listen == "" {
		c.Listen = def.Listen
	}
	if c.Timezone == "" {
		c.Timezone = def.Timezone
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.DefaultLatitude == 0 && c.DefaultLongitude == 0 {
		c.DefaultLatitude = def.DefaultLatitude
		c.DefaultLongitude = def.DefaultLongitude
	}
	if c.RadiusMiles <= 0 {
		c.RadiusMiles = def.RadiusMiles
	}
	if c.PageSize <= 0 {
		c.PageSize = def.PageSize
	}
	if c.CacheTTLMinutes <= 0 {
		c.CacheTTLMinutes = def.CacheTTLMinutes
	}
	if c.RefreshCron == "" {
		c.RefreshCron = def.RefreshCron
	}
	if c.CoupleID == "" {
		c.CoupleID = def.CoupleID
	}
	if c.Ticketing.BaseURL == "" {
		c.Ticketing.BaseURL = def.Ticketing.BaseURL
	}
	if c.Ticketing.APIKeyEnv == "" {
		c.Ticketing.APIKeyEnv = def.Ticketing.APIKeyEnv
	}
}

// CacheTTL returns the cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

// Location resolves the configured timezone, falling back to UTC if the
// zone cannot be loaded.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load loads configuration from the given YAML path.
//
// If the file does not exist, a default config is written there (0600)
// and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Return cfg with the error so the caller can decide.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the configuration atomically (temp file + rename) with
// 0600 permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".datenight-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
