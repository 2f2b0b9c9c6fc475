package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/itl-creditos/creditos-admin/internal/listing"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Log      LogConfig      `koanf:"log"`
	Backend  BackendConfig  `koanf:"backend"`
	Report   ReportConfig   `koanf:"report"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host       string     `koanf:"host"`
	Port       int        `koanf:"port"`
	Mode       string     `koanf:"mode"`
	CSRFSecret string     `koanf:"csrf_secret"`
	Timeout    string     `koanf:"timeout"`
	CORS       CORSConfig `koanf:"cors"`
}

// CORSConfig holds CORS middleware settings.
type CORSConfig struct {
	AllowOrigins     []string `koanf:"allow_origins"`
	AllowMethods     []string `koanf:"allow_methods"`
	AllowHeaders     []string `koanf:"allow_headers"`
	AllowCredentials bool     `koanf:"allow_credentials"`
	MaxAge           string   `koanf:"max_age"`
}

// BackendConfig holds the settings of the REST backend the panels talk to.
type BackendConfig struct {
	BaseURL string `koanf:"base_url"`
	Timeout string `koanf:"timeout"`
	Token   string `koanf:"token"`
}

// ReportConfig holds defaults for the credit report page.
type ReportConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Driver   string         `koanf:"driver"`
	SQLite   SQLiteConfig   `koanf:"sqlite"`
	Postgres PostgresConfig `koanf:"postgres"`
	Pool     PoolConfig     `koanf:"pool"`
}

// SQLiteConfig holds SQLite-specific settings.
type SQLiteConfig struct {
	Path string `koanf:"path"`
}

// PostgresConfig holds PostgreSQL-specific settings.
type PostgresConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	DBName   string `koanf:"dbname"`
	SSLMode  string `koanf:"sslmode"`
}

// PoolConfig holds database connection pool settings.
type PoolConfig struct {
	MaxIdleConns    int    `koanf:"max_idle_conns"`
	MaxOpenConns    int    `koanf:"max_open_conns"`
	ConnMaxLifetime string `koanf:"conn_max_lifetime"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level           string `koanf:"level"`
	Format          string `koanf:"format"`
	Color           *bool  `koanf:"color"`
	FilePath        string `koanf:"file_path"`
	MaxSizeMB       int    `koanf:"max_size_mb"`
	RetentionDays   int    `koanf:"retention_days"`
	MaxBackups      int    `koanf:"max_backups"`
	CompressRotated *bool  `koanf:"compress_rotated"`
}

// Load reads configuration from a YAML file and overlays environment variables.
// Environment variables use the prefix "APP__" and double-underscore as the
// hierarchy separator. Single underscores are preserved as part of the key name.
// For example, APP__SERVER__PORT=9090 overrides server.port and
// APP__DATABASE__POOL__MAX_IDLE_CONNS=20 overrides database.pool.max_idle_conns.
//
// A .env file next to the working directory, when present, is loaded into the
// process environment first so that APP__ variables can live there.
func Load(configPath string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	// Load YAML config file.
	if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}

	// Overlay environment variables with prefix APP__.
	// APP__SERVER__PORT -> server.port
	// APP__DATABASE__POOL__MAX_IDLE_CONNS -> database.pool.max_idle_conns
	if err := k.Load(env.Provider("APP__", ".", func(s string) string {
		key := strings.TrimPrefix(s, "APP__")
		key = strings.ToLower(key)
		key = strings.ReplaceAll(key, "__", ".")
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cross-field constraints and supported values, trimming
// string fields in place.
func (c *Config) Validate() error {
	for _, check := range []func() error{
		c.validateServer,
		c.validateDatabase,
		c.validateBackend,
		c.validateReport,
		c.validateLog,
	} {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	mode, err := oneOf("server.mode", c.Server.Mode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	if err != nil {
		return err
	}
	c.Server.Mode = mode

	if err := validPort("server.port", c.Server.Port); err != nil {
		return err
	}
	if c.Server.Host = strings.TrimSpace(c.Server.Host); c.Server.Host == "" {
		return errors.New("server.host is required")
	}
	if err := positiveDuration("server.timeout", &c.Server.Timeout); err != nil {
		return err
	}
	return positiveDuration("server.cors.max_age", &c.Server.CORS.MaxAge)
}

func (c *Config) validateDatabase() error {
	if _, err := oneOf("database.driver", c.Database.Driver, "sqlite", "postgres"); err != nil {
		return err
	}
	if err := positiveDuration("database.pool.conn_max_lifetime", &c.Database.Pool.ConnMaxLifetime); err != nil {
		return err
	}

	if c.Database.Driver == "sqlite" {
		if c.Database.SQLite.Path = strings.TrimSpace(c.Database.SQLite.Path); c.Database.SQLite.Path == "" {
			return errors.New("database.sqlite.path is required when driver is sqlite")
		}
		return nil
	}

	pg := &c.Database.Postgres
	for _, f := range []struct {
		name string
		v    *string
	}{
		{"database.postgres.host", &pg.Host},
		{"database.postgres.user", &pg.User},
		{"database.postgres.dbname", &pg.DBName},
	} {
		if *f.v = strings.TrimSpace(*f.v); *f.v == "" {
			return fmt.Errorf("%s is required when driver is postgres", f.name)
		}
	}
	if err := validPort("database.postgres.port", pg.Port); err != nil {
		return err
	}

	// Release builds talk to postgres over TLS only.
	allowed := []string{"disable", "allow", "prefer", "require", "verify-ca", "verify-full"}
	if c.Server.Mode == gin.ReleaseMode {
		allowed = allowed[3:]
	}
	sslMode, err := oneOf("database.postgres.sslmode", pg.SSLMode, allowed...)
	if err != nil {
		return fmt.Errorf("%w (server.mode %q)", err, c.Server.Mode)
	}
	pg.SSLMode = sslMode
	return nil
}

func (c *Config) validateReport() error {
	// 0 leaves the listing default in place.
	if ps := c.Report.DefaultPageSize; ps != 0 && !listing.ValidPageSize(ps) {
		return fmt.Errorf("invalid report.default_page_size %d: must be one of %v", ps, listing.PageSizes)
	}
	return nil
}

func (c *Config) validateLog() error {
	level, err := oneOf("log.level", strings.ToLower(c.Log.Level), "debug", "info", "warn", "error")
	if err != nil {
		return err
	}
	format, err := oneOf("log.format", strings.ToLower(c.Log.Format), "text", "json")
	if err != nil {
		return err
	}
	c.Log.Level, c.Log.Format = level, format
	return nil
}

// oneOf returns the trimmed value when it is one of allowed.
func oneOf(field, value string, allowed ...string) (string, error) {
	v := strings.TrimSpace(value)
	if slices.Contains(allowed, v) {
		return v, nil
	}
	return "", fmt.Errorf("invalid %s %q: must be one of %q", field, value, allowed)
}

func validPort(field string, port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid %s %d: must be between 1 and 65535", field, port)
	}
	return nil
}

// positiveDuration trims *v and, when it is not empty, requires a duration
// greater than zero such as "30s" or "24h".
func positiveDuration(field string, v *string) error {
	*v = strings.TrimSpace(*v)
	if *v == "" {
		return nil
	}
	d, err := time.ParseDuration(*v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", field, *v, err)
	}
	if d <= 0 {
		return fmt.Errorf("invalid %s %q: must be greater than 0", field, *v)
	}
	return nil
}

// validateBackend checks and normalizes the backend section.
func (c *Config) validateBackend() error {
	raw := strings.TrimSpace(c.Backend.BaseURL)
	if raw == "" {
		return errors.New("backend.base_url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid backend.base_url %q: %w", c.Backend.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid backend.base_url %q: scheme must be http or https", c.Backend.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid backend.base_url %q: host is required", c.Backend.BaseURL)
	}
	c.Backend.BaseURL = strings.TrimRight(raw, "/")

	if err := positiveDuration("backend.timeout", &c.Backend.Timeout); err != nil {
		return err
	}

	c.Backend.Token = strings.TrimSpace(c.Backend.Token)
	if c.Server.Mode == gin.ReleaseMode && c.Backend.Token != "" && u.Scheme != "https" {
		return fmt.Errorf("invalid backend.base_url %q: a token requires https in release mode", c.Backend.BaseURL)
	}
	return nil
}

// BackendTimeout returns the configured backend timeout, or 10s when unset.
func (c *Config) BackendTimeout() time.Duration {
	if d, err := time.ParseDuration(c.Backend.Timeout); err == nil && d > 0 {
		return d
	}
	return 10 * time.Second
}

// loadDotEnv loads path into the process environment when it exists.
// Variables already set in the environment win.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
