// Package config provides configuration loading and validation for the
// portfolio server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/musantuli/portfolio/internal/types"
)

// Defaults used when neither the config file nor the environment set a value.
const (
	DefaultAddr          = ""
	DefaultPort          = 8080
	DefaultGitHubAPIBase = "https://api.github.com"
	DefaultPrefsDB       = "portfolio-prefs.db"
	DefaultFetchTimeout  = 10 * time.Second
)

// Config represents the server configuration that can be loaded from a JSON file.
// All fields are optional; missing values fall back to the built-in content and defaults.
type Config struct {
	// Server
	Addr string `json:"addr,omitempty"` // Interface to bind, empty for all
	Port int    `json:"port,omitempty"` // Listen port

	// Content
	GitHubUser    string `json:"github_user,omitempty"`     // Overrides the repository listing owner
	GitHubAPIBase string `json:"github_api_base,omitempty"` // GitHub REST base URL
	ContentFile   string `json:"content_file,omitempty"`    // JSON or YAML content override
	CVURL         string `json:"cv_url,omitempty"`          // Overrides the CV link

	// Storage
	PrefsDB string `json:"prefs_db,omitempty"` // SQLite file for CLI preferences

	// Email relay
	EmailJSServiceID  string `json:"emailjs_service_id,omitempty"`
	EmailJSTemplateID string `json:"emailjs_template_id,omitempty"`
	EmailJSPublicKey  string `json:"emailjs_public_key,omitempty"`

	// Behavior
	FetchTimeout string `json:"fetch_timeout,omitempty"` // Go duration, e.g. "10s"
	Verbose      bool   `json:"verbose,omitempty"`       // Print detailed debug information
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Addr:          DefaultAddr,
		Port:          DefaultPort,
		GitHubAPIBase: DefaultGitHubAPIBase,
		PrefsDB:       DefaultPrefsDB,
		FetchTimeout:  DefaultFetchTimeout.String(),
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables.
// Unset variables leave fields empty so the result can be merged.
func FromEnv() (*Config, error) {
	cfg := &Config{
		GitHubUser:        os.Getenv("GITHUB_USER"),
		ContentFile:       os.Getenv("CONTENT_FILE"),
		PrefsDB:           os.Getenv("PREFS_DB"),
		EmailJSServiceID:  os.Getenv("EMAILJS_SERVICE_ID"),
		EmailJSTemplateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
		EmailJSPublicKey:  os.Getenv("EMAILJS_PUBLIC_KEY"),
	}
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("config error: PORT must be a number, got %q", port)
		}
		cfg.Port = p
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.FetchTimeout != "" {
		d, err := time.ParseDuration(c.FetchTimeout)
		if err != nil {
			return fmt.Errorf("config error: invalid 'fetch_timeout': %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("config error: 'fetch_timeout' must be positive")
		}
	}

	// Validate file paths exist (if specified)
	if c.ContentFile != "" {
		if _, err := os.Stat(c.ContentFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: content file not found: %s", c.ContentFile)
		}
	}

	// Relay tokens come as a set
	set := 0
	for _, v := range []string{c.EmailJSServiceID, c.EmailJSTemplateID, c.EmailJSPublicKey} {
		if v != "" {
			set++
		}
	}
	if set != 0 && set != 3 {
		return fmt.Errorf("config error: 'emailjs_service_id', 'emailjs_template_id' and 'emailjs_public_key' must be set together")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Addr == "" {
		result.Addr = defaults.Addr
	}
	if result.GitHubUser == "" {
		result.GitHubUser = defaults.GitHubUser
	}
	if result.GitHubAPIBase == "" {
		result.GitHubAPIBase = defaults.GitHubAPIBase
	}
	if result.ContentFile == "" {
		result.ContentFile = defaults.ContentFile
	}
	if result.CVURL == "" {
		result.CVURL = defaults.CVURL
	}
	if result.PrefsDB == "" {
		result.PrefsDB = defaults.PrefsDB
	}
	if result.EmailJSServiceID == "" {
		result.EmailJSServiceID = defaults.EmailJSServiceID
	}
	if result.EmailJSTemplateID == "" {
		result.EmailJSTemplateID = defaults.EmailJSTemplateID
	}
	if result.EmailJSPublicKey == "" {
		result.EmailJSPublicKey = defaults.EmailJSPublicKey
	}
	if result.FetchTimeout == "" {
		result.FetchTimeout = defaults.FetchTimeout
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ListenAddr returns the host:port the server binds to.
func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.Addr, strconv.Itoa(c.Port))
}

// Timeout returns the outbound fetch timeout, or DefaultFetchTimeout when
// unset or invalid.
func (c *Config) Timeout() time.Duration {
	if c.FetchTimeout == "" {
		return DefaultFetchTimeout
	}
	d, err := time.ParseDuration(c.FetchTimeout)
	if err != nil || d <= 0 {
		return DefaultFetchTimeout
	}
	return d
}

// ApplyTo overlays the configured overrides onto a content record.
func (c *Config) ApplyTo(p *types.Profile) {
	if c.GitHubUser != "" {
		p.GitHub.Username = c.GitHubUser
	}
	if c.CVURL != "" {
		p.CVURL = c.CVURL
	}
	if c.EmailJSServiceID != "" {
		p.EmailJS = types.EmailJS{
			ServiceID:  c.EmailJSServiceID,
			TemplateID: c.EmailJSTemplateID,
			PublicKey:  c.EmailJSPublicKey,
		}
	}
}
