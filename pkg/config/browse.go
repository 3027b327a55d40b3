package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// BrowseConfig configures the terminal listings browser.
type BrowseConfig struct {
	APIURL       string
	SessionToken string
	PageSize     int
	Debounce     time.Duration
	Timeout      time.Duration
	LogFile      string
	LogLevel     string
}

// browseFile is the on-disk layout; durations are Go duration strings.
type browseFile struct {
	APIURL       string `toml:"api_url"`
	SessionToken string `toml:"session_token"`
	PageSize     int    `toml:"page_size"`
	Debounce     string `toml:"debounce"`
	Timeout      string `toml:"timeout"`
	LogFile      string `toml:"log_file"`
	LogLevel     string `toml:"log_level"`
}

// DefaultBrowseConfig returns the settings used when no file is present.
func DefaultBrowseConfig() BrowseConfig {
	return BrowseConfig{
		APIURL:   "http://localhost:5000",
		PageSize: 9,
		Debounce: 400 * time.Millisecond,
		Timeout:  30 * time.Second,
		LogFile:  "browse.log",
		LogLevel: "INFO",
	}
}

// LoadBrowseConfig reads a TOML file over the defaults. A missing file is not
// an error. LISTINGS_API_URL and LISTINGS_TOKEN override the file.
func LoadBrowseConfig(path string) (*BrowseConfig, error) {
	cfg := DefaultBrowseConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read browse config: %w", err)
		default:
			if err := cfg.merge(data); err != nil {
				return nil, err
			}
		}
	}

	if url := os.Getenv("LISTINGS_API_URL"); url != "" {
		cfg.APIURL = url
	}
	if token := os.Getenv("LISTINGS_TOKEN"); token != "" {
		cfg.SessionToken = token
	}

	if cfg.APIURL == "" {
		return nil, fmt.Errorf("api_url is required")
	}
	if cfg.PageSize < 1 {
		return nil, fmt.Errorf("page_size must be positive, got %d", cfg.PageSize)
	}
	if cfg.Debounce < 0 {
		return nil, fmt.Errorf("debounce must not be negative")
	}
	return &cfg, nil
}

func (c *BrowseConfig) merge(data []byte) error {
	var f browseFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse browse config: %w", err)
	}

	if f.APIURL != "" {
		c.APIURL = f.APIURL
	}
	if f.SessionToken != "" {
		c.SessionToken = f.SessionToken
	}
	if f.PageSize != 0 {
		c.PageSize = f.PageSize
	}
	if f.LogFile != "" {
		c.LogFile = f.LogFile
	}
	if f.LogLevel != "" {
		c.LogLevel = f.LogLevel
	}
	if f.Debounce != "" {
		d, err := time.ParseDuration(f.Debounce)
		if err != nil {
			return fmt.Errorf("invalid debounce %q: %w", f.Debounce, err)
		}
		c.Debounce = d
	}
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", f.Timeout, err)
		}
		c.Timeout = d
	}
	return nil
}
