package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"faqflip/internal/eventbus"
	"faqflip/internal/progress"
)

// Themes
const (
	ThemeBasic   = "basic"
	ThemeBlocks  = "blocks"
	ThemeSidebar = "sidebar"
)

// CurrentVersion is written into every saved config
const CurrentVersion = 1

// Config represents the application configuration
type Config struct {
	Version int             `toml:"version"`
	Feed    FeedSettings    `toml:"feed"`
	UI      UISettings      `toml:"ui"`
	Storage StorageSettings `toml:"storage"`
	Log     LogSettings     `toml:"log"`
}

// FeedSettings select where entries come from
type FeedSettings struct {
	URL               string `toml:"url"`
	File              string `toml:"file"`     // local .json/.yaml, wins over URL
	BaseURL           string `toml:"base_url"` // origin for "/path" links in answers
	RevalidateSeconds int    `toml:"revalidate_seconds"`
	TimeoutSeconds    int    `toml:"timeout_seconds"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Theme         string `toml:"theme"`
	Lookahead     int    `toml:"lookahead"`
	SwapDelayMS   int    `toml:"swap_delay_ms"`
	RevealDelayMS int    `toml:"reveal_delay_ms"`
}

// StorageSettings locate persisted progress
type StorageSettings struct {
	Backend string `toml:"backend"` // file, sqlite or memory
	Path    string `toml:"path"` // empty picks a per-backend file in Dir()
}

// ResolvedPath returns the configured path, or the backend's own default
// file so that switching backends never reuses the other's file
func (s StorageSettings) ResolvedPath() string {
	if s.Path != "" {
		return s.Path
	}
	return filepath.Join(Dir(), progress.DefaultFileName(s.Backend))
}

// LogSettings control the log file
type LogSettings struct {
	Path  string `toml:"path"`
	Debug bool   `toml:"debug"`
}

// Revalidate returns the feed cache interval
func (f FeedSettings) Revalidate() time.Duration {
	return time.Duration(f.RevalidateSeconds) * time.Second
}

// Timeout returns the feed request timeout
func (f FeedSettings) Timeout() time.Duration {
	return time.Duration(f.TimeoutSeconds) * time.Second
}

// SwapDelay returns how long the card stays hidden while switching entries
func (u UISettings) SwapDelay() time.Duration {
	return time.Duration(u.SwapDelayMS) * time.Millisecond
}

// RevealDelay returns the pause before a new answer is shown
func (u UISettings) RevealDelay() time.Duration {
	return time.Duration(u.RevealDelayMS) * time.Millisecond
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// Dir returns the faqflip directory under the user config dir
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "faqflip")
}

// NewConfigService creates a config service for the default config file
func NewConfigService() ConfigService {
	return &configService{filePath: filepath.Join(Dir(), "config.toml")}
}

// NewConfigServiceWithBus creates a config service with event bus support.
// An empty path selects the default config file.
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	cs := NewConfigService().(*configService)
	if path != "" {
		cs.filePath = path
	}
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration file, falling back to defaults when it does
// not exist, and applies environment overrides
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else {
		loaded, err := cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	ApplyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath, Theme: cfg.UI.Theme})
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Missing fields
// keep their defaults.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	config.Version = CurrentVersion
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Feed: FeedSettings{
			URL:               "https://demismatch.com/api/faq",
			BaseURL:           "https://demismatch.com",
			RevalidateSeconds: 60,
			TimeoutSeconds:    15,
		},
		UI: UISettings{
			Theme:         ThemeSidebar,
			Lookahead:     4,
			SwapDelayMS:   200,
			RevealDelayMS: 50,
		},
		Storage: StorageSettings{
			Backend: progress.BackendFile,
		},
		Log: LogSettings{
			Path: "faqflip.log",
		},
	}
}

// Validate checks values the rest of the program relies on and normalises
// the storage backend name
func (c *Config) Validate() error {
	switch c.UI.Theme {
	case ThemeBasic, ThemeBlocks, ThemeSidebar:
	default:
		return fmt.Errorf("unknown theme %q (want %s, %s or %s)", c.UI.Theme, ThemeBasic, ThemeBlocks, ThemeSidebar)
	}
	if c.Feed.URL == "" && c.Feed.File == "" {
		return errors.New("no feed configured: set feed.url or feed.file")
	}
	if c.UI.SwapDelayMS < 0 || c.UI.RevealDelayMS < 0 {
		return errors.New("ui delays must not be negative")
	}
	if c.UI.Lookahead < 0 {
		return errors.New("ui.lookahead must not be negative")
	}
	if c.Feed.TimeoutSeconds <= 0 {
		return errors.New("feed.timeout_seconds must be positive")
	}
	backend, err := progress.ParseBackend(c.Storage.Backend)
	if err != nil {
		return err
	}
	c.Storage.Backend = backend
	return nil
}

// LoadDotEnv loads .env files into the process environment. Missing files
// are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// ApplyEnv overrides cfg from FAQFLIP_* environment variables
func ApplyEnv(cfg *Config) {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	setInt := func(key string, dst *int) {
		if v, ok := os.LookupEnv(key); ok {
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				*dst = n
			}
		}
	}

	setString("FAQFLIP_FEED_URL", &cfg.Feed.URL)
	setString("FAQFLIP_FEED_FILE", &cfg.Feed.File)
	setString("FAQFLIP_BASE_URL", &cfg.Feed.BaseURL)
	setInt("FAQFLIP_REVALIDATE_SECONDS", &cfg.Feed.RevalidateSeconds)
	setString("FAQFLIP_THEME", &cfg.UI.Theme)
	setString("FAQFLIP_STORAGE", &cfg.Storage.Backend)
	setString("FAQFLIP_STORAGE_PATH", &cfg.Storage.Path)
	setString("FAQFLIP_LOG", &cfg.Log.Path)

	if v, ok := os.LookupEnv("FAQFLIP_DEBUG"); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			cfg.Log.Debug = b
		}
	}
}
