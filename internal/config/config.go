package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"tagbar/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version   int             `toml:"version"`
	Bar       BarSettings     `toml:"bar"`
	Colors    ColorSettings   `toml:"colors"`
	Fonts     FontSettings    `toml:"fonts"`
	Animation AnimationConfig `toml:"animation"`
	Layout    LayoutSettings  `toml:"layout"`
	Demo      DemoSettings    `toml:"demo"`
}

// BarSettings holds the titles and text shown by the search bar
type BarSettings struct {
	Placeholder string `toml:"placeholder"`
	CancelTitle string `toml:"cancel_title"`
	CancelIcon  string `toml:"cancel_icon"` // replaces the cancel title when set
	SearchTitle string `toml:"search_title"`
	ChipIcon    string `toml:"chip_icon"`
	Height      int    `toml:"height"`
}

// ColorSettings holds lipgloss color strings (ANSI index or hex)
type ColorSettings struct {
	ChipBackground   string `toml:"chip_background"`
	ChipForeground   string `toml:"chip_foreground"`
	SearchBackground string `toml:"search_background"`
	SearchTitle      string `toml:"search_title"`
	CancelTitle      string `toml:"cancel_title"`
	StripBackground  string `toml:"strip_background"`
}

// FontSettings holds comma separated text attributes: bold, italic, underline, faint
type FontSettings struct {
	Button string `toml:"button"`
	Chip   string `toml:"chip"`
	Input  string `toml:"input"`
}

// AnimationConfig tunes the spring that drives every transition
type AnimationConfig struct {
	Enabled   bool    `toml:"enabled"`
	FPS       int     `toml:"fps"`
	Frequency float64 `toml:"frequency"`
	Damping   float64 `toml:"damping"`
	MaxFrames int     `toml:"max_frames"`
}

// LayoutSettings holds the fixed cell budgets of the strip
type LayoutSettings struct {
	TagInset      int `toml:"tag_inset"`
	HeightInset   int `toml:"height_inset"`
	Spacing       int `toml:"spacing"`
	ButtonPadding int `toml:"button_padding"`
	MinInputWidth int `toml:"min_input_width"`
}

// DemoSettings configures the bundled demo host
type DemoSettings struct {
	Corpus string   `toml:"corpus"`
	Tags   []string `toml:"tags"`
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

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "tagbar", "config.toml")
}

// NewConfigService creates a config service reading path, or DefaultPath when empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate rejects values the layout cannot work with
func (c *Config) Validate() error {
	if c.Bar.Height < 1 {
		return fmt.Errorf("bar.height must be at least 1, got %d", c.Bar.Height)
	}
	if c.Layout.HeightInset < 0 || c.Layout.HeightInset >= c.Bar.Height {
		return fmt.Errorf("layout.height_inset must be in [0, %d), got %d", c.Bar.Height, c.Layout.HeightInset)
	}
	if c.Layout.TagInset < 0 || c.Layout.Spacing < 0 || c.Layout.ButtonPadding < 0 || c.Layout.MinInputWidth < 0 {
		return errors.New("layout values must not be negative")
	}
	if c.Animation.Enabled && c.Animation.FPS <= 0 {
		return fmt.Errorf("animation.fps must be positive, got %d", c.Animation.FPS)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Bar: BarSettings{
			Placeholder: "Search...",
			CancelTitle: "Back",
			SearchTitle: "SEARCH",
			ChipIcon:    "✕",
			Height:      1,
		},
		Colors: ColorSettings{
			ChipBackground:   "252", // light gray
			ChipForeground:   "235",
			SearchBackground: "33", // blue
			SearchTitle:      "231",
			CancelTitle:      "245",
			StripBackground:  "254",
		},
		Fonts: FontSettings{
			Button: "bold",
		},
		Animation: AnimationConfig{
			Enabled:   true,
			FPS:       60,
			Frequency: 7.0,
			Damping:   0.8,
			MaxFrames: 30,
		},
		Layout: LayoutSettings{
			TagInset:      1,
			HeightInset:   0,
			Spacing:       1,
			ButtonPadding: 2,
			MinInputWidth: 12,
		},
	}
}
