package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/1broseidon/xpdesk/internal/explorer"
	"github.com/1broseidon/xpdesk/internal/geometry"
	"github.com/1broseidon/xpdesk/internal/logging"
)

const appName = "xpdesk"

// ViewportConfig is the desktop size used when no terminal is attached.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimersConfig holds the desktop's timer durations in milliseconds.
type TimersConfig struct {
	ClockTickMS     int `yaml:"clock_tick_ms"`
	PreloaderMS     int `yaml:"preloader_ms"`
	IconOpenDelayMS int `yaml:"icon_open_delay_ms"`
}

// ClockTick is the taskbar clock refresh interval.
func (t TimersConfig) ClockTick() time.Duration {
	return time.Duration(t.ClockTickMS) * time.Millisecond
}

// Preloader is how long the splash screen is shown.
func (t TimersConfig) Preloader() time.Duration {
	return time.Duration(t.PreloaderMS) * time.Millisecond
}

// IconOpenDelay is the pause between selecting an icon and opening it.
func (t TimersConfig) IconOpenDelay() time.Duration {
	return time.Duration(t.IconOpenDelayMS) * time.Millisecond
}

// OwnerConfig overrides the portfolio owner shown in the start menu and the
// About/Contact dialogs.
type OwnerConfig struct {
	Name     string `yaml:"name,omitempty"`
	Email    string `yaml:"email,omitempty"`
	LinkedIn string `yaml:"linkedin,omitempty"`
}

// IPCConfig controls the control socket.
type IPCConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LoggingConfig configures desktop action logging.
type LoggingConfig struct {
	// Enabled turns action logging on/off
	Enabled bool `yaml:"enabled,omitempty"`
	// Level controls logging verbosity: debug, info, warn, error
	Level string `yaml:"level,omitempty"`
	// File is the log file path (default: $XDG_STATE_HOME/xpdesk/desktop.log)
	File string `yaml:"file,omitempty"`
	// MaxSizeMB is the maximum log file size before rotation (default: 10)
	MaxSizeMB int `yaml:"max_size_mb,omitempty"`
	// MaxFiles is the number of rotated files to keep (default: 3)
	MaxFiles int `yaml:"max_files,omitempty"`
}

// Config is the effective desktop configuration.
type Config struct {
	CellWidth   int            `yaml:"cell_width"`
	CellHeight  int            `yaml:"cell_height"`
	Viewport    ViewportConfig `yaml:"viewport"`
	Timers      TimersConfig   `yaml:"timers"`
	MouseMode   string         `yaml:"mouse_mode"`
	Theme       string         `yaml:"theme"`
	AssetsDir   string         `yaml:"assets_dir,omitempty"`
	Owner       OwnerConfig    `yaml:"owner,omitempty"`
	IPC         IPCConfig      `yaml:"ipc"`
	WatchConfig bool           `yaml:"watch_config"`
	LogLevel    string         `yaml:"log_level"`
	Logging     LoggingConfig  `yaml:"logging,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		CellWidth:  10,
		CellHeight: 20,
		Viewport: ViewportConfig{
			Width:  1280,
			Height: 800,
		},
		Timers: TimersConfig{
			ClockTickMS:     1000,
			PreloaderMS:     2000,
			IconOpenDelayMS: 300,
		},
		MouseMode:   "all",
		Theme:       "luna",
		IPC:         IPCConfig{Enabled: true},
		WatchConfig: true,
		LogLevel:    "info",
	}
}

// HeadlessViewport is the viewport used by the CLI and MCP server.
func (c *Config) HeadlessViewport() geometry.Size {
	return geometry.Size{Width: c.Viewport.Width, Height: c.Viewport.Height}
}

// CellSize is the number of virtual pixels one terminal cell covers.
func (c *Config) CellSize() geometry.Size {
	return geometry.Size{Width: c.CellWidth, Height: c.CellHeight}
}

// OwnerInfo returns the owner with unset fields defaulted.
func (c *Config) OwnerInfo() explorer.Owner {
	return explorer.Owner{
		Name:     c.Owner.Name,
		Email:    c.Owner.Email,
		LinkedIn: c.Owner.LinkedIn,
	}.WithDefaults()
}

// GetAssetsDir returns the assets directory, defaulting to
// $XDG_DATA_HOME/xpdesk/assets.
func (c *Config) GetAssetsDir() string {
	if c.AssetsDir != "" {
		return expandHome(c.AssetsDir)
	}
	return filepath.Join(xdg.DataHome, appName, "assets")
}

// GetLoggingConfig returns the logging configuration with defaults applied.
func (c *Config) GetLoggingConfig() LoggingConfig {
	if c == nil {
		return LoggingConfig{}
	}
	cfg := c.Logging
	if cfg.File == "" {
		cfg.File = filepath.Join(xdg.StateHome, appName, "desktop.log")
	} else {
		cfg.File = expandHome(cfg.File)
	}
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxFiles == 0 {
		cfg.MaxFiles = 3
	}
	return cfg
}

// LogConfig converts the logging section for logging.NewLogger.
func (c *Config) LogConfig() logging.LogConfig {
	lc := c.GetLoggingConfig()
	return logging.LogConfig{
		Enabled:   lc.Enabled,
		Level:     logging.ParseLogLevel(lc.Level),
		FilePath:  lc.File,
		MaxSizeMB: lc.MaxSizeMB,
		MaxFiles:  lc.MaxFiles,
	}
}

func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Save writes the config to the default location.
func (c *Config) Save() error {
	path, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo validates and writes the config to path.
func (c *Config) SaveTo(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.CellWidth <= 0 {
		return &ValidationError{Path: "cell_width", Err: fmt.Errorf("cell_width must be > 0")}
	}
	if c.CellHeight <= 0 {
		return &ValidationError{Path: "cell_height", Err: fmt.Errorf("cell_height must be > 0")}
	}
	if c.Viewport.Width <= 0 {
		return &ValidationError{Path: "viewport.width", Err: fmt.Errorf("width must be > 0")}
	}
	if c.Viewport.Height <= 0 {
		return &ValidationError{Path: "viewport.height", Err: fmt.Errorf("height must be > 0")}
	}
	if c.Timers.ClockTickMS <= 0 {
		return &ValidationError{Path: "timers.clock_tick_ms", Err: fmt.Errorf("clock_tick_ms must be > 0")}
	}
	if c.Timers.PreloaderMS < 0 {
		return &ValidationError{Path: "timers.preloader_ms", Err: fmt.Errorf("preloader_ms must be >= 0")}
	}
	if c.Timers.IconOpenDelayMS < 0 {
		return &ValidationError{Path: "timers.icon_open_delay_ms", Err: fmt.Errorf("icon_open_delay_ms must be >= 0")}
	}
	switch c.MouseMode {
	case "all", "cell":
	default:
		return &ValidationError{Path: "mouse_mode", Err: fmt.Errorf("mouse_mode must be one of: all, cell")}
	}
	switch c.Theme {
	case "luna", "classic":
	default:
		return &ValidationError{Path: "theme", Err: fmt.Errorf("theme must be one of: luna, classic")}
	}
	if c.LogLevel != "debug" && c.LogLevel != "info" && c.LogLevel != "warning" && c.LogLevel != "error" {
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "logging.level", Err: fmt.Errorf("level must be one of: debug, info, warn, error")}
	}
	if c.Logging.MaxSizeMB < 0 {
		return &ValidationError{Path: "logging.max_size_mb", Err: fmt.Errorf("max_size_mb must be >= 0")}
	}
	if c.Logging.MaxFiles < 0 {
		return &ValidationError{Path: "logging.max_files", Err: fmt.Errorf("max_files must be >= 0")}
	}
	return nil
}
