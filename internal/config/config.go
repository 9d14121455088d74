// Package config loads the parallax TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/parallax/internal/header"
	"github.com/llehouerou/parallax/internal/imagesrc"
)

const (
	appName        = "parallax"
	configFileName = "config.toml"
	logFileName    = "parallax.log"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full application configuration, one field per TOML
// section.
type Config struct {
	Header HeaderConfig `koanf:"header"`
	Log    LogConfig    `koanf:"log"`
}

// HeaderConfig holds the header dimensions, in terminal cells, and its
// rendering switches.
type HeaderConfig struct {
	DefaultHeight         float64 `koanf:"default_height" validate:"gt=0,gtfield=ToolbarHeight"`
	ToolbarHeight         float64 `koanf:"toolbar_height" validate:"gt=0"`
	StatusBarInset        float64 `koanf:"status_bar_inset" validate:"gte=0"`
	CollapsedTitlePadding float64 `koanf:"collapsed_title_padding" validate:"gte=0"`
	ContentPadding        float64 `koanf:"content_padding" validate:"gte=0"`
	TitlePadding          float64 `koanf:"title_padding" validate:"gte=0"`

	ToolbarBrush bool   `koanf:"toolbar_brush"`
	Shadow       bool   `koanf:"shadow"`
	ContentScale string `koanf:"content_scale" validate:"oneof=crop fit stretch"` // "crop", "fit" or "stretch"
	MaxColors    int    `koanf:"max_colors" validate:"min=1,max=16"`
	SmoothScroll bool   `koanf:"smooth_scroll"`
	Icons        string `koanf:"icons" validate:"oneof=nerd unicode none"` // "nerd", "unicode" or "none"
}

// LogConfig controls the log file. The UI owns the terminal, so logs never
// go to stderr while it runs.
type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	File  string `koanf:"file"` // empty means the XDG state dir
}

// Default returns the configuration used when no file sets a value.
func Default() *Config {
	h := header.DefaultConfig()
	return &Config{
		Header: HeaderConfig{
			DefaultHeight:         h.DefaultHeight,
			ToolbarHeight:         h.ToolbarHeight,
			StatusBarInset:        h.StatusBarInset,
			CollapsedTitlePadding: 1,
			ContentPadding:        h.ContentPadding,
			TitlePadding:          h.TitlePadding,
			ToolbarBrush:          true,
			Shadow:                true,
			ContentScale:          imagesrc.Crop.String(),
			MaxColors:             3,
			SmoothScroll:          true,
			Icons:                 "unicode",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the configuration. An explicit path must exist and is the only
// file read; otherwise the XDG config file and ./config.toml are layered,
// last wins.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	if explicit != "" {
		path := expandPath(explicit)
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	} else {
		for _, path := range getConfigPaths() {
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
					return nil, fmt.Errorf("read %s: %w", path, err)
				}
			}
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints, then that the header can collapse.
func (c *Config) Validate() error {
	if err := convertValidationError(validatorInstance().Struct(c)); err != nil {
		return err
	}
	if err := c.Header.Header().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/parallax/config.toml
		filepath.Join(xdg.ConfigHome, appName, configFileName),
		// 2. ./config.toml (pwd, highest priority)
		configFileName,
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Header converts the file settings to controller dimensions.
func (h HeaderConfig) Header() header.Config {
	cfg := header.DefaultConfig()
	cfg.DefaultHeight = h.DefaultHeight
	cfg.ToolbarHeight = h.ToolbarHeight
	cfg.StatusBarInset = h.StatusBarInset
	cfg.CollapsedTitlePadding = h.CollapsedTitlePadding
	cfg.ContentPadding = h.ContentPadding
	cfg.TitlePadding = h.TitlePadding
	return cfg
}

// Scale returns the image content scale.
func (h HeaderConfig) Scale() imagesrc.ContentScale {
	return imagesrc.ParseContentScale(h.ContentScale)
}

// LogPath returns the log file path, creating the XDG state directory when
// no file is configured.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return expandPath(c.Log.File), nil
	}
	return xdg.StateFile(filepath.Join(appName, logFileName))
}
