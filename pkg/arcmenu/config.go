package arcmenu

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/constants"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/geometry"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/internal/logging"
	"github.com/BurntSushi/toml"
)

//go:embed default_config.toml
var defaultConfigTOML []byte

// Config is the TOML document describing a menu and how hosts present it.
type Config struct {
	Radius                float64         `toml:"radius"`   // dp
	Position              geometry.Corner `toml:"position"` // e.g. "bottom_left"
	Density               float64         `toml:"density"`
	Duration              string          `toml:"duration"` // Go duration, e.g. "300ms"
	Stagger               string          `toml:"stagger"`
	SupersedeStaleBatches bool            `toml:"supersede_stale_batches"`
	Locale                string          `toml:"locale"`

	Trigger  MenuItem       `toml:"trigger"`
	Items    []MenuItem     `toml:"item"`
	Theme    ThemeConfig    `toml:"theme"`
	Hardware HardwareButton `toml:"hardware"`

	dir string
}

// ThemeConfig holds 0xRRGGBB colors. Hosts map them to their own palette;
// zero leaves the host's default.
type ThemeConfig struct {
	Accent          uint32 `toml:"accent"` // Trigger badge
	Item            uint32 `toml:"item"`   // Item badge
	Label           uint32 `toml:"label"`  // Text on badges
	ToastBackground uint32 `toml:"toast_background"`
	ToastText       uint32 `toml:"toast_text"`
	Background      uint32 `toml:"background"`
	Font            string `toml:"font"` // TTF path for labels and toasts
}

// HardwareButton binds a raw input device key to the trigger.
type HardwareButton struct {
	Device string `toml:"device"` // e.g. /dev/input/event1; empty disables it
	Code   uint16 `toml:"code"`   // Linux key code
}

// DefaultConfig returns the built-in menu.
func DefaultConfig() (*Config, error) {
	return ParseConfig(defaultConfigTOML)
}

// LoadConfig reads a TOML config file. An empty path loads the built-in
// menu. Environment overrides are applied in both cases.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		cfg, err := DefaultConfig()
		if err != nil {
			return nil, err
		}
		if err := cfg.applyEnv(); err != nil {
			return nil, &ConfigError{Err: err}
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		var cerr *ConfigError
		if errors.As(err, &cerr) {
			cerr.Path = path
		}
		return nil, err
	}
	cfg.dir = filepath.Dir(path)

	if err := cfg.applyEnv(); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	logging.GetInternalLogger().Debug("Loaded arc menu config", "path", path, "items", len(cfg.Items))
	return cfg, nil
}

// ParseConfig decodes a TOML document. Unknown keys are logged, not rejected.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logging.GetInternalLogger().Warn("Ignoring unknown config keys", "keys", keys)
	}

	if _, err := cfg.Settings(); err != nil {
		return nil, &ConfigError{Err: err}
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(constants.RadiusEnvVar); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", constants.RadiusEnvVar, err)
		}
		c.Radius = r
	}
	if v := os.Getenv(constants.PositionEnvVar); v != "" {
		corner, err := geometry.ParseCorner(v)
		if err != nil {
			return fmt.Errorf("%s: %w", constants.PositionEnvVar, err)
		}
		c.Position = corner
	}
	_, err := c.Settings()
	return err
}

// Settings converts the document into validated widget settings.
func (c *Config) Settings() (Settings, error) {
	s := Settings{
		Radius:                c.Radius,
		Position:              c.Position,
		Density:               c.Density,
		SupersedeStaleBatches: c.SupersedeStaleBatches,
	}

	var err error
	if s.Duration, err = parseDuration("duration", c.Duration); err != nil {
		return Settings{}, err
	}
	if s.StaggerWindow, err = parseDuration("stagger", c.Stagger); err != nil {
		return Settings{}, err
	}

	s = s.withDefaults()
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Build creates the menu: the trigger followed by every item. Relative icon
// paths resolve against the config file's directory.
func (c *Config) Build() (*ArcMenu, error) {
	settings, err := c.Settings()
	if err != nil {
		return nil, err
	}

	menu, err := New(settings)
	if err != nil {
		return nil, err
	}

	menu.AddChild(c.resolve(c.Trigger).Element(settings.Density))
	for _, item := range c.Items {
		menu.AddChild(c.resolve(item).Element(settings.Density))
	}
	return menu, nil
}

func (c *Config) resolve(mi MenuItem) MenuItem {
	if mi.Icon != "" && c.dir != "" && !filepath.IsAbs(mi.Icon) {
		mi.Icon = filepath.Join(c.dir, mi.Icon)
	}
	return mi
}

func parseDuration(field, raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return d, nil
}
