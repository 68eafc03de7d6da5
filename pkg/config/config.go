// Package config loads pos-writer settings from embedded defaults, the
// user's config file, and POSWRITER_* environment variables, in
// ascending precedence.
package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	poserr "github.com/linky00/pos-writer/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config holds the resolved settings
type Config struct {
	Printer PrinterConfig `koanf:"printer"`
	Box     BoxConfig     `koanf:"box"`
	Preview PreviewConfig `koanf:"preview"`
}

// PrinterConfig configures the output device
type PrinterConfig struct {
	// Device is a path to write ESC/POS bytes to; "-" means stdout
	Device string `koanf:"device"`
	// Width is the paper's column budget in characters; 0 disables wrapping
	Width int `koanf:"width"`
	// Init controls whether ESC @ is sent before a job
	Init bool `koanf:"init"`
	// Cut controls whether the paper is cut after a job
	Cut bool `koanf:"cut"`
}

// BoxConfig configures default framing
type BoxConfig struct {
	// Border is the default border type name; empty means no border
	Border string `koanf:"border"`
}

// PreviewConfig configures the preview command
type PreviewConfig struct {
	Format string `koanf:"format"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// UserConfigPath returns the expected location of the user config file
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "pos-writer", "config.toml")
}

// Load resolves the configuration. A missing user config file is fine;
// a malformed one is an error.
func Load() (*Config, error) {
	return LoadFrom(UserConfigPath())
}

// LoadFrom resolves the configuration reading the user config from an
// explicit path
func LoadFrom(userConfigPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, poserr.Wrap(err, poserr.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config, if present
	if _, err := os.Stat(userConfigPath); err == nil {
		if err := k.Load(file.Provider(userConfigPath), toml.Parser()); err != nil {
			return nil, poserr.Wrapf(err, poserr.ErrConfigParse, "failed to load config from %s", userConfigPath)
		}
	}

	// 3. Environment overrides: POSWRITER_PRINTER_WIDTH -> printer.width
	if err := k.Load(env.Provider("POSWRITER_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "POSWRITER_")), "_", ".")
	}), nil); err != nil {
		return nil, poserr.Wrap(err, poserr.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, poserr.Wrap(err, poserr.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Printer.Width < 0 {
		return poserr.Newf(poserr.ErrConfigValid, "printer.width must be >= 0, got %d", cfg.Printer.Width)
	}
	if cfg.Printer.Device == "" {
		return poserr.New(poserr.ErrConfigValid, "printer.device must not be empty")
	}
	return nil
}
