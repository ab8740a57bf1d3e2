package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/pkghelper/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
)

const (
	// AppName is used for the XDG config directory
	AppName = "pkghelper"

	// EnvPrefix prefixes every configuration environment variable
	EnvPrefix = "PKGHELPER_"

	// ConfigFileName is the file looked up inside the XDG config directory
	ConfigFileName = "config.toml"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config is the effective configuration
type Config struct {
	Install InstallConfig `koanf:"install" toml:"install"`
	Overlay OverlayConfig `koanf:"overlay" toml:"overlay"`
	Log     LogConfig     `koanf:"log" toml:"log"`
}

// InstallConfig configures single-file installs
type InstallConfig struct {
	Program string `koanf:"program" toml:"program"`
	Mode    string `koanf:"mode" toml:"mode"`
}

// OverlayConfig configures tree overlays
type OverlayConfig struct {
	HooksDir string `koanf:"hooks_dir" toml:"hooks_dir"`
	Strict   bool   `koanf:"strict" toml:"strict"`
}

// LogConfig configures diagnostic logging
type LogConfig struct {
	File bool `koanf:"file" toml:"file"`
}

// LoadOptions controls where configuration comes from
type LoadOptions struct {
	// Path is an explicit config file; it must exist when set
	Path string

	// Overrides are dotted keys applied last, e.g. "overlay.strict"
	Overrides map[string]interface{}
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Load builds the effective configuration
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	path, err := configFilePath(opts.Path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if cfg.Install.Program == "" {
		return nil, errors.New(errors.ErrConfigLoad, "install.program must not be empty")
	}
	if cfg.Overlay.HooksDir == "" {
		return nil, errors.New(errors.ErrConfigLoad, "overlay.hooks_dir must not be empty")
	}

	return &cfg, nil
}

// Marshal renders the configuration as TOML
func (c *Config) Marshal() ([]byte, error) {
	return gotoml.Marshal(c)
}

// DefaultConfigPath returns the config file location under XDG_CONFIG_HOME
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, ConfigFileName)
}

// configFilePath returns the file to load, or "" when there is none
func configFilePath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", explicit)
		}
		return explicit, nil
	}

	path := DefaultConfigPath()
	if _, err := os.Stat(path); err != nil {
		return "", nil
	}
	return path, nil
}

// envKey maps PKGHELPER_OVERLAY_HOOKS_DIR to overlay.hooks_dir
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}
