package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/deckscript/pkg/errors"
	"github.com/arthur-debert/deckscript/pkg/logging"
)

// EnvPrefix is the prefix of environment variables read by Load
const EnvPrefix = "DECKSCRIPT_"

// candidate user file names, in lookup order
var userFileNames = []string{"config.toml", "config.yaml", "config.yml"}

// Load builds the configuration. path names an explicit config file (the
// --config flag) and must exist; when empty the user config dir is searched
// and a missing file is not an error.
func Load(path string) (*Config, error) {
	return LoadWithOverrides(path, nil)
}

// LoadWithOverrides is Load with a last layer of dotted keys on top of the
// environment, e.g. {"output.format": "json"} for command line flags
func LoadWithOverrides(path string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}

	// 2. User file
	userPath := path
	if userPath == "" {
		userPath = FindUserFile()
	} else if _, err := os.Stat(userPath); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", userPath).
			WithDetail("path", userPath)
	}
	if userPath != "" {
		parser, err := parserFor(userPath)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(userPath), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", userPath).
				WithDetail("path", userPath)
		}
		logger.Debug().Str("path", userPath).Msg("Loaded config file")
	}

	// 3. Env vars
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
		logger.Debug().Int("keys", len(overrides)).Msg("Applied config overrides")
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.TextUnmarshallerHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	// 6. Post-process
	if err := postProcessConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the embedded defaults alone
func Default() *Config {
	k := koanf.New(".")
	var cfg Config
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return &cfg
	}
	_ = k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"})
	return &cfg
}

// UserDir is the directory searched for the user config file
func UserDir() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "deckscript")
	}
	return filepath.Join(xdg.ConfigHome, "deckscript")
}

// FindUserFile returns the first existing user config file, or ""
func FindUserFile() string {
	dir := UserDir()
	for _, name := range userFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	}
	return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config file type %q, use .toml or .yaml", filepath.Ext(path)).
		WithDetail("path", path)
}

func postProcessConfig(cfg *Config) error {
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	cfg.Output.Color = strings.ToLower(strings.TrimSpace(cfg.Output.Color))
	cfg.Input.Encoding = strings.TrimSpace(cfg.Input.Encoding)

	switch cfg.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Newf(errors.ErrConfigParse, "output.color must be auto, always or never, got %q", cfg.Output.Color).
			WithDetail(errors.DetailField, "output.color").
			WithDetail(errors.DetailValue, cfg.Output.Color)
	}
	return nil
}
