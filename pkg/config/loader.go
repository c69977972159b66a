package config

import (
	_ "embed"
	"errors"
	"os"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	doterrors "github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/arthur-debert/dot/pkg/paths"
)

// EnvPrefix is the prefix of environment variables read into the config.
const EnvPrefix = "DOT_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// LoadOptions controls Load.
type LoadOptions struct {
	// UserConfigPath is the optional user file. Defaults to
	// paths.UserConfigPath().
	UserConfigPath string

	// Overrides are dotted keys applied last, e.g. "manifest.path".
	Overrides map[string]interface{}
}

// Load builds the configuration from all layers.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, doterrors.Wrap(err, doterrors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Runtime defaults
	runtime := map[string]interface{}{
		"storage.base_dir": paths.DefaultBaseDir(),
	}
	if err := k.Load(confmap.Provider(runtime, "."), nil); err != nil {
		return nil, doterrors.Wrap(err, doterrors.ErrConfigLoad, "failed to load runtime defaults")
	}

	// 3. User config file if it exists
	userPath := opts.UserConfigPath
	if userPath == "" {
		userPath = paths.UserConfigPath()
	}
	if _, err := os.Stat(userPath); err == nil {
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return nil, doterrors.Wrapf(err, doterrors.ErrConfigParse, "failed to load config from %s", userPath)
		}
		logger.Debug().Str("path", userPath).Msg("Loaded user config")
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, doterrors.Wrap(err, doterrors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Command line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, doterrors.Wrap(err, doterrors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       trimStringHookFunc(),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, doterrors.Wrap(err, doterrors.ErrConfigParse, "failed to unmarshal configuration")
	}

	postProcess(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("base_dir", cfg.Storage.BaseDir).
		Str("manifest", cfg.ManifestPath()).
		Bool("purge", cfg.Untrack.Purge).
		Msg("Configuration loaded")
	return &cfg, nil
}

// envKey maps DOT_STORAGE_BASE_DIR to storage.base_dir: the first
// underscore separates the section from the key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func trimStringHookFunc() mapstructure.DecodeHookFuncKind {
	return func(from, to reflect.Kind, data interface{}) (interface{}, error) {
		if from == reflect.String && to == reflect.String {
			return strings.TrimSpace(data.(string)), nil
		}
		return data, nil
	}
}

func postProcess(cfg *Config) {
	cfg.Storage.BaseDir = paths.ExpandHome(cfg.Storage.BaseDir)
	cfg.Manifest.Path = paths.ExpandHome(cfg.Manifest.Path)
	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	cfg.Output.Color = strings.ToLower(cfg.Output.Color)
}
