package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/itergen/pkg/errors"
	"github.com/arthur-debert/itergen/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix marks environment variables read into the configuration.
	EnvPrefix = "ITERGEN_"
	// ProjectFile is looked up in the project root.
	ProjectFile = ".itergen.toml"
)

// Format holds formatter settings
type Format struct {
	Enabled bool          `koanf:"enabled"`
	Script  string        `koanf:"script"`
	Timeout time.Duration `koanf:"timeout"`
}

// Output holds settings for generated files
type Output struct {
	FileMode os.FileMode `koanf:"file_mode"`
}

// Discovery holds the globs used to find manifests
type Discovery struct {
	Patterns []string `koanf:"patterns"`
	Exclude  []string `koanf:"exclude"`
}

// Config is the effective itergen configuration.
type Config struct {
	Format    Format    `koanf:"format"`
	Output    Output    `koanf:"output"`
	Discovery Discovery `koanf:"discovery"`

	k *koanf.Koanf
}

// Load merges, in increasing precedence, the embedded defaults, the user
// config file, the project file in root, ITERGEN_* environment variables and
// overrides. Overrides use dotted keys such as "format.script".
func Load(root string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(&bytesProvider{data: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load user and project files if they exist
	for _, path := range []string{userConfigPath(), filepath.Join(root, ProjectFile)} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("loaded config file")
	}

	// 3. Load env vars
	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Apply overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	cfg := Config{k: k}
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if cfg.Format.Timeout < 0 {
		return nil, errors.Newf(errors.ErrConfigParse, "format.timeout must not be negative, got %s", cfg.Format.Timeout)
	}

	return &cfg, nil
}

// Marshal renders the merged configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	if c.k == nil {
		return nil, errors.New(errors.ErrInternal, "configuration was not loaded")
	}
	return c.k.Marshal(toml.Parser())
}

// envKey maps ITERGEN_OUTPUT_FILE_MODE to output.file_mode: only the section
// separator becomes a dot.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func userConfigPath() string {
	home := os.Getenv("XDG_CONFIG_HOME")
	if home == "" {
		home = xdg.ConfigHome
	}
	return filepath.Join(home, "itergen", "config.toml")
}
