package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	koanftoml "github.com/knadh/koanf/parsers/toml"
	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/relfiles/pkg/errors"
	"github.com/arthur-debert/relfiles/pkg/logging"
	"github.com/arthur-debert/relfiles/pkg/paths"
)

// envPrefix is stripped from environment variables before mapping them onto
// config keys: RELFILES_EDITOR_COMMAND -> editor.command.
const envPrefix = "RELFILES_"

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// LoadOptions control Load. Zero value means: default config file location,
// no overrides.
type LoadOptions struct {
	// File is an explicit config file path. Empty means paths.ConfigFile().
	File string

	// Overrides are applied last, above file and environment. The command
	// layer uses them for flag values.
	Overrides map[string]interface{}
}

// Load builds the effective configuration: embedded defaults, then the user
// config file (TOML, or YAML by extension), then RELFILES_* environment
// variables, then explicit overrides. A missing config file is fine.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, koanftoml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "cannot parse embedded defaults")
	}

	// 2. User config file, if present
	configFile := opts.File
	if configFile == "" {
		configFile = paths.ConfigFile()
	}
	if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), parserFor(configFile)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"cannot parse config file %s", configFile)
		}
		logger.Debug().Str("file", configFile).Msg("loaded config file")
	} else {
		logger.Debug().Str("file", configFile).Msg("no config file, using defaults")
	}

	// 3. Environment variables
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		// RELFILES_CONFIG and RELFILES_CONFIG_DIR locate the config file
		// itself (see pkg/paths); they are not config keys.
		if s == paths.EnvConfigFile || s == paths.EnvConfigDir {
			return ""
		}
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "cannot load environment variables")
	}

	// 4. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "cannot apply overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "cannot unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func parserFor(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return koanfyaml.Parser()
	default:
		return koanftoml.Parser()
	}
}
