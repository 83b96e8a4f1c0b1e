package config

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/g25-tools/g25-averager/g25/types"
)

// Config keys mapped to the command-line flags that override them.
var flagKeys = map[string]string{
	"mode":       "mode",
	"out":        "out",
	"summary":    "summary",
	"label":      "label",
	"precision":  "precision",
	"strict":     "strict",
	"overwrite":  "overwrite",
	"log.level":  "log-level",
	"log.format": "log-format",
}

// Load reads configuration from the optional TOML file at configPath and
// overlays any flags in flags that were explicitly set. An empty configPath
// means flags and defaults only.
func Load(configPath string, flags *pflag.FlagSet) (Config, error) {
	var cfg Config

	v := viper.New()
	v.SetDefault("precision", defaultPrecision)

	if flags != nil {
		for key, name := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return cfg, types.ErrConfig.Wrapf("failed to bind flag %s: %s", name, err)
			}
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return cfg, types.ErrConfig.Wrapf("failed to read config: %s", err)
		}
	}

	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		modeDecodeHook,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return cfg, types.ErrConfig.Wrapf("failed to decode config: %s", err)
	}

	cfg.setDefaults()

	return cfg, cfg.Validate()
}

// ParseConfig attempts to read and parse configuration from the given file
// path without any flag overrides.
func ParseConfig(configPath string) (Config, error) {
	return Load(configPath, nil)
}

// modeDecodeHook normalizes mode names while decoding so that "Grouped"
// and "grouped" are equivalent. Only an absent mode key falls back to the
// default; an explicitly empty one is rejected.
func modeDecodeHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String || t != reflect.TypeOf(types.Mode("")) {
		return data, nil
	}

	return types.ParseMode(reflect.ValueOf(data).String())
}
