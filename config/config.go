package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/g25-tools/g25-averager/g25"
	"github.com/g25-tools/g25-averager/g25/types"
)

const (
	LogFormatJSON = "json"
	LogFormatText = "text"

	// DefaultOutputSuffix is appended to the input path when no output path
	// is configured.
	DefaultOutputSuffix = ".avg.txt"

	defaultMode      = types.ModeSimple
	defaultLogLevel  = "info"
	defaultLogFormat = LogFormatText
	defaultPrecision = g25.ShortestPrecision

	SampleConfigPath = "g25-averager.example.toml"
)

var validate = validator.New()

type (
	// Config defines all g25-averager run parameters.
	Config struct {
		Mode      types.Mode `mapstructure:"mode" validate:"required"`
		Out       string     `mapstructure:"out"`
		Summary   string     `mapstructure:"summary"`
		Label     string     `mapstructure:"label"`
		Precision int        `mapstructure:"precision" validate:"gte=-1,lte=17"` // -1 is shortest exact form
		Strict    bool       `mapstructure:"strict"`
		Overwrite bool       `mapstructure:"overwrite"`
		Log       Log        `mapstructure:"log"`
	}

	// Log defines the logger configuration.
	Log struct {
		Level  string `mapstructure:"level" validate:"required"`
		Format string `mapstructure:"format" validate:"required,oneof=json text"`
	}
)

// logValidation is custom validation for the Log struct.
func logValidation(sl validator.StructLevel) {
	l := sl.Current().Interface().(Log)

	if _, err := zerolog.ParseLevel(l.Level); err != nil {
		sl.ReportError(l.Level, "level", "Level", "unsupportedLogLevel", "")
	}
}

// modeValidation is custom validation for the Config struct.
func modeValidation(sl validator.StructLevel) {
	c := sl.Current().Interface().(Config)

	if !c.Mode.Valid() {
		sl.ReportError(c.Mode, "mode", "Mode", "unsupportedMode", "")
	}
}

func init() {
	validate.RegisterStructValidation(logValidation, Log{})
	validate.RegisterStructValidation(modeValidation, Config{})
}

// Validate returns an error if the Config object is invalid.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return types.ErrConfig.Wrap(err.Error())
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Mode == "" {
		c.Mode = defaultMode
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = defaultLogFormat
	}
}

// OutputPath returns the configured output path, or the default derived
// from inputPath when none is set.
func (c Config) OutputPath(inputPath string) string {
	if c.Out != "" {
		return c.Out
	}
	return inputPath + DefaultOutputSuffix
}
