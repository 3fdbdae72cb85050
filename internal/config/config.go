// Package config loads the ambient settings of the svg2tsx CLI.
//
// Settings only tune logging. The conversion itself has no configuration:
// the ref list, the strip rules and the output path are fixed.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by the CLI,
// e.g. SVG2TSX_DEBUG=true.
const EnvPrefix = "SVG2TSX"

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Settings holds the CLI settings resolved from flags, environment and the
// optional config file.
type Settings struct {
	Debug     bool   `mapstructure:"debug" yaml:"debug"`
	Quiet     bool   `mapstructure:"quiet" yaml:"quiet"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format" validate:"required,oneof=text json"`
}

// Setup points v at the config file and the environment. An explicit
// cfgFile must be readable; otherwise .svg2tsx.yaml is looked up in $HOME and
// the working directory, and a missing file is not an error.
func Setup(v *viper.Viper, cfgFile string) error {
	v.SetDefault("debug", false)
	v.SetDefault("quiet", false)
	v.SetDefault("log_format", LogFormatText)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
		return nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")
	v.SetConfigName(".svg2tsx")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	s.LogFormat = strings.ToLower(strings.TrimSpace(s.LogFormat))

	if err := validator.New().Struct(&s); err != nil {
		return nil, describe(err)
	}
	return &s, nil
}

// describe turns validator errors into a single readable error.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s %s", e.Field(), formatValidationError(e)))
	}
	return fmt.Errorf("invalid settings: %s", strings.Join(msgs, "; "))
}

// formatValidationError creates a human-readable error message.
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", e.Param(), e.Value())
	default:
		return fmt.Sprintf("failed validation '%s'", e.Tag())
	}
}
