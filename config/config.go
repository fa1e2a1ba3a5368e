// Package config manages configuration for the completion tooling. The
// completer's own option defaults come from the engine, never from here;
// configuration only supplies explicit overrides and tool settings.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/wtdcode/clang-rs/errors"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// CLANG_COMPLETE_LOG_JSON=true.
const EnvPrefix = "CLANG_COMPLETE"

// Keys for completer option overrides. They are deliberately left without
// defaults: an unset key means "use the engine's built-in default", and
// callers must check IsSet before applying an override.
const (
	KeyMacros       = "completion.macros"
	KeyCodePatterns = "completion.code_patterns"
	KeyBriefs       = "completion.briefs"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Logging defaults
	v.SetDefault("log.json", false)

	// Replay defaults
	v.SetDefault("replay.snapshot", "")
}

// New returns a viper instance with defaults and environment binding in
// place. Environment variables use the CLANG_COMPLETE_ prefix with dots
// replaced by underscores.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads an optional clang-complete config file from the current
// directory. A missing file is not an error; a malformed one is.
func Load(v *viper.Viper) error {
	v.SetConfigName("clang-complete")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "failed to read configuration")
	}
	return nil
}
