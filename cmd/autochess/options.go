package main

import (
	"fmt"

	"github.com/san-kum/autochess/internal/config"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// configVar ties a flag to its environment variable and the config field
// it overrides.
type configVar[T string | float64] struct {
	envKey  string
	flagKey string
	usage   string
	field   func(*config.Config) *T
}

var (
	fps = configVar[float64]{
		envKey:  "AUTOCHESS_FPS",
		flagKey: "fps",
		usage:   "steps per second",
		field:   func(c *config.Config) *float64 { return &c.Rate },
	}
	refresh = configVar[float64]{
		flagKey: "refresh",
		usage:   "frame rate of the headless loop",
		field:   func(c *config.Config) *float64 { return &c.RefreshRate },
	}
	white = configVar[string]{
		envKey:  "AUTOCHESS_WHITE",
		flagKey: "white",
		usage:   "white player",
		field:   func(c *config.Config) *string { return &c.White },
	}
	black = configVar[string]{
		envKey:  "AUTOCHESS_BLACK",
		flagKey: "black",
		usage:   "black player",
		field:   func(c *config.Config) *string { return &c.Black },
	}
	library = configVar[string]{
		envKey:  "AUTOCHESS_LIBRARY",
		flagKey: "library",
		usage:   "game library (yaml); the built-in library when empty",
		field:   func(c *config.Config) *string { return &c.Library },
	}
	theme = configVar[string]{
		flagKey: "theme",
		usage:   "board theme",
		field:   func(c *config.Config) *string { return &c.Theme },
	}
	logLevel = configVar[string]{
		envKey:  "AUTOCHESS_LOG_LEVEL",
		flagKey: "log-level",
		usage:   "logging level",
		field:   func(c *config.Config) *string { return &c.Log.Level },
	}
	logFile = configVar[string]{
		envKey:  "AUTOCHESS_LOG_FILE",
		flagKey: "log-file",
		usage:   "log file path",
		field:   func(c *config.Config) *string { return &c.Log.File },
	}
)

func (c configVar[T]) register(fs *pflag.FlagSet, defaults *config.Config) {
	switch def := any(*c.field(defaults)).(type) {
	case string:
		fs.String(c.flagKey, def, c.usage)
	case float64:
		fs.Float64(c.flagKey, def, c.usage)
	}
}

func (c configVar[T]) bind(v *viper.Viper) error {
	if c.envKey == "" {
		return nil
	}
	return v.BindEnv(c.flagKey, c.envKey)
}

// apply overrides the config field when the flag was given or the
// environment variable is set.
func (c configVar[T]) apply(v *viper.Viper, cfg *config.Config) {
	if !v.IsSet(c.flagKey) {
		return
	}
	var val any
	switch any(*new(T)).(type) {
	case string:
		val = v.GetString(c.flagKey)
	case float64:
		val = v.GetFloat64(c.flagKey)
	}
	*c.field(cfg) = val.(T)
}

type options struct {
	v        *viper.Viper
	strings  []configVar[string]
	floats   []configVar[float64]
	defaults *config.Config
}

func newOptions() *options {
	return &options{
		v:        viper.New(),
		strings:  []configVar[string]{white, black, library, theme, logLevel, logFile},
		floats:   []configVar[float64]{fps, refresh},
		defaults: config.DefaultConfig(),
	}
}

// register adds the shared flags to fs.
func (o *options) register(fs *pflag.FlagSet) {
	fs.String("config", "", "config file path (yaml)")
	fs.String("preset", "", fmt.Sprintf("speed preset %v", config.ListPresets()))
	for _, c := range o.floats {
		c.register(fs, o.defaults)
	}
	for _, c := range o.strings {
		c.register(fs, o.defaults)
	}
}

// bind connects the flag set and the environment to viper.
func (o *options) bind(fs *pflag.FlagSet) error {
	if err := o.v.BindPFlags(fs); err != nil {
		return err
	}
	for _, c := range o.floats {
		if err := c.bind(o.v); err != nil {
			return err
		}
	}
	for _, c := range o.strings {
		if err := c.bind(o.v); err != nil {
			return err
		}
	}
	return nil
}

// resolve builds the effective configuration. Later sources win: defaults,
// preset, config file, environment, flags.
func (o *options) resolve() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if name := o.v.GetString("preset"); name != "" {
		cfg = config.GetPreset(name)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %v)", name, config.ListPresets())
		}
	}
	if path := o.v.GetString("config"); path != "" {
		if err := config.LoadInto(path, cfg); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	for _, c := range o.floats {
		c.apply(o.v, cfg)
	}
	for _, c := range o.strings {
		c.apply(o.v, cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
