// This file maps the CLI context and an optional TOML file onto the Config struct.

package launcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-osu-format/layout"
)

var (
	ErrNoLayout     = errors.New("no layout: pass --layout or --preset")
	ErrBadLogFormat = errors.New("log format must be text or json")
	ErrBadOutput    = errors.New("output format must be text or json")
	ErrBadVerbosity = errors.New("log verbosity must be between 0 and 5")
)

// Config aggregates everything a command needs.
type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Sentry  SentryConfig  `toml:"sentry"`
	Codec   CodecConfig   `toml:"codec"`
}

type LoggingConfig struct {
	Verbosity int    `toml:"verbosity"`
	Format    string `toml:"format"`
	Color     bool   `toml:"color"`
}

type SentryConfig struct {
	DSN string `toml:"dsn"`
}

type CodecConfig struct {
	Preset string `toml:"preset"`
	Layout string `toml:"layout"`
	Hex    bool   `toml:"hex"`
	Strict bool   `toml:"strict"`
	Output string `toml:"output"`
}

// ResolveLayout returns the explicit layout if one is set, the preset otherwise.
func (c CodecConfig) ResolveLayout() (layout.Layout, error) {
	if c.Layout != "" {
		return layout.Parse(c.Layout)
	}
	if c.Preset != "" {
		return layout.Preset(c.Preset)
	}
	return layout.Layout{}, ErrNoLayout
}

// -----------------------------------------------------------------------------
// Default config + builders
// -----------------------------------------------------------------------------

// defaultConfig mirrors DefaultConfig from defaults.go so both stay in sync.

func defaultConfig() Config {
	d := DefaultConfig()
	return Config{
		Logging: LoggingConfig{
			Verbosity: d.Logging.Verbosity,
			Format:    d.Logging.Format,
			Color:     d.Logging.Color,
		},
		Sentry: SentryConfig{
			DSN: d.Sentry.DSN,
		},
		Codec: CodecConfig{
			Preset: d.Codec.Preset,
			Layout: d.Codec.Layout,
			Hex:    d.Codec.Hex,
			Strict: d.Codec.Strict,
			Output: d.Codec.Output,
		},
	}
}

// MakeAllConfigs merges defaults, the optional config file, then CLI overrides, and validates
// the result.

func MakeAllConfigs(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()

	if file := flagString(ctx, "config"); file != "" {
		if err := loadConfigFile(resolvePath(file), &cfg); err != nil {
			return Config{}, err
		}
	}

	applyCLIOverrides(ctx, &cfg)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrBadLogFormat, c.Logging.Format)
	}
	if c.Logging.Verbosity < 0 || c.Logging.Verbosity > 5 {
		return fmt.Errorf("%w: %d", ErrBadVerbosity, c.Logging.Verbosity)
	}
	switch c.Codec.Output {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrBadOutput, c.Codec.Output)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Config-file / CLI wiring
// -----------------------------------------------------------------------------

// loadConfigFile decodes TOML over cfg; keys absent from the file keep their current values.
func loadConfigFile(path string, cfg *Config) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

func applyCLIOverrides(ctx *cli.Context, cfg *Config) {
	if flagIsSet(ctx, "log.format") {
		cfg.Logging.Format = flagString(ctx, "log.format")
	}
	if flagIsSet(ctx, "log.verbosity") {
		cfg.Logging.Verbosity = flagInt(ctx, "log.verbosity")
	}
	if flagIsSet(ctx, "log.color") {
		cfg.Logging.Color = flagBool(ctx, "log.color")
	}
	if flagIsSet(ctx, "sentry.dsn") {
		cfg.Sentry.DSN = flagString(ctx, "sentry.dsn")
	}

	if flagIsSet(ctx, "preset") {
		cfg.Codec.Preset = flagString(ctx, "preset")
		// an explicit preset on the command line beats a layout from the config file
		if !flagIsSet(ctx, "layout") {
			cfg.Codec.Layout = ""
		}
	}
	if flagIsSet(ctx, "layout") {
		cfg.Codec.Layout = flagString(ctx, "layout")
	}
	if flagIsSet(ctx, "hex") {
		cfg.Codec.Hex = flagBool(ctx, "hex")
	}
	if flagIsSet(ctx, "strict") {
		cfg.Codec.Strict = flagBool(ctx, "strict")
	}
	if flagIsSet(ctx, "output") {
		cfg.Codec.Output = flagString(ctx, "output")
	}
}

// Flags live either on the app (global) or on the running command; these helpers look in both.

func flagIsSet(ctx *cli.Context, name string) bool {
	return ctx.IsSet(name) || ctx.GlobalIsSet(name)
}

func flagString(ctx *cli.Context, name string) string {
	if ctx.IsSet(name) {
		return ctx.String(name)
	}
	return ctx.GlobalString(name)
}

func flagInt(ctx *cli.Context, name string) int {
	if ctx.IsSet(name) {
		return ctx.Int(name)
	}
	return ctx.GlobalInt(name)
}

func flagBool(ctx *cli.Context, name string) bool {
	if ctx.IsSet(name) {
		return ctx.Bool(name)
	}
	return ctx.GlobalBool(name)
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func resolvePath(p string) string {
	if strings.HasPrefix(p, "~") {
		return filepath.Join(GuessHomeDir(), strings.TrimPrefix(p, "~"))
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(GuessWorkDir(), p)
}

func GuessWorkDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func GuessHomeDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return dir
	}
	return "."
}
