package launcher

// Defaults bundles the baseline configuration values the launcher uses before a config file or
// flags override them.

type Defaults struct {
	Logging LoggingDefaults
	Sentry  SentryDefaults
	Codec   CodecDefaults
}

// LoggingDefaults controls log verbosity/format.
type LoggingDefaults struct {
	Verbosity int    //	Log level numeric (0=fatal, 1=error, 2=warn, 3=info, 4=debug, 5=trace).
	Format    string //	Log output format (text vs json).
	Color     bool   //	Whether to use ANSI color codes in logs (helpful on terminals, best disabled when piping to files).
}

// SentryDefaults configures error reporting. An empty DSN disables it.
type SentryDefaults struct {
	DSN string
}

// CodecDefaults captures how records are decoded and printed.
type CodecDefaults struct {
	Preset string //	Named layout used when no explicit layout is given.
	Layout string //	Explicit comma-separated field list; wins over Preset.
	Hex    bool   //	Treat input files as hex text.
	Strict bool   //	Reject input with bytes left after the last field.
	Output string //	text or json.
}

// DefaultConfig returns a fully populated Defaults instance.

func DefaultConfig() Defaults {
	return Defaults{
		Logging: LoggingDefaults{
			Verbosity: 3,
			Format:    "text",
			Color:     false,
		},
		Sentry: SentryDefaults{},
		Codec: CodecDefaults{
			Preset: "",
			Layout: "",
			Hex:    false,
			Strict: false,
			Output: "text",
		},
	}
}
