package launcher

import (
	"fmt"
	"io"
	"os"

	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"
)

// logOutput is where log entries go; command output uses the app writer instead.
var logOutput io.Writer = os.Stderr

// verbosityLevels maps the numeric --log.verbosity onto logrus levels.
var verbosityLevels = []logrus.Level{
	logrus.FatalLevel,
	logrus.ErrorLevel,
	logrus.WarnLevel,
	logrus.InfoLevel,
	logrus.DebugLevel,
	logrus.TraceLevel,
}

// NewLogger builds a logger from the logging and sentry sections of the config.
func NewLogger(cfg Config, out io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.Out = out

	switch cfg.Logging.Format {
	case "json":
		log.Formatter = &logrus.JSONFormatter{}
	default:
		log.Formatter = &logrus.TextFormatter{
			ForceColors:   cfg.Logging.Color,
			DisableColors: !cfg.Logging.Color,
			FullTimestamp: true,
		}
	}

	v := cfg.Logging.Verbosity
	if v < 0 || v >= len(verbosityLevels) {
		return nil, fmt.Errorf("%w: %d", ErrBadVerbosity, v)
	}
	log.SetLevel(verbosityLevels[v])

	if cfg.Sentry.DSN != "" {
		hook, err := logrus_sentry.NewSentryHook(cfg.Sentry.DSN, []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		})
		if err != nil {
			return nil, fmt.Errorf("sentry hook: %w", err)
		}
		log.AddHook(hook)
	}
	return log, nil
}
