package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the diagnostics logger. Diagnostics always go to stderr so they never mix with a
// report written to stdout. Only warnings and errors are shown unless verbose is set; structured
// output switches the encoder to JSON. Console levels are colored only when colored is set.
func New(verbose, structured, colored bool) (*zap.Logger, error) {
	config := newConfig(verbose, structured, colored)
	return config.Build()
}

func newConfig(verbose, structured, colored bool) zap.Config {
	var config zap.Config

	if structured {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		if colored {
			config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		} else {
			config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		config.EncoderConfig.TimeKey = ""
		config.EncoderConfig.CallerKey = ""
		config.DisableStacktrace = true
	}

	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	return config
}

// OrNop is like New but falls back to a no-op logger when the configuration cannot be built
func OrNop(verbose, structured, colored bool) *zap.Logger {
	log, err := New(verbose, structured, colored)
	if err != nil {
		return zap.NewNop()
	}
	return log
}
