package logging

import (
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"
)

// Logger is the global logger instance. It discards everything until Setup runs.
var Logger = zap.NewNop()

// Setup builds the global logger. Debug selects the development config and
// debug level; an interactive stderr gets the console encoder instead of JSON.
func Setup(debug bool, appName, appVersion string) error {
	cfg := NewConfig(debug, term.IsTerminal(int(os.Stderr.Fd())))

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		Logger = zap.NewExample()
		return err
	}

	Logger = logger
	zap.ReplaceGlobals(Logger)
	return nil
}

// NewConfig returns the zap config Setup builds from.
func NewConfig(debug, interactive bool) zap.Config {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Sampling = nil
	}
	if interactive {
		cfg.Encoding = "console"
	}
	return cfg
}
