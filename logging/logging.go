package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"simpleui/apperr"
)

// New builds a zap logger for the given level name. Level names are those
// zap understands, in any case. Unknown or empty names log at info.
// Debug gets the human-readable development encoder; everything else logs
// JSON.
func New(level string) (*zap.Logger, error) {
	atom, err := zap.ParseAtomicLevel(level)
	if err != nil {
		atom = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	config := zap.NewProductionConfig()
	if atom.Level() == zapcore.DebugLevel {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = atom
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return nil, apperr.Wrap(apperr.Configuration, "build logger", err)
	}
	return logger, nil
}
