package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var level = zap.NewAtomicLevel()

// Init installs the global zap logger. production and staging get JSON output.
// An empty levelName keeps the environment default: info for production, debug otherwise.
func Init(environment, levelName string) error {
	var cfg zap.Config
	switch environment {
	case "production", "staging":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	level.SetLevel(cfg.Level.Level())
	if err := SetLevel(levelName); err != nil {
		return err
	}
	cfg.Level = level

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build %s logger -> %w", environment, err)
	}

	zap.ReplaceGlobals(l.With(zap.String("environment", environment)))

	return nil
}

// SetLevel changes the level of the installed logger without rebuilding it.
func SetLevel(levelName string) error {
	if levelName == "" {
		return nil
	}

	lvl, err := zapcore.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("zapcore.ParseLevel -> %w", err)
	}
	level.SetLevel(lvl)

	return nil
}

func Level() zapcore.Level {
	return level.Level()
}
