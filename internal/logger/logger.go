package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var level = zap.NewAtomicLevel()

// Init builds the global zap logger. The "dev" environment gets the
// human-readable development config, everything else gets production JSON.
// The level stays adjustable through SetLevel after the logger is built.
func Init(environment, logLevel string) error {
	if err := SetLevel(logLevel); err != nil {
		return err
	}

	var conf zap.Config
	if environment == "dev" {
		conf = zap.NewDevelopmentConfig()
	} else {
		conf = zap.NewProductionConfig()
	}
	conf.Level = level

	l, err := conf.Build()
	if err != nil {
		return fmt.Errorf("conf.Build -> %w", err)
	}

	zap.ReplaceGlobals(l)

	return nil
}

// SetLevel changes the level of the running logger. An empty string means
// info.
func SetLevel(logLevel string) error {
	if logLevel == "" {
		logLevel = "info"
	}

	parsed, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("zapcore.ParseLevel -> %w", err)
	}

	level.SetLevel(parsed)

	return nil
}
