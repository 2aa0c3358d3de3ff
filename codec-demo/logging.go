package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	codec "github.com/bangzek/modbus-codec"
)

// LogLevelEnvVar sets the log level when --log-level is empty. With
// neither set the codec logs nothing.
const LogLevelEnvVar = "MODBUS_LOG_LEVEL"

var logger = zap.NewNop().Sugar()

func parseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// initLogging builds a console logger on stderr and binds the codec log
// hooks to it.
func initLogging(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		logger = zap.NewNop().Sugar()
		codec.InfoLogFunc = nil
		codec.DebugLogFunc = nil
		return nil
	}

	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.CallerKey = ""

	l, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l.Sugar().Named("modbus")
	codec.InfoLogFunc = logger.Infof
	codec.DebugLogFunc = logger.Debugf
	return nil
}

func syncLogging() {
	logger.Sync()
}
