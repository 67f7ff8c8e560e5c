package utils

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Log is the global logger instance
	Log *logrus.Logger
)

// LogConfig holds logging configuration
type LogConfig struct {
	Level      string `yaml:"level"`       // debug, info, warn, error
	FilePath   string `yaml:"file"`        // Rotated log file; empty logs to stderr
	MaxSize    int    `yaml:"max_size"`    // Max size in MB before rotation
	MaxAge     int    `yaml:"max_age"`     // Max days to keep old logs
	MaxBackups int    `yaml:"max_backups"` // Max number of old logs to keep
	Compress   bool   `yaml:"compress"`    // Compress old logs
	JSONFormat bool   `yaml:"json"`        // Use JSON format
}

// DefaultLogConfig returns default logging configuration.
// Stdout belongs to the program output, so diagnostics default to stderr at
// warn level.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:      "warn",
		MaxSize:    10,
		MaxAge:     7,
		MaxBackups: 3,
		Compress:   true,
	}
}

// InitLogger initializes the global logger. Output goes to a rotated file
// when FilePath is set, otherwise to stderr.
func InitLogger(config LogConfig) error {
	return initLogger(config, os.Stderr)
}

func initLogger(config LogConfig, console io.Writer) error {
	Log = logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.WarnLevel
	}
	Log.SetLevel(level)

	var out io.Writer = console
	if config.FilePath != "" {
		logDir := filepath.Dir(config.FilePath)
		if logDir != "." && logDir != "" {
			if err := os.MkdirAll(logDir, 0755); err != nil {
				return err
			}
		}
		out = &lumberjack.Logger{
			Filename:   config.FilePath,
			MaxSize:    config.MaxSize,
			MaxAge:     config.MaxAge,
			MaxBackups: config.MaxBackups,
			Compress:   config.Compress,
			LocalTime:  true,
		}
	}
	Log.SetOutput(out)

	if config.JSONFormat {
		Log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	Log.WithFields(logrus.Fields{
		"level":       level.String(),
		"file":        config.FilePath,
		"json_format": config.JSONFormat,
	}).Debug("Logger initialized")

	return nil
}

// GetLogger returns the global logger instance
// If not initialized, returns a warn-level stderr logger
func GetLogger() *logrus.Logger {
	if Log == nil {
		Log = logrus.New()
		Log.SetOutput(os.Stderr)
		Log.SetLevel(logrus.WarnLevel)
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	return Log
}

// CloseLogger closes the log file
func CloseLogger() {
	if Log != nil {
		if closer, ok := Log.Out.(io.Closer); ok {
			closer.Close()
		}
	}
}
