package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/motivnation/internal/constants"
)

var (
	// Logger is the global logger instance
	Logger *log.Logger
)

// Config holds logger configuration
type Config struct {
	Debug     bool
	ConfigDir string
	// Level overrides the default warn level (debug, info, warn, error). Ignored when Debug is set.
	Level string
	// Store is the backend kind recorded on every entry
	Store string
}

// FilePath returns the rotating log file used for configDir
func FilePath(configDir string) string {
	return filepath.Join(configDir, "logs", constants.AppName+".log")
}

// Init initializes the global logger with the given configuration
func Init(cfg Config) error {
	level, err := resolveLevel(cfg)
	if err != nil {
		return err
	}

	// Determine log directory
	logFile := FilePath(cfg.ConfigDir)
	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		return err
	}

	// Create rotating file handler
	fileWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	// In debug mode, write human-readable lines to both stderr and file.
	// Otherwise the file gets logfmt so entries can be grepped per member.
	var writer io.Writer = fileWriter
	formatter := log.LogfmtFormatter
	if cfg.Debug {
		writer = io.MultiWriter(os.Stderr, fileWriter)
		formatter = log.TextFormatter
	}

	base := log.NewWithOptions(writer, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          constants.AppName,
		Formatter:       formatter,
	})

	fields := []interface{}{"version", constants.Version}
	if cfg.Store != "" {
		fields = append(fields, "store", cfg.Store)
	}
	Logger = base.With(fields...)

	return nil
}

func resolveLevel(cfg Config) (log.Level, error) {
	if cfg.Debug {
		return log.DebugLevel, nil
	}
	if cfg.Level == "" {
		return log.WarnLevel, nil
	}
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	return level, nil
}

// With returns a sub-logger carrying keyvals, or nil before Init
func With(keyvals ...interface{}) *log.Logger {
	if Logger == nil {
		return nil
	}
	return Logger.With(keyvals...)
}

// Debug logs a debug message
func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

// Info logs an info message
func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

// Warn logs a warning message
func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

// Error logs an error message
func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}
