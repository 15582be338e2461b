package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger provides structured logging scoped by component
type Logger interface {
	Info(component string, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component string, message string, fields map[string]interface{})
	Debug(component string, message string, fields map[string]interface{})
}

type Options struct {
	Level string
	// File enables JSON logs in a rotated file alongside the console output.
	File       string
	MaxSizeMB  int
	MaxBackups int
	Console    io.Writer
}

// New builds the application logger. The returned closer releases the log
// file, if any, and must be called on shutdown.
func New(opts Options) (*ZerologAdapter, io.Closer) {
	level := ParseLevel(opts.Level)

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	writers := []io.Writer{zerolog.ConsoleWriter{Out: console, TimeFormat: "15:04:05"}}

	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    orDefault(opts.MaxSizeMB, 10),
			MaxBackups: orDefault(opts.MaxBackups, 3),
			Compress:   true,
		}
		writers = append(writers, rotator)
		closer = rotator
	}

	return NewZerolog(zerolog.MultiLevelWriter(writers...), level), closer
}

// ParseLevel maps a config level name to a zerolog level, falling back to info.
func ParseLevel(name string) zerolog.Level {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "warning" {
		name = "warn"
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		return zerolog.InfoLevel
	}
	return level
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NoOpLogger discards everything
type NoOpLogger struct{}

func (NoOpLogger) Info(component string, message string, fields map[string]interface{})    {}
func (NoOpLogger) Error(component string, err error, fields map[string]interface{})        {}
func (NoOpLogger) Warning(component string, message string, fields map[string]interface{}) {}
func (NoOpLogger) Debug(component string, message string, fields map[string]interface{})   {}
