// Package logging wraps logrus with the component-scoped entries used
// across jaskterm. The TUI owns the terminal, so interactive runs log to a
// rotated file and only CLI subcommands write to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

type Fields map[string]any

// Log wraps logrus.Logger.
type Log struct {
	*logrus.Logger
}

// Entry wraps logrus.Entry so chained calls keep returning our type.
type Entry struct {
	*logrus.Entry
}

// Options mirrors the [log] config section.
type Options struct {
	Level      string
	Format     string
	Output     string // "stderr", "stdout", "discard" or a file path
	MaxAgeDays int
}

// New builds a configured logger.
func New(opts Options) (*Log, error) {
	l := &Log{Logger: logrus.New()}
	l.AddHook(&callerHook{})
	if err := l.Configure(opts); err != nil {
		return nil, err
	}
	return l, nil
}

// Discard returns a logger that drops everything. Tests use it.
func Discard() *Log {
	l := &Log{Logger: logrus.New()}
	l.SetOutput(io.Discard)
	return l
}

// Configure applies level, format and output. JASKTERM_LOG_LEVEL is not read
// here; viper has already folded it into opts.
func (l *Log) Configure(opts Options) error {
	lvl, err := logrus.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		return fmt.Errorf("invalid log level %q", opts.Level)
	}
	l.SetLevel(lvl)
	l.SetReportCaller(true)

	pretty := func(f *runtime.Frame) (string, string) {
		return "", fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
	}
	switch opts.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
			CallerPrettyfier: pretty,
		})
	case "text", "":
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    true,
			TimestampFormat:  time.RFC3339,
			DisableColors:    true,
			CallerPrettyfier: pretty,
		})
	default:
		return fmt.Errorf("invalid log format %q", opts.Format)
	}

	switch opts.Output {
	case "stderr", "":
		l.SetOutput(os.Stderr)
	case "stdout":
		l.SetOutput(os.Stdout)
	case "discard":
		l.SetOutput(io.Discard)
	default:
		if err := os.MkdirAll(filepath.Dir(opts.Output), 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
		if opts.MaxAgeDays > 0 {
			l.SetOutput(&lumberjack.Logger{
				Filename: opts.Output,
				MaxAge:   opts.MaxAgeDays,
				MaxSize:  20,
				Compress: true,
			})
			return nil
		}
		f, err := os.OpenFile(opts.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file %q: %w", opts.Output, err)
		}
		l.SetOutput(f)
	}
	return nil
}

func (l *Log) WithComponent(component string) *Entry {
	return &Entry{Entry: l.Logger.WithField("component", component)}
}

func (l *Log) WithFields(fields Fields) *Entry {
	return &Entry{Entry: l.Logger.WithFields(logrus.Fields(fields))}
}

func (l *Log) WithError(err error) *Entry {
	return &Entry{Entry: l.Logger.WithError(err)}
}

func (e *Entry) WithComponent(component string) *Entry {
	return &Entry{Entry: e.Entry.WithField("component", component)}
}

func (e *Entry) WithFields(fields Fields) *Entry {
	return &Entry{Entry: e.Entry.WithFields(logrus.Fields(fields))}
}

func (e *Entry) WithError(err error) *Entry {
	return &Entry{Entry: e.Entry.WithError(err)}
}

// Timed logs operation at debug with its duration in milliseconds.
func (e *Entry) Timed(operation string, start time.Time) {
	e.WithFields(Fields{
		"operation":   operation,
		"duration_ms": float64(time.Since(start).Microseconds()) / 1e3,
	}).Debug("timing")
}
