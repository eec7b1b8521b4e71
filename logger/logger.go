// Package logger writes leveled, colored, timestamped lines for command line
// tools. Lines look like
//
//	2006-01-02 15:04:05 [INFO] message
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/bombsimon/logrusr/v3"
	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"
	"github.com/vbauerster/clikit/clierr"
)

const successKey = "success"

// Logger is a leveled logger. It is safe for concurrent use.
type Logger struct {
	log *logrus.Logger
	fmt *formatter
}

// New returns a Logger writing to w at info level, colored and
// timestamped. Nil w means os.Stdout.
func New(w io.Writer) *Logger {
	if w == nil {
		w = os.Stdout
	}
	f := newFormatter(w)
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(f)
	log.SetLevel(logrus.InfoLevel)
	return &Logger{log: log, fmt: f}
}

// SetOutput redirects l to w.
func (l *Logger) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	l.fmt.setRenderer(w)
	l.log.SetOutput(w)
}

// SetLevel accepts debug, info, warn and error, case insensitive.
func (l *Logger) SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return clierr.Wrap(clierr.KindConfig, err, "log level")
	}
	l.log.SetLevel(lvl)
	return nil
}

// Level returns current level name.
func (l *Logger) Level() string {
	lvl := l.log.GetLevel()
	if lvl == logrus.WarnLevel {
		return "warn"
	}
	return lvl.String()
}

// SetColor turns colored level tags on or off. With color off, escape
// sequences are also stripped from messages.
func (l *Logger) SetColor(on bool) {
	l.fmt.color.Store(on)
}

// SetTimestamp turns the leading timestamp on or off.
func (l *Logger) SetTimestamp(on bool) {
	l.fmt.timestamp.Store(on)
}

func (l *Logger) Debug(msg string) { l.log.Debug(msg) }

func (l *Logger) Info(msg string) { l.log.Info(msg) }

// Success logs at info level with a SUCCESS tag.
func (l *Logger) Success(msg string) { l.log.WithField(successKey, true).Info(msg) }

func (l *Logger) Warn(msg string) { l.log.Warn(msg) }

func (l *Logger) Error(msg string) { l.log.Error(msg) }

// Logr returns a logr.Logger backed by l.
func (l *Logger) Logr() logr.Logger {
	return logrusr.New(l.log)
}

var std = New(os.Stdout)

// Default returns the package level Logger.
func Default() *Logger { return std }

func Debug(msg string) { std.Debug(msg) }

func Info(msg string) { std.Info(msg) }

func Success(msg string) { std.Success(msg) }

func Warn(msg string) { std.Warn(msg) }

func Error(msg string) { std.Error(msg) }

// SetLevel sets level of the package level Logger.
func SetLevel(level string) error { return std.SetLevel(level) }

// SetColor turns color of the package level Logger on or off.
func SetColor(on bool) { std.SetColor(on) }

// SetTimestamp turns timestamps of the package level Logger on or off.
func SetTimestamp(on bool) { std.SetTimestamp(on) }

// SetOutput redirects the package level Logger.
func SetOutput(w io.Writer) { std.SetOutput(w) }
