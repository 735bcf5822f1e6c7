// Package logger wraps zerolog for the socialwidget commands. Entries go to
// stderr by default so a bundle written to stdout stays clean.
package logger

import (
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/socialwidget/internal/widget"
)

// Options configures a Logger. Verbose forces debug output whatever Level
// says.
type Options struct {
	Level         string
	Verbose       bool
	HumanReadable bool
	NoColor       bool
	Writer        io.Writer
}

// Logger is a small leveled logger. All methods are safe on a nil receiver.
type Logger struct {
	base zerolog.Logger
}

// New builds a Logger from opts.
func New(opts Options) (*Logger, error) {
	level, err := resolveLevel(opts)
	if err != nil {
		return nil, err
	}

	base := zerolog.New(output(opts)).Level(level).With().Timestamp().Logger()
	return &Logger{base: base}, nil
}

func resolveLevel(opts Options) (zerolog.Level, error) {
	if opts.Verbose {
		return zerolog.DebugLevel, nil
	}
	if opts.Level == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(opts.Level))
}

func output(opts Options) io.Writer {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	if !opts.HumanReadable {
		return w
	}
	return zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.NoColor = opts.NoColor
		cw.TimeFormat = time.Kitchen
	})
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

func (l *Logger) derive(fn func(zerolog.Context) zerolog.Context) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: fn(l.base.With()).Logger()}
}

// Component tags every entry with the subsystem that wrote it.
func (l *Logger) Component(name string) *Logger {
	return l.derive(func(c zerolog.Context) zerolog.Context {
		return c.Str("component", name)
	})
}

// WithPlatform tags every entry with a platform id.
func (l *Logger) WithPlatform(id widget.PlatformID) *Logger {
	return l.derive(func(c zerolog.Context) zerolog.Context {
		return c.Str("platform", string(id))
	})
}

// WithFields attaches arbitrary fields, in key order.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return l.derive(func(c zerolog.Context) zerolog.Context {
		for _, key := range keys {
			c = c.Interface(key, fields[key])
		}
		return c
	})
}

// DebugEnabled reports whether debug entries would be written.
func (l *Logger) DebugEnabled() bool {
	return l != nil && l.base.GetLevel() <= zerolog.DebugLevel
}

func (l *Logger) write(level zerolog.Level, err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.WithLevel(level)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}

func (l *Logger) Debug(msg string) { l.write(zerolog.DebugLevel, nil, msg) }

func (l *Logger) Info(msg string) { l.write(zerolog.InfoLevel, nil, msg) }

func (l *Logger) Warn(msg string) { l.write(zerolog.WarnLevel, nil, msg) }

// Error writes err alongside msg. A nil err is allowed.
func (l *Logger) Error(err error, msg string) { l.write(zerolog.ErrorLevel, err, msg) }
