// Package logging configures the logrus logger shared by both commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options controls logger construction. Zero values mean info level, text
// output and stderr.
type Options struct {
	Level  string // logrus level name, e.g. "debug"
	Format string // "json" or "text"
	File   string // path to append to; empty means stderr
}

// OptionsFromEnv reads LOG_LEVEL, LOG_FORMAT and LOG_FILE.
func OptionsFromEnv() Options {
	return Options{
		Level:  os.Getenv("LOG_LEVEL"),
		Format: os.Getenv("LOG_FORMAT"),
		File:   os.Getenv("LOG_FILE"),
	}
}

// New builds a logger from opts. The returned closer releases the log file,
// if one was opened.
func New(opts Options) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(opts.Format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	var closer io.Closer = nopCloser{}
	if opts.File == "" {
		log.SetOutput(os.Stderr)
	} else {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %s: %w", opts.File, err)
		}
		log.SetOutput(f)
		closer = f
	}

	return log, closer, nil
}

// Detach silences a logger still writing to the terminal while the tcell
// screen owns it. The returned func restores the previous output.
func Detach(log *logrus.Logger) (restore func()) {
	out := log.Out
	if out == os.Stderr || out == os.Stdout {
		log.SetOutput(io.Discard)
	}
	return func() { log.SetOutput(out) }
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
