package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Options configures the console logger
type Options struct {
	Debug  bool
	Writer io.Writer // defaults to stderr
	Prefix string
}

// New creates a console logger writing timestamps at info or debug level
func New(opts Options) *log.Logger {
	level := log.InfoLevel
	if opts.Debug {
		level = log.DebugLevel
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          opts.Prefix,
	})
}

// Discard returns a logger that drops everything
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
