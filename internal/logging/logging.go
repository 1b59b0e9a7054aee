package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Options controls logger construction.
type Options struct {
	// Dir is where combined.log and error.log are created.
	Dir string

	// Production switches the console sink from pretty output to raw JSON.
	Production bool
}

// New builds the service logger with three sinks: a console stream, a
// combined file receiving every level, and an error-only file. Both file
// sinks carry timestamped JSON records. A sink that cannot be opened is
// skipped so that logging problems never prevent the service from starting.
// The returned close function flushes and closes the file sinks.
func New(opts Options) (zerolog.Logger, func()) {
	var console io.Writer = os.Stdout
	if !opts.Production {
		console = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	writers := []io.Writer{console}
	var files []*os.File

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0o755); err == nil {
			if f, err := openSink(filepath.Join(opts.Dir, "combined.log")); err == nil {
				writers = append(writers, failsafeWriter{w: f})
				files = append(files, f)
			}
			if f, err := openSink(filepath.Join(opts.Dir, "error.log")); err == nil {
				writers = append(writers, errorOnlyWriter{w: failsafeWriter{w: f}})
				files = append(files, f)
			}
		}
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()

	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}
	return logger, closeAll
}

func openSink(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// failsafeWriter swallows write errors: a full disk or rotated-away file
// must not fail the request that triggered the log line.
type failsafeWriter struct {
	w io.Writer
}

func (f failsafeWriter) Write(p []byte) (int, error) {
	if n, err := f.w.Write(p); err == nil {
		return n, nil
	}
	return len(p), nil
}

// errorOnlyWriter forwards only error-and-above records to its sink.
type errorOnlyWriter struct {
	w io.Writer
}

func (e errorOnlyWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func (e errorOnlyWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < zerolog.ErrorLevel {
		return len(p), nil
	}
	return e.w.Write(p)
}
