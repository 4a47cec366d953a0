package logutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const (
	logFileName  = "image_source_pick.log"
	maxSizeBytes = 10 * 1024 * 1024 // 10 MB
	maxArchives  = 3
)

var root = zerolog.New(io.Discard)

// Setup configures the root logger. With file logging enabled, output goes
// to a size-rotated file (10MB, max 3 archives); otherwise to a console
// writer on stderr at warn level so normal runs stay quiet.
func Setup(enableFileLogging bool) {
	if !enableFileLogging {
		w := zerolog.ConsoleWriter{Out: os.Stderr}
		root = zerolog.New(w).Level(zerolog.WarnLevel).With().Timestamp().Logger()
		return
	}
	rotateIfNeeded()
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		return
	}
	root = zerolog.New(&rotatingWriter{f: f}).With().Timestamp().Logger()
}

// Logger returns the root logger scoped to a component.
func Logger(component string) zerolog.Logger {
	return root.With().Str("component", component).Logger()
}

type rotatingWriter struct{ f *os.File }

func (w *rotatingWriter) Write(p []byte) (int, error) {
	// naive rotation check per write
	if st, err := w.f.Stat(); err == nil && st.Size()+int64(len(p)) > maxSizeBytes {
		_ = w.f.Close()
		rotateIfNeeded()
		nf, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return 0, err
		}
		w.f = nf
	}
	return w.f.Write(p)
}

func rotateIfNeeded() {
	// If base exceeds max size, rotate: .1, .2, .3 (oldest discarded)
	if st, err := os.Stat(logFileName); err == nil && st.Size() > maxSizeBytes {
		_ = os.Remove(archiveName(maxArchives))
		for i := maxArchives - 1; i >= 1; i-- {
			_ = os.Rename(archiveName(i), archiveName(i+1))
		}
		_ = os.Rename(logFileName, archiveName(1))
	}
}

func archiveName(n int) string { return filepath.Join(".", fmt.Sprintf("%s.%d", logFileName, n)) }
