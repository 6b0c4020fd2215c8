package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the process-wide logger. Setup replaces it once configuration is
// known.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	Level(zerolog.InfoLevel).
	With().
	Timestamp().
	Logger()

// Setup configures the global logger: console output plus a rotated log
// file under dir when dir is non-empty.
func Setup(debug bool, dir string) {
	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err == nil {
			w = io.MultiWriter(w, &lumberjack.Logger{
				Filename:   filepath.Join(dir, "dastore.log"),
				MaxBackups: 5,  // files
				MaxSize:    10, // megabytes
				MaxAge:     7,  // days
			})
		}
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	Log = zerolog.New(w).Level(level).With().Timestamp().Logger()
}
