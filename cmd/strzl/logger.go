package main

import (
	"encoding/hex"
	"io"
	"log/slog"
	"strings"

	"github.com/segmentio/asm/ascii"
)

// newLogger builds the diagnostic logger. Results go to stdout, so logs
// always go to w (stderr). STRZL_LOG_FORMAT=json selects JSON output and
// STRZL_LOG_LEVEL the minimum level.
func newLogger(w io.Writer, getenv func(string) string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: levelFromEnv(getenv("STRZL_LOG_LEVEL"))}

	var handler slog.Handler
	switch strings.ToLower(getenv("STRZL_LOG_FORMAT")) {
	case "json", "1", "true":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func levelFromEnv(lvl string) slog.Leveler {
	switch strings.ToLower(lvl) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// needleAttr renders a needle for logs: printable ASCII verbatim, anything
// else as hex.
func needleAttr(needle []byte) slog.Attr {
	if ascii.ValidPrint(needle) {
		return slog.String("needle", string(needle))
	}
	return slog.String("needle_hex", hex.EncodeToString(needle))
}
