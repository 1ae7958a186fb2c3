// strzl counts or locates exact byte-string occurrences in files.
//
// Results are written to stdout, one line per input. Diagnostics go to
// stderr through log/slog; a progress bar is drawn on stderr when it is a
// terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// environment is the process state run needs, injectable for tests.
type environment struct {
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	getenv   func(string) string
	terminal bool
}

func main() {
	env := environment{
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		getenv:   os.Getenv,
		terminal: term.IsTerminal(int(os.Stderr.Fd())),
	}
	os.Exit(run(os.Args[1:], env))
}

func run(args []string, env environment) int {
	logger := newLogger(env.stderr, env.getenv)

	cfg, err := parseArgs(args, env.stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		var ce *ConfigError
		if errors.As(err, &ce) {
			logger.Error("invalid arguments", slog.String("field", ce.Field), slog.String("reason", ce.Message))
		}
		return exitUsage
	}

	var progress io.Writer
	if env.terminal {
		progress = env.stderr
	}
	s, err := newSearcher(cfg, logger, progress)
	if err != nil {
		logger.Error("invalid needle", slog.Any("err", err))
		return exitUsage
	}

	if len(cfg.Files) == 0 {
		data, err := s.load(env.stdin, "(stdin)", -1)
		if err != nil {
			logger.Error("read failed", slog.String("file", "(stdin)"), slog.Any("err", err))
			return exitError
		}
		fmt.Fprintln(env.stdout, s.search(data))
		return exitOK
	}

	code := exitOK
	for _, name := range cfg.Files {
		data, err := loadFile(s, name)
		if err != nil {
			logger.Error("read failed", slog.String("file", name), slog.Any("err", err))
			code = exitError
			continue
		}
		result := s.search(data)
		logger.Info("searched", slog.String("file", name), slog.Int("bytes", len(data)), slog.Int("result", result))
		if len(cfg.Files) == 1 {
			fmt.Fprintln(env.stdout, result)
		} else {
			fmt.Fprintf(env.stdout, "%s:%d\n", name, result)
		}
	}
	return code
}

func loadFile(s *searcher, name string) ([]byte, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	size := int64(-1)
	if fi, err := f.Stat(); err == nil && fi.Mode().IsRegular() {
		size = fi.Size()
	}
	return s.load(f, name, size)
}
