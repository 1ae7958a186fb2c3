package main

import (
	"errors"
	"flag"
	"io"
	"strconv"
)

// autoAnomaly asks NewNeedle to pick the fingerprint window.
const autoAnomaly = -1

// Config holds the parsed command line.
type Config struct {
	// Needle is the substring to search for. In byte mode it holds the
	// single byte to count.
	Needle []byte

	// ByteMode counts a single byte (-c) instead of substring occurrences.
	ByteMode bool

	// First prints the offset of the first match instead of a count.
	First bool

	// AnomalyOffset fixes the fingerprint window; autoAnomaly selects the
	// rarest window.
	AnomalyOffset int

	// Quiet disables the progress bar.
	Quiet bool

	// Files to search. Empty means standard input.
	Files []string
}

// DefaultConfig returns a configuration that counts substring matches in
// standard input.
func DefaultConfig() Config {
	return Config{AnomalyOffset: autoAnomaly}
}

// Validate checks that the configuration is consistent.
func (c Config) Validate() error {
	if c.ByteMode {
		if len(c.Needle) != 1 {
			return &ConfigError{Field: "-c", Message: "must be exactly one byte"}
		}
		if c.First {
			return &ConfigError{Field: "-first", Message: "cannot be combined with -c"}
		}
		return nil
	}

	if len(c.Needle) == 0 {
		return &ConfigError{Field: "NEEDLE", Message: "must not be empty"}
	}
	if c.AnomalyOffset != autoAnomaly {
		if len(c.Needle) < 4 {
			return &ConfigError{Field: "-anomaly", Message: "needs a needle of at least 4 bytes"}
		}
		if c.AnomalyOffset < 0 || c.AnomalyOffset > len(c.Needle)-4 {
			return &ConfigError{
				Field:   "-anomaly",
				Message: "must be between 0 and " + strconv.Itoa(len(c.Needle)-4),
			}
		}
	}
	return nil
}

// ConfigError represents an invalid command line parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "strzl: invalid argument: " + e.Field + ": " + e.Message
}

// errUsage reports a command line that could not be parsed at all.
var errUsage = errors.New("strzl: usage error")

const usage = `usage: strzl [-first] [-anomaly N] [-quiet] NEEDLE [FILE ...]
       strzl -c BYTE [-quiet] [FILE ...]

Counts (possibly overlapping) occurrences of NEEDLE in each FILE, or in
standard input when no FILE is given.

  -c BYTE       count occurrences of a single byte instead
  -first        print the offset of the first match (-1 if none)
  -anomaly N    use needle bytes [N, N+4) as the search fingerprint
  -quiet        never show a progress bar

Environment:
  STRZL_NO_SIMD      set to disable the vector kernels
  STRZL_LOG_FORMAT   "json" for JSON logs (default text)
  STRZL_LOG_LEVEL    debug, info, warn or error (default warn)
`

// parseArgs parses args (without the program name) into a Config.
func parseArgs(args []string, stderr io.Writer) (Config, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet("strzl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { _, _ = io.WriteString(stderr, usage) }

	var countByte string
	fs.StringVar(&countByte, "c", "", "")
	fs.BoolVar(&cfg.First, "first", false, "")
	fs.IntVar(&cfg.AnomalyOffset, "anomaly", autoAnomaly, "")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, errUsage
	}

	rest := fs.Args()
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "c" {
			cfg.ByteMode = true
		}
	})

	if cfg.ByteMode {
		cfg.Needle = []byte(countByte)
	} else {
		if len(rest) == 0 {
			fs.Usage()
			return cfg, errUsage
		}
		cfg.Needle = []byte(rest[0])
		rest = rest[1:]
	}
	cfg.Files = rest

	return cfg, cfg.Validate()
}
