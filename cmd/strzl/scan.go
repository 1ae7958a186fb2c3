package main

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"

	"github.com/coregx/strzl"
	"github.com/coregx/strzl/simd"
)

// searcher runs one configured search over whole inputs.
type searcher struct {
	cfg    Config
	needle simd.Needle
	logger *slog.Logger

	// progress is where the byte progress bar is drawn, or nil for none.
	progress io.Writer
}

func newSearcher(cfg Config, logger *slog.Logger, progress io.Writer) (*searcher, error) {
	s := &searcher{cfg: cfg, logger: logger, progress: progress}
	if cfg.ByteMode {
		return s, nil
	}

	if cfg.AnomalyOffset == autoAnomaly {
		s.needle = simd.NewNeedle(cfg.Needle)
	} else {
		n, err := simd.NewNeedleAt(cfg.Needle, cfg.AnomalyOffset)
		if err != nil {
			return nil, err
		}
		s.needle = n
	}

	logger.Debug("search configured",
		needleAttr(cfg.Needle),
		slog.Int("anomaly_offset", s.needle.AnomalyOffset),
		slog.String("tier", simd.ActiveTier().String()),
	)
	return s, nil
}

// load reads r fully, advancing a progress bar sized to size bytes (-1 when
// unknown).
func (s *searcher) load(r io.Reader, name string, size int64) ([]byte, error) {
	var buf bytes.Buffer
	if size > 0 {
		buf.Grow(int(size))
	}

	var bar *progressbar.ProgressBar
	if s.progress != nil && !s.cfg.Quiet {
		bar = progressbar.NewOptions64(size,
			progressbar.OptionSetWriter(s.progress),
			progressbar.OptionSetDescription(name),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish(),
		)
	} else {
		bar = progressbar.DefaultBytesSilent(size, name)
	}
	defer func() { _ = bar.Close() }()

	if _, err := io.Copy(io.MultiWriter(&buf, bar), r); err != nil {
		return nil, err
	}
	_ = bar.Finish()
	return buf.Bytes(), nil
}

// search returns the result for one input: a count, or with First the
// offset of the first match (strzl.NPos when absent).
func (s *searcher) search(data []byte) int {
	switch {
	case s.cfg.ByteMode:
		return simd.CountByte(data, s.cfg.Needle[0])
	case s.cfg.First:
		return strzl.NewView(data).FindNeedle(s.needle)
	default:
		count := 0
		for range strzl.MatchesNeedle(data, s.needle) {
			count++
		}
		return count
	}
}
