// Package export turns parsed pages into flat, machine-learning-ready
// records: whole pages, cropped regions, cropped lines, or sliding windows
// of lines, each paired with its transcription and provenance fields.
//
// Record generation is lazy. The consumer drives iteration one record at a
// time, so image work for a page only happens once the previous page's
// records are consumed. Every documented failure mode is skip-level: it is
// logged, counted, and the run continues.
package export

import (
	"errors"
	"iter"
	"log/slog"

	"github.com/l0rn0r/pagexml-hf/model"
	"github.com/l0rn0r/pagexml-hf/source"
)

// Construction-level configuration errors.
var (
	ErrWindowSize = errors.New("export: window size must be at least 1")
	ErrOverlap    = errors.New("export: overlap must be non-negative and less than window size")
)

// Config holds the values steering an export run. Validation of user input
// beyond the window parameters belongs to the caller.
type Config struct {
	Mode       Mode
	WindowSize int  // lines per window (window mode)
	Overlap    int  // shared lines between consecutive windows (window mode)
	Mask       bool // white-out pixels outside the crop polygon
	MinWidth   int  // reject crops narrower than this; 0 disables
	AllowEmpty bool // keep regions/lines without text
	Logger     *slog.Logger
}

// Failure records one image that could not be located or decoded.
type Failure struct {
	Source string
	Err    error
}

// Summary reports the outcome of one export run.
type Summary struct {
	Processed int
	Skipped   int
	Failures  []Failure
}

// Exporter assembles records for one export run. It accumulates counters and
// failures while its record sequence is consumed; input pages are never
// mutated.
type Exporter struct {
	src    source.Source
	cfg    Config
	logger *slog.Logger

	processed int
	skipped   int
	failures  []Failure
}

// New creates an exporter over src. Invalid window parameters are rejected
// here, not per window.
func New(src source.Source, cfg Config) (*Exporter, error) {
	if cfg.Mode == ModeWindow {
		if cfg.WindowSize < 1 {
			return nil, ErrWindowSize
		}
		if cfg.Overlap < 0 || cfg.Overlap >= cfg.WindowSize {
			return nil, ErrOverlap
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{src: src, cfg: cfg, logger: logger}, nil
}

// Records returns the lazy record sequence for pages. The sequence may be
// consumed once; counters and failures accumulate as it is drained and are
// available from Summary afterwards.
func (e *Exporter) Records(pages []model.Page) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for i := range pages {
			page := &pages[i]

			img, ok := e.loadPageImage(page)
			if !ok {
				continue
			}

			var more bool
			switch e.cfg.Mode {
			case ModeRaw:
				more = e.emitRaw(page, img, yield)
			case ModeText:
				more = e.emitText(page, img, yield)
			case ModeRegion:
				more = e.emitRegions(page, img, yield)
			case ModeLine:
				more = e.emitLines(page, img, yield)
			case ModeWindow:
				more = e.emitWindows(page, img, yield)
			}
			if !more {
				return
			}
		}
	}
}

// Summary returns the counters accumulated so far. Call after draining the
// record sequence for end-of-run totals.
func (e *Exporter) Summary() Summary {
	return Summary{
		Processed: e.processed,
		Skipped:   e.skipped,
		Failures:  append([]Failure(nil), e.failures...),
	}
}

// SampleFailures returns at most n failures for summary display.
func (s Summary) SampleFailures(n int) []Failure {
	if len(s.Failures) <= n {
		return s.Failures
	}
	return s.Failures[:n]
}

func (e *Exporter) skip(reason string, args ...any) {
	e.skipped++
	e.logger.Warn(reason, args...)
}
