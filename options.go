package pagexml

import (
	"log/slog"

	"github.com/l0rn0r/pagexml-hf/export"
)

// ConvertOptions holds configuration for a conversion run.
type ConvertOptions struct {
	// Parsing
	namespace string

	// Record assembly
	mode       export.Mode
	windowSize int
	overlap    int
	mask       bool
	minWidth   int
	allowEmpty bool

	// Diagnostics
	logger *slog.Logger
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		namespace:  "", // empty means parser.DefaultNamespace
		mode:       export.ModeText,
		windowSize: 2,
		overlap:    0,
		mask:       false,
		minWidth:   0,
		allowEmpty: false,
		logger:     nil, // nil means slog.Default()
	}
}

// clone creates a copy of ConvertOptions. The logger is shared, everything
// else is a value.
func (o ConvertOptions) clone() ConvertOptions {
	return ConvertOptions{
		namespace:  o.namespace,
		mode:       o.mode,
		windowSize: o.windowSize,
		overlap:    o.overlap,
		mask:       o.mask,
		minWidth:   o.minWidth,
		allowEmpty: o.allowEmpty,
		logger:     o.logger,
	}
}
