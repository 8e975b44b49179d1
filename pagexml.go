// Package pagexml provides a fluent API for converting PAGE-XML layout
// exports into machine-learning-ready records: whole pages, cropped text
// regions, cropped lines, or sliding windows of lines, each paired with its
// transcription.
//
// Basic usage:
//
//	pages, err := pagexml.Open("export.zip").Pages()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	records, err := pagexml.Open("export.zip").
//	    Mode(export.ModeLine).
//	    Mask().
//	    MinWidth(32).
//	    Records()
//
// For advanced use cases, the lower-level parser and export packages are
// also available.
package pagexml

import (
	"github.com/l0rn0r/pagexml-hf/source"
)

// Open prepares a conversion of the archive or directory at path and returns
// a Converter for fluent configuration. The source is opened lazily by the
// first terminal operation. The returned Converter must be closed when done,
// either explicitly via Close() or implicitly by a terminal operation that
// documents it closes.
//
// Example:
//
//	pages, err := pagexml.Open("export.zip").Pages()
func Open(path string) *Converter {
	return &Converter{
		path:    path,
		options: defaultOptions(),
	}
}

// FromSource creates a Converter from an already-opened source. This is
// useful when the caller needs control over the source lifecycle, or wants to
// convert from an in-memory implementation. The caller is responsible for
// closing the source.
//
// Example:
//
//	src, err := source.Open("export.zip")
//	if err != nil {
//	    // handle error
//	}
//	defer src.Close()
//	pages, err := pagexml.FromSource(src).Pages()
func FromSource(src source.Source) *Converter {
	return &Converter{
		src:          src,
		ownsSource:   false,
		sourceOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	pages := pagexml.Must(pagexml.Open("export.zip").Pages())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
