package model

import "strings"

// Point represents a polygon vertex in image pixel coordinates.
type Point struct {
	X, Y int
}

// Polygon is an ordered sequence of vertices. An empty polygon is legal and
// means the element carries no usable coordinates.
type Polygon []Point

// Clone returns an independent copy of the polygon.
func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// Line represents a single text line inside a region.
type Line struct {
	ID           string
	Text         *string // nil when no text annotation was found
	Coords       Polygon
	Baseline     Polygon // nil when the line has no baseline element
	ReadingOrder int
	RegionID     string // id of the owning region, by value
}

// TextOrEmpty returns the transcribed text, or "" when the line carries no
// text annotation.
func (l Line) TextOrEmpty() string {
	if l.Text == nil {
		return ""
	}
	return *l.Text
}

// HasText reports whether the line carries a non-empty transcription.
func (l Line) HasText() bool {
	return l.Text != nil && *l.Text != ""
}

// Region represents a contiguous layout area (paragraph, heading, ...) with
// an associated polygon and zero or more owned lines.
type Region struct {
	ID           string
	Type         string
	Coords       Polygon
	Lines        []Line // sorted by reading order, stable
	ReadingOrder int
	FullText     *string // region-level annotation; nil when absent
}

// HasText reports whether the region carries a non-empty region-level
// transcription. Line-level text does not count; a region without its own
// annotation has no full text.
func (r Region) HasText() bool {
	return r.FullText != nil && *r.FullText != ""
}

// Page represents one parsed PAGE-XML document: image metadata plus the
// ordered regions found in it. Pages are the unit of work for every export
// mode and are not mutated after parsing.
type Page struct {
	ImageFilename string
	ImageWidth    int
	ImageHeight   int
	ImageURL      string // remote fallback when no local image is found
	Regions       []Region // sorted by reading order, stable
	XML           string   // verbatim source document
	Project       string   // logical grouping key
}

// Text returns the page text: the region-level annotations of all regions
// that have one, joined by newlines in reading order. Regions without a
// region-level annotation contribute nothing, even when their lines carry
// text.
func (p Page) Text() string {
	var parts []string
	for _, r := range p.Regions {
		if r.HasText() {
			parts = append(parts, *r.FullText)
		}
	}
	return strings.Join(parts, "\n")
}

// LineCount returns the number of lines across all regions.
func (p Page) LineCount() int {
	n := 0
	for _, r := range p.Regions {
		n += len(r.Lines)
	}
	return n
}
