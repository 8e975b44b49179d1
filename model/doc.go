// Package model provides the intermediate representation (IR) for parsed
// PAGE-XML layout documents.
//
// This package defines the user-facing data structures that every parsing
// and export operation produces or consumes, making them the primary API for
// working with layout content.
//
// # Structure
//
// A [Page] owns an ordered list of [Region] values, and each region owns an
// ordered list of [Line] values:
//
//	Page
//	└── Region (paragraph, heading, ...)
//	    └── Line
//
// Regions and lines are kept sorted by their reading order, which is the
// intended human reading sequence and may differ from the order of
// appearance in the source XML. The sort is stable: entities sharing a
// reading-order index keep their document order.
//
// A line refers back to its owning region by id only. There are no cyclic
// pointers in the model; ownership always flows downward.
//
// # Optional text
//
// Transcribed text is represented as *string so that "no annotation found"
// (nil) stays distinct from "annotated as blank" (pointer to ""). See
// [Region.FullText] and [Line.Text].
//
// # Geometry
//
// Polygons are ordered vertex lists in image pixel coordinates:
//
//   - [Point] - a single integer-coordinate vertex
//   - [Polygon] - an ordered vertex sequence; empty is legal and means
//     "no usable coordinates"
package model
