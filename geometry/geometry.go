// Package geometry provides the polygon math behind image cropping: axis
// aligned bounding boxes over one or more polygons, clamped bounding-box
// crops, and hard polygon masks.
package geometry

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"

	"github.com/l0rn0r/pagexml-hf/model"
)

// Crop-related errors. All of them are skip-level: callers count and log
// them, then continue with the next unit.
var (
	ErrNoPolygon      = errors.New("geometry: polygon has no points")
	ErrDegenerateCrop = errors.New("geometry: crop box is empty after clamping to image bounds")
	ErrBelowMinWidth  = errors.New("geometry: crop box narrower than minimum width")
)

// BoundingRect returns the axis-aligned rectangle covering every point of
// every given polygon, as a 4-point polygon in clockwise order starting at
// the top-left corner. It returns nil when no polygon contributes a point.
func BoundingRect(polys ...model.Polygon) model.Polygon {
	first := true
	var minX, minY, maxX, maxY int

	for _, poly := range polys {
		for _, pt := range poly {
			if first {
				minX, maxX = pt.X, pt.X
				minY, maxY = pt.Y, pt.Y
				first = false
				continue
			}
			if pt.X < minX {
				minX = pt.X
			}
			if pt.X > maxX {
				maxX = pt.X
			}
			if pt.Y < minY {
				minY = pt.Y
			}
			if pt.Y > maxY {
				maxY = pt.Y
			}
		}
	}

	if first {
		return nil
	}

	return model.Polygon{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
	}
}

// CropOptions configures a polygon crop.
type CropOptions struct {
	// Mask replaces every pixel outside the polygon with uniform white.
	Mask bool
	// MinWidth rejects crops narrower than this many pixels. Zero disables
	// the gate.
	MinWidth int
}

// Crop extracts the axis-aligned bounding box of poly from img, clamped to
// the image bounds. With Mask set, pixels outside the polygon are painted
// white while pixels inside keep their original color. The returned image is
// always a fresh NRGBA; img is never modified.
func Crop(img image.Image, poly model.Polygon, opts CropOptions) (*image.NRGBA, error) {
	if len(poly) == 0 {
		return nil, ErrNoPolygon
	}

	b := img.Bounds()
	rect := BoundingRect(poly)
	x0, y0 := rect[0].X, rect[0].Y
	x1, y1 := rect[2].X, rect[2].Y

	if x0 < b.Min.X {
		x0 = b.Min.X
	}
	if y0 < b.Min.Y {
		y0 = b.Min.Y
	}
	if x1 > b.Max.X {
		x1 = b.Max.X
	}
	if y1 > b.Max.Y {
		y1 = b.Max.Y
	}

	if x0 >= x1 || y0 >= y1 {
		return nil, ErrDegenerateCrop
	}
	if opts.MinWidth > 0 && x1-x0 < opts.MinWidth {
		return nil, ErrBelowMinWidth
	}

	cropped := imaging.Crop(img, image.Rect(x0, y0, x1, y1))

	if opts.Mask {
		applyMask(cropped, poly, model.Point{X: x0, Y: y0})
	}

	return cropped, nil
}
