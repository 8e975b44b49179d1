package export

import (
	"bytes"
	"errors"
	"image"
	"path"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"

	"github.com/l0rn0r/pagexml-hf/model"
	"github.com/l0rn0r/pagexml-hf/source"
)

// ErrNoImage marks a page whose image could not be located anywhere: not in
// the source, not via a remote URL.
var ErrNoImage = errors.New("export: no image found")

// loadPageImage locates and decodes the page's image. Failures are counted,
// recorded, and logged; the page is then skipped.
func (e *Exporter) loadPageImage(page *model.Page) (*image.NRGBA, bool) {
	data, src, err := e.findImage(page)
	if err != nil {
		e.failures = append(e.failures, Failure{Source: src, Err: err})
		e.skip("no image found", "page", page.ImageFilename, "project", page.Project, "error", err)
		return nil, false
	}

	img, err := decodeImage(data)
	if err != nil {
		e.failures = append(e.failures, Failure{Source: src, Err: err})
		e.skip("image decode failed", "source", src, "error", err)
		return nil, false
	}
	return img, true
}

// findImage resolves a page's declared filename against the source, in
// priority order: project-relative, project images subdirectory, bare
// filename, any entry ending with the filename, and finally the remote URL.
func (e *Exporter) findImage(page *model.Page) ([]byte, string, error) {
	if page.ImageFilename != "" {
		candidates := []string{
			path.Join(page.Project, page.ImageFilename),
			path.Join(page.Project, "images", page.ImageFilename),
			page.ImageFilename,
		}
		for _, c := range candidates {
			if data, err := e.src.Read(c); err == nil {
				return data, c, nil
			}
		}

		for _, name := range e.src.Files() {
			if strings.HasSuffix(name, page.ImageFilename) {
				if data, err := e.src.Read(name); err == nil {
					return data, name, nil
				}
			}
		}
	}

	if page.ImageURL != "" {
		data, err := source.Fetch(page.ImageURL)
		if err != nil {
			return nil, page.ImageURL, err
		}
		return data, page.ImageURL, nil
	}

	return nil, page.ImageFilename, ErrNoImage
}

// decodeImage decodes raw image bytes, corrects EXIF rotation, and
// normalizes to NRGBA. Only the rotation orientations are corrected (tag 3,
// 6, 8); mirrored orientations pass through untouched.
func decodeImage(data []byte) (*image.NRGBA, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	switch exifOrientation(data) {
	case 3:
		img = imaging.Rotate180(img)
	case 6:
		img = imaging.Rotate270(img)
	case 8:
		img = imaging.Rotate90(img)
	}

	return imaging.Clone(img), nil
}

// exifOrientation returns the EXIF orientation tag, or 1 (normal) when the
// image carries no usable EXIF data.
func exifOrientation(data []byte) int {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	orientation, err := tag.Int(0)
	if err != nil {
		return 1
	}
	return orientation
}
