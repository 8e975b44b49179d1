package geometry

import (
	"image"

	"golang.org/x/image/vector"

	"github.com/l0rn0r/pagexml-hf/model"
)

// applyMask paints every pixel of img outside poly uniform white. The
// polygon is shifted by -offset into the cropped image's local frame before
// rasterization. The mask is add-or-nothing: rasterizer coverage is
// thresholded at 50%, so there is no feathering at the polygon edge.
func applyMask(img *image.NRGBA, poly model.Polygon, offset model.Point) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	r := vector.NewRasterizer(w, h)
	r.MoveTo(float32(poly[0].X-offset.X), float32(poly[0].Y-offset.Y))
	for _, pt := range poly[1:] {
		r.LineTo(float32(pt.X-offset.X), float32(pt.Y-offset.Y))
	}
	r.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask.AlphaAt(x, y).A >= 0x80 {
				continue
			}
			i := img.PixOffset(img.Bounds().Min.X+x, img.Bounds().Min.Y+y)
			img.Pix[i+0] = 0xff
			img.Pix[i+1] = 0xff
			img.Pix[i+2] = 0xff
			img.Pix[i+3] = 0xff
		}
	}
}
