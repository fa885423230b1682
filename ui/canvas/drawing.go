package canvas

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"lssgal/pkg/colorutil"
)

// messageImage returns a white w×h image with msg centred in it.
func messageImage(w, h int, msg string) *image.RGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorutil.White), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colorutil.Red),
		Face: face,
	}
	textW := d.MeasureString(msg).Ceil()
	x := (w - textW) / 2
	y := (h + face.Ascent) / 2
	d.Dot = fixed.P(x, y)
	d.DrawString(msg)
	return img
}
