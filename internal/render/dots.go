// Package render rasterises a drawing into an image.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"TapAndPaint/internal/state"

	"golang.org/x/image/vector"
)

// DefaultRadius is the radius of a dot in canvas units.
const DefaultRadius float32 = 10

// kappa places the control points of a cubic Bézier quarter circle.
const kappa = 0.5522847498

type Options struct {
	Background color.Color
	Radius     float32
	// Scale converts canvas units to pixels.
	Scale float32
}

func (o Options) withDefaults() Options {
	if o.Background == nil {
		o.Background = color.Transparent
	}
	if o.Radius <= 0 {
		o.Radius = DefaultRadius
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	return o
}

// Painter draws dots. The zero value is ready to use; reusing one Painter
// across frames keeps the rasteriser's buffers.
type Painter struct {
	z vector.Rasterizer
}

// Draw fills dst with the background and paints every point in order, later
// points on top.
func (p *Painter) Draw(dst draw.Image, points []state.StrokePoint, opt Options) {
	opt = opt.withDefaults()
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opt.Background), image.Point{}, draw.Src)

	r := opt.Radius * opt.Scale
	for _, pt := range points {
		p.dot(dst, pt.X*opt.Scale, pt.Y*opt.Scale, r, pt.Color)
	}
}

func (p *Painter) dot(dst draw.Image, cx, cy, r float32, c color.Color) {
	minX := int(math.Floor(float64(cx - r)))
	minY := int(math.Floor(float64(cy - r)))
	maxX := int(math.Ceil(float64(cx + r)))
	maxY := int(math.Ceil(float64(cy + r)))
	box := image.Rect(minX, minY, maxX, maxY)
	if !box.Overlaps(dst.Bounds()) {
		return
	}

	w, h := box.Dx(), box.Dy()
	p.z.Reset(w, h)
	circle(&p.z, cx-float32(minX), cy-float32(minY), r)

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	p.z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(dst, box, image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
}

func circle(z *vector.Rasterizer, cx, cy, r float32) {
	k := r * kappa
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
}

// Image renders the points onto a fresh w×h image.
func Image(w, h int, points []state.StrokePoint, opt Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var p Painter
	p.Draw(img, points, opt)
	return img
}
