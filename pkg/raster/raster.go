// Package raster provides a CPU canvas backend rendering onto an
// *image.RGBA. Circles are rasterized with golang.org/x/image/vector and
// shader rectangles are sampled through their affine matrix with
// golang.org/x/image/draw.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"

	"github.com/go-drift/holdingbutton/pkg/graphics"
)

// kappa is the control-point distance approximating a quarter circle with a
// cubic Bezier.
const kappa = 0.5522847498307936

// Canvas is a software implementation of graphics.Canvas.
type Canvas struct {
	dst *image.RGBA
}

// NewCanvas creates a canvas backed by a fresh transparent image.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{dst: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image returns the backing image. The returned image is live: subsequent
// draw calls mutate it.
func (c *Canvas) Image() *image.RGBA {
	return c.dst
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() graphics.Size {
	bounds := c.dst.Bounds()
	return graphics.Size{Width: float64(bounds.Dx()), Height: float64(bounds.Dy())}
}

// Clear fills the entire canvas with the given color.
func (c *Canvas) Clear(col graphics.Color) {
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(premultiply(col)), image.Point{}, draw.Src)
}

// DrawCircle draws a filled, anti-aliased circle. Non-positive radii draw
// nothing.
func (c *Canvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	bounds := c.dst.Bounds()
	if radius <= 0 || bounds.Empty() {
		return
	}

	rast := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	cx, cy, r := float32(center.X), float32(center.Y), float32(radius)
	k := float32(kappa) * r

	rast.MoveTo(cx+r, cy)
	rast.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	rast.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	rast.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	rast.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	rast.ClosePath()

	rast.Draw(c.dst, bounds, image.NewUniform(premultiply(paint.Color)), image.Point{})
}

// DrawRect draws a rectangle. With a plain paint the rectangle is filled
// with the paint color. With an ImageShader the shader bitmap is transformed
// through its matrix into canvas space and composited within the rectangle;
// a src-in ColorFilter turns the bitmap into an alpha mask for the filter
// color.
func (c *Canvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	clip := clipRect(rect, c.dst.Bounds())
	if clip.Empty() {
		return
	}

	if paint.Shader == nil || paint.Shader.Image == nil {
		draw.Draw(c.dst, clip, image.NewUniform(premultiply(paint.Color)), image.Point{}, draw.Over)
		return
	}

	shader := paint.Shader
	transformed := image.NewRGBA(c.dst.Bounds())
	m := shader.Matrix
	xdraw.ApproxBiLinear.Transform(
		transformed,
		f64.Aff3{m.XX, m.XY, m.TX, m.YX, m.YY, m.TY},
		shader.Image,
		shader.Image.Bounds(),
		xdraw.Src,
		nil,
	)

	if paint.Filter != nil && paint.Filter.Mode == graphics.BlendSrcIn {
		// Flat filter color through the transformed bitmap's alpha.
		draw.DrawMask(
			c.dst, clip,
			image.NewUniform(premultiply(paint.Filter.Color)), image.Point{},
			transformed, clip.Min,
			draw.Over,
		)
		return
	}

	draw.Draw(c.dst, clip, transformed, clip.Min, draw.Over)
}

// clipRect converts a geometry rect to integer device pixels clipped to the
// destination bounds.
func clipRect(rect graphics.Rect, bounds image.Rectangle) image.Rectangle {
	r := image.Rect(
		int(math.Floor(rect.Left)),
		int(math.Floor(rect.Top)),
		int(math.Ceil(rect.Right)),
		int(math.Ceil(rect.Bottom)),
	)
	return r.Intersect(bounds)
}

// premultiply converts an ARGB color to the premultiplied color.RGBA the
// image/draw compositor expects.
func premultiply(c graphics.Color) color.RGBA {
	a := uint32(c.Alpha8())
	return color.RGBA{
		R: uint8(uint32(c.Red()) * a / 0xFF),
		G: uint8(uint32(c.Green()) * a / 0xFF),
		B: uint8(uint32(c.Blue()) * a / 0xFF),
		A: uint8(a),
	}
}
