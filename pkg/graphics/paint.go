package graphics

import (
	"fmt"
	"image"
)

// BlendMode controls how source and destination colors are composited.
type BlendMode int

const (
	// BlendSrcOver composites the source over the destination (default).
	BlendSrcOver BlendMode = iota

	// BlendSrcIn keeps the source color where the destination has coverage,
	// using the destination's alpha. Used to tint alpha-mask bitmaps.
	BlendSrcIn
)

// String returns a human-readable representation of the blend mode.
func (b BlendMode) String() string {
	switch b {
	case BlendSrcOver:
		return "src_over"
	case BlendSrcIn:
		return "src_in"
	default:
		return fmt.Sprintf("BlendMode(%d)", int(b))
	}
}

// ColorFilter replaces the color produced by a paint's shader, combined
// according to Mode. With BlendSrcIn the shader output acts as an alpha mask
// for Color.
type ColorFilter struct {
	Color Color
	Mode  BlendMode
}

// ImageShader fills geometry with a bitmap. Matrix maps bitmap pixel
// coordinates into canvas coordinates and is typically updated every frame
// while the bitmap animates.
type ImageShader struct {
	Image  image.Image
	Matrix Matrix
}

// Paint describes how to draw a shape on the canvas.
type Paint struct {
	// Color is the fill color, ignored when Shader is set and a ColorFilter
	// fully replaces the output.
	Color Color

	// AntiAlias enables edge smoothing.
	AntiAlias bool

	// Shader, if set, fills geometry with a bitmap instead of Color.
	Shader *ImageShader

	// Filter, if set, transforms the shader output color.
	Filter *ColorFilter
}

// NewPaint returns an anti-aliased fill paint with the given color.
func NewPaint(color Color) Paint {
	return Paint{Color: color, AntiAlias: true}
}
