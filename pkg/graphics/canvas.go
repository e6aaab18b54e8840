// Package graphics provides the drawing primitives shared by the holding
// button drawable and its canvas backends: ARGB colors with channel-wise
// blending, 2D geometry, affine transforms, and a minimal Canvas interface.
package graphics

// Canvas renders or records drawing commands.
//
// Implementations include the software rasterizer in package raster and the
// recording canvas in the test support package.
type Canvas interface {
	// DrawCircle draws a filled circle with the provided paint.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawRect draws a rectangle with the provided paint. When the paint
	// carries an ImageShader, the rectangle is filled by sampling the shader
	// bitmap through its matrix.
	DrawRect(rect Rect, paint Paint)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
