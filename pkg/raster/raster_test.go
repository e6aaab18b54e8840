package raster_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/holdingbutton/pkg/graphics"
	"github.com/go-drift/holdingbutton/pkg/raster"
)

func TestCanvas_Size(t *testing.T) {
	c := raster.NewCanvas(120, 80)
	assert.Equal(t, graphics.Size{Width: 120, Height: 80}, c.Size())
}

func TestCanvas_NegativeSizeClamped(t *testing.T) {
	c := raster.NewCanvas(-5, -5)
	assert.Equal(t, graphics.Size{}, c.Size())
	// Degenerate canvas must swallow draws without panicking.
	c.DrawCircle(graphics.Offset{X: 10, Y: 10}, 5, graphics.NewPaint(graphics.ColorWhite))
}

func TestCanvas_Clear(t *testing.T) {
	c := raster.NewCanvas(10, 10)
	c.Clear(graphics.RGB(10, 20, 30))

	px := c.Image().RGBAAt(5, 5)
	assert.EqualValues(t, 10, px.R)
	assert.EqualValues(t, 20, px.G)
	assert.EqualValues(t, 30, px.B)
	assert.EqualValues(t, 255, px.A)
}

func TestCanvas_DrawCircle(t *testing.T) {
	c := raster.NewCanvas(100, 100)
	c.DrawCircle(graphics.Offset{X: 50, Y: 50}, 30, graphics.NewPaint(graphics.RGB(255, 0, 0)))

	center := c.Image().RGBAAt(50, 50)
	assert.EqualValues(t, 255, center.R, "circle interior should be filled")
	assert.EqualValues(t, 255, center.A)

	corner := c.Image().RGBAAt(5, 5)
	assert.EqualValues(t, 0, corner.A, "pixels outside the circle stay clear")
}

func TestCanvas_DrawCircleZeroRadius(t *testing.T) {
	c := raster.NewCanvas(50, 50)
	c.DrawCircle(graphics.Offset{X: 25, Y: 25}, 0, graphics.NewPaint(graphics.ColorWhite))
	assert.EqualValues(t, 0, c.Image().RGBAAt(25, 25).A)
}

func TestCanvas_DrawRectPlainFill(t *testing.T) {
	c := raster.NewCanvas(50, 50)
	c.DrawRect(graphics.RectFromLTWH(10, 10, 20, 20), graphics.NewPaint(graphics.RGB(0, 255, 0)))

	inside := c.Image().RGBAAt(20, 20)
	assert.EqualValues(t, 255, inside.G)

	outside := c.Image().RGBAAt(40, 40)
	assert.EqualValues(t, 0, outside.A)
}

func TestCanvas_DrawRectShaderSrcInTint(t *testing.T) {
	// A fully opaque 10x10 source bitmap positioned at (20, 20) via the
	// shader matrix, tinted flat white through src-in.
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for i := range src.Pix {
		src.Pix[i] = 0xFF
	}

	shader := &graphics.ImageShader{Image: src, Matrix: graphics.IdentityMatrix()}
	shader.Matrix.PostTranslate(20, 20)

	paint := graphics.Paint{
		AntiAlias: true,
		Shader:    shader,
		Filter:    &graphics.ColorFilter{Color: graphics.ColorWhite, Mode: graphics.BlendSrcIn},
	}

	c := raster.NewCanvas(50, 50)
	c.DrawRect(graphics.RectFromLTWH(20, 20, 10, 10), paint)

	inside := c.Image().RGBAAt(25, 25)
	require.EqualValues(t, 255, inside.A, "mask coverage should reach the tint")
	assert.EqualValues(t, 255, inside.R)
	assert.EqualValues(t, 255, inside.G)
	assert.EqualValues(t, 255, inside.B)

	// Outside the destination rect nothing is composited even though the
	// temp layer spans the canvas.
	outside := c.Image().RGBAAt(35, 35)
	assert.EqualValues(t, 0, outside.A)
}

func TestCanvas_DrawRectShaderScaled(t *testing.T) {
	// Scaling the shader to 0.5 leaves the far half of the rect uncovered.
	src := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for i := range src.Pix {
		src.Pix[i] = 0xFF
	}

	shader := &graphics.ImageShader{Image: src}
	shader.Matrix.SetScale(0.5, 0.5)
	shader.Matrix.PostTranslate(10, 10)

	paint := graphics.Paint{
		Shader: shader,
		Filter: &graphics.ColorFilter{Color: graphics.ColorWhite, Mode: graphics.BlendSrcIn},
	}

	c := raster.NewCanvas(40, 40)
	c.DrawRect(graphics.RectFromLTWH(10, 10, 20, 20), paint)

	assert.EqualValues(t, 255, c.Image().RGBAAt(14, 14).A, "scaled bitmap covers the near half")
	assert.EqualValues(t, 0, c.Image().RGBAAt(27, 27).A, "scaled bitmap leaves the far half clear")
}
