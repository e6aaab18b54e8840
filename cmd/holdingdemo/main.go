// Command holdingdemo is an interactive host for the holding button
// drawable. Press and hold the left mouse button to expand the disc, drag
// left to arm the cancel appearance, and release to collapse. Press C for
// the click expand/collapse path and R to reset.
//
// Gesture tracking lives entirely here; the drawable only ever sees the
// control calls and renders whatever state it is in.
package main

import (
	"image"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/go-drift/holdingbutton/pkg/animation"
	"github.com/go-drift/holdingbutton/pkg/graphics"
	"github.com/go-drift/holdingbutton/pkg/holding"
	"github.com/go-drift/holdingbutton/pkg/raster"
	"github.com/go-drift/holdingbutton/pkg/theme"
)

const (
	screenWidth  = 480
	screenHeight = 360

	// slideDistance is how far left a drag travels for full cancel offset.
	slideDistance = 140.0

	// cancelThreshold is the offset fraction at which cancel arms.
	cancelThreshold = 0.5
)

type game struct {
	drawable *holding.Drawable
	listener holding.Listener
	canvas   *raster.Canvas

	pressed    bool
	pressX     int
	lastOffset float64
	clicked    bool
}

// logListener prints drawable lifecycle events and resets the drawable once
// a collapse completes, which is the host-side moment the button hides.
type logListener struct {
	drawable *holding.Drawable
}

func (l *logListener) OnBeforeExpand()   { log.Println("before expand") }
func (l *logListener) OnExpand()         { log.Println("expanded") }
func (l *logListener) OnBeforeCollapse() { log.Println("before collapse") }

func (l *logListener) OnCollapse(isCancel bool) {
	log.Printf("collapsed (cancel=%v)", isCancel)
	l.drawable.Reset()
}

func (l *logListener) OnOffsetChanged(offset float64, isCancel bool) {
	log.Printf("offset %.2f (cancel=%v)", offset, isCancel)
}

func (l *logListener) OnClickExpand() { log.Println("click expanded") }

func (l *logListener) OnClickCollapse() {
	log.Println("click collapsed")
	l.drawable.Reset()
}

func (g *game) Update() error {
	animation.StepTickers()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressed = true
		g.pressX, _ = ebiten.CursorPosition()
		g.lastOffset = 0
		g.drawable.Expand()
	}

	if g.pressed {
		x, _ := ebiten.CursorPosition()
		offset := math.Min(math.Max(float64(g.pressX-x)/slideDistance, 0), 1)
		wantCancel := offset >= cancelThreshold
		if wantCancel != g.drawable.IsCancel() {
			g.drawable.SetCancel(wantCancel)
		}
		if offset != g.lastOffset {
			g.lastOffset = offset
			g.listener.OnOffsetChanged(offset, g.drawable.IsCancel())
		}
	}

	if g.pressed && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.pressed = false
		g.drawable.Collapse()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if g.clicked {
			g.drawable.ClickCollapse()
		} else {
			g.drawable.ClickExpand()
		}
		g.clicked = !g.clicked
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.drawable.Reset()
	}

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.canvas.Clear(graphics.Color(0xFF202124))
	g.drawable.Draw(g.canvas)
	screen.WritePixels(g.canvas.Image().Pix)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	drawable := holding.NewDrawable()
	drawable.SetRadius(60)
	drawable.SetSecondRadius(14)
	drawable.SetIcon(dotIcon(40))
	drawable.SetCancelIcon(crossIcon(40))
	listener := &logListener{drawable: drawable}
	drawable.SetListener(listener)

	style, err := theme.LoadOptional(".")
	if err != nil {
		log.Fatal(err)
	}
	if err := style.Apply(drawable); err != nil {
		log.Fatal(err)
	}

	g := &game{
		drawable: drawable,
		listener: listener,
		canvas:   raster.NewCanvas(screenWidth, screenHeight),
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("holding button")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// dotIcon draws a filled circle alpha mask, a stand-in record glyph.
func dotIcon(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	center := float64(size-1) / 2
	radius := float64(size) * 0.35
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			if math.Hypot(dx, dy) <= radius {
				img.SetRGBA(x, y, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
			}
		}
	}
	return img
}

// crossIcon draws an X alpha mask for the cancel state.
func crossIcon(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	thickness := float64(size) * 0.09
	margin := float64(size) * 0.22
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx, fy := float64(x), float64(y)
			if fx < margin || fy < margin || fx > float64(size)-margin || fy > float64(size)-margin {
				continue
			}
			onDown := math.Abs(fx-fy) <= thickness
			onUp := math.Abs(fx+fy-float64(size-1)) <= thickness
			if onDown || onUp {
				img.SetRGBA(x, y, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
			}
		}
	}
	return img
}
