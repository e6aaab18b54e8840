package graphics_test

import (
	"math"
	"testing"

	"github.com/go-drift/holdingbutton/pkg/graphics"
)

// iconMatrix builds the transform the drawable uses: scale about the origin,
// then translate so a width×height bitmap stays centered on (cx, cy).
func iconMatrix(cx, cy, width, height, scale float64) graphics.Matrix {
	var m graphics.Matrix
	m.SetScale(scale, scale)
	inv := 1 - scale
	m.PostTranslate(
		cx-width/2+width/2*inv,
		cy-height/2+height/2*inv,
	)
	return m
}

func TestMatrix_IconCenterPinned(t *testing.T) {
	const cx, cy = 100.0, 100.0
	const w, h = 40.0, 40.0

	for _, scale := range []float64{0.6, 0.7, 0.85, 1.0} {
		m := iconMatrix(cx, cy, w, h, scale)
		center := m.Apply(graphics.Offset{X: w / 2, Y: h / 2})
		if math.Abs(center.X-cx) > 1e-9 || math.Abs(center.Y-cy) > 1e-9 {
			t.Errorf("scale %v: bitmap center maps to (%v, %v), want (%v, %v)",
				scale, center.X, center.Y, cx, cy)
		}
	}
}

func TestMatrix_IconCornersAtFullScale(t *testing.T) {
	m := iconMatrix(100, 100, 40, 40, 1)

	topLeft := m.Apply(graphics.Offset{})
	bottomRight := m.Apply(graphics.Offset{X: 40, Y: 40})

	if topLeft != (graphics.Offset{X: 80, Y: 80}) {
		t.Errorf("top-left = %v, want (80, 80)", topLeft)
	}
	if bottomRight != (graphics.Offset{X: 120, Y: 120}) {
		t.Errorf("bottom-right = %v, want (120, 120)", bottomRight)
	}
}

func TestMatrix_Invert(t *testing.T) {
	m := iconMatrix(100, 100, 40, 40, 0.6)
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("matrix unexpectedly singular")
	}

	p := graphics.Offset{X: 13, Y: 29}
	round := inv.Apply(m.Apply(p))
	if math.Abs(round.X-p.X) > 1e-9 || math.Abs(round.Y-p.Y) > 1e-9 {
		t.Errorf("inverse round trip = %v, want %v", round, p)
	}
}

func TestMatrix_InvertSingular(t *testing.T) {
	var m graphics.Matrix // zero matrix is singular
	if _, ok := m.Invert(); ok {
		t.Error("zero matrix must report singular")
	}
}

func TestMatrix_PostTranslateAccumulates(t *testing.T) {
	m := graphics.IdentityMatrix()
	m.PostTranslate(10, 5)
	m.PostTranslate(-3, 2)

	got := m.Apply(graphics.Offset{X: 1, Y: 1})
	want := graphics.Offset{X: 8, Y: 8}
	if got != want {
		t.Errorf("Apply = %v, want %v", got, want)
	}
}
