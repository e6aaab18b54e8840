package graphics_test

import (
	"testing"

	"github.com/go-drift/holdingbutton/pkg/graphics"
)

func TestBlend_Endpoints(t *testing.T) {
	from := graphics.Color(0xFF3949AB)
	to := graphics.Color(0xFFE53935)

	if got := graphics.Blend(from, to, 0); got != from {
		t.Errorf("Blend(t=0) = %#08x, want %#08x", uint32(got), uint32(from))
	}
	if got := graphics.Blend(from, to, 1); got != to {
		t.Errorf("Blend(t=1) = %#08x, want %#08x", uint32(got), uint32(to))
	}
}

func TestBlend_Midpoint(t *testing.T) {
	from := graphics.RGBA8(0, 100, 200, 0)
	to := graphics.RGBA8(100, 200, 100, 255)

	got := graphics.Blend(from, to, 0.5)
	want := graphics.RGBA8(50, 150, 150, 128)
	if got != want {
		t.Errorf("Blend midpoint = %#08x, want %#08x", uint32(got), uint32(want))
	}
}

func TestBlend_ClampsProgress(t *testing.T) {
	from := graphics.Color(0xFF3949AB)
	to := graphics.Color(0xFFE53935)

	if got := graphics.Blend(from, to, -0.5); got != from {
		t.Errorf("Blend(t<0) = %#08x, want from endpoint", uint32(got))
	}
	if got := graphics.Blend(from, to, 1.5); got != to {
		t.Errorf("Blend(t>1) = %#08x, want to endpoint", uint32(got))
	}
}

func TestColor_Components(t *testing.T) {
	c := graphics.RGBA8(0x12, 0x34, 0x56, 0x78)
	if c.Red() != 0x12 || c.Green() != 0x34 || c.Blue() != 0x56 || c.Alpha8() != 0x78 {
		t.Errorf("component round trip failed for %#08x", uint32(c))
	}
}

func TestColor_WithAlpha8(t *testing.T) {
	c := graphics.RGB(0x39, 0x49, 0xAB)
	got := c.WithAlpha8(100)
	if got.Alpha8() != 100 {
		t.Errorf("alpha = %d, want 100", got.Alpha8())
	}
	if got.Red() != 0x39 || got.Green() != 0x49 || got.Blue() != 0xAB {
		t.Error("WithAlpha8 must not change color channels")
	}
}
