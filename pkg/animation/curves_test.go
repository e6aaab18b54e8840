package animation_test

import (
	"testing"

	"github.com/go-drift/holdingbutton/pkg/animation"
)

func TestCurves_Endpoints(t *testing.T) {
	curves := map[string]func(float64) float64{
		"Linear":     animation.Linear,
		"Accelerate": animation.Accelerate,
		"Decelerate": animation.Decelerate,
	}
	for name, curve := range curves {
		if got := curve(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := curve(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestCurves_AccelerateShape(t *testing.T) {
	if got := animation.Accelerate(0.5); got != 0.25 {
		t.Errorf("Accelerate(0.5) = %v, want 0.25", got)
	}
	// Accelerate stays below linear progress in the open interval.
	for _, tt := range []float64{0.1, 0.3, 0.7, 0.9} {
		if got := animation.Accelerate(tt); got >= tt {
			t.Errorf("Accelerate(%v) = %v, want < %v", tt, got, tt)
		}
	}
}

func TestCurves_DecelerateShape(t *testing.T) {
	if got := animation.Decelerate(0.5); got != 0.75 {
		t.Errorf("Decelerate(0.5) = %v, want 0.75", got)
	}
	for _, tt := range []float64{0.1, 0.3, 0.7, 0.9} {
		if got := animation.Decelerate(tt); got <= tt {
			t.Errorf("Decelerate(%v) = %v, want > %v", tt, got, tt)
		}
	}
}
