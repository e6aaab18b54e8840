package testing

import (
	"testing"
	"time"
)

func TestFakeClock_Advance(t *testing.T) {
	clock := NewFakeClock()
	start := clock.Now()

	clock.Advance(150 * time.Millisecond)

	if got := clock.Now().Sub(start); got != 150*time.Millisecond {
		t.Errorf("elapsed = %v, want 150ms", got)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clock := NewFakeClock()
	target := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	clock.Set(target)

	if !clock.Now().Equal(target) {
		t.Errorf("Now() = %v, want %v", clock.Now(), target)
	}
}

func TestFakeClock_NowIsStable(t *testing.T) {
	clock := NewFakeClock()
	if !clock.Now().Equal(clock.Now()) {
		t.Error("Now must not move without Advance or Set")
	}
}
