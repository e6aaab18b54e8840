// Package testing provides test support for the holding button library:
// a fake clock for deterministic animation timing and a recording canvas
// for asserting on draw output.
//
// Typical animation test setup:
//
//	clock := holdingtest.NewFakeClock()
//	prev := animation.SetClock(clock)
//	defer animation.SetClock(prev)
//
//	drawable.Expand()
//	clock.Advance(75 * time.Millisecond)
//	animation.StepTickers()
//
//	canvas := holdingtest.NewRecordingCanvas(200, 200)
//	drawable.Draw(canvas)
//	// assert on canvas.Ops()
//
// The package is conventionally imported as holdingtest.
package testing
