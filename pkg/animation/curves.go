package animation

// Easing curves transform linear animation progress into shaped motion.
//
// Each curve is a function taking t in [0, 1] and returning a transformed
// value with curve(0) == 0 and curve(1) == 1.

// Linear returns linear progress (no easing).
func Linear(t float64) float64 {
	return t
}

// Accelerate starts slowly and speeds up (t squared). Used for the disc
// expand and collapse transitions.
func Accelerate(t float64) float64 {
	return t * t
}

// Decelerate starts quickly and slows down, the mirror of Accelerate.
func Decelerate(t float64) float64 {
	inv := 1 - t
	return 1 - inv*inv
}
