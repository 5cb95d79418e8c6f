package mathutil

// IntMin returns the smaller of two ints.
func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IntAbs returns the absolute value of an int.
func IntAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// IntSign returns -1, 0, or 1 based on sign.
func IntSign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// ReflectAxis advances one coordinate by vel and bounces it off [0, max].
// It returns the new coordinate and the (possibly negated) velocity.
//
// Moving towards zero, a candidate below 0 is mirrored around 0. Moving
// towards max, a candidate at or past max is folded back by its overshoot
// from max. The result is not clamped; see ClampMax.
func ReflectAxis(pos, vel, max int) (int, int) {
	next := pos + vel
	switch {
	case vel < 0 && next < 0:
		return -next, -vel
	case vel > 0 && next >= max:
		overflow := next - max
		return max + overflow, -vel
	}
	return next, vel
}

// ClampMax caps v at max. A shrinking window can leave the previous
// coordinate past the new max without any bounce firing.
func ClampMax(v, max int) int {
	return IntMin(v, max)
}

// WrapIndex advances i by one within [0, n). n <= 0 always yields 0.
func WrapIndex(i, n int) int {
	next := i + 1
	if next < n {
		return next
	}
	return 0
}
