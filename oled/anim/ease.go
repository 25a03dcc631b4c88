package anim

import "math"

// EaseInOutExpo accelerates exponentially up to x=0.5 and decelerates after.
func EaseInOutExpo(x float64) float64 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	case x < 0.5:
		return math.Pow(2, 20*x-10) / 2
	default:
		return (2 - math.Pow(2, -20*x+10)) / 2
	}
}

// EaseOutExpoExtreme is 1-2^(-5x), pinned to 1 at x=1.
func EaseOutExpoExtreme(x float64) float64 {
	if x >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -5*x)
}

// Remap maps v linearly from [inLo, inHi] onto [outLo, outHi] without
// clamping.
func Remap(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}
	return outLo + (v-inLo)*(outHi-outLo)/(inHi-inLo)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
