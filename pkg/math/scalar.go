package math

import "math"

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * (math.Pi / 180)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sin is float32 sine.
func Sin(a float32) float32 {
	return float32(math.Sin(float64(a)))
}

// Cos is float32 cosine.
func Cos(a float32) float32 {
	return float32(math.Cos(float64(a)))
}
