package model

import "math"

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// SinDeg returns the sine of an angle given in degrees.
func SinDeg(deg float64) float64 {
	return math.Sin(Radians(deg))
}

// CosDeg returns the cosine of an angle given in degrees.
func CosDeg(deg float64) float64 {
	return math.Cos(Radians(deg))
}

// AtanDeg returns the arctangent of x in degrees.
func AtanDeg(x float64) float64 {
	return Degrees(math.Atan(x))
}
