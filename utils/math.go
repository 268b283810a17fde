// Package utils contains math helpers shared by the planning packages.
package utils

import "math"

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// NormalizeAngle returns the given angle wrapped to the range [-pi, pi).
// The range is right-open; pi itself maps to -pi. Sign comparisons on wrapped
// angles rely on this being branch-consistent.
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// CartesianToPolar converts a point in the plane to (radius, angle) form.
// The radius is always non-negative and the angle is the atan2 angle of the
// point, so the zero point maps to (0, 0).
func CartesianToPolar(x, y float64) (float64, float64) {
	return math.Hypot(x, y), math.Atan2(y, x)
}

// Math.pow( x, 2 ) is slow, this is faster
func Square(n float64) float64 {
	return n * n
}
