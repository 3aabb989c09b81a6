package jraw

import (
	"math"
	"math/rand"
)

// Tau is a full turn in radians.
const Tau = 2.0 * math.Pi

var randFloat = rand.Float64

// ToRad converts degrees to radians.
func ToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// ToDeg converts radians to degrees.
func ToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// Random returns a pseudo-random number in [0,1). Random(max) returns a number in [0,max) and Random(max,min) in [min,max). A zero bound counts as absent. A positive minimum is found by rejection sampling in [0,max); when max does not exceed such a minimum, min is returned.
func Random(bounds ...float64) float64 {
	r := randFloat()
	if len(bounds) == 0 || bounds[0] == 0.0 {
		return r
	}
	max := bounds[0]
	if len(bounds) == 1 || bounds[1] == 0.0 {
		return r * max
	}

	min := bounds[1]
	if min < 0.0 {
		return r*(max-min) + min
	} else if max <= min {
		return min
	}
	for r = randFloat() * max; r < min; r = randFloat() * max {
	}
	return r
}

// Constrain clamps f to [min,max].
func Constrain(f, min, max float64) float64 {
	return math.Max(math.Min(f, max), min)
}

// ToCartesian converts polar coordinates to a point.
func ToCartesian(radius, theta float64) Vector {
	sin, cos := math.Sincos(theta)
	return Vector{radius * cos, radius * sin}
}

// ToPolar converts a point to polar coordinates, theta is in (-π,π].
func ToPolar(x, y float64) (float64, float64) {
	v := Vector{x, y}
	return v.Mag(), v.Angle()
}
