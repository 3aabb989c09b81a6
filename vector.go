package jraw

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used when comparing coordinates.
var Epsilon = 1e-10

// Equal returns true if a and b are equal with tolerance Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Vector is a mutable coordinate pair. Arithmetic methods modify the vector in place and return it so that calls can be chained, use Clone to keep the original.
type Vector struct {
	X, Y float64
}

// NewVector returns a new vector (x,y).
func NewVector(x, y float64) *Vector {
	return &Vector{x, y}
}

// FromAngle returns a unit vector pointing at angle theta in radians.
func FromAngle(theta float64) *Vector {
	sin, cos := math.Sincos(theta)
	return &Vector{cos, sin}
}

// Set sets x and y.
func (v *Vector) Set(x, y float64) *Vector {
	v.X, v.Y = x, y
	return v
}

// Add adds W to V.
func (v *Vector) Add(w Vector) *Vector {
	v.X += w.X
	v.Y += w.Y
	return v
}

// Sub subtracts W from V.
func (v *Vector) Sub(w Vector) *Vector {
	v.X -= w.X
	v.Y -= w.Y
	return v
}

// Mult multiplies x and y by f.
func (v *Vector) Mult(f float64) *Vector {
	v.X *= f
	v.Y *= f
	return v
}

// Div divides x and y by f. Dividing by zero yields infinities like any float division.
func (v *Vector) Div(f float64) *Vector {
	v.X /= f
	v.Y /= f
	return v
}

// Mag returns the length of V.
func (v *Vector) Mag() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// MagSq returns the squared length of V.
func (v *Vector) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Dot returns the dot product between V and W.
func (v *Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Dist returns the distance between the points V and W.
func (v *Vector) Dist(w Vector) float64 {
	return math.Hypot(w.X-v.X, w.Y-v.Y)
}

// Normalize scales V to unit length. A zero vector is left unchanged.
func (v *Vector) Normalize() *Vector {
	m := v.Mag()
	if m == 0.0 {
		return v
	}
	return v.Div(m)
}

// Limit scales V down to length max if it is longer, otherwise it does nothing.
func (v *Vector) Limit(max float64) *Vector {
	if v.MagSq() > max*max {
		v.Normalize().Mult(max)
	}
	return v
}

// SetMag scales V to length m, keeping its direction.
func (v *Vector) SetMag(m float64) *Vector {
	return v.Normalize().Mult(m)
}

// Angle returns the angle between the x-axis and V in radians.
func (v *Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Heading returns atan(y/x), the direction of V folded into (-π/2,π/2]. Unlike Angle it does not distinguish V from -V.
func (v *Vector) Heading() float64 {
	return math.Atan(v.Y / v.X)
}

// Rotate rotates V by theta radians around the origin.
func (v *Vector) Rotate(theta float64) *Vector {
	sin, cos := math.Sincos(theta)
	v.X, v.Y = cos*v.X-sin*v.Y, sin*v.X+cos*v.Y
	return v
}

// Lerp moves V towards W linearly by t, ie. t=0 keeps V and t=1 sets it to W.
func (v *Vector) Lerp(w Vector, t float64) *Vector {
	v.X += (w.X - v.X) * t
	v.Y += (w.Y - v.Y) * t
	return v
}

// Clone returns a copy of V.
func (v *Vector) Clone() *Vector {
	return &Vector{v.X, v.Y}
}

// IsZero returns true if V is exactly zero.
func (v Vector) IsZero() bool {
	return v.X == 0.0 && v.Y == 0.0
}

// Equals returns true if V and W are equal with tolerance Epsilon.
func (v Vector) Equals(w Vector) bool {
	return Equal(v.X, w.X) && Equal(v.Y, w.Y)
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g,%g)", v.X, v.Y)
}
