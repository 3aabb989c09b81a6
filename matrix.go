package jraw

import (
	"fmt"
	"math"
)

// Matrix is used for affine transformations. Transformations post-multiply like those of the canvas context, so Identity.Translate(20,0).Rotate(θ) rotates points first and then translates them.
type Matrix [2][3]float64

// Identity is the identity transformation.
var Identity = Matrix{
	{1.0, 0.0, 0.0},
	{0.0, 1.0, 0.0},
}

// NewMatrix returns the matrix for the canvas transform tuple (a,b,c,d,e,f).
func NewMatrix(a, b, c, d, e, f float64) Matrix {
	return Matrix{
		{a, c, e},
		{b, d, f},
	}
}

// Mul multiplies the current matrix by the given matrix, ie. q is applied first.
func (m Matrix) Mul(q Matrix) Matrix {
	return Matrix{{
		m[0][0]*q[0][0] + m[0][1]*q[1][0],
		m[0][0]*q[0][1] + m[0][1]*q[1][1],
		m[0][0]*q[0][2] + m[0][1]*q[1][2] + m[0][2],
	}, {
		m[1][0]*q[0][0] + m[1][1]*q[1][0],
		m[1][0]*q[0][1] + m[1][1]*q[1][1],
		m[1][0]*q[0][2] + m[1][1]*q[1][2] + m[1][2],
	}}
}

// Dot returns the transformed point (x,y).
func (m Matrix) Dot(x, y float64) (float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2], m[1][0]*x + m[1][1]*y + m[1][2]
}

// Translate adds a translation in x and y.
func (m Matrix) Translate(x, y float64) Matrix {
	return m.Mul(Matrix{
		{1.0, 0.0, x},
		{0.0, 1.0, y},
	})
}

// Rotate adds a rotation of theta radians, clockwise on a y-down surface.
func (m Matrix) Rotate(theta float64) Matrix {
	sintheta, costheta := math.Sincos(theta)
	return m.Mul(Matrix{
		{costheta, -sintheta, 0.0},
		{sintheta, costheta, 0.0},
	})
}

// Scale adds a scaling transformation in x and y.
func (m Matrix) Scale(x, y float64) Matrix {
	return m.Mul(Matrix{
		{x, 0.0, 0.0},
		{0.0, y, 0.0},
	})
}

// Det returns the matrix determinant.
func (m Matrix) Det() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Singular returns true if the matrix collapses the plane onto a line or point.
func (m Matrix) Singular() bool {
	return Equal(m.Det(), 0.0)
}

// Inv returns the inverse of the matrix. The matrix must not be singular.
func (m Matrix) Inv() Matrix {
	det := m.Det()
	if Equal(det, 0.0) {
		panic("determinant of affine transformation matrix is zero")
	}
	return Matrix{{
		m[1][1] / det,
		-m[0][1] / det,
		-(m[1][1]*m[0][2] - m[0][1]*m[1][2]) / det,
	}, {
		-m[1][0] / det,
		m[0][0] / det,
		-(-m[1][0]*m[0][2] + m[0][0]*m[1][2]) / det,
	}}
}

// Scaling returns the scale factor along both axes, used to size strokes and flatten arcs.
func (m Matrix) Scaling() float64 {
	return math.Sqrt(math.Abs(m.Det()))
}

// Canvas returns the transform as the (a,b,c,d,e,f) tuple used by setTransform.
func (m Matrix) Canvas() (float64, float64, float64, float64, float64, float64) {
	return m[0][0], m[1][0], m[0][1], m[1][1], m[0][2], m[1][2]
}

// Equals returns true if both matrices are equal with tolerance Epsilon.
func (m Matrix) Equals(q Matrix) bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if !Equal(m[i][j], q[i][j]) {
				return false
			}
		}
	}
	return true
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%g, %g, %g; %g, %g, %g; 0, 0, 1]", m[0][0], m[0][1], m[0][2], m[1][0], m[1][1], m[1][2])
}
