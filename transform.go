package jraw

import "fmt"

// Transform is a snapshot of the cumulative translation, scale, and rotation applied through Jraw.
type Transform struct {
	Translation Vector
	Scale       Vector
	Rotation    float64
}

// IdentityTransform is the transform of a fresh context.
var IdentityTransform = Transform{
	Scale: Vector{1.0, 1.0},
}

// Matrix returns the transformation matrix obtained by translating, rotating, and then scaling.
func (t Transform) Matrix() Matrix {
	return Identity.Translate(t.Translation.X, t.Translation.Y).Rotate(t.Rotation).Scale(t.Scale.X, t.Scale.Y)
}

// Equals returns true if both transforms are equal with tolerance Epsilon.
func (t Transform) Equals(q Transform) bool {
	return t.Translation.Equals(q.Translation) && t.Scale.Equals(q.Scale) && Equal(t.Rotation, q.Rotation)
}

func (t Transform) String() string {
	return fmt.Sprintf("translate%v rotate(%g) scale%v", t.Translation, t.Rotation, t.Scale)
}

// matrixStack is a LIFO stack of transform snapshots.
type matrixStack []Transform

func (s *matrixStack) push(t Transform) {
	*s = append(*s, t)
}

func (s *matrixStack) pop() (Transform, bool) {
	if len(*s) == 0 {
		return Transform{}, false
	}
	t := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return t, true
}
