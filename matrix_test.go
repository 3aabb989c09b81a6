package jraw

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestMatrix(t *testing.T) {
	x, y := Identity.Translate(20, 0).Rotate(math.Pi/2).Dot(1, 0)
	test.Float(t, x, 20)
	test.Float(t, y, 1)

	x, y = Identity.Scale(2, 3).Translate(1, 1).Dot(1, 1)
	test.Float(t, x, 4)
	test.Float(t, y, 6)

	a, b, c, d, e, f := NewMatrix(1, 2, 3, 4, 5, 6).Canvas()
	test.T(t, []float64{a, b, c, d, e, f}, []float64{1, 2, 3, 4, 5, 6})

	test.String(t, Identity.String(), "[1, 0, 0; 0, 1, 0; 0, 0, 1]")
}

func TestMatrixInv(t *testing.T) {
	m := Identity.Translate(3, 4).Rotate(0.5).Scale(2, 2)
	test.That(t, m.Mul(m.Inv()).Equals(Identity))
	test.That(t, m.Inv().Mul(m).Equals(Identity))

	test.That(t, Identity.Scale(0, 1).Singular())
	test.That(t, !m.Singular())
	test.Float(t, Identity.Scale(2, 8).Scaling(), 4)
	test.Float(t, Identity.Scale(-2, 2).Scaling(), 2)
}
