package jraw

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestAngles(t *testing.T) {
	test.Float(t, Tau, 2*math.Pi)
	test.Float(t, ToRad(180), math.Pi)
	test.Float(t, ToRad(-90), -math.Pi/2)
	test.Float(t, ToDeg(math.Pi/4), 45)
	test.Float(t, ToDeg(ToRad(123)), 123)
}

func TestConstrain(t *testing.T) {
	test.Float(t, Constrain(5, 0, 10), 5)
	test.Float(t, Constrain(-5, 0, 10), 0)
	test.Float(t, Constrain(15, 0, 10), 10)
}

func TestPolar(t *testing.T) {
	v := ToCartesian(2, math.Pi/2)
	test.That(t, v.Equals(Vector{0, 2}), v)

	r, theta := ToPolar(-3, 0)
	test.Float(t, r, 3)
	test.Float(t, theta, math.Pi)

	r, theta = ToPolar(ToCartesian(5, -1).X, ToCartesian(5, -1).Y)
	test.Float(t, r, 5)
	test.Float(t, theta, -1)
}

func withRandom(t *testing.T, values ...float64) {
	orig := randFloat
	t.Cleanup(func() { randFloat = orig })
	randFloat = func() float64 {
		f := values[0]
		values = values[1:]
		return f
	}
}

func TestRandom(t *testing.T) {
	withRandom(t, 0.25)
	test.Float(t, Random(), 0.25)

	withRandom(t, 0.25)
	test.Float(t, Random(0), 0.25)

	withRandom(t, 0.25)
	test.Float(t, Random(8), 2)

	withRandom(t, 0.25)
	test.Float(t, Random(8, 0), 2)

	// negative minimum shifts the range
	withRandom(t, 0.0)
	test.Float(t, Random(10, -10), -10)
	withRandom(t, 0.75)
	test.Float(t, Random(10, -10), 5)

	// positive minimum rejects draws below it
	withRandom(t, 0.5, 0.1, 0.2, 0.6)
	test.Float(t, Random(10, 5), 6)

	withRandom(t, 0.5)
	test.Float(t, Random(3, 5), 5)
}

func TestRandomRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		r := Random(10, 5)
		test.That(t, 5 <= r && r < 10, r)
		r = Random(2, -3)
		test.That(t, -3 <= r && r < 2, r)
	}
}
