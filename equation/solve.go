package equation

import (
	"math"
	"math/big"
)

// smallCoefficient bounds |a| and |c| under which b²-4ac cannot overflow an int64.
const smallCoefficient = 1 << 30

// Point defines a point of the plane.
type Point struct {
	X, Y float64
}

// Solution defines the outcome of Solve.
type Solution struct {
	// Roots holds NumRoots real roots, in ascending order.
	Roots    [2]float64
	NumRoots int
	// Any is set when every x is a solution (a = b = c = 0).
	Any bool
	// Extremum is the vertex of the parabola, only meaningful when HasExtremum is set (a != 0).
	Extremum    Point
	HasExtremum bool
}

// RootValues returns the real roots as a slice.
func (s Solution) RootValues() []float64 {
	return s.Roots[:s.NumRoots]
}

// Solve computes the real roots and the extremum of an equation. It is done in two phases: roots first, then the
// extremum, which only exists for an actual parabola.
func Solve(t Triple) Solution {
	s := solveRoots(t)
	if t.A != 0 {
		s.Extremum = Vertex(t)
		s.HasExtremum = true
	}
	return s
}

// Discriminant returns the sign of b²-4ac and its value as a float64. The sign is exact for any int32 coefficients:
// the computation stays in int64 while it cannot overflow and switches to big.Int otherwise.
func Discriminant(t Triple) (sign int, value float64) {
	a, b, c := int64(t.A), int64(t.B), int64(t.C)
	if abs(a) < smallCoefficient && abs(c) < smallCoefficient {
		d := b*b - 4*a*c
		switch {
		case d < 0:
			return -1, float64(d)
		case d > 0:
			return 1, float64(d)
		}
		return 0, 0
	}
	d := new(big.Int).Mul(big.NewInt(b), big.NewInt(b))
	d.Sub(d, new(big.Int).Mul(big.NewInt(4*a), big.NewInt(c)))
	f, _ := new(big.Float).SetInt(d).Float64()
	return d.Sign(), f
}

// Vertex returns the vertex (-b/2a, f(-b/2a)) of the parabola. The result is undefined when a = 0.
func Vertex(t Triple) Point {
	a, b, c := float64(t.A), float64(t.B), float64(t.C)
	x := -b / (2 * a)
	return Point{X: x, Y: a*x*x + b*x + c}
}

func solveRoots(t Triple) Solution {
	a, b, c := float64(t.A), float64(t.B), float64(t.C)
	if t.A == 0 {
		switch {
		case t.B != 0:
			return Solution{Roots: [2]float64{-c / b}, NumRoots: 1}
		case t.C == 0:
			return Solution{Any: true}
		}
		return Solution{}
	}

	sign, d := Discriminant(t)
	switch {
	case sign < 0:
		return Solution{}
	case sign == 0:
		return Solution{Roots: [2]float64{-b / (2 * a)}, NumRoots: 1}
	}

	// q = -(b + sign(b)·√D)/2 avoids the cancellation of -b ± √D when b² >> 4ac.
	sq := math.Sqrt(d)
	if t.B < 0 {
		sq = -sq
	}
	q := -0.5 * (b + sq)
	x1, x2 := q/a, c/q
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	return Solution{Roots: [2]float64{x1, x2}, NumRoots: 2}
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
