package rigkey

import "math"

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// NewCubicBez creates a new cubic Bezier curve.
func NewCubicBez(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Eval evaluates the curve at parameter t using the Bernstein blend
//
//	|(1-t)^3|*P0 + 3(1-t)^2*t*P1 + 3|1-t|*t^2*P2 + |t^3|*P3
//
// The magnitudes only matter for t outside [0, 1], where they keep the
// exported keyframes identical to the ones the rig was authored with.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	t2 := t * t

	b0 := math.Abs(mt2 * mt)
	b1 := 3 * mt2 * t
	b2 := 3 * math.Abs(mt) * t2
	b3 := math.Abs(t2 * t)

	return Point{
		X: b0*c.P0.X + b1*c.P1.X + b2*c.P2.X + b3*c.P3.X,
		Y: b0*c.P0.Y + b1*c.P1.Y + b2*c.P2.Y + b3*c.P3.Y,
	}
}

// Start returns the starting point of the curve.
func (c CubicBez) Start() Point {
	return c.P0
}

// End returns the ending point of the curve.
func (c CubicBez) End() Point {
	return c.P3
}

// Sample returns n points at t = i/n for i in [0, n).
//
// The end point (t = 1) is never produced; consecutive segments of a path
// share it as the start of the next segment instead. n <= 0 returns nil.
func (c CubicBez) Sample(n int) []Point {
	if n <= 0 {
		return nil
	}
	points := make([]Point, n)
	for i := range points {
		points[i] = c.Eval(float64(i) / float64(n))
	}
	return points
}

// SamplePath samples every segment with n points and concatenates the runs
// in segment order.
func SamplePath(segments []CubicBez, n int) []Point {
	if n <= 0 {
		return nil
	}
	points := make([]Point, 0, len(segments)*n)
	for _, seg := range segments {
		points = append(points, seg.Sample(n)...)
	}
	return points
}
