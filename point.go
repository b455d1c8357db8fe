package rigkey

import "math"

// Point represents a 2D point or vector in rig space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Equal reports whether both components are exactly equal.
// No tolerance is applied: 0.1+0.2 and 0.3 are different points.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// IsZero returns true if the point is the origin.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}
