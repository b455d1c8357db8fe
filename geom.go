package rigkey

import (
	"errors"
	"math"
)

// Triangle and angle helpers used by the IK solver.
//
// All functions are pure. The ones with a partial domain report it through
// an error instead of returning NaN.

var (
	// ErrDegenerateTriangle is returned by LawOfCos when one of the sides
	// adjacent to the requested angle has zero length.
	ErrDegenerateTriangle = errors.New("rigkey: degenerate triangle")

	// ErrAcosDomain is returned by LawOfCos when the side lengths do not
	// form a triangle and the cosine falls outside [-1, 1].
	ErrAcosDomain = errors.New("rigkey: law of cosines ratio outside [-1, 1]")

	// ErrCoincidentPoints is returned by ThetaFromTan when both points are
	// the same and no direction exists.
	ErrCoincidentPoints = errors.New("rigkey: coincident points have no direction")
)

const halfPi = math.Pi / 2

// LawOfCos returns the angle opposite side c of the triangle with sides a,
// b and c, using acos((c² − a² − b²) / (−2ab)).
//
// If a or b is zero the angle is undefined and ErrDegenerateTriangle is
// returned together with a zero angle. If the ratio falls outside [-1, 1]
// ErrAcosDomain is returned together with the angle of the clamped ratio
// (0 or π), which callers may use as a folded or straight fallback.
func LawOfCos(a, b, c float64) (float64, error) {
	if a == 0 || b == 0 {
		return 0, ErrDegenerateTriangle
	}
	ratio := (c*c - a*a - b*b) / (-2 * a * b)
	switch {
	case ratio > 1:
		return 0, ErrAcosDomain
	case ratio < -1:
		return math.Pi, ErrAcosDomain
	}
	return math.Acos(ratio), nil
}

// ThetaFromTan returns atan(Δy/Δx) for the segment from p to q, an angle in
// [-π/2, π/2].
//
// A vertical segment yields ±π/2 by the sign of Δy. Coincident points
// return ErrCoincidentPoints.
func ThetaFromTan(p, q Point) (float64, error) {
	dx := q.X - p.X
	dy := q.Y - p.Y
	if dx == 0 {
		switch {
		case dy > 0:
			return halfPi, nil
		case dy < 0:
			return -halfPi, nil
		}
		return 0, ErrCoincidentPoints
	}
	return math.Atan(dy / dx), nil
}

// Polar is a vector in polar form.
type Polar struct {
	Angle  float64 // radians, in [0, 2π)
	Radius float64
}

// ToPolar converts the vector v, measured from the coordinate origin, to
// polar form.
//
// The angle follows the rig's quadrant convention rather than atan2: the raw
// atan(y/x) is folded into [0, π/2), then π/2 is added for x < 0, another
// π/2 when additionally y < 0, and 3π/2 for x >= 0 with y < 0. Keyframes
// exported for the rig depend on these exact thresholds.
//
// The zero vector has no direction and yields Polar{}.
func ToPolar(v Point) Polar {
	if v.IsZero() {
		return Polar{}
	}

	raw := math.Atan(v.Y / v.X)
	angle := math.Mod(raw+halfPi, halfPi)

	if v.X < 0 {
		angle += halfPi
		if v.Y < 0 {
			angle += halfPi
		}
	} else if v.Y < 0 {
		angle += math.Pi + halfPi
	}

	return Polar{Angle: angle, Radius: v.Length()}
}

// RectToPolar converts the vector from origin to target to polar form.
// See ToPolar for the angle convention.
func RectToPolar(origin, target Point) Polar {
	return ToPolar(target.Sub(origin))
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}
