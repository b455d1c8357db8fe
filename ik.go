package rigkey

import (
	"errors"
	"fmt"
	"math"
)

// Two-bone analytic inverse kinematics.
//
// The chain is shoulder A, elbow B and tip C. Bone lengths come from the
// resting pose and never change; only the distance from the shoulder to the
// target does. Both triangles (resting and solved) are resolved with the law
// of cosines and the result is the rotation to apply to the shoulder and the
// elbow relative to the resting pose.

// ErrZeroLengthBone is returned when a pose has a bone whose two joints
// coincide.
var ErrZeroLengthBone = errors.New("rigkey: zero-length bone")

// Pose is the resting configuration of the 3-joint chain.
// Bone one is A-B (upper arm), bone two is B-C (forearm).
type Pose struct {
	A, B, C Point
}

// Validate checks that both bones have a length.
func (p Pose) Validate() error {
	if p.A.Equal(p.B) {
		return fmt.Errorf("%w: shoulder and elbow at %v", ErrZeroLengthBone, p.A)
	}
	if p.B.Equal(p.C) {
		return fmt.Errorf("%w: elbow and tip at %v", ErrZeroLengthBone, p.B)
	}
	return nil
}

// Reach returns the maximum distance from A the chain can extend to.
func (p Pose) Reach() float64 {
	return p.A.Distance(p.B) + p.B.Distance(p.C)
}

// Triangle holds the side lengths and interior angles of the A-B-C
// triangle. SideA is opposite A (|BC|), SideB opposite B (|AC|) and SideC
// opposite C (|AB|). Angles are in radians.
type Triangle struct {
	SideA, SideB, SideC float64
	A, B, C             float64
}

// solveAngles fills in the angles from the side lengths.
// Ratios pushed out of the acos domain by rounding or by a target closer
// than |SideA-SideC| are clamped to the folded or straight angle.
func (t *Triangle) solveAngles() {
	t.A = cosAngle(t.SideC, t.SideB, t.SideA)
	t.B = cosAngle(t.SideC, t.SideA, t.SideB)
	t.C = cosAngle(t.SideA, t.SideB, t.SideC)
}

func cosAngle(a, b, c float64) float64 {
	angle, err := LawOfCos(a, b, c)
	if err != nil {
		Logger().Debug("rigkey: law of cosines fallback", "a", a, "b", b, "c", c, "err", err)
	}
	return angle
}

// Angle is a rotation in both radians and degrees.
type Angle struct {
	Radians float64
	Degrees float64
}

// NewAngle returns the angle for the given radians.
func NewAngle(radians float64) Angle {
	return Angle{Radians: radians, Degrees: RadToDeg(radians)}
}

// Result holds the rotation deltas relative to the resting pose.
type Result struct {
	A Angle // shoulder
	B Angle // elbow
}

// Solution is a Result together with the intermediate triangles.
type Solution struct {
	Result
	Resting Triangle
	IK      Triangle
}

// Solve returns the shoulder and elbow rotation deltas that bring the chain
// toward target.
func Solve(pose Pose, target Point) (Result, error) {
	s, err := SolveDetailed(pose, target)
	if err != nil {
		return Result{}, err
	}
	return s.Result, nil
}

// SolveDetailed is like Solve but also returns both triangles.
//
// Degenerate geometry never fails:
//   - C on top of A at rest, or target on top of A: all angles of that
//     triangle are zero.
//   - target beyond reach: the arm is straight (A = 0, B = π, C = 0).
//
// The only error is a pose with a zero-length bone.
func SolveDetailed(pose Pose, target Point) (Solution, error) {
	if err := pose.Validate(); err != nil {
		return Solution{}, err
	}
	log := Logger()

	resting := Triangle{
		SideA: pose.B.Distance(pose.C),
		SideB: pose.A.Distance(pose.C),
		SideC: pose.A.Distance(pose.B),
	}
	if resting.SideB == 0 {
		log.Debug("rigkey: resting tip on shoulder, zero resting angles")
	} else {
		resting.solveAngles()
	}

	ik := Triangle{
		SideA: resting.SideA,
		SideB: pose.A.Distance(target),
		SideC: resting.SideC,
	}
	switch {
	case ik.SideB == 0:
		log.Debug("rigkey: target on shoulder, zero ik angles", "target", target)
	case ik.SideB > ik.SideA+ik.SideC:
		log.Debug("rigkey: target out of reach, straightening arm", "target", target, "distance", ik.SideB)
		ik.B = math.Pi
	default:
		ik.solveAngles()
	}

	// Validate rules out A == B, so ThetaFromTan cannot fail here.
	restingAngleA, err := ThetaFromTan(pose.A, pose.B)
	if err != nil {
		return Solution{}, fmt.Errorf("rigkey: upper arm direction: %w", err)
	}
	restingDeltaA := resting.A - ik.A

	restingAngleAC := bearing(pose.A, pose.C, restingAngleA)
	ikAngleAC := bearing(pose.A, target, restingAngleA)
	deltaAngleAC := ikAngleAC - restingAngleAC

	shoulder := deltaAngleAC - restingDeltaA
	elbow := ik.B - resting.B

	return Solution{
		Result: Result{
			A: NewAngle(shoulder),
			B: NewAngle(elbow),
		},
		Resting: resting,
		IK:      ik,
	}, nil
}

// bearing returns the rig-convention angle from origin to p, or fallback
// when the two points coincide.
func bearing(origin, p Point, fallback float64) float64 {
	if origin.Equal(p) {
		return fallback
	}
	return RectToPolar(origin, p).Angle
}

// SolveAll solves every target in order, one Result per frame.
func SolveAll(pose Pose, targets []Point) ([]Result, error) {
	if err := pose.Validate(); err != nil {
		return nil, err
	}
	results := make([]Result, len(targets))
	for i, target := range targets {
		r, err := Solve(pose, target)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		results[i] = r
	}
	return results, nil
}
