// Package rigkey generates animation keyframes for a 2D skeletal rig.
//
// # Overview
//
// rigkey has two independent pipelines:
//
//   - Curves: SVG-style path data ("M x y C x y x y x y ...") is read into
//     cubic Bezier segments and sampled into points, which become position
//     keyframes for a bone.
//   - Inverse kinematics: a resting shoulder/elbow/tip pose and a list of
//     target points are solved analytically, frame by frame, into shoulder
//     and elbow rotation deltas, which become rotation keyframes.
//
// # Quick Start
//
//	segments, err := rigkey.ParsePath("M 0 -13 C 0 -19 0 -19 0 -19", rigkey.Pt(0, 32))
//	if err != nil {
//	    return err
//	}
//	points := rigkey.SamplePath(segments, 15)
//
//	pose := rigkey.Pose{A: rigkey.Pt(0, 0), B: rigkey.Pt(0, -16), C: rigkey.Pt(0, 0)}
//	result, err := rigkey.Solve(pose, rigkey.Pt(-1.39, 1.6))
//
// The keyframe package serializes both kinds of results.
//
// # Coordinate System
//
// Coordinates are rig units with Y increasing down, as in SVG. Angles are
// radians unless a field says otherwise. Polar angles follow the rig's own
// quadrant convention, see ToPolar.
//
// # Degenerate Geometry
//
// The solver never fails on geometry: coincident joints and unreachable
// targets resolve to fixed fallback angles, and every returned angle is
// finite. Only a pose with a zero-length bone is rejected.
package rigkey
