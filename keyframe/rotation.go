package keyframe

import (
	"bufio"
	"fmt"
	"io"

	"github.com/puppetbox/rigkey"
)

// Default bone keys for rotation keyframes.
const (
	DefaultShoulderBone = "right_shoulder"
	DefaultElbowBone    = "right_elbow"
)

// RotationWriter writes shoulder and elbow rotation keyframes.
//
// The rig rotates clockwise for positive z, so every angle is written
// negated: the degrees are rounded to two decimals and then the sign is
// flipped.
type RotationWriter struct {
	Shoulder string // empty means DefaultShoulderBone
	Elbow    string // empty means DefaultElbowBone
}

// Write emits one block per result in frame order.
func (rw *RotationWriter) Write(w io.Writer, results []rigkey.Result) error {
	shoulder, elbow := rw.Shoulder, rw.Elbow
	if shoulder == "" {
		shoulder = DefaultShoulderBone
	}
	if elbow == "" {
		elbow = DefaultElbowBone
	}

	bw := bufio.NewWriter(w)
	for i, r := range results {
		fmt.Fprintf(bw, "  %d:\n", i)
		writeRotation(bw, shoulder, r.A)
		writeRotation(bw, elbow, r.B)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("keyframe: write rotations: %w", err)
	}
	rigkey.Logger().Info("keyframe: wrote rotation keyframes", "shoulder", shoulder, "elbow", elbow, "frames", len(results))
	return nil
}

func writeRotation(w io.Writer, bone string, a rigkey.Angle) {
	fmt.Fprintf(w, "    %s:\n", bone)
	fmt.Fprintf(w, "      rotation:\n")
	fmt.Fprintf(w, "        z: %s\n", negFixed2(a.Degrees))
}
