package keyframe

import (
	"bufio"
	"fmt"
	"io"

	"github.com/puppetbox/rigkey"
)

// DefaultPositionBone is the bone animated by position keyframes.
const DefaultPositionBone = "head"

// DefaultDepth is the z value written with every position keyframe.
const DefaultDepth = -1

// PositionWriter writes one position keyframe per sampled point.
type PositionWriter struct {
	// Bone is the bone key; empty means DefaultPositionBone.
	Bone string

	// Depth is the constant z coordinate. Use NewPositionWriter to get
	// DefaultDepth; the zero value writes z: 0.
	Depth int
}

// NewPositionWriter returns a writer with the default bone and depth.
func NewPositionWriter() *PositionWriter {
	return &PositionWriter{Bone: DefaultPositionBone, Depth: DefaultDepth}
}

// Write emits the keyframe blocks for points in order.
func (pw *PositionWriter) Write(w io.Writer, points []rigkey.Point) error {
	bone := pw.Bone
	if bone == "" {
		bone = DefaultPositionBone
	}

	bw := bufio.NewWriter(w)
	for i, p := range points {
		fmt.Fprintf(bw, "  %d:\n", i)
		fmt.Fprintf(bw, "    %s:\n", bone)
		fmt.Fprintf(bw, "      position:\n")
		fmt.Fprintf(bw, "        x: %s\n", fixed2(p.X))
		fmt.Fprintf(bw, "        y: %s\n", fixed2(p.Y))
		fmt.Fprintf(bw, "        z: %d\n", pw.Depth)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("keyframe: write positions: %w", err)
	}
	rigkey.Logger().Info("keyframe: wrote position keyframes", "bone", bone, "frames", len(points))
	return nil
}
