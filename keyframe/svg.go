package keyframe

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/puppetbox/rigkey"
)

// DefaultMarkerRadius is the circle radius used by WriteSVGCircles when
// radius is not positive.
const DefaultMarkerRadius = 2

// WriteSVGCircles writes one <circle> element per point, suitable for
// pasting into an SVG document to check sampled points against the source
// path.
func WriteSVGCircles(w io.Writer, points []rigkey.Point, radius float64) error {
	if radius <= 0 {
		radius = DefaultMarkerRadius
	}
	r := strconv.FormatFloat(radius, 'f', -1, 64)

	bw := bufio.NewWriter(w)
	for _, p := range points {
		fmt.Fprintf(bw, "<circle cx=%q cy=%q r=%q></circle>\n", fixed2(p.X), fixed2(p.Y), r)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("keyframe: write svg circles: %w", err)
	}
	return nil
}
