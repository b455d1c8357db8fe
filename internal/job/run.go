package job

import (
	"fmt"
	"image/color"
	"io"

	"github.com/puppetbox/rigkey"
	"github.com/puppetbox/rigkey/keyframe"
	"github.com/puppetbox/rigkey/preview"
)

// Mode selects which pipelines Run executes.
type Mode string

const (
	ModeCurve Mode = "curve"
	ModeIK    Mode = "ik"
	ModeAll   Mode = "all"
)

// Format selects the output written by Run.
type Format string

const (
	// FormatYAML writes keyframe blocks.
	FormatYAML Format = "yaml"
	// FormatSVG writes SVG circle markers for sampled points and IK targets.
	FormatSVG Format = "svg"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeCurve, ModeIK, ModeAll:
		return m, nil
	}
	return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidJob, s)
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatYAML, FormatSVG:
		return f, nil
	}
	return "", fmt.Errorf("%w: unknown format %q", ErrInvalidJob, s)
}

// Options configure Run.
type Options struct {
	Mode   Mode
	Format Format

	// PreviewPath, when set, receives a PNG of everything Run computed.
	PreviewPath string
}

// Preview layer colors.
var (
	curveColor  = color.RGBA{R: 0xd0, G: 0x30, B: 0x30, A: 0xff}
	targetColor = color.RGBA{R: 0x30, G: 0x60, B: 0xd0, A: 0xff}
	poseColor   = color.RGBA{A: 0xff}
)

// Run executes the selected pipelines and writes their output to w.
//
// In ModeAll both fragments are written, each preceded by a comment line
// naming it. A section missing from the job is skipped in ModeAll and is an
// error when selected on its own.
func Run(j *Job, opts Options, w io.Writer) error {
	if opts.Mode == "" {
		opts.Mode = ModeAll
	}
	if opts.Format == "" {
		opts.Format = FormatYAML
	}
	if _, err := ParseMode(string(opts.Mode)); err != nil {
		return err
	}
	if _, err := ParseFormat(string(opts.Format)); err != nil {
		return err
	}

	runCurve := opts.Mode == ModeCurve || (opts.Mode == ModeAll && j.Curve != nil)
	runIK := opts.Mode == ModeIK || (opts.Mode == ModeAll && j.IK != nil)
	if runCurve && j.Curve == nil {
		return fmt.Errorf("%w: mode %s needs a curve section", ErrInvalidJob, opts.Mode)
	}
	if runIK && j.IK == nil {
		return fmt.Errorf("%w: mode %s needs an ik section", ErrInvalidJob, opts.Mode)
	}
	headers := runCurve && runIK

	var layers []preview.Layer

	if runCurve {
		points, err := j.Curve.Points()
		if err != nil {
			return err
		}
		if headers {
			if err := writeHeader(w, "position keyframes: %s", j.Curve.Bone); err != nil {
				return err
			}
		}
		if err := writePositions(w, j.Curve, points, opts.Format); err != nil {
			return err
		}
		layers = append(layers, preview.Layer{Name: "curve", Points: points, Color: curveColor})
	}

	if runIK {
		results, err := j.IK.Results()
		if err != nil {
			return err
		}
		if headers {
			if err := writeHeader(w, "rotation keyframes: %s, %s", j.IK.Shoulder, j.IK.Elbow); err != nil {
				return err
			}
		}
		if err := writeRotations(w, j.IK, results, opts.Format); err != nil {
			return err
		}
		pose := j.IK.Pose.Pose()
		layers = append(layers,
			preview.Layer{Name: "pose", Points: []rigkey.Point{pose.A, pose.B, pose.C}, Color: poseColor, Connect: true},
			preview.Layer{Name: "targets", Points: j.IK.TargetPoints(), Color: targetColor},
		)
	}

	if opts.PreviewPath != "" {
		img, err := preview.Render(preview.DefaultOptions(), layers...)
		if err != nil {
			return err
		}
		if err := preview.SavePNG(opts.PreviewPath, img); err != nil {
			return err
		}
		rigkey.Logger().Info("job: wrote preview", "path", opts.PreviewPath)
	}
	return nil
}

// writeHeader writes a "# ..." comment line naming the next fragment.
func writeHeader(w io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, "# "+format+"\n", args...); err != nil {
		return fmt.Errorf("job: write header: %w", err)
	}
	return nil
}

func writePositions(w io.Writer, c *CurveJob, points []rigkey.Point, f Format) error {
	if f == FormatSVG {
		return keyframe.WriteSVGCircles(w, points, keyframe.DefaultMarkerRadius)
	}
	pw := &keyframe.PositionWriter{Bone: c.Bone, Depth: keyframe.DefaultDepth}
	if c.Depth != nil {
		pw.Depth = *c.Depth
	}
	return pw.Write(w, points)
}

func writeRotations(w io.Writer, ik *IKJob, results []rigkey.Result, f Format) error {
	if f == FormatSVG {
		return keyframe.WriteSVGCircles(w, ik.TargetPoints(), keyframe.DefaultMarkerRadius)
	}
	rw := &keyframe.RotationWriter{Shoulder: ik.Shoulder, Elbow: ik.Elbow}
	return rw.Write(w, results)
}
