// Package preview renders sampled rig points into a PNG so keyframe data can
// be checked by eye before it is handed to the animation pipeline.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"strconv"
	"sync"

	"github.com/puppetbox/rigkey"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// ErrNoPoints is returned by Render when no layer has any point.
var ErrNoPoints = errors.New("preview: nothing to render")

// Default rendering parameters.
const (
	DefaultWidth     = 512
	DefaultHeight    = 512
	DefaultMargin    = 32
	DefaultRadius    = 3
	DefaultLineWidth = 1.5
	DefaultFontSize  = 10
)

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bezier.
const kappa = 0.5522847498

// Layer is a set of points drawn in one color.
type Layer struct {
	Name   string
	Points []rigkey.Point
	Color  color.Color

	// Radius of the point markers in pixels. Zero uses DefaultRadius, a
	// negative radius draws no markers.
	Radius float64

	// Connect draws a polyline through the points in order.
	Connect bool
}

// Options control the output image.
type Options struct {
	Width, Height int
	Margin        float64
	Background    color.Color

	// LabelEvery labels every n-th point of each layer with its index.
	// Zero disables labels.
	LabelEvery int
}

// DefaultOptions returns a white 512x512 canvas labelling every fifth point.
func DefaultOptions() Options {
	return Options{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Margin:     DefaultMargin,
		Background: color.White,
		LabelEvery: 5,
	}
}

// Render draws the layers in order and returns the image.
// Rig coordinates are scaled uniformly to fit inside the margin.
func Render(opts Options, layers ...Layer) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("preview: invalid size %dx%d", opts.Width, opts.Height)
	}

	var all []rigkey.Point
	for _, l := range layers {
		all = append(all, l.Points...)
	}
	if len(all) == 0 {
		return nil, ErrNoPoints
	}

	bg := opts.Background
	if bg == nil {
		bg = color.White
	}
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	tf := fitTransform(all, opts)

	var face font.Face
	if opts.LabelEvery > 0 {
		f, err := labelFace()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		face = f
	}

	for _, l := range layers {
		if len(l.Points) == 0 {
			continue
		}
		col := l.Color
		if col == nil {
			col = color.Black
		}
		src := image.NewUniform(col)

		z := vector.NewRasterizer(opts.Width, opts.Height)
		if l.Connect {
			for i := 0; i+1 < len(l.Points); i++ {
				addSegment(z, tf.apply(l.Points[i]), tf.apply(l.Points[i+1]), DefaultLineWidth)
			}
		}
		r := l.Radius
		if r == 0 {
			r = DefaultRadius
		}
		if r > 0 {
			for _, p := range l.Points {
				addCircle(z, tf.apply(p), r)
			}
		}
		z.Draw(img, img.Bounds(), src, image.Point{})

		if face != nil {
			labelPoints(img, face, src, tf, l.Points, opts.LabelEvery, r)
		}
		rigkey.Logger().Debug("preview: rendered layer", "name", l.Name, "points", len(l.Points))
	}
	return img, nil
}

// transform maps rig coordinates to pixel coordinates.
type transform struct {
	scale      float64
	offX, offY float64
}

func (t transform) apply(p rigkey.Point) rigkey.Point {
	return rigkey.Pt(p.X*t.scale+t.offX, p.Y*t.scale+t.offY)
}

// fitTransform centers the bounding box of points in the image, scaled
// uniformly so it fits inside the margin. Degenerate boxes (a single point
// or a straight vertical or horizontal run) are scaled by the other axis,
// or not at all.
func fitTransform(points []rigkey.Point, opts Options) transform {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	availW := math.Max(float64(opts.Width)-2*opts.Margin, 1)
	availH := math.Max(float64(opts.Height)-2*opts.Margin, 1)
	w, h := maxX-minX, maxY-minY

	scale := 1.0
	switch {
	case w > 0 && h > 0:
		scale = math.Min(availW/w, availH/h)
	case w > 0:
		scale = availW / w
	case h > 0:
		scale = availH / h
	}

	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	return transform{
		scale: scale,
		offX:  float64(opts.Width)/2 - cx*scale,
		offY:  float64(opts.Height)/2 - cy*scale,
	}
}

// addCircle adds a closed circle of radius r around c.
func addCircle(z *vector.Rasterizer, c rigkey.Point, r float64) {
	k := r * kappa
	x, y := float32(c.X), float32(c.Y)
	rr, kk := float32(r), float32(k)

	z.MoveTo(x+rr, y)
	z.CubeTo(x+rr, y+kk, x+kk, y+rr, x, y+rr)
	z.CubeTo(x-kk, y+rr, x-rr, y+kk, x-rr, y)
	z.CubeTo(x-rr, y-kk, x-kk, y-rr, x, y-rr)
	z.CubeTo(x+kk, y-rr, x+rr, y-kk, x+rr, y)
	z.ClosePath()
}

// addSegment adds a filled quad of the given width from p to q.
func addSegment(z *vector.Rasterizer, p, q rigkey.Point, width float64) {
	d := q.Sub(p)
	length := d.Length()
	if length == 0 {
		return
	}
	hw := width / 2
	nx, ny := -d.Y/length*hw, d.X/length*hw

	z.MoveTo(float32(p.X+nx), float32(p.Y+ny))
	z.LineTo(float32(q.X+nx), float32(q.Y+ny))
	z.LineTo(float32(q.X-nx), float32(q.Y-ny))
	z.LineTo(float32(p.X-nx), float32(p.Y-ny))
	z.ClosePath()
}

func labelPoints(img *image.RGBA, face font.Face, src image.Image, tf transform, points []rigkey.Point, every int, r float64) {
	d := &font.Drawer{Dst: img, Src: src, Face: face}
	offset := math.Max(r, 0) + 2
	for i := 0; i < len(points); i += every {
		p := tf.apply(points[i])
		d.Dot = fixed.P(int(p.X+offset), int(p.Y-offset))
		d.DrawString(strconv.Itoa(i))
	}
}

var (
	fontOnce sync.Once
	fontData *opentype.Font
	fontErr  error
)

// labelFace returns a new face for index labels. The parsed font is shared.
func labelFace() (font.Face, error) {
	fontOnce.Do(func() {
		fontData, fontErr = opentype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fmt.Errorf("preview: failed to parse font: %w", fontErr)
	}
	face, err := opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    DefaultFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("preview: failed to create face: %w", err)
	}
	return face, nil
}

// SavePNG encodes img as PNG into the named file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("preview: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
