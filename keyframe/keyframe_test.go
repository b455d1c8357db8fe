package keyframe

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/puppetbox/rigkey"
)

func TestFixed2(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0.00"},
		{math.Copysign(0, -1), "0.00"},
		{19, "19.00"},
		{17.8753, "17.88"},
		{-3.1, "-3.10"},
		{-0.001, "-0.00"},
		{5.625, "5.63"},
		{-0.375, "-0.38"},
		{1.5625, "1.56"},
		{8.4375, "8.44"},
		{0.005, "0.01"},
		{1.005, "1.00"},
		{2.675, "2.67"},
		{12345.125, "12345.13"},
	}
	for _, tt := range tests {
		if got := fixed2(tt.v); got != tt.want {
			t.Errorf("fixed2(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestNegFixed2(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0.00"},
		{307.1848248851525, "-307.18"},
		{7.595308142376376, "-7.60"},
		{-85.88, "85.88"},
		{0.001, "0.00"},
		{-0.004, "0.00"},
		{360, "-360.00"},
		{0.125, "-0.13"},
		{-0.375, "0.38"},
	}
	for _, tt := range tests {
		if got := negFixed2(tt.v); got != tt.want {
			t.Errorf("negFixed2(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestPositionWriter(t *testing.T) {
	points := []rigkey.Point{rigkey.Pt(0, 19), rigkey.Pt(-1.234, 17.875)}

	var buf bytes.Buffer
	if err := NewPositionWriter().Write(&buf, points); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := `  0:
    head:
      position:
        x: 0.00
        y: 19.00
        z: -1
  1:
    head:
      position:
        x: -1.23
        y: 17.88
        z: -1
`
	if got := buf.String(); got != want {
		t.Errorf("Write() =\n%s\nwant\n%s", got, want)
	}
}

func TestPositionWriter_RoundsTiesAwayFromZero(t *testing.T) {
	// Integer control points sampled at quarter steps land exactly on
	// x.xx5 values.
	points := rigkey.NewCubicBez(rigkey.Pt(0, 0), rigkey.Pt(0, 10), rigkey.Pt(10, 10), rigkey.Pt(10, 0)).Sample(4)

	var buf bytes.Buffer
	if err := NewPositionWriter().Write(&buf, points); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var xs, ys []string
	for _, line := range strings.Split(buf.String(), "\n") {
		line = strings.TrimSpace(line)
		if v, ok := strings.CutPrefix(line, "x: "); ok {
			xs = append(xs, v)
		}
		if v, ok := strings.CutPrefix(line, "y: "); ok {
			ys = append(ys, v)
		}
	}
	wantX := []string{"0.00", "1.56", "5.00", "8.44"}
	wantY := []string{"0.00", "5.63", "7.50", "5.63"}
	if strings.Join(xs, " ") != strings.Join(wantX, " ") {
		t.Errorf("x = %v, want %v", xs, wantX)
	}
	if strings.Join(ys, " ") != strings.Join(wantY, " ") {
		t.Errorf("y = %v, want %v", ys, wantY)
	}
}

func TestPositionWriter_CustomBone(t *testing.T) {
	var buf bytes.Buffer
	pw := &PositionWriter{Bone: "left_hand", Depth: 2}
	if err := pw.Write(&buf, []rigkey.Point{rigkey.Pt(1, 2)}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(buf.String(), "    left_hand:\n") || !strings.HasSuffix(buf.String(), "        z: 2\n") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}

	buf.Reset()
	if err := (&PositionWriter{}).Write(&buf, []rigkey.Point{rigkey.Pt(1, 2)}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(buf.String(), "    head:\n") {
		t.Errorf("empty bone should default to head:\n%s", buf.String())
	}
}

func TestRotationWriter(t *testing.T) {
	results := []rigkey.Result{
		{},
		{A: rigkey.NewAngle(5.361386606408123), B: rigkey.NewAngle(0.132563134788002)},
	}

	var buf bytes.Buffer
	if err := (&RotationWriter{}).Write(&buf, results); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := `  0:
    right_shoulder:
      rotation:
        z: 0.00
    right_elbow:
      rotation:
        z: 0.00
  1:
    right_shoulder:
      rotation:
        z: -307.18
    right_elbow:
      rotation:
        z: -7.60
`
	if got := buf.String(); got != want {
		t.Errorf("Write() =\n%s\nwant\n%s", got, want)
	}
}

func TestRotationWriter_BoneNames(t *testing.T) {
	var buf bytes.Buffer
	rw := &RotationWriter{Shoulder: "left_shoulder", Elbow: "left_elbow"}
	if err := rw.Write(&buf, []rigkey.Result{{}}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "    left_shoulder:\n") || !strings.Contains(out, "    left_elbow:\n") {
		t.Errorf("bone names not used:\n%s", out)
	}
}

func TestWriteSVGCircles(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSVGCircles(&buf, []rigkey.Point{rigkey.Pt(0, 19), rigkey.Pt(1.005, -2.5)}, 0); err != nil {
		t.Fatalf("WriteSVGCircles() error = %v", err)
	}
	want := "<circle cx=\"0.00\" cy=\"19.00\" r=\"2\"></circle>\n" +
		"<circle cx=\"1.00\" cy=\"-2.50\" r=\"2\"></circle>\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteSVGCircles() =\n%s\nwant\n%s", got, want)
	}

	buf.Reset()
	if err := WriteSVGCircles(&buf, []rigkey.Point{rigkey.Pt(1, 1)}, 1.5); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `r="1.5"`) {
		t.Errorf("radius not used: %s", buf.String())
	}
}

type failWriter struct{}

var errWrite = errors.New("disk full")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriters_PropagateErrors(t *testing.T) {
	points := []rigkey.Point{rigkey.Pt(1, 2)}
	if err := NewPositionWriter().Write(failWriter{}, points); !errors.Is(err, errWrite) {
		t.Errorf("PositionWriter error = %v, want %v", err, errWrite)
	}
	if err := (&RotationWriter{}).Write(failWriter{}, []rigkey.Result{{}}); !errors.Is(err, errWrite) {
		t.Errorf("RotationWriter error = %v, want %v", err, errWrite)
	}
	if err := WriteSVGCircles(failWriter{}, points, 2); !errors.Is(err, errWrite) {
		t.Errorf("WriteSVGCircles error = %v, want %v", err, errWrite)
	}
}
