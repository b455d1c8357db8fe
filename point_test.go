package rigkey

import (
	"math"
	"testing"
)

func TestPoint_Distance(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want float64
	}{
		{"same", Pt(1, 1), Pt(1, 1), 0},
		{"3-4-5", Pt(0, 0), Pt(3, 4), 5},
		{"negative", Pt(-1, -1), Pt(2, 3), 5},
		{"vertical", Pt(0, 0), Pt(0, -16), 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Distance(tt.q); got != tt.want {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
			if got := tt.q.Distance(tt.p); got != tt.want {
				t.Errorf("Distance() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPoint_Equal(t *testing.T) {
	if !Pt(1.5, -2).Equal(Pt(1.5, -2)) {
		t.Error("identical points should be equal")
	}
	// No tolerance: values that only differ in the last bit are different.
	if Pt(0.1+0.2, 0).Equal(Pt(0.3, 0)) {
		t.Error("0.1+0.2 should not equal 0.3 exactly")
	}
	if Pt(0, math.Nextafter(1, 2)).Equal(Pt(0, 1)) {
		t.Error("points one ulp apart should differ")
	}
}

func TestPoint_AddSub(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, -2)
	if got := p.Add(q); got != Pt(4, 2) {
		t.Errorf("Add() = %v, want (4, 2)", got)
	}
	if got := p.Sub(q); got != Pt(2, 6) {
		t.Errorf("Sub() = %v, want (2, 6)", got)
	}
	if !Pt(0, 0).IsZero() || Pt(0, 1).IsZero() {
		t.Error("IsZero() wrong")
	}
}
