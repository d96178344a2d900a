package math

import (
	m "math"
	"testing"
)

func TestDegToRad(t *testing.T) {
	tests := []struct {
		deg  float64
		want float64
	}{
		{0, 0},
		{90, m.Pi / 2},
		{180, m.Pi},
		{-45, -m.Pi / 4},
	}
	for _, tt := range tests {
		if got := DegToRad(tt.deg); m.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DegToRad(%v) = %v, want %v", tt.deg, got, tt.want)
		}
		if got := RadToDeg(DegToRad(tt.deg)); m.Abs(got-tt.deg) > 1e-9 {
			t.Errorf("RadToDeg(DegToRad(%v)) = %v", tt.deg, got)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp(5, 0, 3) = %d", got)
	}
	if got := Clamp(-1.5, 0.0, 1.0); got != 0 {
		t.Errorf("Clamp(-1.5, 0, 1) = %v", got)
	}
	if got := Min(uint8(4), uint8(8)); got != 4 {
		t.Errorf("Min(4, 8) = %d", got)
	}
}

func TestVec2Distance(t *testing.T) {
	a := NewVec2(0, 0)
	b := NewVec2(3, 4)
	if got := a.Distance(b); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := a.Midpoint(b); got != NewVec2(1.5, 2) {
		t.Errorf("Midpoint = %v", got)
	}
}
