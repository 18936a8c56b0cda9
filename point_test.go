package router

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(10, 20)
	if got := p.Add(Pt(1, 2)); got != Pt(11, 22) {
		t.Errorf("Add = %v", got)
	}
	if got := p.Sub(Pt(4, 5)); got != Pt(6, 15) {
		t.Errorf("Sub = %v", got)
	}
	if got := p.SubXY(10, 10); got != Pt(0, 10) {
		t.Errorf("SubXY = %v", got)
	}
	if got := p.Div(2, 4); got != Pt(5, 5) {
		t.Errorf("Div = %v", got)
	}
	if got := p.Mul(0.5, 3); got != Pt(5, 60) {
		t.Errorf("Mul = %v", got)
	}
}

func TestPointDistanceTo(t *testing.T) {
	if got := Pt(0, 0).DistanceTo(Pt(3, 4)); got != 5 {
		t.Errorf("DistanceTo = %v, want 5", got)
	}
	if got := Pt(2, 2).DistanceTo(Pt(2, 2)); got != 0 {
		t.Errorf("DistanceTo self = %v, want 0", got)
	}
}

func TestPointAngleWith(t *testing.T) {
	tests := []struct {
		name string
		to   Point
		want float64
	}{
		{"right", Pt(1, 0), 0},
		{"down", Pt(0, 1), math.Pi / 2},
		{"left", Pt(-1, 0), math.Pi},
		{"up", Pt(0, -1), -math.Pi / 2},
		{"down-right", Pt(1, 1), math.Pi / 4},
		{"down-left", Pt(-1, 1), 3 * math.Pi / 4},
		{"up-left", Pt(-1, -1), -3 * math.Pi / 4},
		{"up-right", Pt(1, -1), -math.Pi / 4},
		{"coincident", Pt(0, 0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pt(0, 0).AngleWith(tt.to)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("AngleWith(%v) = %v, want %v", tt.to, got, tt.want)
			}
			if tt.name != "coincident" {
				if ref := math.Atan2(tt.to.Y, tt.to.X); math.Abs(got-ref) > 1e-12 {
					t.Errorf("AngleWith(%v) = %v, atan2 = %v", tt.to, got, ref)
				}
			}
		})
	}
}

func TestPointAngleWithOffsetOrigin(t *testing.T) {
	got := Pt(5, 5).AngleWith(Pt(5, 9))
	if math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("AngleWith = %v, want pi/2", got)
	}
}
