package router

import "math"

// Point is a 2D vector used for pointer positions, touch contacts, and
// local-space coordinates. It is a value type; every operation returns a
// new Point.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + o.
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

// SubXY returns p - (x, y).
func (p Point) SubXY(x, y float64) Point {
	return Point{p.X - x, p.Y - y}
}

// Div divides each component by the matching factor.
func (p Point) Div(x, y float64) Point {
	return Point{p.X / x, p.Y / y}
}

// Mul multiplies each component by the matching factor.
func (p Point) Mul(x, y float64) Point {
	return Point{p.X * x, p.Y * y}
}

// DistanceTo returns the Euclidean distance between p and o.
func (p Point) DistanceTo(o Point) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// AngleWith returns the signed angle in radians of the vector from p to o,
// in (-π, π]. Y grows downward, so a point below p yields a positive angle
// and a point directly to the left yields π.
//
// The angle is atan(dy/|dx|) mirrored into the left half-plane when dx < 0.
// A vertical vector (dx == 0) resolves to ±π/2 and coincident points resolve
// to 0; the result is never NaN.
func (p Point) AngleWith(o Point) float64 {
	dy := o.Y - p.Y
	dx := o.X - p.X
	alpha := math.Atan(dy / math.Abs(dx))
	if math.IsNaN(alpha) {
		return 0
	}

	if dx < 0 {
		if alpha >= 0 {
			alpha = math.Pi - alpha
		} else {
			alpha = -math.Pi - alpha
		}
	}
	return alpha
}
