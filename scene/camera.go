package scene

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/router"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera maps the surface the router sees onto the world the nodes live
// in. With a camera attached, router coordinates are surface coordinates
// and every node transform is applied on top of the view.
type Camera struct {
	// X and Y are the world position shown at the center of the surface.
	X, Y float64
	// Zoom is the scale factor (1 = none, >1 zooms in).
	Zoom float64
	// Rotation is the view rotation in radians.
	Rotation float64
	// Width and Height are the surface size.
	Width, Height float64

	// BoundsEnabled clamps X and Y so the visible area stays inside the
	// bounds rectangle.
	BoundsEnabled bool
	bounds        HitRect

	viewMatrix    affine
	invViewMatrix affine

	scrollTween *scrollAnim
}

// NewCamera creates a camera for a surface of w by h centered on the world
// origin.
func NewCamera(w, h float64) *Camera {
	return &Camera{Zoom: 1, Width: w, Height: h}
}

// SetSize updates the surface size, typically from a window.size event.
func (c *Camera) SetSize(w, h float64) {
	c.Width, c.Height = w, h
}

// ScrollTo animates the camera to the given world position over duration
// seconds. Advance it with Update.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// SetBounds enables clamping to the world rectangle (x, y, w, h).
func (c *Camera) SetBounds(x, y, w, h float64) {
	c.BoundsEnabled = true
	c.bounds = HitRect{X: x, Y: y, Width: w, Height: h}
}

// ClearBounds disables bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// Update advances the scroll animation by dt seconds and applies bounds.
func (c *Camera) Update(dt float32) {
	if s := c.scrollTween; s != nil {
		if !s.doneX {
			val, done := s.tweenX.Update(dt)
			c.X = float64(val)
			s.doneX = done
		}
		if !s.doneY {
			val, done := s.tweenY.Update(dt)
			c.Y = float64(val)
			s.doneY = done
		}
		if s.doneX && s.doneY {
			c.scrollTween = nil
		}
	}
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// clampToBounds restricts the position so the visible area stays within
// the bounds. Bounds smaller than the visible area center the camera.
func (c *Camera) clampToBounds() {
	halfW := c.Width / (2 * c.Zoom)
	halfH := c.Height / (2 * c.Zoom)
	b := c.bounds

	minX, maxX := b.X+halfW, b.X+b.Width-halfW
	minY, maxY := b.Y+halfH, b.Y+b.Height-halfH

	if minX > maxX {
		c.X = b.X + b.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = b.Y + b.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// computeViewMatrix rebuilds the view matrix and its inverse when any
// camera field changed.
//
//	view = Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
func (c *Camera) computeViewMatrix() {
	cx, cy := c.Width/2, c.Height/2
	cos := math.Cos(-c.Rotation)
	sin := math.Sin(-c.Rotation)
	z := c.Zoom

	m := affine{
		z * cos, z * sin,
		-z * sin, z * cos,
		cx + z*(-cos*c.X+sin*c.Y),
		cy + z*(-sin*c.X-cos*c.Y),
	}
	if m == c.viewMatrix {
		return
	}
	c.viewMatrix = m
	c.invViewMatrix = m.inverse()
}

// WorldToScreen converts a world point to surface coordinates.
func (c *Camera) WorldToScreen(p router.Point) router.Point {
	c.computeViewMatrix()
	return c.viewMatrix.apply(p)
}

// ScreenToWorld converts a surface point to world coordinates.
func (c *Camera) ScreenToWorld(p router.Point) router.Point {
	c.computeViewMatrix()
	return c.invViewMatrix.apply(p)
}
