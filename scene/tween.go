package scene

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// channel drives one node field.
type channel struct {
	tween *gween.Tween
	field *float64
}

// TweenGroup animates node fields together. Build one with TweenPosition,
// TweenScale or TweenAlpha and call Update(dt) once per frame; Done turns
// true when every field has arrived, or as soon as the node is disposed.
type TweenGroup struct {
	target   *Node
	channels []channel
	Done     bool
}

func newTweenGroup(node *Node, duration float32, fn ease.TweenFunc, fields map[*float64]float64) *TweenGroup {
	g := &TweenGroup{target: node}
	for field, to := range fields {
		g.channels = append(g.channels, channel{
			tween: gween.New(float32(*field), float32(to), duration, fn),
			field: field,
		})
	}
	return g
}

// Update advances the animation by dt seconds.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target.IsDisposed() {
		g.Done = true
		return
	}

	done := true
	for _, ch := range g.channels {
		v, finished := ch.tween.Update(dt)
		*ch.field = float64(v)
		done = done && finished
	}
	g.Done = done
	g.target.MarkDirty()
}

// TweenPosition moves node to (toX, toY) over duration seconds.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, map[*float64]float64{&node.X: toX, &node.Y: toY})
}

// TweenScale scales node to (toSX, toSY) over duration seconds.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, map[*float64]float64{&node.ScaleX: toSX, &node.ScaleY: toSY})
}

// TweenAlpha fades node.Alpha to the given value.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, map[*float64]float64{&node.Alpha: to})
}
