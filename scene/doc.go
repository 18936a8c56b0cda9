// Package scene is a minimal retained-mode scene graph for the router.
//
// Nodes form a tree rooted at [Graph.Root]. Children inherit their parent's
// transform; siblings are ordered by ZIndex and then insertion order, and
// later siblings sit on top. A node's hit region is its [HitShape] when set,
// otherwise its Width×Height rectangle.
//
// [Graph] implements [router.SceneGraph] and [*Node] implements
// [router.Node], so a graph can be handed straight to [router.New]:
//
//	g := scene.New()
//	button := scene.NewRect("ok", 120, 40)
//	button.Mouse = router.Yes
//	g.Root().AddChild(button)
//
//	r := router.New(g)
//	r.On(router.EventClick, button, func(e router.Event) { ... })
//
// A [Camera] attached with [Graph.SetCamera] puts a pannable, zoomable view
// between the router's surface coordinates and the world.
//
// Node properties can be animated with gween through [TweenPosition],
// [TweenScale] and [TweenAlpha].
package scene
