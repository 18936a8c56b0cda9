// Package router turns raw platform input into semantic UI events for a
// retained-mode scene graph.
//
// A platform layer reports low-level notifications (pointer position,
// button state, wheel offsets, multi-touch frames, key codes, window
// lifecycle) as [RawEvent] values. [Router.ProcessEvent] resolves which
// node should receive them, tracks focus and touch contacts across frames,
// and fires press, release, click, drag, scroll, key, focus and touch events
// at the listeners registered with [Router.On].
//
// The router never inspects nodes beyond the [Node] interface and asks the
// [SceneGraph] collaborator for hit tests and coordinate conversion. The
// scene subpackage provides a ready-made implementation.
//
// # Quick start
//
//	g := scene.New()
//	box := scene.NewRect("box", 200, 250)
//	box.Mouse = router.Yes
//	g.Root().AddChild(box)
//
//	r := router.New(g)
//	r.On(router.EventClick, box, func(e router.Event) {
//		fmt.Println("clicked at", e.Point)
//	})
//
//	r.ProcessEvent(router.MousePosition{X: 20, Y: 30})
//	r.ProcessEvent(router.MouseButton{Button: 0, State: router.ButtonPressed})
//	r.ProcessEvent(router.MouseButton{Button: 0, State: router.ButtonReleased})
//
// # Focus
//
// Pointer focus is resolved on primary-button press: the topmost node with
// Mouse set to [Yes] receives press, drag, release and click until the
// button is released. The same press moves keyboard focus to the topmost
// node with Keyboard set to [Yes], firing focus.lose before focus.gain.
// Scroll focus is resolved on every wheel notification.
//
// # Touch
//
// Each raw [Touch] frame lists the active contacts. Contacts are matched to
// the previous frame by ID. A node whose Touch flag is [Yes], hit by the
// first contact of a gesture, captures the whole session and receives touch
// events with action start, update and done. Otherwise each contact emulates
// a mouse: press when it appears, drag while it moves, release (and click)
// when it lifts, with Button set to the contact ID.
//
// # Threading
//
// A Router is single-threaded. Raw events must be processed one at a time
// and each runs to completion, including all listener callbacks, before the
// next is accepted.
package router
