package tcellsource

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/router"
)

// Pump polls screen and feeds the translated events to proc until the
// screen is finalized (PollEvent returns nil) or quit reports true for an
// event. quit may be nil. The event that triggers quit is not processed.
//
// Pump blocks; the router is single-threaded, so run it on the goroutine
// that owns the router.
func Pump(screen tcell.Screen, proc router.Processor, quit func(tcell.Event) bool) {
	t := NewTranslator()
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if quit != nil && quit(ev) {
			return
		}
		for _, raw := range t.Translate(ev) {
			proc.ProcessEvent(raw)
		}
	}
}
