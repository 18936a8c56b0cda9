package wire

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/phanxgames/router"
)

var (
	// ErrInvalidJSON is returned for input that is not a JSON document.
	ErrInvalidJSON = errors.New("invalid json")
	// ErrMissingType is returned for an object without a "type" field.
	ErrMissingType = errors.New("missing type")
)

// Decode parses one raw event object as emitted by a native input layer:
//
//	{"type":"mouse.position","x":10,"y":20}
//	{"type":"mouse.button","button":0,"state":1}
//	{"type":"mousewheel.v","xoff":0,"yoff":-1}
//	{"type":"touch","pressed":true,"points":[{"id":1,"x":5,"y":6,"timestamp":1200}]}
//	{"type":"key.press","keycode":65,"scancode":38}
//	{"type":"window.size","width":800,"height":600}
//
// Unrecognized types decode to router.Unknown.
func Decode(data []byte) (router.RawEvent, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("decode raw event: %w", ErrInvalidJSON)
	}
	return decodeResult(gjson.ParseBytes(data))
}

func decodeResult(res gjson.Result) (router.RawEvent, error) {
	if !res.IsObject() {
		return nil, fmt.Errorf("decode raw event: %w", ErrInvalidJSON)
	}
	typ := res.Get("type").String()
	if typ == "" {
		return nil, fmt.Errorf("decode raw event: %w", ErrMissingType)
	}

	switch typ {
	case router.KindMousePosition:
		return router.MousePosition{X: res.Get("x").Float(), Y: res.Get("y").Float()}, nil
	case router.KindMouseButton:
		return router.MouseButton{
			Button: int(res.Get("button").Int()),
			State:  router.ButtonState(res.Get("state").Int()),
		}, nil
	case router.KindMouseWheel:
		yoff := res.Get("yoff")
		if !yoff.Exists() {
			yoff = res.Get("position")
		}
		return router.MouseWheel{XOff: res.Get("xoff").Float(), YOff: yoff.Float()}, nil
	case router.KindTouch:
		return decodeTouch(res), nil
	case router.KindKeyPress:
		return router.KeyPress{KeyEvent: decodeKey(res)}, nil
	case router.KindKeyRelease:
		return router.KeyRelease{KeyEvent: decodeKey(res)}, nil
	case router.KindWindowSize:
		return router.WindowSize{
			Width:  int(res.Get("width").Int()),
			Height: int(res.Get("height").Int()),
		}, nil
	case router.KindWindowClose:
		return router.WindowClose{}, nil
	}
	return router.Unknown{Type: typ}, nil
}

func decodeTouch(res gjson.Result) router.Touch {
	t := router.Touch{Pressed: res.Get("pressed").Bool()}
	res.Get("points").ForEach(func(_, p gjson.Result) bool {
		ts := p.Get("time")
		if !ts.Exists() {
			ts = p.Get("timestamp")
		}
		t.Points = append(t.Points, router.RawTouchPoint{
			ID:    int(p.Get("id").Int()),
			X:     p.Get("x").Float(),
			Y:     p.Get("y").Float(),
			Count: int(p.Get("count").Int()),
			Time:  ts.Int(),
		})
		return true
	})
	return t
}

func decodeKey(res gjson.Result) router.KeyEvent {
	k := router.KeyEvent{
		Keycode:  int(res.Get("keycode").Int()),
		Scancode: int(res.Get("scancode").Int()),
	}
	if s := res.Get("char").String(); s != "" {
		k.Rune = []rune(s)[0]
	}
	return k
}
