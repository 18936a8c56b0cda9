package router

import "log/slog"

// KeyNormalizer converts a raw key event plus the accumulated key state
// into a normalized KeyInfo.
type KeyNormalizer interface {
	Normalize(raw KeyEvent, state map[int]bool) KeyInfo
}

// KeyNormalizerFunc adapts a function to KeyNormalizer.
type KeyNormalizerFunc func(raw KeyEvent, state map[int]bool) KeyInfo

// Normalize calls f(raw, state).
func (f KeyNormalizerFunc) Normalize(raw KeyEvent, state map[int]bool) KeyInfo {
	return f(raw, state)
}

type pointerStatus struct {
	pt     Point
	prevPt Point
	state  ButtonState
	button int // button captured at press time
}

// Router turns raw input into semantic events for one graphics surface.
// It owns the focus slots, pointer and keyboard status, and the touch
// contact map. A Router is not safe for concurrent use: raw events must be
// processed one at a time, each to completion.
type Router struct {
	graph SceneGraph
	keys  KeyNormalizer
	log   *slog.Logger
	cfg   Config

	// logger is set by WithLogger and takes precedence over cfg.Logger.
	logger *slog.Logger

	listeners registry
	store     EventStore

	// Focus slots.
	pointerTarget  Node
	keyboardTarget Node
	scrollTarget   Node

	pointer  pointerStatus
	keyState map[int]bool

	// Touch tracking. contacts keeps the reported order of the last frame;
	// contactByID indexes it.
	contacts    []TouchContact
	contactByID map[int]int
	touchNode   Node
}

// Option configures a Router.
type Option func(*Router)

// WithConfig applies cfg.
func WithConfig(cfg Config) Option {
	return func(r *Router) {
		r.cfg = cfg
	}
}

// WithLogger sets the log sink, overriding any logger in the config
// whichever option comes first.
func WithLogger(l *slog.Logger) Option {
	return func(r *Router) {
		r.logger = l
	}
}

// WithKeyNormalizer replaces the default GLFW key normalizer.
func WithKeyNormalizer(k KeyNormalizer) Option {
	return func(r *Router) {
		r.keys = k
	}
}

// New creates a router that resolves targets against graph.
func New(graph SceneGraph, opts ...Option) *Router {
	r := &Router{
		graph:       graph,
		keys:        GLFWKeys{},
		cfg:         DefaultConfig(),
		pointer:     pointerStatus{pt: Pt(-1, -1), prevPt: Pt(-1, -1)},
		keyState:    make(map[int]bool),
		contactByID: make(map[int]int),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger != nil {
		r.cfg.Logger = r.logger
	}
	r.log = r.cfg.logger()
	r.log.Debug("router created")
	return r
}

// PointerTarget returns the node receiving pointer events, or nil.
func (r *Router) PointerTarget() Node { return r.pointerTarget }

// KeyboardTarget returns the node holding keyboard focus, or nil.
func (r *Router) KeyboardTarget() Node { return r.keyboardTarget }

// ScrollTarget returns the node that received the last scroll event, or nil.
func (r *Router) ScrollTarget() Node { return r.scrollTarget }

// PointerPosition returns the current and previous pointer positions in
// global coordinates.
func (r *Router) PointerPosition() (pt, prev Point) {
	return r.pointer.pt, r.pointer.prevPt
}
