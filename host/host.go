// Package host defines the capabilities a marquee needs from its hosting
// environment: frame scheduling, document visibility, window geometry and
// its change notifications, and element measurement.
//
// Each capability is a small interface so applications can plug in the
// native engine bindings (see the parent package's Native constructor) while
// tests substitute deterministic fakes.
package host

import "time"

// Handle identifies a pending frame callback. The zero value means "no
// callback pending"; schedulers must never return it from Request.
type Handle uint64

// Scheduler requests a callback before the next repaint.
//
// Request registers fn to run once, on the host's event goroutine, and
// returns a handle for cancellation. Cancel revokes a pending callback;
// cancelling a handle that already fired or was cancelled is a no-op.
type Scheduler interface {
	Request(fn func(now time.Time)) Handle
	Cancel(h Handle)
}

// Document reports the hosting document/window visibility state.
type Document interface {
	// Hidden returns true while the document is not visible to the user
	// (minimized window, hidden tab, suspended app).
	Hidden() bool

	// OnVisibilityChange registers fn to run whenever Hidden flips.
	// The returned func removes the listener.
	OnVisibilityChange(fn func()) (remove func())
}

// Window reports viewport geometry and its change events.
type Window interface {
	// Size returns the current viewport dimensions in pixels.
	Size() Size

	// OnResize registers fn to run whenever the viewport size changes.
	// The returned func removes the listener.
	OnResize(fn func()) (remove func())

	// OnScroll registers fn to run on every scroll of the window or
	// document. The returned func removes the listener.
	OnScroll(fn func()) (remove func())
}

// Surface measures the rendered boxes of a mounted component.
//
// Both methods are pure reads of committed layout. The boolean result is
// false while the surface is not attached yet; callers treat that as "not
// ready" and re-read after attach or resize.
type Surface interface {
	// Bounds returns the container's bounding box in viewport coordinates.
	Bounds() (Rect, bool)

	// ItemSize returns the rendered box of the i-th original child.
	ItemSize(i int) (Size, bool)
}

// Capabilities bundles the host collaborators for one mounted component.
type Capabilities struct {
	Scheduler Scheduler
	Document  Document
	Window    Window
	Surface   Surface
}

// Rect is a bounding box in viewport coordinates, in pixels.
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Bottom returns the bottom edge of the box.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Right returns the right edge of the box.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  float64
	Height float64
}
