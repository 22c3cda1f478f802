package ffi

import (
	"sync"
	"time"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/Pvlcrp/marquee/host"
)

// EventC matches the C struct layout for events from the engine.
type EventC struct {
	EventType uint8
	_         [7]byte // padding
	Data1     float64
	Data2     float64
}

// Host adapts the engine bindings to the capability interfaces consumed by
// the marquee. A single Host serves the whole process; the engine delivers
// all callbacks on its event thread, which is the marquee's single event
// context.
type Host struct {
	mu sync.Mutex

	// frames maps pending frame handles to their callbacks.
	frames map[uint64]func(now time.Time)

	// Listener registries. Keys are local ids handed back to remove funcs.
	nextListener int
	scrollFns    map[int]func()
	resizeFns    map[int]func()
	visFns       map[int]func()
}

var (
	activeHost *Host
	hostOnce   sync.Once

	frameTrampoline uintptr
	eventTrampoline uintptr
)

// Connect loads the engine library and returns the process-wide host.
func Connect() (*Host, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}

	hostOnce.Do(func() {
		activeHost = &Host{
			frames:    make(map[uint64]func(time.Time)),
			scrollFns: make(map[int]func()),
			resizeFns: make(map[int]func()),
			visFns:    make(map[int]func()),
		}
		frameTrampoline = purego.NewCallback(dispatchFrame)
		eventTrampoline = purego.NewCallback(dispatchEvent)
		fnSetEventCallback(eventTrampoline)
	})
	return activeHost, nil
}

// dispatchFrame is the C-to-Go trampoline for scheduled frame callbacks.
func dispatchFrame(handle uint64, nowMs uint64) uintptr {
	h := activeHost
	if h == nil {
		return 0
	}

	h.mu.Lock()
	fn := h.frames[handle]
	delete(h.frames, handle)
	h.mu.Unlock()

	if fn != nil {
		fn(time.UnixMilli(int64(nowMs)))
	}
	return 0
}

// dispatchEvent is the C-to-Go trampoline for engine events.
func dispatchEvent(eventPtr uintptr) uintptr {
	h := activeHost
	if h == nil || eventPtr == 0 {
		return 0
	}
	event := *(*EventC)(unsafe.Pointer(eventPtr))

	var fns []func()
	h.mu.Lock()
	switch EventType(event.EventType) {
	case EventScrolled:
		fns = collectListeners(h.scrollFns)
	case EventResized:
		fns = collectListeners(h.resizeFns)
	case EventVisibilityChanged:
		fns = collectListeners(h.visFns)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return 0
}

// collectListeners snapshots a registry so listeners can remove themselves
// while being invoked.
func collectListeners(reg map[int]func()) []func() {
	fns := make([]func(), 0, len(reg))
	for _, fn := range reg {
		fns = append(fns, fn)
	}
	return fns
}

// ============================================================================
// host.Scheduler
// ============================================================================

// Request schedules fn before the engine's next repaint.
func (h *Host) Request(fn func(now time.Time)) host.Handle {
	handle := fnRequestFrame(frameTrampoline)

	h.mu.Lock()
	h.frames[handle] = fn
	h.mu.Unlock()

	return host.Handle(handle)
}

// Cancel revokes a pending frame callback.
func (h *Host) Cancel(handle host.Handle) {
	if handle == 0 {
		return
	}

	h.mu.Lock()
	_, pending := h.frames[uint64(handle)]
	delete(h.frames, uint64(handle))
	h.mu.Unlock()

	if pending {
		fnCancelFrame(uint64(handle))
	}
}

// ============================================================================
// host.Document
// ============================================================================

// Hidden reports whether the engine window is hidden or suspended.
func (h *Host) Hidden() bool {
	return fnDocumentHidden() != 0
}

// OnVisibilityChange registers fn for visibility flips.
func (h *Host) OnVisibilityChange(fn func()) (remove func()) {
	return h.register(h.visFns, fn)
}

// ============================================================================
// host.Window
// ============================================================================

// Size returns the current viewport dimensions.
func (h *Host) Size() host.Size {
	var width, height float64
	if fnViewportSize(uintptr(unsafe.Pointer(&width)), uintptr(unsafe.Pointer(&height))) != 0 {
		return host.Size{}
	}
	return host.Size{Width: width, Height: height}
}

// OnResize registers fn for viewport size changes.
func (h *Host) OnResize(fn func()) (remove func()) {
	return h.register(h.resizeFns, fn)
}

// OnScroll registers fn for scroll events.
func (h *Host) OnScroll(fn func()) (remove func()) {
	return h.register(h.scrollFns, fn)
}

func (h *Host) register(reg map[int]func(), fn func()) (remove func()) {
	h.mu.Lock()
	h.nextListener++
	id := h.nextListener
	reg[id] = fn
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(reg, id)
		h.mu.Unlock()
	}
}

// ============================================================================
// host.Surface
// ============================================================================

// SurfaceRef measures one mounted container managed by the engine.
type SurfaceRef struct {
	host *Host
	id   uint32
}

// Surface returns a measurement handle for the engine surface with the
// given id.
func (h *Host) Surface(id uint32) *SurfaceRef {
	return &SurfaceRef{host: h, id: id}
}

// Bounds returns the container's bounding box, or false while the surface
// is not laid out yet.
func (s *SurfaceRef) Bounds() (host.Rect, bool) {
	var rect RectC
	if fnSurfaceBounds(s.id, uintptr(unsafe.Pointer(&rect))) != 0 {
		return host.Rect{}, false
	}
	return host.Rect{Top: rect.Top, Left: rect.Left, Width: rect.Width, Height: rect.Height}, true
}

// ItemSize returns the rendered box of the index-th original child.
func (s *SurfaceRef) ItemSize(index int) (host.Size, bool) {
	if index < 0 {
		return host.Size{}, false
	}
	var rect RectC
	if fnItemBounds(s.id, uint32(index), uintptr(unsafe.Pointer(&rect))) != 0 {
		return host.Size{}, false
	}
	return host.Size{Width: rect.Width, Height: rect.Height}, true
}
