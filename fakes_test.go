package marquee

import (
	"time"

	"github.com/Pvlcrp/marquee/host"
)

// fakeScheduler is a deterministic replacement for the host's frame
// scheduling primitive. Tests advance virtual time by calling step.
type fakeScheduler struct {
	next     host.Handle
	pending  map[host.Handle]func(time.Time)
	requests int
	cancels  int
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{pending: make(map[host.Handle]func(time.Time))}
}

func (s *fakeScheduler) Request(fn func(now time.Time)) host.Handle {
	s.requests++
	s.next++
	s.pending[s.next] = fn
	return s.next
}

func (s *fakeScheduler) Cancel(h host.Handle) {
	if _, ok := s.pending[h]; ok {
		s.cancels++
		delete(s.pending, h)
	}
}

// step fires every currently pending callback at the given virtual time.
// Callbacks scheduled during the step wait for the next step.
func (s *fakeScheduler) step(now time.Time) {
	fns := make([]func(time.Time), 0, len(s.pending))
	for h, fn := range s.pending {
		delete(s.pending, h)
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn(now)
	}
}

func (s *fakeScheduler) pendingCount() int {
	return len(s.pending)
}

// fakeClock provides a controllable time source for the driver.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// fakeDocument fakes document visibility and its change notification.
type fakeDocument struct {
	hidden    bool
	listeners []func()
	removed   int
}

func (d *fakeDocument) Hidden() bool {
	return d.hidden
}

func (d *fakeDocument) OnVisibilityChange(fn func()) (remove func()) {
	d.listeners = append(d.listeners, fn)
	i := len(d.listeners) - 1
	return func() {
		d.listeners[i] = nil
		d.removed++
	}
}

func (d *fakeDocument) fireVisibility() {
	for _, fn := range d.listeners {
		if fn != nil {
			fn()
		}
	}
}

// fakeWindow fakes viewport size plus resize and scroll notification.
type fakeWindow struct {
	size      host.Size
	resizeFns []func()
	scrollFns []func()
	removed   int
}

func (w *fakeWindow) Size() host.Size {
	return w.size
}

func (w *fakeWindow) OnResize(fn func()) (remove func()) {
	w.resizeFns = append(w.resizeFns, fn)
	i := len(w.resizeFns) - 1
	return func() {
		w.resizeFns[i] = nil
		w.removed++
	}
}

func (w *fakeWindow) OnScroll(fn func()) (remove func()) {
	w.scrollFns = append(w.scrollFns, fn)
	i := len(w.scrollFns) - 1
	return func() {
		w.scrollFns[i] = nil
		w.removed++
	}
}

func (w *fakeWindow) fireResize() {
	for _, fn := range w.resizeFns {
		if fn != nil {
			fn()
		}
	}
}

func (w *fakeWindow) fireScroll() {
	for _, fn := range w.scrollFns {
		if fn != nil {
			fn()
		}
	}
}

// fakeSurface fakes container and item measurement.
type fakeSurface struct {
	attached bool
	box      host.Rect
	sizes    []host.Size
}

func (s *fakeSurface) Bounds() (host.Rect, bool) {
	if !s.attached {
		return host.Rect{}, false
	}
	return s.box, true
}

func (s *fakeSurface) ItemSize(i int) (host.Size, bool) {
	if !s.attached || i < 0 || i >= len(s.sizes) {
		return host.Size{}, false
	}
	return s.sizes[i], true
}

// fakeEnv bundles one fake of each capability.
type fakeEnv struct {
	sched   *fakeScheduler
	doc     *fakeDocument
	window  *fakeWindow
	surface *fakeSurface
}

func newFakeEnv() *fakeEnv {
	return &fakeEnv{
		sched: newFakeScheduler(),
		doc:   &fakeDocument{},
		window: &fakeWindow{
			size: host.Size{Width: 450, Height: 800},
		},
		surface: &fakeSurface{
			attached: true,
			box:      host.Rect{Top: 100, Left: 0, Width: 450, Height: 80},
			sizes: []host.Size{
				{Width: 100, Height: 40},
				{Width: 150, Height: 60},
				{Width: 50, Height: 50},
			},
		},
	}
}

func (e *fakeEnv) caps() host.Capabilities {
	return host.Capabilities{
		Scheduler: e.sched,
		Document:  e.doc,
		Window:    e.window,
		Surface:   e.surface,
	}
}
