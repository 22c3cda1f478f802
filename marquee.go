// Package marquee renders an ordered sequence of items as an infinitely
// looping horizontal strip. The item sequence is duplicated until it covers
// the viewport, a normalized progress value slides the strip left over a
// configurable loop duration, and the animation pauses automatically while
// the component is scrolled out of view or the hosting document is hidden.
//
// The marquee does not draw anything itself. It consumes five host
// capabilities (frame scheduling, document visibility, resize and scroll
// notification, and element measurement - see the host package) and produces
// Strip layouts that the host renders. Native engine bindings are available
// via Native; tests substitute fakes.
package marquee

import (
	"sync"

	"github.com/Pvlcrp/marquee/host"
)

// Marquee is a single mounted carousel instance. All animation and layout
// state is owned by the instance and released by Stop; instances share
// nothing with each other.
//
// Start, Stop, Reconfigure, SetItems, WithAttr and the host callbacks must
// run on the host's event goroutine; Playing reports that goroutine's
// scheduling state and belongs there too. Strip and Progress snapshot
// their inputs under a lock and are safe to call from anywhere.
type Marquee struct {
	caps host.Capabilities

	driver *driver
	gate   *gate

	// removeFns releases the listeners acquired by Start, in order.
	removeFns []func()
	started   bool

	// mu guards everything Strip and Progress read (config, items, attrs,
	// sizes, copies, progress) against concurrent snapshot reads.
	mu       sync.RWMutex
	cfg      Config
	items    []Item
	attrs    map[string]string
	sizes    []host.Size
	copies   int
	progress float64
}

// New creates a marquee for the given host capabilities, configuration and
// items. The marquee stays idle until Start.
func New(caps host.Capabilities, cfg Config, items ...Item) *Marquee {
	m := &Marquee{
		caps:   caps,
		cfg:    cfg.normalized(),
		items:  items,
		copies: defaultCopies,
	}
	m.driver = newDriver(caps.Scheduler, m.cfg, m.setProgress)
	m.gate = newGate(caps, m.cfg, m.driver)
	return m
}

// WithAttr attaches a pass-through attribute forwarded verbatim to the root
// rendered element (class names, test ids, and the like).
func (m *Marquee) WithAttr(key, value string) *Marquee {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Copy-on-write so a Strip snapshot taken earlier stays consistent.
	attrs := make(map[string]string, len(m.attrs)+1)
	for k, v := range m.attrs {
		attrs[k] = v
	}
	attrs[key] = value
	m.attrs = attrs
	return m
}

// Start acquires all resources: measures the items, computes the copy
// count, registers the resize, scroll and visibility listeners, and
// schedules the first frame callback. Calling Start on a started marquee is
// a no-op.
func (m *Marquee) Start() {
	if m.started {
		return
	}
	m.started = true

	m.remeasure()

	m.removeFns = append(m.removeFns,
		m.caps.Window.OnResize(m.handleResize),
		m.caps.Window.OnScroll(m.gate.handleScroll),
		m.caps.Document.OnVisibilityChange(m.gate.handleVisibility),
	)

	m.driver.play()
}

// Stop releases everything Start acquired: the pending frame callback and
// every registered listener. The last published progress is retained, so a
// later Start resumes from the same offset. Calling Stop on a stopped
// marquee is a no-op.
func (m *Marquee) Stop() {
	if !m.started {
		return
	}
	m.started = false

	m.driver.pause()
	for _, remove := range m.removeFns {
		remove()
	}
	m.removeFns = nil
}

// Reconfigure swaps the configuration. A started marquee is torn down and
// re-acquired so listeners and timing pick up the new values atomically.
func (m *Marquee) Reconfigure(cfg Config) {
	wasStarted := m.started
	if wasStarted {
		m.Stop()
	}

	normalized := cfg.normalized()
	d := newDriver(m.caps.Scheduler, normalized, m.setProgress)

	m.mu.Lock()
	m.cfg = normalized
	d.progress = m.progress
	m.mu.Unlock()

	m.driver = d
	m.gate = newGate(m.caps, normalized, d)

	if wasStarted {
		m.Start()
	}
}

// SetItems replaces the item sequence and re-measures.
func (m *Marquee) SetItems(items ...Item) {
	m.mu.Lock()
	m.items = items
	m.mu.Unlock()

	m.remeasure()
}

// Strip returns the current layout snapshot for the host to render.
func (m *Marquee) Strip() Strip {
	m.mu.RLock()
	items := m.items
	sizes := m.sizes
	copies := m.copies
	progress := m.progress
	easing := m.cfg.Easing
	attrs := m.attrs
	m.mu.RUnlock()

	return buildStrip(items, sizes, copies, progress, easing, attrs)
}

// Progress returns the last published progress in [0,1].
func (m *Marquee) Progress() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.progress
}

// Playing reports whether the animation driver has a frame callback pending.
func (m *Marquee) Playing() bool {
	return m.driver.playing()
}

// Config returns the active configuration.
func (m *Marquee) Config() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg
}

// handleResize re-reads the item boxes and recomputes the copy count for
// the new viewport width.
func (m *Marquee) handleResize() {
	m.remeasure()
}

// remeasure captures the item dimensions and derives the copy count.
// An unattached surface leaves the sizes nil and falls back to the default
// copy count; the strip then renders with auto sizing.
func (m *Marquee) remeasure() {
	m.mu.RLock()
	n := len(m.items)
	m.mu.RUnlock()

	sizes := measureItems(m.caps.Surface, n)
	copies := copiesFor(stripWidth(sizes), m.caps.Window.Size().Width)

	m.mu.Lock()
	m.sizes = sizes
	m.copies = copies
	m.mu.Unlock()
}

func (m *Marquee) setProgress(progress float64) {
	m.mu.Lock()
	m.progress = progress
	m.mu.Unlock()
}
