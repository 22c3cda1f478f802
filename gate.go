package marquee

import "github.com/Pvlcrp/marquee/host"

// gate pauses and resumes the driver based on two independent triggers:
// document visibility and viewport intersection. Both route through the
// driver's idempotent play/pause, so overlapping triggers are last-write-wins
// with no double scheduling.
type gate struct {
	surface      host.Surface
	window       host.Window
	doc          host.Document
	offsetTop    float64
	offsetBottom float64
	driver       *driver
}

func newGate(caps host.Capabilities, cfg Config, d *driver) *gate {
	return &gate{
		surface:      caps.Surface,
		window:       caps.Window,
		doc:          caps.Document,
		offsetTop:    cfg.OffsetTop,
		offsetBottom: cfg.OffsetBottom,
		driver:       d,
	}
}

// inViewport reports whether the container box intersects the visible scroll
// area, adjusted by the configured offsets. An unattached surface counts as
// out of view.
func (g *gate) inViewport() bool {
	box, ok := g.surface.Bounds()
	if !ok {
		return false
	}
	viewportHeight := g.window.Size().Height
	return box.Top+box.Height-g.offsetTop > 0 && box.Top+g.offsetBottom < viewportHeight
}

// handleScroll runs on every scroll event: in viewport resumes, out of
// viewport pauses.
func (g *gate) handleScroll() {
	if g.inViewport() {
		g.driver.play()
	} else {
		g.driver.pause()
	}
}

// handleVisibility runs when the document visibility flips. A hidden
// document always pauses; becoming visible resumes only if the component is
// also intersecting the viewport.
func (g *gate) handleVisibility() {
	if g.doc.Hidden() {
		g.driver.pause()
		return
	}
	if g.inViewport() {
		g.driver.play()
	}
}
