package marquee

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Pvlcrp/marquee/host"
)

func testGate(t *testing.T, cfg Config) (*gate, *fakeEnv) {
	t.Helper()

	env := newFakeEnv()
	d := newDriver(env.sched, cfg.normalized(), nil)
	d.clock = (&fakeClock{now: time.UnixMilli(0)}).Now
	return newGate(env.caps(), cfg.normalized(), d), env
}

func TestGateViewportIntersection(t *testing.T) {
	tests := []struct {
		name         string
		box          host.Rect
		offsetTop    float64
		offsetBottom float64
		viewportH    float64
		want         bool
	}{
		{
			name:      "fully visible",
			box:       host.Rect{Top: 100, Height: 80},
			viewportH: 800,
			want:      true,
		},
		{
			name:      "scrolled above viewport",
			box:       host.Rect{Top: -50, Height: 40},
			viewportH: 800,
			want:      false,
		},
		{
			name:      "partially above, still intersecting",
			box:       host.Rect{Top: -50, Height: 80},
			viewportH: 800,
			want:      true,
		},
		{
			name:      "below viewport",
			box:       host.Rect{Top: 900, Height: 80},
			viewportH: 800,
			want:      false,
		},
		{
			name:      "top offset pushes box out",
			box:       host.Rect{Top: -50, Height: 80},
			offsetTop: 40,
			viewportH: 800,
			want:      false,
		},
		{
			name:         "bottom offset pushes box out",
			box:          host.Rect{Top: 780, Height: 80},
			offsetBottom: 30,
			viewportH:    800,
			want:         false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.OffsetTop = tt.offsetTop
			cfg.OffsetBottom = tt.offsetBottom

			g, env := testGate(t, cfg)
			env.surface.box = tt.box
			env.window.size.Height = tt.viewportH

			assert.Equal(t, tt.want, g.inViewport())
		})
	}
}

func TestGateUnattachedSurfaceIsOutOfView(t *testing.T) {
	g, env := testGate(t, DefaultConfig())
	env.surface.attached = false

	assert.False(t, g.inViewport())
}

func TestGateScrollPausesAndResumes(t *testing.T) {
	g, env := testGate(t, DefaultConfig())
	g.driver.play()

	env.surface.box = host.Rect{Top: -50, Height: 40}
	g.handleScroll()
	assert.False(t, g.driver.playing(), "out of viewport must pause")

	env.surface.box = host.Rect{Top: 100, Height: 80}
	g.handleScroll()
	assert.True(t, g.driver.playing(), "back in viewport must resume")
}

func TestGateHiddenDocumentPauses(t *testing.T) {
	g, env := testGate(t, DefaultConfig())
	g.driver.play()

	env.doc.hidden = true
	g.handleVisibility()
	assert.False(t, g.driver.playing())
}

func TestGateVisibleResumeRechecksViewport(t *testing.T) {
	g, env := testGate(t, DefaultConfig())
	g.driver.play()

	env.doc.hidden = true
	g.handleVisibility()

	// Document becomes visible while the component is scrolled out of view:
	// the gate must not blindly resume.
	env.doc.hidden = false
	env.surface.box = host.Rect{Top: -50, Height: 40}
	g.handleVisibility()
	assert.False(t, g.driver.playing())

	env.surface.box = host.Rect{Top: 100, Height: 80}
	g.handleVisibility()
	assert.True(t, g.driver.playing())
}

func TestGateHandlersIdempotent(t *testing.T) {
	g, env := testGate(t, DefaultConfig())
	g.driver.play()
	requests := env.sched.requests

	// In viewport already: repeated scroll events must not double-schedule.
	g.handleScroll()
	g.handleScroll()
	assert.Equal(t, requests, env.sched.requests)
	assert.Equal(t, 1, env.sched.pendingCount())
}
