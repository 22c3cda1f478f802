package marquee

import (
	"time"

	"github.com/Pvlcrp/marquee/host"
)

// driver advances the normalized loop progress once per accepted display
// frame. It is a three-state machine (idle, running, paused) where "running"
// means a frame callback is pending on the scheduler: the pending handle is
// both the cancellation token and the running flag, so play and pause are
// idempotent by construction.
//
// All fields are mutated only from the host's single event goroutine.
type driver struct {
	sched         host.Scheduler
	totalTime     time.Duration
	frameInterval time.Duration

	// progress is the last published value in [0,1].
	progress float64

	// cycleStart anchors the current loop cycle. Zero means the next frame
	// callback re-anchors it, which is how a completed cycle restarts
	// without a visible pause.
	cycleStart time.Time

	// lastFrame gates the throttle. Zero means the next frame is accepted
	// regardless of the interval.
	lastFrame time.Time

	// pending is the handle of the most recently scheduled callback,
	// or zero when idle/paused.
	pending host.Handle

	// onProgress receives every published progress value.
	onProgress func(progress float64)

	// clock is time.Now outside of tests.
	clock func() time.Time
}

func newDriver(sched host.Scheduler, cfg Config, onProgress func(float64)) *driver {
	return &driver{
		sched:         sched,
		totalTime:     cfg.TotalTime,
		frameInterval: cfg.frameInterval(),
		onProgress:    onProgress,
		clock:         time.Now,
	}
}

// play schedules a new frame callback chain. Resuming from a pause
// recomputes a virtual cycle start so the animation continues from the
// paused offset instead of restarting. No-op while a callback is pending.
func (d *driver) play() {
	if d.pending != 0 {
		return
	}
	// Unconditional: an anchored cycle start left over from before the
	// pause would otherwise count the paused wall time as elapsed.
	elapsed := time.Duration(float64(d.totalTime) * d.progress)
	d.cycleStart = d.clock().Add(-elapsed)
	d.pending = d.sched.Request(d.frame)
}

// pause cancels the pending frame callback and retains the last published
// progress. No-op while idle or already paused.
func (d *driver) pause() {
	if d.pending == 0 {
		return
	}
	d.sched.Cancel(d.pending)
	d.pending = 0
}

// playing reports whether a frame callback is pending.
func (d *driver) playing() bool {
	return d.pending != 0
}

// frame is the scheduled callback. Each invocation schedules at most one
// successor, so progress updates for one driver are strictly sequential.
func (d *driver) frame(now time.Time) {
	d.pending = 0

	if d.cycleStart.IsZero() {
		d.cycleStart = now
	}

	// Throttle: bound the update rate independent of the host refresh rate
	// so perceived speed stays consistent across displays.
	if !d.lastFrame.IsZero() && now.Sub(d.lastFrame) < d.frameInterval {
		d.pending = d.sched.Request(d.frame)
		return
	}
	d.lastFrame = now

	t := float64(now.Sub(d.cycleStart)) / float64(d.totalTime)
	if t > 1 {
		t = 1
	}
	d.publish(t)

	if t >= 1 {
		// Cycle complete: re-anchor on the next callback and publish the
		// reset immediately so there is no out-of-range value in between.
		d.cycleStart = time.Time{}
		d.lastFrame = time.Time{}
		d.publish(0)
	}

	d.pending = d.sched.Request(d.frame)
}

func (d *driver) publish(progress float64) {
	d.progress = progress
	if d.onProgress != nil {
		d.onProgress(progress)
	}
}
