// Package anim drives a watchface: a fixed-tick loop that updates the
// face's sprite state, redraws its canvas and hands the frame to a sink.
// The tick interval is asked of the face every frame so low battery can
// throttle the frame rate.
package anim

import (
	"context"
	"image"
	"log"
	"sync"
	"time"

	"github.com/fogleman/gg"
	"github.com/rcrowley/go-metrics"

	"github.com/dailypush/watchface-go/internal/battery"
)

// Face is a self-contained watchface scene.
type Face interface {
	Name() string
	// Battery reports the current charge state. Called before Update
	// whenever the level or charging flag changes.
	Battery(level int, charging bool)
	// Interval returns the delay before the next frame at the given
	// battery level.
	Interval(level int) time.Duration
	Update(now time.Time, frame int)
	Draw(dc *gg.Context)
}

// Shakeable faces react to a wrist shake (watering the garden, knocking
// monkeys off their vines).
type Shakeable interface {
	Shake()
}

const metricsLogEvery = 500

// Runner owns the frame loop for one face.
type Runner struct {
	mu    sync.Mutex
	face  Face
	src   battery.Source
	sink  func(image.Image)
	dc    *gg.Context
	histo metrics.Histogram

	det ShakeDetector

	frame    int
	level    int
	charging bool
}

// NewRunner builds a runner drawing w x h frames. sink receives the
// rendered frame after every tick; the image is reused, so sinks that
// retain it must copy.
func NewRunner(face Face, src battery.Source, w, h int, sink func(image.Image)) *Runner {
	return &Runner{
		face:  face,
		src:   src,
		sink:  sink,
		dc:    gg.NewContext(w, h),
		level: 100,
		histo: metrics.GetOrRegisterHistogram(
			"frame.duration.us", metrics.DefaultRegistry,
			metrics.NewExpDecaySample(1028, 0.015)),
	}
}

// Frame counts completed ticks.
func (r *Runner) Frame() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frame
}

// Shake forwards a shake event to the face if it cares.
func (r *Runner) Shake() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.face.(Shakeable); ok {
		s.Shake()
	}
}

// Accel feeds raw accelerometer samples. A vigorous enough shake,
// as judged by the detector, fires the face's Shake handler.
func (r *Runner) Accel(now time.Time, samples []AccelSample) {
	if !r.det.Detect(now, samples) {
		return
	}
	r.Shake()
}

// SetFace swaps the running face and restarts the frame counter. The
// new face is told the current battery state before its first tick.
func (r *Runner) SetFace(f Face) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.face = f
	r.frame = 0
	f.Battery(r.level, r.charging)
}

// Step runs a single tick and returns the delay until the next one.
func (r *Runner) Step(now time.Time) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := time.Now()
	if st, err := r.src.Read(); err == nil {
		if st.Level != r.level || st.Charging != r.charging {
			r.level, r.charging = st.Level, st.Charging
			r.face.Battery(r.level, r.charging)
		}
	}
	// A failed battery read keeps the last known level; the loop never
	// stops for it.

	r.frame++
	r.face.Update(now, r.frame)
	r.face.Draw(r.dc)
	if r.sink != nil {
		r.sink(r.dc.Image())
	}

	r.histo.Update(time.Since(start).Microseconds())
	if r.frame%metricsLogEvery == 0 {
		s := r.histo.Snapshot()
		log.Printf("%s: frame %d, draw us p50=%.0f p90=%.0f max=%d",
			r.face.Name(), r.frame, s.Percentile(0.5), s.Percentile(0.9), s.Max())
	}

	return r.face.Interval(r.level)
}

// Run ticks the face until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	t := time.NewTimer(0)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			t.Reset(r.Step(now))
		}
	}
}
