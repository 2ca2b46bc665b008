package anim

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailypush/watchface-go/internal/battery"
)

type fakeFace struct {
	updates  int
	draws    int
	level    int
	charging bool
	shaken   int
	interval time.Duration
}

func (f *fakeFace) Name() string                         { return "fake" }
func (f *fakeFace) Battery(level int, charging bool)     { f.level, f.charging = level, charging }
func (f *fakeFace) Interval(level int) time.Duration     { return f.interval }
func (f *fakeFace) Update(now time.Time, frame int)      { f.updates++ }
func (f *fakeFace) Draw(dc *gg.Context)                  { f.draws++ }
func (f *fakeFace) Shake()                               { f.shaken++ }

func TestRunnerStep(t *testing.T) {
	face := &fakeFace{interval: 80 * time.Millisecond}
	src := battery.NewSimSource(15)
	sinks := 0
	r := NewRunner(face, src, 32, 32, func(img image.Image) {
		require.NotNil(t, img)
		sinks++
	})

	d := r.Step(time.Now())
	assert.Equal(t, 80*time.Millisecond, d)
	assert.Equal(t, 1, face.updates)
	assert.Equal(t, 1, face.draws)
	assert.Equal(t, 1, sinks)
	assert.Equal(t, 1, r.Frame())
	assert.Equal(t, 15, face.level)

	// Battery is only pushed to the face when it changes.
	src.SetLevel(15)
	r.Step(time.Now())
	assert.Equal(t, 2, r.Frame())
	src.SetCharging(true)
	r.Step(time.Now())
	assert.True(t, face.charging)
}

func TestRunnerShake(t *testing.T) {
	face := &fakeFace{interval: time.Millisecond}
	r := NewRunner(face, battery.NewSimSource(100), 8, 8, nil)
	r.Shake()
	r.Shake()
	assert.Equal(t, 2, face.shaken)
}

func TestRunnerSetFace(t *testing.T) {
	a := &fakeFace{interval: time.Millisecond}
	b := &fakeFace{interval: time.Millisecond}
	src := battery.NewSimSource(42)
	r := NewRunner(a, src, 8, 8, nil)
	r.Step(time.Now())
	require.Equal(t, 1, r.Frame())

	r.SetFace(b)
	assert.Equal(t, 0, r.Frame())
	assert.Equal(t, 42, b.level)

	r.Step(time.Now())
	assert.Equal(t, 1, b.updates)
	assert.Equal(t, 1, a.updates)
}

type failingSource struct {
	reads int
}

func (s *failingSource) Read() (battery.State, error) {
	s.reads++
	if s.reads == 1 {
		return battery.State{Level: 55}, nil
	}
	return battery.State{}, errors.New("supply read failed")
}

func TestRunnerKeepsLevelWhenReadFails(t *testing.T) {
	face := &fakeFace{interval: time.Millisecond}
	r := NewRunner(face, &failingSource{}, 8, 8, nil)

	r.Step(time.Now())
	require.Equal(t, 55, face.level)

	// Later reads error out; the loop keeps ticking at the last level.
	r.Step(time.Now())
	r.Step(time.Now())
	assert.Equal(t, 3, r.Frame())
	assert.Equal(t, 3, face.updates)
	assert.Equal(t, 55, face.level)
}

func TestRunnerRunStopsOnCancel(t *testing.T) {
	face := &fakeFace{interval: time.Millisecond}
	r := NewRunner(face, battery.NewSimSource(100), 8, 8, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("runner kept ticking after cancel")
	}
	assert.Greater(t, r.Frame(), 0)
}

func TestRunnerAccel(t *testing.T) {
	face := &fakeFace{interval: time.Millisecond}
	r := NewRunner(face, battery.NewSimSource(100), 8, 8, nil)

	now := time.Now()
	vigorous := []AccelSample{{X: 2500, Y: 0, Z: 0}}
	gentle := []AccelSample{{X: 0, Y: 0, Z: 1000}}

	r.Accel(now, gentle)
	assert.Equal(t, 0, face.shaken)

	r.Accel(now, vigorous)
	assert.Equal(t, 1, face.shaken)

	// Cooldown swallows the immediate repeat.
	r.Accel(now.Add(100*time.Millisecond), vigorous)
	assert.Equal(t, 1, face.shaken)

	r.Accel(now.Add(2*time.Second), vigorous)
	assert.Equal(t, 2, face.shaken)
}

func TestShakeDetector(t *testing.T) {
	var d ShakeDetector
	now := time.Now()

	assert.False(t, d.Detect(now, nil))
	assert.False(t, d.Detect(now, []AccelSample{{X: 1000, Y: 1000, Z: 1000}}))
	assert.True(t, d.Detect(now, []AccelSample{{X: 0, Y: 0, Z: -2100}}))
	assert.False(t, d.Detect(now.Add(time.Second), []AccelSample{{X: 2500}}))
	assert.True(t, d.Detect(now.Add(2*time.Second), []AccelSample{{X: 2500}}))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 4, Lerp(0, 10, 4))
	assert.Equal(t, 10, Lerp(8, 10, 4))
	assert.Equal(t, 6, Lerp(10, 0, 4))
	assert.Equal(t, -3, Lerp(0, -10, 3))
	assert.Equal(t, 7, Lerp(7, 7, 5))
}

func TestClampi(t *testing.T) {
	assert.Equal(t, 5, Clampi(3, 5, 9))
	assert.Equal(t, 9, Clampi(11, 5, 9))
	assert.Equal(t, 7, Clampi(7, 5, 9))
}

func TestEasing(t *testing.T) {
	assert.Equal(t, 0, EaseInOut(0))
	assert.Equal(t, 50, EaseInOut(50))
	assert.Equal(t, 100, EaseInOut(100))
	assert.Equal(t, 0, EaseInOut(-10))
	assert.Equal(t, 100, EaseInOut(200))

	assert.Equal(t, 0, EaseOut(0))
	assert.Equal(t, 75, EaseOut(50))
	assert.Equal(t, 100, EaseOut(100))

	// Both curves are monotonic.
	for p := 1; p <= 100; p++ {
		assert.GreaterOrEqual(t, EaseInOut(p), EaseInOut(p-1))
		assert.GreaterOrEqual(t, EaseOut(p), EaseOut(p-1))
	}
}
