package anim

import "time"

// AccelSample is one accelerometer reading in milli-g per axis. Gravity
// contributes ~1000 on one axis, so resting magnitude² is ~1000000.
type AccelSample struct {
	X, Y, Z int32
}

const (
	// A vigorous shake clears 4000000; counting in squared space avoids
	// the sqrt.
	shakeThresholdSq = 4000000
	shakeCooldown    = 1500 * time.Millisecond
)

// ShakeDetector turns raw accelerometer batches into discrete shake
// events with a cooldown so one gesture fires once.
type ShakeDetector struct {
	last time.Time
}

// Detect reports whether the batch contains a vigorous shake. At most one
// detection per cooldown window.
func (d *ShakeDetector) Detect(now time.Time, samples []AccelSample) bool {
	if now.Sub(d.last) < shakeCooldown {
		return false
	}
	for _, s := range samples {
		x, y, z := int64(s.X), int64(s.Y), int64(s.Z)
		if x*x+y*y+z*z > shakeThresholdSq {
			d.last = now
			return true
		}
	}
	return false
}
