package anim

import "math"

// Lerp steps current toward target by at most speed and never overshoots.
func Lerp(current, target, speed int) int {
	diff := target - current
	if diff > speed {
		return current + speed
	}
	if diff < -speed {
		return current - speed
	}
	return target
}

// Clampi bounds v to [lo, hi].
func Clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EaseInOut maps progress 0..100 through a half-cosine curve.
func EaseInOut(progress int) int {
	progress = Clampi(progress, 0, 100)
	return 50 - int(math.Cos(float64(progress)*math.Pi/100)*50)
}

// EaseOut maps progress 0..100 through an inverted quadratic.
func EaseOut(progress int) int {
	progress = Clampi(progress, 0, 100)
	return 100 - ((100-progress)*(100-progress))/100
}
