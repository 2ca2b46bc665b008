package faces

import (
	"math"
	"time"

	"github.com/fogleman/gg"

	"github.com/dailypush/watchface-go/internal/control"
)

// Layered ocean waves roll under a rayed sun. Each wave is a sine
// polyline with its own base line, amplitude and phase speed, so the
// three layers drift out of step.

const (
	beachSkyEndY    = 55
	beachSandStartY = 140

	beachSunX      = 115
	beachSunY      = 28
	beachSunR      = 14
	beachSunRays   = 8
	beachSunRayLen = 10

	beachInterval = 50 * time.Millisecond
)

type wave struct {
	baseY     int
	phase     int
	amplitude int
	speed     int
	color     string
}

type Beach struct {
	base
	ctrl  *control.Control
	waves [3]wave
}

func NewBeach(ctrl *control.Control) *Beach {
	for name, hex := range map[string]string{
		"beach.sky":       "55aaff",
		"beach.skyLight":  "aaffff",
		"beach.sunGlow":   "ffaa55",
		"beach.sun":       "ffff00",
		"beach.sunRays":   "ff5500",
		"beach.oceanTop":  "00aaff",
		"beach.oceanMid":  "0000ff",
		"beach.oceanDeep": "0055aa",
		"beach.sand":      "d2b48c",
		"beach.sandDark":  "b4966e",
		"beach.waveFront": "55aaff",
		"beach.waveMid":   "00aaff",
		"beach.waveBack":  "0055aa",
	} {
		if ctrl.GetColorHex(name) == "" {
			ctrl.SetColorHex(name, hex)
		}
	}
	return &Beach{
		base: base{level: 100},
		ctrl: ctrl,
		waves: [3]wave{
			// Front wave: closest, fastest, lightest.
			{baseY: 128, phase: 0, amplitude: 5, speed: 450, color: "beach.waveFront"},
			{baseY: 115, phase: angleMax / 3, amplitude: 6, speed: 320, color: "beach.waveMid"},
			{baseY: 102, phase: angleMax * 2 / 3, amplitude: 4, speed: 220, color: "beach.waveBack"},
		},
	}
}

func (b *Beach) Name() string { return "beach" }

func (b *Beach) Interval(level int) time.Duration {
	return throttle(beachInterval, level, b.charging)
}

func (b *Beach) Update(now time.Time, frame int) {
	b.now = now
	for i := range b.waves {
		b.waves[i].phase = (b.waves[i].phase + b.waves[i].speed) % angleMax
	}
}

func (b *Beach) Draw(dc *gg.Context) {
	b.drawSky(dc)
	b.drawOcean(dc)
	for i := len(b.waves) - 1; i >= 0; i-- {
		b.drawWave(dc, &b.waves[i])
	}
	b.drawSand(dc)

	drawDate(dc, b.now, 49, "ffffff", "Mon, Jan 02")
	drawClock(dc, b.now, 74, "ffffff")
	drawBatteryIcon(dc, b.level, b.charging, "ffffff")
}

func (b *Beach) drawSky(dc *gg.Context) {
	fillRect(dc, b.ctrl.GetColor("beach.sky"), 0, 0, W, beachSkyEndY)
	fillRect(dc, b.ctrl.GetColor("beach.skyLight"), 0, beachSkyEndY-15, W, 15)

	// Sun with glow and rays.
	fillCircle(dc, b.ctrl.GetColor("beach.sunGlow"), beachSunX, beachSunY, beachSunR+3)
	fillCircle(dc, b.ctrl.GetColor("beach.sun"), beachSunX, beachSunY, beachSunR)

	dc.SetColor(b.ctrl.GetColor("beach.sunRays"))
	dc.SetLineWidth(2)
	for i := 0; i < beachSunRays; i++ {
		a := rad(i * angleMax / beachSunRays)
		inner := float64(beachSunR + 4)
		outer := float64(beachSunR + beachSunRayLen)
		dc.DrawLine(
			beachSunX+math.Sin(a)*inner, beachSunY-math.Cos(a)*inner,
			beachSunX+math.Sin(a)*outer, beachSunY-math.Cos(a)*outer)
	}
	dc.Stroke()
}

func (b *Beach) drawOcean(dc *gg.Context) {
	fillRect(dc, b.ctrl.GetColor("beach.oceanTop"), 0, beachSkyEndY, W, 20)
	fillRect(dc, b.ctrl.GetColor("beach.oceanMid"), 0, beachSkyEndY+20, W, 30)
	fillRect(dc, b.ctrl.GetColor("beach.oceanDeep"), 0, beachSkyEndY+50, W,
		beachSandStartY-beachSkyEndY-50)
}

func (b *Beach) drawWave(dc *gg.Context, w *wave) {
	dc.SetColor(b.ctrl.GetColor(w.color))
	dc.SetLineWidth(2)

	prevX := 0.0
	prevY := float64(w.baseY) + math.Sin(rad(w.phase))*float64(w.amplitude)
	for x := 6; x <= W; x += 6 {
		a := rad(w.phase + x*angleMax*2/W)
		y := float64(w.baseY) + math.Sin(a)*float64(w.amplitude)
		dc.DrawLine(prevX, prevY, float64(x), y)
		prevX, prevY = float64(x), y
	}
	dc.Stroke()
}

func (b *Beach) drawSand(dc *gg.Context) {
	fillRect(dc, b.ctrl.GetColor("beach.sand"), 0, beachSandStartY, W, H-beachSandStartY)

	dark := b.ctrl.GetColor("beach.sandDark")
	xs := []float64{10, 28, 45, 62, 85, 100, 120, 135, 15, 55, 90, 110}
	ys := []float64{4, 12, 8, 18, 6, 14, 10, 20, 22, 16, 25, 5}
	for i := range xs {
		fillCircle(dc, dark, xs[i], beachSandStartY+ys[i], 1)
	}
}
