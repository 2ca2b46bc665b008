package faces

import (
	"math/rand"
	"time"

	"github.com/fogleman/gg"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/dailypush/watchface-go/internal/control"
)

// A minimal night scene: comets drifting across a black sky over a
// field of rising sparks, with a noise-driven shimmer along the ground.

const (
	maxDrifters      = 4
	maxSparks        = 8
	drifterInterval  = 50 * time.Millisecond
	sparkSpawnChance = 2
)

type drifterObj struct {
	x, y      int
	direction int
	speed     int
}

type spark struct {
	x, y   int
	size   int
	speed  int
	active bool
}

type Drifter struct {
	base
	ctrl  *control.Control
	rng   *rand.Rand
	noise opensimplex.Noise

	objects [maxDrifters]drifterObj
	sparks  [maxSparks]spark
	phase   int
}

func NewDrifter(ctrl *control.Control) *Drifter {
	for name, hex := range map[string]string{
		"drifter.bg":    "000000",
		"drifter.body":  "ffffff",
		"drifter.trail": "aaaaaa",
		"drifter.spark": "ffffff",
	} {
		if ctrl.GetColorHex(name) == "" {
			ctrl.SetColorHex(name, hex)
		}
	}

	d := &Drifter{
		base:  base{level: 100},
		ctrl:  ctrl,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		noise: opensimplex.New(time.Now().UnixNano()),
	}
	for i := range d.objects {
		d.respawn(&d.objects[i])
	}
	return d
}

func (d *Drifter) Name() string { return "drifter" }

func (d *Drifter) randRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + d.rng.Intn(max-min+1)
}

func (d *Drifter) respawn(o *drifterObj) {
	o.y = d.randRange(30, 130)
	o.direction = d.randRange(0, 1)*2 - 1
	o.speed = d.randRange(1, 3)
	if o.direction == 1 {
		o.x = -10
	} else {
		o.x = W + 10
	}
}

func (d *Drifter) Interval(level int) time.Duration {
	return throttle(drifterInterval, level, d.charging)
}

func (d *Drifter) Update(now time.Time, frame int) {
	d.now = now
	d.phase = (d.phase + 200) % angleMax

	t := float64(frame) / 40
	for i := range d.objects {
		o := &d.objects[i]
		o.x += o.direction * o.speed
		// Noise keeps each comet on its own gently wandering track.
		o.y += int(d.noise.Eval2(float64(i)*10, t) * 2)
		if (o.direction == 1 && o.x > W+10) || (o.direction == -1 && o.x < -10) {
			d.respawn(o)
		}
	}

	for i := range d.sparks {
		p := &d.sparks[i]
		if p.active {
			p.y -= p.speed
			if d.randRange(0, 2) == 0 {
				p.x += d.randRange(-1, 1)
			}
			if p.y < 0 {
				p.active = false
			}
			continue
		}
		if d.randRange(0, 100) < sparkSpawnChance {
			*p = spark{
				x:      d.randRange(10, W-10),
				y:      H,
				size:   d.randRange(1, 3),
				speed:  d.randRange(1, 3),
				active: true,
			}
		}
	}
}

func (d *Drifter) Draw(dc *gg.Context) {
	dc.SetColor(d.ctrl.GetColor("drifter.bg"))
	dc.Clear()

	// Shimmer along the bottom edge.
	body := d.ctrl.GetColor("drifter.body")
	for x := 20; x < W-20; x += 26 {
		offset := d.noise.Eval2(float64(x)/40, float64(d.phase)/angleMax) * 10
		strokeLine(dc, body, 2, float64(x), 160, float64(x)+offset, 140)
	}

	sparkCol := d.ctrl.GetColor("drifter.spark")
	for i := range d.sparks {
		p := &d.sparks[i]
		if !p.active {
			continue
		}
		dc.SetColor(sparkCol)
		dc.SetLineWidth(1)
		dc.DrawCircle(float64(p.x), float64(p.y), float64(p.size))
		dc.Stroke()
	}

	trail := d.ctrl.GetColor("drifter.trail")
	for i := range d.objects {
		o := &d.objects[i]
		fillCircle(dc, body, float64(o.x), float64(o.y), 5)
		strokeLine(dc, trail, 1,
			float64(o.x), float64(o.y), float64(o.x-o.direction*10), float64(o.y))
	}

	drawClock(dc, d.now, 64, "ffffff")
	drawDate(dc, d.now, 92, "ffffff", "Mon, Jan 02")
	drawBatteryIcon(dc, d.level, d.charging, "ffffff")
}
