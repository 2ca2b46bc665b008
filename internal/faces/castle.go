package faces

import (
	"math/rand"
	"time"

	"github.com/fogleman/gg"

	"github.com/dailypush/watchface-go/internal/battery"
	"github.com/dailypush/watchface-go/internal/control"
)

// A keep with two towers under a starred night sky, patrolled by two
// knights that bounce between the screen edges.

const (
	castleBaseY       = 138
	castleGroundTop   = 138
	castleSkyHeight   = 55
	towerWidth        = 18
	towerHeight       = 70
	keepHeight        = 50
	battlementHeight  = 8
	knightY           = castleGroundTop + 10
	castleStars       = 8
	castleInterval    = 80 * time.Millisecond
	castleLowInterval = 150 * time.Millisecond
)

type knight struct {
	x        int
	dir      int
	legPhase int
}

type Castle struct {
	base
	ctrl    *control.Control
	knights [2]knight
	starsX  [castleStars]int
}

var castleStarY = [castleStars]float64{8, 15, 12, 20, 10, 18, 25, 14}

func NewCastle(ctrl *control.Control) *Castle {
	for name, hex := range map[string]string{
		"castle.sky":     "000055",
		"castle.ground":  "005500",
		"castle.wall":    "aaaaaa",
		"castle.outline": "555555",
		"castle.gate":    "555555",
		"castle.armor":   "ffaa00",
		"castle.helmet":  "aaaaaa",
		"castle.shield":  "ff0000",
	} {
		if ctrl.GetColorHex(name) == "" {
			ctrl.SetColorHex(name, hex)
		}
	}

	c := &Castle{
		base: base{level: 100},
		ctrl: ctrl,
		knights: [2]knight{
			{x: 10, dir: 1, legPhase: 0},
			{x: W - 25, dir: -1, legPhase: 4},
		},
	}
	// Fixed seed keeps the star field identical every launch.
	rng := rand.New(rand.NewSource(42))
	for i := range c.starsX {
		c.starsX[i] = rng.Intn(W-10) + 5
	}
	return c
}

func (c *Castle) Name() string { return "castle" }

func (c *Castle) Interval(level int) time.Duration {
	if level <= battery.LowThreshold {
		return castleLowInterval
	}
	return castleInterval
}

func (c *Castle) Update(now time.Time, frame int) {
	c.now = now
	for i := range c.knights {
		k := &c.knights[i]
		k.x += k.dir
		if k.x <= 5 {
			k.x = 5
			k.dir = 1
		} else if k.x >= W-20 {
			k.x = W - 20
			k.dir = -1
		}
		k.legPhase = (k.legPhase + 1) % 8
	}
}

func (c *Castle) Draw(dc *gg.Context) {
	c.drawSky(dc)
	fillRect(dc, c.ctrl.GetColor("castle.ground"), 0, castleGroundTop, W, H-castleGroundTop)

	c.drawTower(dc, W/2-30, castleBaseY, towerHeight)
	c.drawTower(dc, W/2+30, castleBaseY, towerHeight)
	c.drawKeep(dc)

	for i := range c.knights {
		c.drawKnight(dc, &c.knights[i])
	}

	drawClock(dc, c.now, 20, "ffffff")
	drawDate(dc, c.now, 44, "ffffff", "Mon, Jan 02")
	drawBatteryIcon(dc, c.level, c.charging, "ffffff")
}

func (c *Castle) drawSky(dc *gg.Context) {
	fillRect(dc, c.ctrl.GetColor("castle.sky"), 0, 0, W, castleSkyHeight+20)
	dc.SetHexColor("ffffff")
	for i := 0; i < castleStars; i++ {
		x, y := float64(c.starsX[i]), castleStarY[i]
		dc.DrawRectangle(x, y, 1, 1)
		dc.DrawRectangle(x-1, y, 1, 1)
		dc.DrawRectangle(x+1, y, 1, 1)
		dc.DrawRectangle(x, y-1, 1, 1)
		dc.DrawRectangle(x, y+1, 1, 1)
	}
	dc.Fill()
}

func (c *Castle) drawTower(dc *gg.Context, centerX, baseY, height int) {
	wall := c.ctrl.GetColor("castle.wall")
	outline := c.ctrl.GetColor("castle.outline")
	half := towerWidth / 2
	x := float64(centerX - half)
	top := float64(baseY - height)

	fillRect(dc, wall, x, top, towerWidth, float64(height))
	strokeRect(dc, outline, x, top, towerWidth, float64(height))

	battlementY := top - battlementHeight
	for i := 0; i < 3; i++ {
		fillRect(dc, wall, x+2+float64(i*6), battlementY, 4, battlementHeight)
	}

	// Arrow-slit window.
	fillRect(dc, c.ctrl.GetColor("castle.gate"), float64(centerX-3), top+15, 6, 10)
}

func (c *Castle) drawKeep(dc *gg.Context) {
	wall := c.ctrl.GetColor("castle.wall")
	outline := c.ctrl.GetColor("castle.outline")
	gate := c.ctrl.GetColor("castle.gate")

	keepWidth := 80 - towerWidth*2
	keepX := float64(W/2 - keepWidth/2)
	keepTop := float64(castleBaseY - keepHeight)

	fillRect(dc, wall, keepX, keepTop, float64(keepWidth), keepHeight)
	strokeRect(dc, outline, keepX, keepTop, float64(keepWidth), keepHeight)

	battlementY := keepTop - battlementHeight
	for i := 0; i < 6; i++ {
		fillRect(dc, wall, keepX+3+float64(i*7), battlementY, 4, battlementHeight)
	}

	// Arched gate with portcullis bars.
	fillRect(dc, gate, W/2-8, castleBaseY-25, 16, 25)
	fillCircle(dc, gate, W/2, castleBaseY-25, 8)
	dc.SetHexColor("000000")
	dc.SetLineWidth(1)
	for i := 0; i < 3; i++ {
		gx := float64(W/2 - 5 + i*5)
		dc.DrawLine(gx, castleBaseY-22, gx, castleBaseY)
	}
	dc.Stroke()
}

func (c *Castle) drawKnight(dc *gg.Context, k *knight) {
	x, y := float64(k.x), float64(knightY)
	legOffset := 2.0
	if k.legPhase >= 4 {
		legOffset = -2
	}

	fillRect(dc, c.ctrl.GetColor("castle.armor"), x+2, y+6, 8, 8)
	fillCircle(dc, c.ctrl.GetColor("castle.helmet"), x+6, y+3, 4)

	// Visor slit.
	dc.SetHexColor("000000")
	dc.SetLineWidth(1)
	dc.DrawLine(x+4, y+3, x+8, y+3)
	dc.Stroke()

	legs := c.ctrl.GetColor("castle.outline")
	fillRect(dc, legs, x+2+legOffset, y+14, 3, 4)
	fillRect(dc, legs, x+7-legOffset, y+14, 3, 4)

	shield := c.ctrl.GetColor("castle.shield")
	if k.dir == 1 {
		fillRect(dc, shield, x, y+7, 3, 6)
	} else {
		fillRect(dc, shield, x+9, y+7, 3, 6)
	}

	dc.SetHexColor("ffffff")
	if k.dir == 1 {
		dc.DrawLine(x+10, y+5, x+15, y+2)
	} else {
		dc.DrawLine(x+2, y+5, x-3, y+2)
	}
	dc.Stroke()
}
