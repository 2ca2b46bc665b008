package faces

import (
	"encoding/json"
	"image/color"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"

	"github.com/dailypush/watchface-go/internal/control"
)

// A potted plant that grows when watered (shake the watch) and wilts
// when neglected. Plant state survives restarts via a JSON file; a
// fully dried-out plant is reborn as a seed.

const (
	gardenInterval = 50 * time.Millisecond

	waterMax           = 100
	waterPerShake      = 30
	waterDecayInterval = 1800 * time.Second
	waterDecayAmount   = 12

	waterThrivingMin = 70
	waterHealthyMin  = 40
	waterThirstyMin  = 20

	growthPerWatering = 8
	growthToNextStage = 100

	maxDrops = 5
)

type growthStage int

const (
	stageSeed growthStage = iota
	stageSprout
	stageSmall
	stageFull
	stageFlowering
)

type plantHealth int

const (
	healthThriving plantHealth = iota
	healthHealthy
	healthThirsty
	healthWilting
)

// plantState is what gets persisted between runs.
type plantState struct {
	Stage          growthStage `json:"stage"`
	WaterLevel     int         `json:"water_level"`
	GrowthProgress int         `json:"growth_progress"`
	LastWatered    time.Time   `json:"last_watered"`
	TotalWaters    int         `json:"total_waters"`
}

type waterDrop struct {
	x, y, velX, velY, size int
	active                 bool
}

type Garden struct {
	base
	ctrl *control.Control
	rng  *rand.Rand

	// StateFile overrides the default plant state location. Set it
	// before the first Update or Shake.
	StateFile string

	plant plantState
	drops [maxDrops]waterDrop

	swayPhase  int
	leafPhase  int
	wiltOffset int
	watering   bool
	waterFrame int
	growthAnim int

	lastDecayCheck time.Time
}

func defaultStateFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "watchface-go", "garden.json")
}

func NewGarden(ctrl *control.Control) *Garden {
	for name, hex := range map[string]string{
		"garden.sky":          "55aaff",
		"garden.pot":          "550000",
		"garden.potRim":       "ffaaaa",
		"garden.soil":         "aa5500",
		"garden.stem":         "00aa00",
		"garden.leaf":         "00ff00",
		"garden.stemWilt":     "aaaa00",
		"garden.leafWilt":     "ffaa00",
		"garden.flower1":      "ff0000",
		"garden.flower2":      "ff00ff",
		"garden.flower3":      "ff5500",
		"garden.flowerCenter": "ffff00",
		"garden.water":        "00ffff",
		"garden.seed":         "aa5500",
	} {
		if ctrl.GetColorHex(name) == "" {
			ctrl.SetColorHex(name, hex)
		}
	}

	g := &Garden{
		base:      base{level: 100},
		ctrl:      ctrl,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		StateFile: defaultStateFile(),
	}
	g.load()
	return g
}

func (g *Garden) Name() string { return "garden" }

func (g *Garden) Interval(level int) time.Duration {
	return throttle(gardenInterval, level, g.charging)
}

func (g *Garden) health() plantHealth {
	switch {
	case g.plant.WaterLevel >= waterThrivingMin:
		return healthThriving
	case g.plant.WaterLevel >= waterHealthyMin:
		return healthHealthy
	case g.plant.WaterLevel >= waterThirstyMin:
		return healthThirsty
	default:
		return healthWilting
	}
}

func (g *Garden) load() {
	b, err := os.ReadFile(g.StateFile)
	if err != nil {
		// Fresh pot.
		g.plant = plantState{
			Stage:       stageSeed,
			WaterLevel:  50,
			LastWatered: time.Now(),
		}
		return
	}
	if err := json.Unmarshal(b, &g.plant); err != nil {
		log.Printf("garden: corrupt state file, starting over: %v", err)
		g.plant = plantState{Stage: stageSeed, WaterLevel: 50, LastWatered: time.Now()}
		return
	}
	if g.plant.Stage < stageSeed || g.plant.Stage > stageFlowering {
		g.plant.Stage = stageSeed
	}
	if g.plant.WaterLevel > waterMax {
		g.plant.WaterLevel = waterMax
	}
	// Apply the decay that happened while we weren't running.
	if !g.plant.LastWatered.IsZero() {
		intervals := int(time.Since(g.plant.LastWatered) / waterDecayInterval)
		decay := intervals * waterDecayAmount
		if decay >= g.plant.WaterLevel {
			g.plant.WaterLevel = 0
		} else {
			g.plant.WaterLevel -= decay
		}
	}
}

func (g *Garden) save() {
	if err := os.MkdirAll(filepath.Dir(g.StateFile), 0o755); err != nil {
		log.Printf("garden: save failed: %v", err)
		return
	}
	b, err := json.MarshalIndent(g.plant, "", "  ")
	if err != nil {
		log.Printf("garden: save failed: %v", err)
		return
	}
	if err := os.WriteFile(g.StateFile, b, 0o644); err != nil {
		log.Printf("garden: save failed: %v", err)
	}
}

// rebirth resets a dried-out plant to a seed. Total waterings stick
// around as a memorial to past lives.
func (g *Garden) rebirth() {
	g.plant.Stage = stageSeed
	g.plant.WaterLevel = 30
	g.plant.GrowthProgress = 0
	g.plant.LastWatered = time.Now()
	log.Printf("garden: plant dried out, reborn as seed (lifetime waterings: %d)",
		g.plant.TotalWaters)
	g.save()
}

// Shake waters the plant.
func (g *Garden) Shake() {
	g.plant.WaterLevel += waterPerShake
	if g.plant.WaterLevel > waterMax {
		g.plant.WaterLevel = waterMax
	}
	g.plant.LastWatered = time.Now()
	g.plant.TotalWaters++

	if g.health() <= healthHealthy && g.plant.Stage < stageFlowering {
		g.plant.GrowthProgress += growthPerWatering
		if g.plant.GrowthProgress >= growthToNextStage {
			g.plant.GrowthProgress = 0
			g.plant.Stage++
			g.growthAnim = 20
			log.Printf("garden: grew to stage %d", g.plant.Stage)
		}
	}

	g.watering = true
	g.waterFrame = 0
	g.splash()
	g.save()
}

func (g *Garden) splash() {
	plantTop := H - 60 - int(g.plant.Stage)*12
	for i := range g.drops {
		g.drops[i] = waterDrop{
			x:      W/2 + g.rng.Intn(41) - 20,
			y:      plantTop,
			velX:   g.rng.Intn(5) - 2,
			velY:   -(g.rng.Intn(4) + 1),
			size:   g.rng.Intn(3) + 2,
			active: true,
		}
	}
}

func (g *Garden) Update(now time.Time, frame int) {
	g.now = now

	g.swayPhase = (g.swayPhase + 150) % angleMax
	g.leafPhase = (g.leafPhase + 200) % angleMax

	targetWilt := 0
	switch g.health() {
	case healthThirsty:
		targetWilt = 6
	case healthWilting:
		targetWilt = 14
	}
	if g.wiltOffset < targetWilt {
		g.wiltOffset++
	} else if g.wiltOffset > targetWilt {
		g.wiltOffset--
	}

	if g.growthAnim > 0 {
		g.growthAnim--
	}

	if g.watering {
		g.waterFrame++
		for i := range g.drops {
			d := &g.drops[i]
			if !d.active {
				continue
			}
			d.x += d.velX
			d.velY++ // gravity
			d.y += d.velY
			if d.y > H {
				d.active = false
			}
		}
		if g.waterFrame >= 20 {
			g.watering = false
		}
	}

	// Decay runs on a minute cadence to keep state writes rare.
	if now.Sub(g.lastDecayCheck) >= time.Minute {
		g.lastDecayCheck = now
		g.decay(now)
	}
}

func (g *Garden) decay(now time.Time) {
	if !g.plant.LastWatered.IsZero() {
		elapsed := now.Sub(g.plant.LastWatered)
		expected := waterMax - int(elapsed/waterDecayInterval)*waterDecayAmount
		if expected < 0 {
			expected = 0
		}
		if g.plant.WaterLevel > expected {
			g.plant.WaterLevel = expected
			g.save()
		}
	}
	if g.plant.WaterLevel == 0 && g.plant.Stage > stageSeed {
		g.rebirth()
	}
}

func (g *Garden) Draw(dc *gg.Context) {
	dc.SetColor(g.ctrl.GetColor("garden.sky"))
	dc.Clear()

	yBase := float64(H - 5)
	g.drawPot(dc, yBase)
	g.drawPlant(dc, yBase)
	g.drawDrops(dc)

	drawClock(dc, g.now, 22, "ffffff")
	drawDate(dc, g.now, 45, "ffffff", "Mon Jan 02")
	drawBatteryIcon(dc, g.level, g.charging, "ffffff")
	g.drawWaterBar(dc)
	g.drawGrowthDots(dc)
}

func (g *Garden) drawPot(dc *gg.Context, yBase float64) {
	const potWidth, potHeight, rimHeight = 60.0, 25.0, 4.0
	potTop := yBase - potHeight
	potLeft := float64(W/2) - potWidth/2

	// Trapezoid body, wider at the top.
	dc.SetColor(g.ctrl.GetColor("garden.pot"))
	dc.MoveTo(potLeft, potTop+rimHeight)
	dc.LineTo(potLeft+potWidth, potTop+rimHeight)
	dc.LineTo(potLeft+potWidth-8, yBase)
	dc.LineTo(potLeft+8, yBase)
	dc.ClosePath()
	dc.Fill()

	dc.SetColor(g.ctrl.GetColor("garden.potRim"))
	dc.DrawRoundedRectangle(potLeft-2, potTop, potWidth+4, rimHeight, 2)
	dc.Fill()

	fillRect(dc, g.ctrl.GetColor("garden.soil"), potLeft+2, potTop+rimHeight, potWidth-4, 8)
}

func (g *Garden) sway() float64 {
	amp := 2 + int(g.plant.Stage)
	if g.health() >= healthThirsty {
		amp /= 2
	}
	s := math.Sin(rad(g.swayPhase)) * float64(amp)
	if g.growthAnim > 0 {
		// Bounce on stage-up.
		scale := 100 + (10 - abs(g.growthAnim-10))
		s = s * float64(scale) / 100
	}
	return s
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (g *Garden) drawPlant(dc *gg.Context, yBase float64) {
	cx := float64(W / 2)
	sway := g.sway()

	switch g.plant.Stage {
	case stageSeed:
		g.drawSeed(dc, cx, yBase)
	case stageSprout:
		g.drawSprout(dc, cx, yBase, sway)
	case stageSmall:
		g.drawSmallPlant(dc, cx, yBase, sway)
	case stageFull:
		g.drawFullPlant(dc, cx, yBase, sway)
	case stageFlowering:
		g.drawFloweringPlant(dc, cx, yBase, sway)
	}
}

func (g *Garden) drawSeed(dc *gg.Context, cx, yBase float64) {
	seed := g.ctrl.GetColor("garden.seed")
	seedY := yBase - 30
	fillCircle(dc, seed, cx, seedY+4, 5)
	fillCircle(dc, seed, cx, seedY, 3)
}

func (g *Garden) drawLeaf(dc *gg.Context, x, y float64, size int, angleDeg int, wilting bool) {
	col := g.ctrl.GetColor("garden.leaf")
	if wilting {
		col = g.ctrl.GetColor("garden.leafWilt")
	}
	h := float64(size/2 + 1)
	dx := 0.0
	tilt := -2.0
	if angleDeg > 0 {
		dx = float64(size) / 2
		tilt = 2
	} else if angleDeg < 0 {
		dx = -float64(size) / 2
	}
	fillCircle(dc, col, x+dx, y, h)
	fillCircle(dc, col, x+dx+tilt, y, h-1)
}

func (g *Garden) stemColor() color.Color {
	if g.health() >= healthThirsty {
		return g.ctrl.GetColor("garden.stemWilt")
	}
	return g.ctrl.GetColor("garden.stem")
}

func (g *Garden) wiltDroop() float64 {
	if g.health() >= healthThirsty {
		return float64(g.wiltOffset)
	}
	return 0
}

func (g *Garden) drawSprout(dc *gg.Context, cx, yBase, sway float64) {
	wilting := g.health() >= healthThirsty
	topX := cx + sway + g.wiltDroop()
	topY := yBase - 28 - 20

	strokeLine(dc, g.stemColor(), 2, cx, yBase-28, topX, topY)
	g.drawLeaf(dc, topX-4, topY+3, 8, -45, wilting)
	g.drawLeaf(dc, topX+4, topY+3, 8, 45, wilting)
}

// drawStem renders the stem as bent segments so taller plants lean into
// the sway.
func (g *Garden) drawStem(dc *gg.Context, cx, yBase, lean float64, height, segments int, width float64) (topX, topY float64) {
	segH := float64(height / segments)
	prevX, prevY := cx, yBase-28
	for i := 1; i <= segments; i++ {
		newX := cx + lean*float64(i)/float64(segments)
		newY := yBase - 28 - segH*float64(i)
		strokeLine(dc, g.stemColor(), width, prevX, prevY, newX, newY)
		prevX, prevY = newX, newY
	}
	return prevX, prevY
}

func (g *Garden) drawSmallPlant(dc *gg.Context, cx, yBase, sway float64) {
	wilting := g.health() >= healthThirsty
	lean := sway + g.wiltDroop()
	topX, topY := g.drawStem(dc, cx, yBase, lean, 35, 3, 3)

	flutter := math.Sin(rad(g.leafPhase)) * 2
	g.drawLeaf(dc, cx+sway/3-10, yBase-40, 12, -60, wilting)
	g.drawLeaf(dc, cx+sway/3+10, yBase-45, 12, 60, wilting)
	g.drawLeaf(dc, topX-8+flutter, topY+5, 14, -45, wilting)
	g.drawLeaf(dc, topX+8-flutter, topY+5, 14, 45, wilting)
}

func (g *Garden) drawFullPlant(dc *gg.Context, cx, yBase, sway float64) {
	wilting := g.health() >= healthThirsty
	lean := sway + g.wiltDroop()
	topX, topY := g.drawStem(dc, cx, yBase, lean, 50, 4, 4)

	flutter := math.Sin(rad(g.leafPhase)) * 3
	g.drawLeaf(dc, cx-12, yBase-38, 14, -70, wilting)
	g.drawLeaf(dc, cx+12, yBase-42, 14, 70, wilting)

	midX := cx + sway/2
	g.drawLeaf(dc, midX-14+flutter, yBase-55, 16, -55, wilting)
	g.drawLeaf(dc, midX+14-flutter, yBase-58, 16, 55, wilting)

	g.drawLeaf(dc, topX-10+flutter, topY+8, 15, -40, wilting)
	g.drawLeaf(dc, topX+10-flutter, topY+8, 15, 40, wilting)
	g.drawLeaf(dc, topX, topY+2, 12, 0, wilting)
}

func (g *Garden) drawFlower(dc *gg.Context, x, y float64, size int, colorName string) {
	petal := g.ctrl.GetColor(colorName)
	dist := float64(size/2 + 2)
	for i := 0; i < 5; i++ {
		a := rad(angleMax * i / 5)
		fillCircle(dc, petal, x+math.Cos(a)*dist, y+math.Sin(a)*dist, float64(size)/2)
	}
	fillCircle(dc, g.ctrl.GetColor("garden.flowerCenter"), x, y, float64(size/3+1))
}

func (g *Garden) drawFloweringPlant(dc *gg.Context, cx, yBase, sway float64) {
	g.drawFullPlant(dc, cx, yBase, sway)

	topX := cx + sway + g.wiltDroop()
	topY := yBase - 28 - 50

	if g.health() < healthThirsty {
		g.drawFlower(dc, topX, topY-8, 12, "garden.flower1")
		g.drawFlower(dc, topX-18, topY+10, 10, "garden.flower2")
		g.drawFlower(dc, topX+16, topY+6, 10, "garden.flower3")
	} else {
		// Drooping buds.
		wilt := g.ctrl.GetColor("garden.leafWilt")
		fillCircle(dc, wilt, topX+5, topY-3, 5)
		fillCircle(dc, wilt, topX-15, topY+12, 4)
	}
}

func (g *Garden) drawDrops(dc *gg.Context) {
	if !g.watering {
		return
	}
	water := g.ctrl.GetColor("garden.water")
	for i := range g.drops {
		d := &g.drops[i]
		if d.active {
			fillCircle(dc, water, float64(d.x), float64(d.y), float64(d.size))
		}
	}
}

func (g *Garden) drawWaterBar(dc *gg.Context) {
	const barWidth, barHeight = 40.0, 8.0
	barX, barY := 8.0, float64(H-14)

	drop := g.ctrl.GetColor("garden.water")
	if g.plant.WaterLevel < waterThirstyMin {
		drop = g.ctrl.GetColor("garden.flower1")
	}
	fillCircle(dc, drop, barX+3, barY+4, 4)

	dc.SetHexColor("ffffff")
	dc.SetLineWidth(1)
	dc.DrawRectangle(barX+10, barY, barWidth, barHeight)
	dc.Stroke()

	fill := float64(g.plant.WaterLevel) * (barWidth - 2) / 100
	if fill > 0 {
		dc.SetColor(drop)
		dc.DrawRectangle(barX+11, barY+1, fill, barHeight-2)
		dc.Fill()
	}

	// Shake hint, blinking when urgent.
	if g.plant.WaterLevel < waterHealthyMin {
		hint := "shake"
		if g.plant.WaterLevel < waterThirstyMin {
			hint = "SHAKE!"
		}
		if g.plant.WaterLevel >= waterThirstyMin || (g.swayPhase/8000)%2 == 0 {
			loadFonts()
			dc.SetFontFace(dateFace)
			dc.SetHexColor("ffffff")
			dc.DrawStringAnchored(hint, W-6, barY+4, 1, 0.5)
		}
	}
}

func (g *Garden) drawGrowthDots(dc *gg.Context) {
	if g.plant.Stage >= stageFlowering {
		return
	}
	const totalDots, spacing = 5, 8.0
	filled := g.plant.GrowthProgress * totalDots / growthToNextStage
	startX := float64(W/2) - (totalDots-1)*spacing/2

	for i := 0; i < totalDots; i++ {
		x := startX + float64(i)*spacing
		if i < filled {
			fillCircle(dc, g.ctrl.GetColor("garden.leaf"), x, 58, 3)
		} else {
			dc.SetHexColor("ffffff")
			dc.SetLineWidth(1)
			dc.DrawCircle(x, 58, 2)
			dc.Stroke()
		}
	}
}
