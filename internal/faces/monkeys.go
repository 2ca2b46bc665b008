package faces

import (
	"log"
	"math/rand"
	"time"

	"github.com/fogleman/gg"

	"github.com/dailypush/watchface-go/internal/anim"
	"github.com/dailypush/watchface-go/internal/battery"
	"github.com/dailypush/watchface-go/internal/control"
)

// A jungle troupe: two monkeys working through a repertoire of tricks
// on four swaying vines and two branches. A shake knocks them out of
// the trees.

const (
	canopyTop    = 68
	monkeyGround = 150
	swingZoneTop = 70

	numMonkeys  = 2
	numVines    = 4
	numBranches = 2

	monkeysInterval    = 100 * time.Millisecond
	monkeysLowInterval = 200 * time.Millisecond
)

type trick int

const (
	trickVineSwing trick = iota
	trickClimbVine
	trickHangLook
	trickTailHang
	trickSitMunch
	trickFight
	trickFalling
	trickCount
)

// Frame counts at the normal tick rate.
var trickFrames = [trickCount]int{
	trickVineSwing: 50,
	trickClimbVine: 40,
	trickHangLook:  60,
	trickTailHang:  50,
	trickSitMunch:  80,
	trickFight:     60,
	trickFalling:   50,
}

type vine struct {
	topX, topY int
	length     int
	swayPhase  int
	swayAmount int
}

type branch struct {
	x1, y1, x2, y2 int
	thickness      int
}

type monkeyAnim struct {
	trick          trick
	frame          int
	maxFrames      int
	startX, startY int
	rotation       int
	vineIndex      int
	branchIndex    int
	// targetBranch picks the climb direction, and doubles as the bite
	// counter while munching.
	targetBranch int
}

type monkeyState struct {
	x, y      int
	direction int
	anim      monkeyAnim
	tailPhase int
	limbPhase int
}

type Monkeys struct {
	base
	ctrl *control.Control
	rng  *rand.Rand

	vines    [numVines]vine
	branches [numBranches]branch
	monkeys  [numMonkeys]monkeyState
}

func NewMonkeys(ctrl *control.Control) *Monkeys {
	for name, hex := range map[string]string{
		"monkeys.sky":     "55aaff",
		"monkeys.sky2":    "aaffff",
		"monkeys.canopy1": "005500",
		"monkeys.canopy2": "00ff00",
		"monkeys.vine":    "555500",
		"monkeys.branch":  "aa5500",
		"monkeys.branch2": "550000",
		"monkeys.ground":  "00aa00",
		"monkeys.ground2": "005500",
		"monkeys.fur":     "aa5500",
		"monkeys.belly":   "ffaaaa",
		"monkeys.ink":     "000000",
		"monkeys.apple":   "ff0000",
		"monkeys.bite":    "ffffaa",
		"monkeys.star":    "ffff00",
	} {
		if ctrl.GetColorHex(name) == "" {
			ctrl.SetColorHex(name, hex)
		}
	}

	f := &Monkeys{
		base: base{level: 100},
		ctrl: ctrl,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for i := range f.vines {
		f.vines[i] = vine{
			topX:       15 + i*(W-30)/(numVines-1),
			topY:       canopyTop - 5,
			length:     anim.Clampi(f.randRange(35, 50), 20, 70),
			swayPhase:  f.randRange(0, angleMax-1),
			swayAmount: f.randRange(5, 10),
		}
	}
	f.branches = [numBranches]branch{
		{x1: 10, y1: canopyTop + 12, x2: W / 2, y2: canopyTop + 16, thickness: 4},
		{x1: W/2 + 10, y1: canopyTop + 10, x2: W - 10, y2: canopyTop + 14, thickness: 5},
	}
	for i := range f.monkeys {
		m := &f.monkeys[i]
		if i == 0 {
			m.direction = 1
			m.x, m.y = W/3, swingZoneTop+15
			m.anim.vineIndex = 1
		} else {
			m.direction = -1
			m.x, m.y = 2*W/3, swingZoneTop+25
			m.anim.vineIndex = 2
		}
		m.anim.trick = trickVineSwing
		m.anim.frame = f.randRange(0, 20)
		m.anim.maxFrames = trickFrames[trickVineSwing]
		m.anim.startX, m.anim.startY = m.x, m.y
		m.tailPhase = f.randRange(0, angleMax-1)
		m.limbPhase = f.randRange(0, angleMax-1)
	}
	return f
}

func (f *Monkeys) Name() string { return "monkeys" }

func (f *Monkeys) randRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + f.rng.Intn(max-min+1)
}

func (f *Monkeys) Interval(level int) time.Duration {
	if level <= battery.LowThreshold {
		return monkeysLowInterval
	}
	return monkeysInterval
}

func (f *Monkeys) Update(now time.Time, frame int) {
	f.now = now
	// The troupe rests while the watch charges.
	if f.charging {
		return
	}

	delta := 50
	if f.level <= battery.LowThreshold {
		delta = 20
	}
	for i := range f.vines {
		f.vines[i].swayPhase = (f.vines[i].swayPhase + delta) & (angleMax - 1)
	}

	for i := range f.monkeys {
		f.updateMonkey(&f.monkeys[i])
	}
}

// Shake knocks every airborne monkey out of the trees.
func (f *Monkeys) Shake() {
	fell := 0
	for i := range f.monkeys {
		m := &f.monkeys[i]
		if m.anim.trick == trickFalling {
			continue
		}
		f.triggerFall(m)
		fell++
	}
	if fell > 0 {
		log.Printf("monkeys: shake knocked %d loose", fell)
	}
}

func (f *Monkeys) triggerFall(m *monkeyState) {
	m.anim.startX, m.anim.startY = m.x, m.y
	m.anim.frame = 0
	m.anim.trick = trickFalling
	m.anim.maxFrames = trickFrames[trickFalling]
	m.anim.rotation = 0
}

func (f *Monkeys) updateMonkey(m *monkeyState) {
	m.anim.frame++

	// Runaway or corrupted state snaps back to a vine swing rather than
	// ever wedging the loop.
	if m.anim.frame < 0 || m.anim.frame > 500 {
		m.anim.frame = 0
		m.anim.trick = trickVineSwing
		m.anim.maxFrames = trickFrames[trickVineSwing]
	}
	if m.anim.maxFrames <= 0 || m.anim.maxFrames > 200 {
		m.anim.maxFrames = trickFrames[trickVineSwing]
	}
	if m.anim.trick < 0 || m.anim.trick >= trickCount {
		m.anim.trick = trickVineSwing
		m.anim.frame = 0
		m.anim.maxFrames = trickFrames[trickVineSwing]
	}

	switch m.anim.trick {
	case trickVineSwing:
		f.updateVineSwing(m)
	case trickClimbVine:
		f.updateClimbVine(m)
	case trickHangLook:
		f.updateHangLook(m)
	case trickTailHang:
		f.updateTailHang(m)
	case trickSitMunch:
		f.updateSitMunch(m)
	case trickFight:
		f.updateFight(m)
	case trickFalling:
		f.updateFalling(m)
	}

	m.tailPhase = (m.tailPhase + 120) & (angleMax - 1)
	m.limbPhase = (m.limbPhase + 200) & (angleMax - 1)

	if m.anim.frame >= m.anim.maxFrames {
		f.selectNextTrick(m)
	}

	m.x = anim.Clampi(m.x, 10, W-10)
	m.y = anim.Clampi(m.y, canopyTop+15, monkeyGround-5)
}

func (f *Monkeys) selectNextTrick(m *monkeyState) {
	// Recovery from a fall restarts from a random vine.
	wasFalling := m.anim.trick == trickFalling
	if wasFalling {
		m.anim.vineIndex = f.randRange(0, numVines-1)
		v := &f.vines[m.anim.vineIndex]
		m.x = v.topX
		m.y = v.topY + v.length - 10
		if f.randRange(0, 1) == 1 {
			m.direction = 1
		} else {
			m.direction = -1
		}
	}

	m.anim.startX, m.anim.startY = m.x, m.y
	m.anim.frame = 0
	m.anim.rotation = 0

	m.anim.vineIndex = anim.Clampi(m.anim.vineIndex, 0, numVines-1)
	m.anim.branchIndex = anim.Clampi(m.anim.branchIndex, 0, numBranches-1)
	if m.direction == 0 {
		m.direction = 1
	}
	if m.anim.vineIndex <= 0 {
		m.direction = 1
	}
	if m.anim.vineIndex >= numVines-1 {
		m.direction = -1
	}

	if wasFalling {
		m.anim.trick = trickVineSwing
		m.anim.maxFrames = trickFrames[trickVineSwing]
		return
	}

	roll := f.randRange(0, 99)
	switch {
	case roll < 40:
		m.anim.trick = trickVineSwing
	case roll < 50:
		m.anim.trick = trickClimbVine
		m.anim.targetBranch = f.randRange(0, 1)
	case roll < 60:
		m.anim.trick = trickHangLook
	case roll < 70:
		m.anim.trick = trickTailHang
		m.anim.branchIndex = f.randRange(0, numBranches-1)
	default:
		m.anim.trick = trickSitMunch
		m.anim.branchIndex = f.randRange(0, numBranches-1)
	}
	m.anim.maxFrames = trickFrames[m.anim.trick]
}

// Vine swing runs in three beats: wind up on the current vine, fly to
// the next one, then settle there.
func (f *Monkeys) updateVineSwing(m *monkeyState) {
	progress := anim.Clampi(m.anim.frame*100/trickFrames[trickVineSwing], 0, 100)
	m.anim.vineIndex = anim.Clampi(m.anim.vineIndex, 0, numVines-1)
	v := &f.vines[m.anim.vineIndex]

	next := m.anim.vineIndex + m.direction
	if next < 0 || next >= numVines {
		m.direction = -m.direction
		next = m.anim.vineIndex + m.direction
	}
	next = anim.Clampi(next, 0, numVines-1)
	nv := &f.vines[next]

	switch {
	case progress < 35:
		swingP := progress * 100 / 35
		angle := (swingP*75/100 - 30) * angleMax / 360
		radius := v.length - 5
		m.x = v.topX + isin(angle, radius)
		m.y = v.topY + icos(angle, radius)
		m.anim.rotation = angle / 6

	case progress < 65:
		flyP := anim.Clampi((progress-35)*100/30, 0, 100)

		release := 45 * angleMax / 360
		sx := v.topX + isin(release, v.length-5)
		sy := v.topY + icos(release, v.length-5)
		catch := -30 * angleMax / 360
		ex := nv.topX + isin(catch, nv.length-5)
		ey := nv.topY + icos(catch, nv.length-5)

		m.x = sx + (ex-sx)*flyP/100
		arc := flyP * 25 / 50
		if flyP >= 50 {
			arc = (100 - flyP) * 25 / 50
		}
		m.y = sy + (ey-sy)*flyP/100 - arc
		m.anim.rotation = m.direction * angleMax / 16

		// The hand-off happens exactly once, mid flight.
		if m.anim.frame == trickFrames[trickVineSwing]*50/100 {
			m.anim.vineIndex = next
		}

	default:
		swingP := anim.Clampi((progress-65)*100/35, 0, 100)
		angle := (-30 + swingP*40/100) * angleMax / 360
		v = &f.vines[m.anim.vineIndex]
		radius := v.length - 5
		m.x = v.topX + isin(angle, radius)
		m.y = v.topY + icos(angle, radius)
		m.anim.rotation = angle / 6
	}

	m.limbPhase = progress * angleMax / 100
}

func (f *Monkeys) updateClimbVine(m *monkeyState) {
	progress := anim.Clampi(m.anim.frame*100/trickFrames[trickClimbVine], 0, 100)
	m.anim.vineIndex = anim.Clampi(m.anim.vineIndex, 0, numVines-1)
	v := &f.vines[m.anim.vineIndex]

	climbDir := 1
	if m.anim.targetBranch > 0 {
		climbDir = -1
	}
	baseY := v.topY + v.length/2
	offset := climbDir * (progress - 50) * 25 / 50

	m.x = v.topX
	m.y = baseY + offset + isin(progress*angleMax/10, 3)

	m.limbPhase = progress * angleMax / 12
	m.anim.rotation = 0
	m.direction = 1
}

func (f *Monkeys) updateHangLook(m *monkeyState) {
	progress := anim.Clampi(m.anim.frame*100/trickFrames[trickHangLook], 0, 100)
	m.anim.vineIndex = anim.Clampi(m.anim.vineIndex, 0, numVines-1)
	v := &f.vines[m.anim.vineIndex]

	sway := isin(progress*angleMax/60, 8)
	m.x = v.topX + sway
	m.y = v.topY + v.length - 10

	switch {
	case progress < 30:
		m.direction = -1
	case progress < 60:
		m.direction = 1
	default:
		m.direction = -1
	}

	m.anim.rotation = sway * angleMax / 100
	m.limbPhase = 0
}

func (f *Monkeys) updateTailHang(m *monkeyState) {
	progress := anim.Clampi(m.anim.frame*100/trickFrames[trickTailHang], 0, 100)
	m.anim.branchIndex = anim.Clampi(m.anim.branchIndex, 0, numBranches-1)
	b := &f.branches[m.anim.branchIndex]

	swing := isin(progress*angleMax/40, 15)
	m.x = (b.x1+b.x2)/2 + swing
	m.y = (b.y1+b.y2)/2 + 22

	m.anim.rotation = angleMax / 2
	if swing > 0 {
		m.direction = 1
	} else {
		m.direction = -1
	}
	m.limbPhase = progress * angleMax / 50
}

func (f *Monkeys) updateSitMunch(m *monkeyState) {
	progress := anim.Clampi(m.anim.frame*100/trickFrames[trickSitMunch], 0, 100)
	m.anim.branchIndex = anim.Clampi(m.anim.branchIndex, 0, numBranches-1)
	b := &f.branches[m.anim.branchIndex]

	sitX := b.x1 + (b.x2-b.x1)/3
	if m.direction < 0 {
		sitX = b.x2 - (b.x2-b.x1)/3
	}
	m.x = sitX
	m.y = b.y1 - 8

	m.limbPhase = (progress * angleMax / 10) % angleMax
	m.anim.rotation = 0
	m.anim.targetBranch = anim.Clampi(progress/20, 0, 4)
}

func (f *Monkeys) updateFight(m *monkeyState) {
	progress := anim.Clampi(m.anim.frame*100/trickFrames[trickFight], 0, 100)

	// Anchored on startX to keep the two fighters from feeding back
	// into each other.
	centerX := W / 2
	centerY := swingZoneTop + 30

	switch {
	case progress < 30:
		eased := anim.EaseInOut(progress * 100 / 30)
		m.x = m.anim.startX + (centerX-m.anim.startX)*eased/100
		m.y = m.anim.startY + (centerY-m.anim.startY)*eased/100
		if centerX > m.anim.startX {
			m.direction = 1
		} else {
			m.direction = -1
		}

	case progress < 80:
		tussleP := anim.Clampi((progress-30)*100/50, 0, 100)
		shakeX := isin(tussleP*angleMax/8, 8)
		shakeY := icos(tussleP*angleMax/6, 5)
		m.x = centerX + shakeX
		m.y = centerY + shakeY
		m.anim.rotation = shakeX * angleMax / 50
		if tussleP%20 < 10 {
			m.direction = 1
		} else {
			m.direction = -1
		}

	default:
		retreatP := anim.Clampi((progress-80)*100/20, 0, 100)
		eased := anim.EaseOut(retreatP)
		retreatDir := 1
		if m.anim.startX < centerX {
			retreatDir = -1
		}
		m.x = centerX + retreatDir*eased*25/100
		m.y = swingZoneTop + 40 - isin(eased*angleMax/200, 15)
		m.direction = -retreatDir
		m.anim.rotation = 0
	}

	m.limbPhase = progress * angleMax / 8
}

// Falling plays out as drop, bounce, dazed sit, then getting back up.
func (f *Monkeys) updateFalling(m *monkeyState) {
	progress := anim.Clampi(m.anim.frame*100/trickFrames[trickFalling], 0, 100)

	switch {
	case progress < 40:
		fallP := anim.Clampi(progress*100/40, 0, 100)
		eased := fallP * fallP / 100
		m.x = m.anim.startX + isin(fallP*angleMax/8, 20)
		m.y = m.anim.startY + (monkeyGround-18-m.anim.startY)*eased/100
		m.anim.rotation = fallP * angleMax / 25
		m.limbPhase = fallP * angleMax / 3

	case progress < 55:
		bounceP := anim.Clampi((progress-40)*100/15, 0, 100)
		m.x = m.anim.startX
		m.y = monkeyGround - 18 - (20 - bounceP*20/100)
		m.anim.rotation = angleMax/8 - bounceP*angleMax/800
		m.limbPhase = bounceP * angleMax / 10

	case progress < 75:
		dazeP := anim.Clampi((progress-55)*100/20, 0, 100)
		m.x = m.anim.startX
		m.y = monkeyGround - 12
		m.anim.rotation = 0
		if dazeP%15 < 7 {
			m.direction = 1
		} else {
			m.direction = -1
		}
		m.limbPhase = dazeP * angleMax / 20

	default:
		recoverP := anim.Clampi((progress-75)*100/25, 0, 100)
		m.x = m.anim.startX
		m.y = monkeyGround - 12 - recoverP*6/100
		m.anim.rotation = 0
		m.direction = 1
		m.limbPhase = recoverP * angleMax / 50
	}
}

func (f *Monkeys) Draw(dc *gg.Context) {
	fillRect(dc, f.ctrl.GetColor("monkeys.sky"), 0, 0, W, canopyTop+20)
	fillRect(dc, f.ctrl.GetColor("monkeys.sky2"), 0, canopyTop+20, W, monkeyGround-canopyTop-20)

	f.drawCanopy(dc)
	f.drawBranches(dc)
	f.drawVines(dc)

	for i := range f.monkeys {
		f.drawMonkey(dc, &f.monkeys[i])
	}

	f.drawGround(dc)

	drawClock(dc, f.now, 20, "ffffff")
	drawDate(dc, f.now, 46, "ffffff", "Mon Jan 02")
	drawBatteryIcon(dc, f.level, f.charging, "ffffff")
}

func (f *Monkeys) lowPower() bool {
	return f.level <= battery.LowThreshold
}

func (f *Monkeys) drawCanopy(dc *gg.Context) {
	dark := f.ctrl.GetColor("monkeys.canopy1")
	light := f.ctrl.GetColor("monkeys.canopy2")

	fillRect(dc, dark, 0, canopyTop-10, W, 35)

	step1, step2 := 30, 40
	if f.lowPower() {
		step1 += 12
		step2 += 12
	}
	for x := 0; x < W; x += step1 {
		fillCircle(dc, dark, float64(x), canopyTop+5, 18)
	}
	for x := 15; x < W; x += step2 {
		fillCircle(dc, light, float64(x), canopyTop-3, 10)
	}
}

func (f *Monkeys) drawBranches(dc *gg.Context) {
	wood := f.ctrl.GetColor("monkeys.branch")
	shadow := f.ctrl.GetColor("monkeys.branch2")
	for i := range f.branches {
		b := &f.branches[i]
		strokeLine(dc, shadow, float64(b.thickness+2),
			float64(b.x1), float64(b.y1+2), float64(b.x2), float64(b.y2+2))
		strokeLine(dc, wood, float64(b.thickness),
			float64(b.x1), float64(b.y1), float64(b.x2), float64(b.y2))
	}
}

func (f *Monkeys) drawVines(dc *gg.Context) {
	col := f.ctrl.GetColor("monkeys.vine")
	leaf := f.ctrl.GetColor("monkeys.canopy2")

	segments := 4
	if f.lowPower() {
		segments = 3
	}
	for i := range f.vines {
		v := &f.vines[i]
		segLen := v.length / segments
		cx, cy := v.topX, v.topY
		for j := 0; j < segments; j++ {
			sway := isin(v.swayPhase+j*1000, v.swayAmount)
			nx, ny := cx+sway, cy+segLen
			strokeLine(dc, col, 2, float64(cx), float64(cy), float64(nx), float64(ny))
			cx, cy = nx, ny
		}
		fillCircle(dc, leaf, float64(v.topX), float64(v.topY+v.length/2), 3)
	}
}

func (f *Monkeys) drawGround(dc *gg.Context) {
	fillRect(dc, f.ctrl.GetColor("monkeys.ground"), 0, monkeyGround, W, H-monkeyGround)
	fillRect(dc, f.ctrl.GetColor("monkeys.ground2"), 0, monkeyGround, W, 4)

	grass := f.ctrl.GetColor("monkeys.canopy2")
	tufts := 14
	if f.lowPower() {
		tufts = 10
	}
	for i := 0; i < tufts; i++ {
		x := float64(5 + i*W/tufts)
		h := float64(4 + i%3)
		strokeLine(dc, grass, 1, x, monkeyGround, x-2, monkeyGround-h)
		strokeLine(dc, grass, 1, x, monkeyGround, x+2, monkeyGround-h)
		strokeLine(dc, grass, 1, x, monkeyGround, x, monkeyGround-h-1)
	}
}

func (f *Monkeys) drawTail(dc *gg.Context, m *monkeyState) {
	fur := f.ctrl.GetColor("monkeys.fur")
	cx, cy := m.x-m.direction*3, m.y+5
	for i := 0; i < 3; i++ {
		curl := isin(m.tailPhase+i*1500, 3)
		nx, ny := cx-m.direction*3+curl, cy+3
		strokeLine(dc, fur, 2, float64(cx), float64(cy), float64(nx), float64(ny))
		cx, cy = nx, ny
	}
	fillCircle(dc, fur, float64(cx), float64(cy), 1)
}

func (f *Monkeys) drawMonkey(dc *gg.Context, m *monkeyState) {
	x, y := m.x, m.y
	dir := m.direction
	if dir == 0 {
		dir = 1
	}
	fx, fy := float64(x), float64(y)

	fur := f.ctrl.GetColor("monkeys.fur")
	belly := f.ctrl.GetColor("monkeys.belly")
	ink := f.ctrl.GetColor("monkeys.ink")

	hangingFromVine := m.anim.trick == trickVineSwing ||
		m.anim.trick == trickClimbVine || m.anim.trick == trickHangLook
	upsideDown := m.anim.trick == trickTailHang
	sitting := m.anim.trick == trickSitMunch
	fighting := m.anim.trick == trickFight
	falling := m.anim.trick == trickFalling

	inAir := false
	if m.anim.trick == trickVineSwing {
		progress := anim.Clampi(m.anim.frame*100/trickFrames[trickVineSwing], 0, 100)
		if progress >= 35 && progress < 65 {
			inAir = true
			hangingFromVine = false
		}
	}

	if !upsideDown {
		f.drawTail(dc, m)
	}

	switch {
	case upsideDown:
		b := &f.branches[anim.Clampi(m.anim.branchIndex, 0, numBranches-1)]
		gripY := float64((b.y1 + b.y2) / 2)

		dc.SetColor(fur)
		dc.DrawRoundedRectangle(fx-5, fy-6, 10, 12, 3)
		dc.Fill()
		dc.SetColor(belly)
		dc.DrawRoundedRectangle(fx-3, fy-4, 6, 8, 2)
		dc.Fill()

		// Legs gripping the branch.
		strokeLine(dc, fur, 3, fx-3, fy-6, fx-3, gripY)
		strokeLine(dc, fur, 3, fx+3, fy-6, fx+3, gripY)
		fillCircle(dc, fur, fx-3, gripY, 2)
		fillCircle(dc, fur, fx+3, gripY, 2)

		dangle := float64(isin(m.limbPhase, 3))
		strokeLine(dc, fur, 3, fx-5, fy+4, fx-7+dangle, fy+12)
		strokeLine(dc, fur, 3, fx+5, fy+4, fx+7-dangle, fy+12)
		fillCircle(dc, fur, fx-7+dangle, fy+12, 2)
		fillCircle(dc, fur, fx+7-dangle, fy+12, 2)

	case hangingFromVine:
		strokeLine(dc, f.ctrl.GetColor("monkeys.vine"), 3, fx, fy-16, fx, canopyTop+10)

		dc.SetColor(fur)
		dc.DrawRoundedRectangle(fx-5, fy-5, 10, 12, 3)
		dc.Fill()
		dc.SetColor(belly)
		dc.DrawRoundedRectangle(fx-3, fy-2, 6, 8, 2)
		dc.Fill()

		strokeLine(dc, fur, 3, fx-4, fy-5, fx, fy-16)
		strokeLine(dc, fur, 3, fx+4, fy-5, fx, fy-16)
		fillCircle(dc, fur, fx, fy-16, 3)

		legOffset := float64(isin(m.anim.rotation, 6))
		strokeLine(dc, fur, 3, fx-3, fy+7, fx-5-legOffset, fy+15)
		strokeLine(dc, fur, 3, fx+3, fy+7, fx+5-legOffset, fy+15)
		fillCircle(dc, fur, fx-5-legOffset, fy+15, 2)
		fillCircle(dc, fur, fx+5-legOffset, fy+15, 2)

	case sitting:
		dc.SetColor(fur)
		dc.DrawRoundedRectangle(fx-5, fy-3, 10, 10, 3)
		dc.Fill()
		dc.SetColor(belly)
		dc.DrawRoundedRectangle(fx-3, fy-1, 6, 7, 2)
		dc.Fill()

		strokeLine(dc, fur, 3, fx-4, fy+7, fx-6, fy+5)
		strokeLine(dc, fur, 3, fx+4, fy+7, fx+6, fy+5)
		fillCircle(dc, fur, fx-6, fy+5, 2)
		fillCircle(dc, fur, fx+6, fy+5, 2)

		munch := isin(m.limbPhase, 4)
		appleX := float64(x + dir*6)
		appleY := float64(y - 8 + munch)

		strokeLine(dc, fur, 3, fx-float64(dir*5), fy, fx-float64(dir*8), fy+5)
		fillCircle(dc, fur, fx-float64(dir*8), fy+5, 2)
		strokeLine(dc, fur, 3, fx+float64(dir*5), fy-2, appleX, appleY+3)
		fillCircle(dc, fur, appleX, appleY+3, 2)

		bites := m.anim.targetBranch
		appleR := anim.Clampi(5-bites, 0, 5)
		if appleR > 1 {
			fillCircle(dc, f.ctrl.GetColor("monkeys.apple"), appleX, appleY, float64(appleR))
			if bites > 0 {
				fillCircle(dc, f.ctrl.GetColor("monkeys.bite"),
					appleX-float64(dir*2), appleY, float64(bites))
			}
			strokeLine(dc, f.ctrl.GetColor("monkeys.branch"), 1,
				appleX, appleY-float64(appleR), appleX+1, appleY-float64(appleR)-2)
		}

	case fighting:
		progress := anim.Clampi(m.anim.frame*100/trickFrames[trickFight], 0, 100)
		tussling := progress >= 30 && progress < 80

		dc.SetColor(fur)
		dc.DrawRoundedRectangle(fx-5, fy-5, 10, 12, 3)
		dc.Fill()
		dc.SetColor(belly)
		dc.DrawRoundedRectangle(fx-3, fy-2, 6, 8, 2)
		dc.Fill()

		if tussling {
			swing := float64(isin(m.limbPhase*3, 10))
			strokeLine(dc, fur, 3, fx-5, fy-2, fx-12+swing, fy-8)
			strokeLine(dc, fur, 3, fx+5, fy-2, fx+12-swing, fy-8)
			fillCircle(dc, fur, fx-12+swing, fy-8, 2)
			fillCircle(dc, fur, fx+12-swing, fy-8, 2)
		} else {
			strokeLine(dc, fur, 3, fx-5, fy-2, fx-10, fy-6)
			strokeLine(dc, fur, 3, fx+5, fy-2, fx+10, fy-6)
			fillCircle(dc, fur, fx-10, fy-6, 2)
			fillCircle(dc, fur, fx+10, fy-6, 2)
		}

		strokeLine(dc, fur, 3, fx-3, fy+7, fx-7, fy+14)
		strokeLine(dc, fur, 3, fx+3, fy+7, fx+7, fy+14)
		fillCircle(dc, fur, fx-7, fy+14, 2)
		fillCircle(dc, fur, fx+7, fy+14, 2)

	case falling:
		progress := anim.Clampi(m.anim.frame*100/trickFrames[trickFalling], 0, 100)
		rx := float64(isin(m.anim.rotation, 3))
		ry := float64(icos(m.anim.rotation, 2))

		dc.SetColor(fur)
		dc.DrawRoundedRectangle(fx-5+rx, fy-5+ry, 10, 12, 3)
		dc.Fill()
		dc.SetColor(belly)
		dc.DrawRoundedRectangle(fx-3+rx, fy-2+ry, 6, 8, 2)
		dc.Fill()

		flail := float64(isin(m.limbPhase, 12))
		flail2 := float64(icos(m.limbPhase, 10))

		strokeLine(dc, fur, 3, fx-5, fy-2, fx-10+flail, fy-8+flail2)
		strokeLine(dc, fur, 3, fx+5, fy-2, fx+10-flail, fy-6-flail2)
		fillCircle(dc, fur, fx-10+flail, fy-8+flail2, 2)
		fillCircle(dc, fur, fx+10-flail, fy-6-flail2, 2)

		strokeLine(dc, fur, 3, fx-3, fy+7, fx-8-flail2, fy+14+flail)
		strokeLine(dc, fur, 3, fx+3, fy+7, fx+8+flail2, fy+12-flail)
		fillCircle(dc, fur, fx-8-flail2, fy+14+flail, 2)
		fillCircle(dc, fur, fx+8+flail2, fy+12-flail, 2)

		// Dizzy stars once the poor thing has hit the ground.
		if progress >= 60 {
			star := f.ctrl.GetColor("monkeys.star")
			starPhase := progress * 5
			for i := 0; i < 3; i++ {
				a := starPhase + i*angleMax/3
				fillCircle(dc, star, fx+float64(isin(a, 12)), fy-18+float64(icos(a, 5)), 2)
			}
		}

	default:
		dc.SetColor(fur)
		dc.DrawRoundedRectangle(fx-5, fy-5, 10, 12, 3)
		dc.Fill()
		dc.SetColor(belly)
		dc.DrawRoundedRectangle(fx-3, fy-2, 6, 8, 2)
		dc.Fill()

		spread := 5.0
		if inAir {
			spread = 8
		}
		strokeLine(dc, fur, 3, fx-5, fy, fx-spread, fy-2)
		strokeLine(dc, fur, 3, fx+5, fy, fx+spread, fy-2)
		fillCircle(dc, fur, fx-spread, fy-2, 2)
		fillCircle(dc, fur, fx+spread, fy-2, 2)

		strokeLine(dc, fur, 3, fx-3, fy+7, fx-spread+2, fy+12)
		strokeLine(dc, fur, 3, fx+3, fy+7, fx+spread-2, fy+12)
		fillCircle(dc, fur, fx-spread+2, fy+12, 2)
		fillCircle(dc, fur, fx+spread-2, fy+12, 2)
	}

	headY := fy - 10
	faceShift := 1.0
	eyeShift := -2.0
	mouthShift := 3.0
	if upsideDown {
		headY = fy + 12
		faceShift, eyeShift, mouthShift = -1, 2, -3
	}

	fillCircle(dc, fur, fx, headY, 7)
	fillCircle(dc, belly, fx+float64(dir*2), headY+faceShift, 5)

	// Ears.
	fillCircle(dc, fur, fx-6, headY, 3)
	fillCircle(dc, fur, fx+6, headY, 3)
	fillCircle(dc, belly, fx-6, headY, 1)
	fillCircle(dc, belly, fx+6, headY, 1)

	fillCircle(dc, ink, fx+float64(dir*1), headY+eyeShift, 1)
	fillCircle(dc, ink, fx+float64(dir*4), headY+eyeShift, 1)
	strokeLine(dc, ink, 1, fx+float64(dir*1), headY+mouthShift, fx+float64(dir*4), headY+mouthShift)

	if upsideDown {
		f.drawTail(dc, m)
	}
}
