package faces

import (
	"log"
	"math"
	"time"

	"github.com/fogleman/gg"

	"github.com/dailypush/watchface-go/internal/anim"
	"github.com/dailypush/watchface-go/internal/battery"
	"github.com/dailypush/watchface-go/internal/control"
	"github.com/dailypush/watchface-go/internal/geom"
)

// Two duelists trade slashes and parries across the bottom of the
// screen. Poses are target values; each frame the fighters ease toward
// them, and when blades cross a spark burst flares at the intersection.

const (
	duelGroundY = 150
	duelHeroX   = 38
	duelRivalX  = 106

	duelInterval = 22 * time.Millisecond
	sparkFrames  = 10
	clangEvery   = 90
)

type duelPose struct {
	lean, stepFwd, stepBack, crouch, swordAng, armRaise int
}

type duelPoseID int

const (
	poseReady duelPoseID = iota
	poseStepFwd
	poseThrust
	poseSlash
	poseBlockHigh
	poseBlockLow
	poseStruck
	poseStepBack
)

// Sword angles: 0 is straight up, 90 horizontal, 180 straight down. An
// attacker swings past 90 while the blocker catches below it, so the
// blades cross in an X.
var duelPoses = [...]duelPose{
	poseReady:     {3, 6, 0, 0, 75, 0},
	poseStepFwd:   {6, 10, 0, 3, 80, -2},
	poseThrust:    {12, 16, 0, 8, 95, -8},
	poseSlash:     {10, 12, 0, 5, 135, 12},
	poseBlockHigh: {2, 6, 0, 2, 45, 10},
	poseBlockLow:  {4, 8, 0, 4, 105, -4},
	poseStruck:    {-16, -6, 12, 12, 160, 8},
	poseStepBack:  {-8, 0, 10, 2, 70, 0},
}

type duelMove struct {
	hero, rival duelPoseID
	dur         int
	clash       bool
}

var duelSeq = []duelMove{
	{poseReady, poseReady, 16, false},

	{poseSlash, poseBlockHigh, 10, true},
	{poseBlockHigh, poseSlash, 10, true},
	{poseReady, poseReady, 6, false},

	{poseThrust, poseBlockLow, 10, true},
	{poseBlockLow, poseThrust, 10, true},

	// Flurry.
	{poseSlash, poseBlockHigh, 8, true},
	{poseBlockHigh, poseSlash, 8, true},
	{poseSlash, poseBlockHigh, 8, true},

	{poseReady, poseReady, 6, false},

	{poseThrust, poseBlockLow, 8, true},
	{poseSlash, poseBlockHigh, 8, true},
	{poseThrust, poseBlockLow, 8, true},

	// Rival takes a hit, retreats, recovers.
	{poseSlash, poseStruck, 12, false},
	{poseReady, poseStepBack, 8, false},
	{poseReady, poseReady, 8, false},
	{poseBlockHigh, poseSlash, 10, true},
	{poseBlockLow, poseThrust, 8, true},

	// Hero takes one back.
	{poseStruck, poseSlash, 12, false},
	{poseStepBack, poseReady, 8, false},

	{poseReady, poseReady, 8, false},
	{poseSlash, poseBlockHigh, 8, true},
	{poseBlockHigh, poseSlash, 8, true},
	{poseThrust, poseBlockLow, 8, true},
	{poseBlockLow, poseThrust, 8, true},

	{poseReady, poseReady, 12, false},
}

type fighter struct {
	x    int
	dir  int // +1 faces right, -1 faces left
	pose duelPoseID
	cur  duelPose
}

func newFighter(x, dir int) fighter {
	return fighter{x: x, dir: dir, pose: poseReady, cur: duelPoses[poseReady]}
}

func (f *fighter) settle() {
	t := duelPoses[f.pose]
	const spd = 4
	f.cur.lean = anim.Lerp(f.cur.lean, t.lean, spd+1)
	f.cur.stepFwd = anim.Lerp(f.cur.stepFwd, t.stepFwd, spd+2)
	f.cur.stepBack = anim.Lerp(f.cur.stepBack, t.stepBack, spd+2)
	f.cur.crouch = anim.Lerp(f.cur.crouch, t.crouch, spd)
	f.cur.swordAng = anim.Lerp(f.cur.swordAng, t.swordAng, 14)
	f.cur.armRaise = anim.Lerp(f.cur.armRaise, t.armRaise, spd+2)
}

func swordTrig(deg int) (sin, cos float64) {
	r := float64(deg) * math.Pi / 180
	return math.Sin(r), math.Cos(r)
}

// swordLine mirrors the arm geometry in drawFighter so spark placement
// stays aligned with the rendered blades.
func (f *fighter) swordLine(shakeDX, shakeDY int) (hand, tip geom.Pt) {
	d := f.dir
	cx := f.x + shakeDX + f.cur.lean*d
	cy := duelGroundY + shakeDY + f.cur.crouch
	shoulderY := cy - 52
	armX := cx + 6*d
	armY := shoulderY + 5 - f.cur.armRaise

	sin, cos := swordTrig(f.cur.swordAng)
	elbowX := armX + d*int(sin*10)
	elbowY := armY - int(cos*10)
	handX := elbowX + d*int(sin*10)
	handY := elbowY - int(cos*10)
	tipX := handX + d*int(sin*50)
	tipY := handY - int(cos*50)

	return geom.Pt{X: handX, Y: handY}, geom.Pt{X: tipX, Y: tipY}
}

type Swordfight struct {
	base
	ctrl *control.Control

	hero, rival fighter
	seqIdx      int
	seqFrame    int
	gframe      int

	sparks    bool
	sparkLife int
	sparkX    int
	sparkY    int

	shakeFrames int
	shakeMag    int
	shakeDX     int
	shakeDY     int

	clangCooldown int
}

func NewSwordfight(ctrl *control.Control) *Swordfight {
	for name, hex := range map[string]string{
		"duel.sky1":      "ff5500",
		"duel.sky2":      "ffaa55",
		"duel.sky3":      "ffff00",
		"duel.ground":    "555555",
		"duel.hero":      "ffffff",
		"duel.heroVest":  "00ffff",
		"duel.rival":     "000000",
		"duel.rivalVest": "555555",
		"duel.skin":      "ffaaaa",
		"duel.hair":      "000000",
		"duel.belt":      "ff0000",
		"duel.spark":     "ffff00",
	} {
		if ctrl.GetColorHex(name) == "" {
			ctrl.SetColorHex(name, hex)
		}
	}
	return &Swordfight{
		base:  base{level: 100},
		ctrl:  ctrl,
		hero:  newFighter(duelHeroX, 1),
		rival: newFighter(duelRivalX, -1),
	}
}

func (s *Swordfight) Name() string { return "swordfight" }

func (s *Swordfight) Interval(level int) time.Duration {
	if level <= battery.LowThreshold {
		return duelInterval * 2
	}
	return duelInterval
}

func (s *Swordfight) clampFighters() {
	if s.hero.x < 30 {
		s.hero.x = 30
	}
	if s.hero.x > W/2-20 {
		s.hero.x = W/2 - 20
	}
	if s.rival.x > W-30 {
		s.rival.x = W - 30
	}
	if s.rival.x < W/2+20 {
		s.rival.x = W/2 + 20
	}
}

func (s *Swordfight) Update(now time.Time, frame int) {
	s.now = now
	s.gframe++
	s.seqFrame++

	if s.seqFrame >= duelSeq[s.seqIdx].dur {
		s.seqFrame = 0
		s.seqIdx = (s.seqIdx + 1) % len(duelSeq)
		s.clampFighters()

		next := duelSeq[s.seqIdx]
		s.hero.pose = next.hero
		s.rival.pose = next.rival

		if next.clash {
			s.sparks = true
			s.sparkLife = sparkFrames

			hHand, hTip := s.hero.swordLine(s.shakeDX, s.shakeDY)
			rHand, rTip := s.rival.swordLine(s.shakeDX, s.shakeDY)
			if p, ok := geom.SegmentIntersect(hHand, hTip, rHand, rTip); ok {
				s.sparkX, s.sparkY = p.X, p.Y
			} else {
				hMid := geom.Mid(hHand, hTip)
				rMid := geom.Mid(rHand, rTip)
				s.sparkX = (hMid.X + rMid.X) / 2
				s.sparkY = (hMid.Y + rMid.Y) / 2
			}

			if s.level > battery.LowThreshold {
				s.shakeFrames = 1
				s.shakeMag = 1
			}
			if s.level > 50 && s.clangCooldown == 0 {
				log.Printf("swordfight: clang at (%d,%d)", s.sparkX, s.sparkY)
				s.clangCooldown = clangEvery
			}
		}
	}

	s.hero.settle()
	s.rival.settle()

	// Footwork, kept inside the arena so the blades meet mid-screen.
	switch {
	case s.hero.pose == poseStepFwd && s.hero.x < s.rival.x-20:
		s.hero.x++
	case (s.hero.pose == poseStepBack || s.hero.pose == poseStruck) && s.hero.x > 35:
		s.hero.x--
	}
	switch {
	case s.rival.pose == poseStepFwd && s.rival.x > s.hero.x+20:
		s.rival.x--
	case (s.rival.pose == poseStepBack || s.rival.pose == poseStruck) && s.rival.x < W-35:
		s.rival.x++
	}
	s.clampFighters()

	if s.sparks {
		s.sparkLife--
		if s.sparkLife <= 0 {
			s.sparks = false
		}
	}
	if s.clangCooldown > 0 {
		s.clangCooldown--
	}

	if s.shakeFrames > 0 && s.shakeMag > 0 {
		m := s.shakeMag
		if s.gframe&1 != 0 {
			s.shakeDX = -m
		} else {
			s.shakeDX = m
		}
		if s.gframe&2 != 0 {
			s.shakeDY = m
		} else {
			s.shakeDY = -m
		}
		s.shakeFrames--
	} else {
		s.shakeDX = 0
		s.shakeDY = 0
	}
}

func (s *Swordfight) Draw(dc *gg.Context) {
	s.drawBackground(dc)
	s.drawFighter(dc, &s.rival, false)
	s.drawFighter(dc, &s.hero, true)
	s.drawSparks(dc)

	drawClock(dc, s.now, 20, "ffffff")
	drawBatteryText(dc, s.level, "ffffff")
	drawDate(dc, s.now, duelGroundY+9, "aaaaaa", "Mon Jan 02")
}

func (s *Swordfight) drawBackground(dc *gg.Context) {
	const h = 22.0
	fillRect(dc, s.ctrl.GetColor("duel.sky1"), 0, 0, W, h)
	fillRect(dc, s.ctrl.GetColor("duel.sky2"), 0, h, W, h)
	fillRect(dc, s.ctrl.GetColor("duel.sky3"), 0, 2*h, W, duelGroundY-2*h)
	fillRect(dc, s.ctrl.GetColor("duel.ground"), 0, duelGroundY, W, H-duelGroundY)
	dc.SetHexColor("000000")
	dc.SetLineWidth(2)
	dc.DrawLine(0, duelGroundY, W, duelGroundY)
	dc.Stroke()
}

func (s *Swordfight) drawFighter(dc *gg.Context, f *fighter, hero bool) {
	x := float64(f.x + s.shakeDX)
	y := float64(duelGroundY + s.shakeDY)
	d := f.dir
	fd := float64(d)

	lean := float64(f.cur.lean * d)
	stepFwd := float64(f.cur.stepFwd * d)
	stepBack := float64(f.cur.stepBack * d)
	crouch := float64(f.cur.crouch)
	armRaise := float64(f.cur.armRaise)

	cx := x + lean
	cy := y + crouch

	var pants, vest = s.ctrl.GetColor("duel.rival"), s.ctrl.GetColor("duel.rivalVest")
	if hero {
		pants, vest = s.ctrl.GetColor("duel.hero"), s.ctrl.GetColor("duel.heroVest")
	}
	skin := s.ctrl.GetColor("duel.skin")
	hair := s.ctrl.GetColor("duel.hair")
	belt := s.ctrl.GetColor("duel.belt")

	// Legs, baggy pants.
	hipY := cy - 30
	kneeY := cy - 12
	backFoot := x - stepBack
	frontFoot := x + stepFwd
	backKnee := x + (backFoot-x)/2 - 3*fd
	frontKnee := x + stepFwd/2 + 5*fd
	fkY := kneeY
	if f.pose == poseThrust {
		fkY -= 6
	}

	strokeLine(dc, pants, 11, cx-3*fd, hipY, backKnee, kneeY)
	strokeLine(dc, pants, 5, backKnee, kneeY, backFoot, cy-2)
	strokeLine(dc, pants, 13, cx+3*fd, hipY, frontKnee, fkY)
	strokeLine(dc, pants, 5, frontKnee, fkY, frontFoot, cy-2)

	// Ankle wraps and pointed shoes.
	strokeLine(dc, hair, 1, backFoot-3, cy-4, backFoot+3, cy-4)
	strokeLine(dc, hair, 1, frontFoot-3, cy-4, frontFoot+3, cy-4)
	fillRect(dc, hair, backFoot-2, cy-3, 7, 4)
	fillRect(dc, hair, frontFoot-2, cy-3, 7, 4)

	// Torso.
	shoulderY := cy - 52
	chestY := cy - 42
	waistY := cy - 32
	strokeLine(dc, vest, 10, cx, shoulderY+2, cx, chestY)
	strokeLine(dc, vest, 6, cx, chestY, cx, waistY)

	// Belt sash.
	strokeLine(dc, belt, 3, cx-5, waistY-1, cx+5, waistY-1)
	if hero {
		strokeLine(dc, belt, 3, cx+4*fd, waistY, cx+6*fd, waistY+8)
	}

	// Back arm.
	backArmX := cx - 6*fd
	if f.pose == poseThrust {
		strokeLine(dc, skin, 4, backArmX, shoulderY+5, backArmX-12*fd, shoulderY+14)
		fillCircle(dc, skin, backArmX-13*fd, shoulderY+15, 3)
	} else {
		elbowX := backArmX - 4*fd
		elbowY := shoulderY + 14
		strokeLine(dc, skin, 4, backArmX, shoulderY+5, elbowX, elbowY)
		strokeLine(dc, skin, 4, elbowX, elbowY, elbowX-2*fd, waistY-2)
	}

	// Head.
	headX := cx
	headY := cy - 62
	fillCircle(dc, hair, headX-3*fd, headY-2, 6)
	fillCircle(dc, hair, headX-6*fd, headY+1, 4)
	fillCircle(dc, skin, headX, headY, 7)
	fillCircle(dc, hair, headX, headY-5, 5)

	// Headband.
	bandCol := vest
	if hero {
		bandCol = belt
	}
	strokeLine(dc, bandCol, 2, headX-6, headY-2, headX+6, headY-2)
	if hero {
		strokeLine(dc, bandCol, 2, headX-6, headY-2, headX-10, headY+4)
	}

	fillCircle(dc, hair, headX+2*fd, headY-1, 1)
	strokeLine(dc, skin, 3, headX, headY+6, cx, shoulderY+2)

	// Sword arm.
	armX := cx + 6*fd
	armY := shoulderY + 5 - armRaise
	sin, cos := swordTrig(f.cur.swordAng)

	elbowX := armX + fd*sin*10
	elbowY := armY - cos*10
	strokeLine(dc, skin, 4, armX, armY, elbowX, elbowY)

	handX := elbowX + fd*sin*10
	handY := elbowY - cos*10
	strokeLine(dc, skin, 3, elbowX, elbowY, handX, handY)
	fillCircle(dc, skin, handX, handY, 3)

	// Blade, long enough to reach the other fighter.
	swordHex := "aaaaaa"
	if hero {
		swordHex = "ffffff"
	}
	dc.SetHexColor(swordHex)
	dc.SetLineWidth(3)
	tipX := handX + fd*sin*50
	tipY := handY - cos*50
	dc.DrawLine(handX, handY, tipX, tipY)
	dc.Stroke()

	// Edge highlight.
	dc.SetHexColor("ffffff")
	dc.SetLineWidth(1)
	dc.DrawLine(handX+fd*sin*25, handY-cos*25, tipX, tipY)
	dc.Stroke()

	// Crossguard and pommel.
	strokeLine(dc, hair, 3,
		handX-cos*6, handY-fd*sin*6,
		handX+cos*6, handY+fd*sin*6)
	fillCircle(dc, hair, handX-fd*sin*4, handY+cos*4, 2)
}

func (s *Swordfight) drawSparks(dc *gg.Context) {
	if !s.sparks {
		return
	}
	spark := s.ctrl.GetColor("duel.spark")
	sx, sy := float64(s.sparkX), float64(s.sparkY)

	for i := 0; i < 16; i++ {
		a := rad(s.gframe*8000 + i*angleMax/16)
		dist := float64(4 + s.sparkLife*3)
		fillCircle(dc, spark, sx+math.Sin(a)*dist, sy+math.Cos(a)*dist, 3)
	}
	for i := 0; i < 8; i++ {
		a := rad(s.gframe*12000 + i*angleMax/8)
		dist := float64(2 + s.sparkLife)
		fillCircle(dc, spark, sx+math.Sin(a)*dist, sy+math.Cos(a)*dist, 2)
	}

	dc.SetHexColor("ffffff")
	dc.DrawCircle(sx, sy, 6)
	dc.Fill()
	fillCircle(dc, spark, sx, sy, 4)
}
