// Command watchface previews the animated faces in a desktop window.
//
// Space or a click shakes the watch; flinging the cursor hard enough
// registers as a shake too. Esc or Q quits.
package main

import (
	"errors"
	"flag"
	"image"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/dailypush/watchface-go/internal/anim"
	"github.com/dailypush/watchface-go/internal/battery"
	"github.com/dailypush/watchface-go/internal/control"
	"github.com/dailypush/watchface-go/internal/faces"
)

type game struct {
	runner *anim.Runner
	next   time.Time
	frame  *ebiten.Image

	cursorX, cursorY int
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.runner.Shake()
	}

	// Cursor flings stand in for the wrist.
	x, y := ebiten.CursorPosition()
	dx, dy := x-g.cursorX, y-g.cursorY
	g.cursorX, g.cursorY = x, y
	if dx != 0 || dy != 0 {
		g.runner.Accel(time.Now(), []anim.AccelSample{
			{X: int32(dx * 60), Y: int32(dy * 60), Z: 1000},
		})
	}

	if now := time.Now(); !now.Before(g.next) {
		g.next = now.Add(g.runner.Step(now))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.frame != nil {
		screen.DrawImage(g.frame, nil)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return faces.W, faces.H
}

func main() {
	faceFlag := flag.String("face", "swordfight", "face to run: "+strings.Join(faces.Names(), ", "))
	levelFlag := flag.Int("battery", 100, "simulated battery percent")
	chargingFlag := flag.Bool("charging", false, "simulate being on the charger")
	drainFlag := flag.Float64("drain", 0, "simulated battery drain in percent per hour")
	scaleFlag := flag.Int("scale", 3, "window scale factor")
	hostFlag := flag.String("host", "127.0.0.1", "control server host")
	portFlag := flag.Int("port", 0, "control server port (0 disables)")
	twelveFlag := flag.Bool("12h", false, "12-hour clock")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	faces.TwelveHour = *twelveFlag

	ctrl := control.New()
	face, err := faces.New(*faceFlag, ctrl)
	if err != nil {
		log.Fatal(err)
	}

	src := battery.NewSimSource(*levelFlag)
	src.SetCharging(*chargingFlag)
	if *drainFlag > 0 {
		src.Drain(*drainFlag)
	}

	g := &game{}
	g.runner = anim.NewRunner(face, src, faces.W, faces.H, func(img image.Image) {
		g.frame = ebiten.NewImageFromImage(img)
	})

	if *portFlag > 0 {
		hooks := control.Hooks{
			Shake: g.runner.Shake,
			SetBattery: func(level int, charging bool) error {
				src.SetLevel(level)
				src.SetCharging(charging)
				return nil
			},
			SetFace: func(name string) error {
				f, err := faces.New(name, ctrl)
				if err != nil {
					return err
				}
				g.runner.SetFace(f)
				return nil
			},
			FaceNames: faces.Names,
		}
		go control.Serve(*hostFlag, *portFlag, ctrl, hooks)
	}

	ebiten.SetWindowSize(faces.W**scaleFlag, faces.H**scaleFlag)
	ebiten.SetWindowTitle("watchface: " + face.Name())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
