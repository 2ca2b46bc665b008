// Command epdface runs a face on a Waveshare 2.13" V4 e-paper HAT.
//
// The panel cannot keep up with the animation tick, so frames are
// pushed at a slower cadence with partial refresh, and a full refresh
// clears ghosting every few partials.
package main

import (
	"context"
	"errors"
	"flag"
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"
	"os/signal"
	"reflect"
	"strings"
	"syscall"
	"time"
	"unsafe"

	xdraw "golang.org/x/image/draw"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/devices/v3/waveshare2in13v4"
	"periph.io/x/host/v3"

	"github.com/dailypush/watchface-go/internal/anim"
	"github.com/dailypush/watchface-go/internal/battery"
	"github.com/dailypush/watchface-go/internal/control"
	"github.com/dailypush/watchface-go/internal/epdimg"
	"github.com/dailypush/watchface-go/internal/faces"
)

func main() {
	faceFlag := flag.String("face", "castle", "face to run: "+strings.Join(faces.Names(), ", "))
	supplyFlag := flag.String("supply", "", "power_supply name (empty autodetects)")
	levelFlag := flag.Int("battery", 100, "fallback battery percent when no supply is readable")
	partialFlag := flag.Bool("partial", true, "enable partial refresh policy")
	rotateFlag := flag.Bool("rotate", false, "rotate 90 degrees for sideways-mounted panels")
	pushFlag := flag.Duration("push", time.Second, "minimum delay between panel refreshes")
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

	var src battery.Source
	if s, err := battery.NewSysfsSource(*supplyFlag); err == nil {
		src = s
	} else {
		log.Printf("no battery supply, simulating %d%%: %v", *levelFlag, err)
		src = battery.NewSimSource(*levelFlag)
	}

	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	spiPort, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer spiPort.Close()

	opts := waveshare2in13v4.EPD2in13v4
	display, err := waveshare2in13v4.NewHat(spiPort, &opts)
	if err != nil {
		log.Fatal(err)
	}
	defer display.Halt()

	if err := display.Init(); err != nil {
		log.Fatal(err)
	}
	_ = setDisplayMode(display, false)
	if err := display.Clear(color.White); err != nil {
		log.Fatal(err)
	}
	log.Printf("epdface: %s, partial=%v", face.Name(), *partialFlag)

	var (
		lastGray         *image.Gray
		lastPush         time.Time
		lastFull         = time.Now()
		partialSinceFull = 0
	)
	sink := func(img image.Image) {
		now := time.Now()
		if now.Sub(lastPush) < *pushFlag {
			return
		}
		lastPush = now

		bounds := display.Bounds()
		target := bounds
		if *rotateFlag {
			target = image.Rect(0, 0, bounds.Dy(), bounds.Dx())
		}
		gray := epdimg.Threshold(fit(img, target), 128)
		if *rotateFlag {
			gray = epdimg.Rotate90(gray)
		}
		gray = epdimg.CenterIn(gray, bounds, 0xff)

		drawRect := bounds
		shouldSend := true
		usePartial := *partialFlag && lastGray != nil
		forceFull := !usePartial || partialSinceFull >= 6 || now.Sub(lastFull) >= 24*time.Hour
		if usePartial {
			if diff, ok := epdimg.DiffRect(lastGray, gray); ok {
				drawRect = epdimg.AlignX8(diff, bounds)
			} else {
				shouldSend = false
			}
		}
		if shouldSend {
			buf := image1bit.NewVerticalLSB(bounds)
			draw.Draw(buf, buf.Bounds(), gray, image.Point{}, draw.Src)
			if forceFull {
				drawRect = bounds
				_ = setDisplayMode(display, false)
			} else {
				_ = setDisplayMode(display, true)
			}
			if err := display.Draw(drawRect, buf, image.Point{}); err != nil {
				log.Printf("panel draw failed: %v", err)
			} else if forceFull {
				partialSinceFull = 0
				lastFull = now
			} else {
				partialSinceFull++
			}
		}
		lastGray = gray
	}

	runner := anim.NewRunner(face, src, faces.W, faces.H, sink)

	if *portFlag > 0 {
		hooks := control.Hooks{
			Shake: runner.Shake,
			SetFace: func(name string) error {
				f, err := faces.New(name, ctrl)
				if err != nil {
					return err
				}
				runner.SetFace(f)
				return nil
			},
			FaceNames: faces.Names,
		}
		go control.Serve(*hostFlag, *portFlag, ctrl, hooks)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := runner.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}

	_ = setDisplayMode(display, false)
	if err := display.Clear(color.White); err != nil {
		log.Printf("exit clear failed: %v", err)
	}
	if err := display.Sleep(); err != nil {
		log.Printf("exit sleep failed: %v", err)
	}
}

// fit scales src to the largest size that fits box, preserving aspect.
func fit(src image.Image, box image.Rectangle) image.Image {
	sb := src.Bounds()
	scale := math.Min(
		float64(box.Dx())/float64(sb.Dx()),
		float64(box.Dy())/float64(sb.Dy()))
	dst := image.NewRGBA(image.Rect(0, 0,
		int(float64(sb.Dx())*scale), int(float64(sb.Dy())*scale)))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, sb, xdraw.Src, nil)
	return dst
}

var errNoModeField = errors.New("display mode field unavailable")

// The driver picks full or partial waveforms from an unexported field;
// poke it directly rather than re-running Init for every mode change.
func setDisplayMode(display *waveshare2in13v4.Dev, partial bool) error {
	v := reflect.ValueOf(display).Elem().FieldByName("mode")
	if !v.IsValid() || !v.CanAddr() {
		return errNoModeField
	}
	ptr := reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
	if partial {
		ptr.Set(reflect.ValueOf(waveshare2in13v4.Partial))
	} else {
		ptr.Set(reflect.ValueOf(waveshare2in13v4.Full))
	}
	return nil
}
