// Command facegif renders a face to an animated GIF, which is handy for
// eyeballing a scene without a window or a panel attached.
package main

import (
	"flag"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dailypush/watchface-go/internal/anim"
	"github.com/dailypush/watchface-go/internal/battery"
	"github.com/dailypush/watchface-go/internal/control"
	"github.com/dailypush/watchface-go/internal/faces"
)

func main() {
	faceFlag := flag.String("face", "beach", "face to render: "+strings.Join(faces.Names(), ", "))
	framesFlag := flag.Int("frames", 100, "number of frames to render")
	levelFlag := flag.Int("battery", 100, "simulated battery percent")
	outFlag := flag.String("o", "face.gif", "output file")
	twelveFlag := flag.Bool("12h", false, "12-hour clock")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	faces.TwelveHour = *twelveFlag

	ctrl := control.New()
	face, err := faces.New(*faceFlag, ctrl)
	if err != nil {
		log.Fatal(err)
	}

	out := &gif.GIF{}
	sink := func(img image.Image) {
		pal := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pal, img.Bounds(), img, image.Point{})
		out.Image = append(out.Image, pal)
	}

	runner := anim.NewRunner(face, battery.NewSimSource(*levelFlag), faces.W, faces.H, sink)

	// Step on the face's own clock so the GIF plays back at the same
	// speed the watch would.
	now := time.Now()
	for i := 0; i < *framesFlag; i++ {
		d := runner.Step(now)
		now = now.Add(d)
		out.Delay = append(out.Delay, int(d/(10*time.Millisecond)))
	}

	f, err := os.Create(*outFlag)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := gif.EncodeAll(f, out); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d frames to %s", len(out.Image), *outFlag)
}
