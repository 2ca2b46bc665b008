package faces

import (
	"fmt"
	"sync"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/dailypush/watchface-go/internal/battery"
)

// TwelveHour switches the clock readout to a 12-hour format without a
// leading zero.
var TwelveHour bool

var (
	fontOnce sync.Once
	timeFace font.Face
	dateFace font.Face
)

func mustFace(ttf []byte, size float64) font.Face {
	f, err := opentype.Parse(ttf)
	if err != nil {
		panic(err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic(err)
	}
	return face
}

func loadFonts() {
	fontOnce.Do(func() {
		timeFace = mustFace(gobold.TTF, 30)
		dateFace = mustFace(goregular.TTF, 14)
	})
}

func clockText(now time.Time) string {
	if TwelveHour {
		return now.Format("3:04")
	}
	return now.Format("15:04")
}

// drawClock paints the time centered at the given baseline height.
func drawClock(dc *gg.Context, now time.Time, y float64, hex string) {
	loadFonts()
	dc.SetFontFace(timeFace)
	dc.SetHexColor(hex)
	dc.DrawStringAnchored(clockText(now), W/2, y, 0.5, 0.5)
}

// drawDate paints the date centered; layout is a time layout string,
// e.g. "Mon Jan 02" or "Mon, Jan 02".
func drawDate(dc *gg.Context, now time.Time, y float64, hex, layout string) {
	loadFonts()
	dc.SetFontFace(dateFace)
	dc.SetHexColor(hex)
	dc.DrawStringAnchored(now.Format(layout), W/2, y, 0.5, 0.5)
}

// drawBatteryIcon paints the standard top-right battery gauge: outline,
// tip and a fill that goes red when the charge is nearly gone.
func drawBatteryIcon(dc *gg.Context, level int, charging bool, hex string) {
	x, y := float64(W-28), 5.0
	w, h := 22.0, 10.0

	dc.SetHexColor(hex)
	dc.SetLineWidth(1)
	dc.DrawRectangle(x, y, w, h)
	dc.Stroke()
	dc.DrawRectangle(x+w, y+3, 2, 4)
	dc.Fill()

	fill := float64(level) * (w - 4) / 100
	if fill < 2 {
		fill = 2
	}
	switch {
	case level <= battery.LowThreshold:
		dc.SetHexColor("ff0000")
	case level <= 40:
		dc.SetHexColor("ff5500")
	default:
		dc.SetHexColor("00aa00")
	}
	dc.DrawRectangle(x+2, y+2, fill, h-4)
	dc.Fill()

	if charging {
		dc.SetHexColor(hex)
		dc.DrawLine(x-6, y+7, x-4, y+3)
		dc.DrawLine(x-4, y+3, x-4, y+6)
		dc.DrawLine(x-4, y+6, x-2, y+2)
		dc.Stroke()
	}
}

// drawBatteryText paints a plain percentage readout top right.
func drawBatteryText(dc *gg.Context, level int, hex string) {
	loadFonts()
	dc.SetFontFace(dateFace)
	dc.SetHexColor(hex)
	dc.DrawStringAnchored(fmt.Sprintf("%d%%", level), W-6, 12, 1, 0.5)
}
