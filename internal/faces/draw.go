package faces

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Phases run in a 16-bit angle circle so per-frame increments stay
// integral and wrap for free.
const angleMax = 1 << 16

func rad(a int) float64 {
	return float64(a&(angleMax-1)) * (2 * math.Pi / angleMax)
}

// isin and icos scale a unit sine by an integer amplitude, the usual
// shape of a fixed-point trig lookup.
func isin(a, scale int) int {
	return int(math.Sin(rad(a)) * float64(scale))
}

func icos(a, scale int) int {
	return int(math.Cos(rad(a)) * float64(scale))
}

func strokeLine(dc *gg.Context, col color.Color, w, x1, y1, x2, y2 float64) {
	dc.SetColor(col)
	dc.SetLineWidth(w)
	dc.DrawLine(x1, y1, x2, y2)
	dc.Stroke()
}

func fillCircle(dc *gg.Context, col color.Color, x, y, r float64) {
	dc.SetColor(col)
	dc.DrawCircle(x, y, r)
	dc.Fill()
}

func fillRect(dc *gg.Context, col color.Color, x, y, w, h float64) {
	dc.SetColor(col)
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()
}

func strokeRect(dc *gg.Context, col color.Color, x, y, w, h float64) {
	dc.SetColor(col)
	dc.SetLineWidth(1)
	dc.DrawRectangle(x, y, w, h)
	dc.Stroke()
}
