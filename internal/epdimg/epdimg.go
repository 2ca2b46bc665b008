// Package epdimg prepares rendered frames for e-paper panels: color to
// 1-bit-style grayscale, rotation into panel orientation, and change
// tracking for partial refresh.
package epdimg

import (
	"image"
	"image/color"
)

// Threshold flattens src to a two-level grayscale image. Pixels with
// luminance at or above cutoff become white, the rest black. E-paper
// panels have no midtones worth keeping.
func Threshold(src image.Image, cutoff uint8) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.GrayModel.Convert(src.At(x, y)).(color.Gray)
			if g.Y >= cutoff {
				dst.SetGray(x, y, color.Gray{Y: 0xff})
			} else {
				dst.SetGray(x, y, color.Gray{Y: 0x00})
			}
		}
	}
	return dst
}

// Rotate90 turns a WxH image into an HxW one, rotated clockwise. Panels
// are wired portrait while faces render portrait too, but a larger panel
// mounted landscape needs this.
func Rotate90(src *image.Gray) *image.Gray {
	sb := src.Bounds()
	w, h := sb.Dx(), sb.Dy()
	dst := image.NewGray(image.Rect(0, 0, h, w))
	for y := 0; y < w; y++ {
		for x := 0; x < h; x++ {
			sx := sb.Min.X + y
			sy := sb.Min.Y + (h - 1 - x)
			dst.SetGray(x, y, src.GrayAt(sx, sy))
		}
	}
	return dst
}

// CenterIn places src centered inside bounds on a bg-filled canvas,
// cropping evenly when src is larger than bounds.
func CenterIn(src *image.Gray, bounds image.Rectangle, bg uint8) *image.Gray {
	dst := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.SetGray(x, y, color.Gray{Y: bg})
		}
	}
	sb := src.Bounds()
	offX := bounds.Min.X + (bounds.Dx()-sb.Dx())/2
	offY := bounds.Min.Y + (bounds.Dy()-sb.Dy())/2
	for y := sb.Min.Y; y < sb.Max.Y; y++ {
		for x := sb.Min.X; x < sb.Max.X; x++ {
			dx := offX + (x - sb.Min.X)
			dy := offY + (y - sb.Min.Y)
			if image.Pt(dx, dy).In(bounds) {
				dst.SetGray(dx, dy, src.GrayAt(x, y))
			}
		}
	}
	return dst
}

// DiffRect returns the tight bounding box of pixels that differ between
// prev and curr, and whether anything changed at all. A nil or
// mismatched prev means the whole frame changed.
func DiffRect(prev, curr *image.Gray) (image.Rectangle, bool) {
	if prev == nil || !prev.Rect.Eq(curr.Rect) {
		return curr.Bounds(), true
	}
	minX, minY := curr.Rect.Max.X, curr.Rect.Max.Y
	maxX, maxY := curr.Rect.Min.X, curr.Rect.Min.Y
	changed := false
	for y := curr.Rect.Min.Y; y < curr.Rect.Max.Y; y++ {
		for x := curr.Rect.Min.X; x < curr.Rect.Max.X; x++ {
			if prev.GrayAt(x, y) != curr.GrayAt(x, y) {
				changed = true
				if x < minX {
					minX = x
				}
				if y < minY {
					minY = y
				}
				if x > maxX {
					maxX = x
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}
	if !changed {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// AlignX8 widens r so its horizontal edges land on byte boundaries,
// which the panel's partial-update window requires, clamped to bounds.
func AlignX8(r, bounds image.Rectangle) image.Rectangle {
	if r.Empty() {
		return r
	}
	x0 := r.Min.X &^ 7
	x1 := (r.Max.X + 7) &^ 7
	if x0 < bounds.Min.X {
		x0 = bounds.Min.X
	}
	if x1 > bounds.Max.X {
		x1 = bounds.Max.X
	}
	if x1 <= x0 {
		return bounds
	}
	return image.Rect(x0, r.Min.Y, x1, r.Max.Y).Intersect(bounds)
}
