// Package geom holds the small integer 2D helpers the faces share.
package geom

// Pt is an integer screen point.
type Pt struct {
	X, Y int
}

func Mid(a, b Pt) Pt {
	return Pt{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// SegmentIntersect finds where segments a1-a2 and b1-b2 cross, using
// integer determinants. The second return is false when the segments are
// parallel or the crossing lies outside either segment.
func SegmentIntersect(a1, a2, b1, b2 Pt) (Pt, bool) {
	x1, y1 := int64(a1.X), int64(a1.Y)
	x2, y2 := int64(a2.X), int64(a2.Y)
	x3, y3 := int64(b1.X), int64(b1.Y)
	x4, y4 := int64(b2.X), int64(b2.Y)

	den := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if den == 0 {
		return Pt{}, false
	}

	tNum := (x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)
	uNum := (x1-x3)*(y1-y2) - (y1-y3)*(x1-x2)

	withinT := tNum >= 0 && tNum <= den
	withinU := uNum >= 0 && uNum <= den
	if den < 0 {
		withinT = tNum <= 0 && tNum >= den
		withinU = uNum <= 0 && uNum >= den
	}
	if !withinT || !withinU {
		return Pt{}, false
	}

	ix := x1*den + tNum*(x2-x1)
	iy := y1*den + tNum*(y2-y1)
	return Pt{int(ix / den), int(iy / den)}, true
}
