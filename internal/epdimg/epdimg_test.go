package epdimg

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func grayWith(w, h int, pts map[image.Point]uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for p, v := range pts {
		img.SetGray(p.X, p.Y, color.Gray{Y: v})
	}
	return img
}

func TestThreshold(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.RGBA{R: 250, G: 250, B: 250, A: 255})
	src.Set(1, 0, color.RGBA{R: 10, G: 10, B: 10, A: 255})

	out := Threshold(src, 128)
	assert.Equal(t, uint8(0xff), out.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(0x00), out.GrayAt(1, 0).Y)
}

func TestRotate90(t *testing.T) {
	// 3x2 image with a single marked pixel at (0,0).
	src := grayWith(3, 2, map[image.Point]uint8{{X: 0, Y: 0}: 0xff})
	out := Rotate90(src)

	assert.Equal(t, image.Rect(0, 0, 2, 3), out.Bounds())
	// Clockwise rotation sends top-left to top-right.
	assert.Equal(t, uint8(0xff), out.GrayAt(1, 0).Y)
}

func TestDiffRectNoChange(t *testing.T) {
	a := grayWith(4, 4, nil)
	b := grayWith(4, 4, nil)
	_, ok := DiffRect(a, b)
	assert.False(t, ok)
}

func TestDiffRectTightBox(t *testing.T) {
	a := grayWith(8, 8, nil)
	b := grayWith(8, 8, map[image.Point]uint8{
		{X: 2, Y: 3}: 0xff,
		{X: 5, Y: 6}: 0xff,
	})
	r, ok := DiffRect(a, b)
	assert.True(t, ok)
	assert.Equal(t, image.Rect(2, 3, 6, 7), r)
}

func TestDiffRectNilPrev(t *testing.T) {
	b := grayWith(4, 4, nil)
	r, ok := DiffRect(nil, b)
	assert.True(t, ok)
	assert.Equal(t, b.Bounds(), r)
}

func TestAlignX8(t *testing.T) {
	bounds := image.Rect(0, 0, 122, 250)
	r := AlignX8(image.Rect(3, 10, 12, 20), bounds)
	assert.Equal(t, image.Rect(0, 10, 16, 20), r)

	// Already aligned stays put.
	r = AlignX8(image.Rect(8, 0, 16, 8), bounds)
	assert.Equal(t, image.Rect(8, 0, 16, 8), r)

	// Clamped to panel width.
	r = AlignX8(image.Rect(118, 0, 122, 8), bounds)
	assert.Equal(t, image.Rect(112, 0, 122, 8), r)
}

func TestCenterIn(t *testing.T) {
	src := grayWith(2, 2, map[image.Point]uint8{{X: 0, Y: 0}: 0xff})
	out := CenterIn(src, image.Rect(0, 0, 6, 6), 0x80)
	assert.Equal(t, uint8(0xff), out.GrayAt(2, 2).Y)
	assert.Equal(t, uint8(0x80), out.GrayAt(0, 0).Y)
}
