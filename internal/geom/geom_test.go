package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMid(t *testing.T) {
	assert.Equal(t, Pt{5, 5}, Mid(Pt{0, 0}, Pt{10, 10}))
	assert.Equal(t, Pt{-2, 3}, Mid(Pt{-4, 0}, Pt{0, 6}))
}

func TestSegmentIntersect(t *testing.T) {
	p, ok := SegmentIntersect(Pt{0, 0}, Pt{10, 10}, Pt{0, 10}, Pt{10, 0})
	assert.True(t, ok)
	assert.Equal(t, Pt{5, 5}, p)

	// Parallel.
	_, ok = SegmentIntersect(Pt{0, 0}, Pt{10, 0}, Pt{0, 5}, Pt{10, 5})
	assert.False(t, ok)

	// Lines cross but outside both segments.
	_, ok = SegmentIntersect(Pt{0, 0}, Pt{1, 1}, Pt{10, 0}, Pt{0, 10})
	assert.False(t, ok)

	// Shared endpoint counts as a crossing.
	p, ok = SegmentIntersect(Pt{0, 0}, Pt{5, 5}, Pt{5, 5}, Pt{10, 0})
	assert.True(t, ok)
	assert.Equal(t, Pt{5, 5}, p)
}
