package faces

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dailypush/watchface-go/internal/control"
)

func TestBeachWavePhases(t *testing.T) {
	b := NewBeach(control.New())

	start := [3]int{b.waves[0].phase, b.waves[1].phase, b.waves[2].phase}
	b.Update(time.Now(), 1)
	for i := range b.waves {
		assert.Equal(t, (start[i]+b.waves[i].speed)%angleMax, b.waves[i].phase, "wave %d", i)
	}

	// Phases stay inside the angle circle over a long run.
	for i := 2; i < 2000; i++ {
		b.Update(time.Now(), i)
	}
	for i := range b.waves {
		assert.GreaterOrEqual(t, b.waves[i].phase, 0)
		assert.Less(t, b.waves[i].phase, angleMax)
	}
}

func TestBeachLayersStayOrdered(t *testing.T) {
	b := NewBeach(control.New())
	// Back to front: higher on screen means smaller y.
	assert.Less(t, b.waves[2].baseY, b.waves[1].baseY)
	assert.Less(t, b.waves[1].baseY, b.waves[0].baseY)
	// And speeds fall off with distance.
	assert.Greater(t, b.waves[0].speed, b.waves[1].speed)
	assert.Greater(t, b.waves[1].speed, b.waves[2].speed)
}
