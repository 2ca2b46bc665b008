package faces

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dailypush/watchface-go/internal/control"
)

func TestKnightsPatrolAndBounce(t *testing.T) {
	c := NewCastle(control.New())
	now := time.Now()

	c.knights[0].x = 6
	c.knights[0].dir = -1
	c.Update(now, 1)
	assert.Equal(t, 5, c.knights[0].x)
	assert.Equal(t, 1, c.knights[0].dir)

	c.knights[1].x = W - 21
	c.knights[1].dir = 1
	c.Update(now, 2)
	assert.Equal(t, W-20, c.knights[1].x)
	assert.Equal(t, -1, c.knights[1].dir)

	for i := 3; i < 1000; i++ {
		c.Update(now, i)
	}
	for i := range c.knights {
		assert.GreaterOrEqual(t, c.knights[i].x, 5)
		assert.LessOrEqual(t, c.knights[i].x, W-20)
		assert.GreaterOrEqual(t, c.knights[i].legPhase, 0)
		assert.Less(t, c.knights[i].legPhase, 8)
	}
}

func TestCastleStarsAreStable(t *testing.T) {
	a := NewCastle(control.New())
	b := NewCastle(control.New())
	assert.Equal(t, a.starsX, b.starsX)
	for _, x := range a.starsX {
		assert.GreaterOrEqual(t, x, 5)
		assert.Less(t, x, W-5)
	}
}

func TestCastleIntervalIgnoresCharging(t *testing.T) {
	c := NewCastle(control.New())
	c.Battery(10, true)
	// Night watch slows down at low battery even on the charger.
	assert.Equal(t, castleLowInterval, c.Interval(10))
	assert.Equal(t, castleInterval, c.Interval(80))
}
