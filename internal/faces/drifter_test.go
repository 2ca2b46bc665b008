package faces

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dailypush/watchface-go/internal/control"
)

func TestDrifterRespawnsOffscreen(t *testing.T) {
	d := NewDrifter(control.New())

	// Respawn rolls a fresh direction, so the only fixed point is that
	// the comet reappears on the off-screen edge matching it.
	checkRespawned := func(o *drifterObj) {
		t.Helper()
		switch o.direction {
		case 1:
			assert.Equal(t, -10, o.x)
		case -1:
			assert.Equal(t, W+10, o.x)
		default:
			t.Fatalf("respawn rolled direction %d", o.direction)
		}
		assert.GreaterOrEqual(t, o.y, 30, "respawn y should land in the 30..130 band")
		assert.LessOrEqual(t, o.y, 130)
		assert.GreaterOrEqual(t, o.speed, 1)
		assert.LessOrEqual(t, o.speed, 3)
	}

	o := &d.objects[0]
	o.direction = 1
	o.x = W + 20
	d.Update(time.Now(), 1)
	checkRespawned(o)

	o.direction = -1
	o.x = -20
	d.Update(time.Now(), 2)
	checkRespawned(o)
}

func TestDrifterSparksRiseAndDie(t *testing.T) {
	d := NewDrifter(control.New())
	now := time.Now()
	for i := 1; i <= 500; i++ {
		d.Update(now.Add(time.Duration(i)*drifterInterval), i)
		for j := range d.sparks {
			if d.sparks[j].active {
				assert.GreaterOrEqual(t, d.sparks[j].y, 0)
				assert.LessOrEqual(t, d.sparks[j].y, H)
			}
		}
	}
}

func TestDrifterPhaseWraps(t *testing.T) {
	d := NewDrifter(control.New())
	now := time.Now()
	for i := 1; i <= 1000; i++ {
		d.Update(now, i)
		assert.GreaterOrEqual(t, d.phase, 0)
		assert.Less(t, d.phase, angleMax)
	}
}
