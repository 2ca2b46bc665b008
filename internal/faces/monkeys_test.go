package faces

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailypush/watchface-go/internal/control"
)

func TestShakeKnocksMonkeysDown(t *testing.T) {
	f := NewMonkeys(control.New())
	f.Shake()
	for i := range f.monkeys {
		assert.Equal(t, trickFalling, f.monkeys[i].anim.trick)
		assert.Equal(t, 0, f.monkeys[i].anim.frame)
	}

	// A monkey already falling keeps falling.
	f.monkeys[0].anim.frame = 30
	f.Shake()
	assert.Equal(t, 30, f.monkeys[0].anim.frame)
}

func TestFallenMonkeyClimbsBackUp(t *testing.T) {
	f := NewMonkeys(control.New())
	f.Shake()

	m := &f.monkeys[0]
	for i := 0; i < trickFrames[trickFalling]; i++ {
		f.updateMonkey(m)
	}
	require.Equal(t, trickVineSwing, m.anim.trick)
	assert.Equal(t, 0, m.anim.frame)

	// Back on a real vine, hanging just above its end.
	v := f.vines[m.anim.vineIndex]
	assert.Equal(t, v.topY+v.length-10, m.anim.startY)
}

func TestMonkeyStateValidation(t *testing.T) {
	f := NewMonkeys(control.New())
	m := &f.monkeys[0]

	m.anim.frame = 1000
	f.updateMonkey(m)
	assert.Equal(t, trickVineSwing, m.anim.trick)
	assert.Less(t, m.anim.frame, 10)

	m.anim.maxFrames = 999
	f.updateMonkey(m)
	assert.Equal(t, trickFrames[trickVineSwing], m.anim.maxFrames)

	m.anim.trick = trickCount + 3
	f.updateMonkey(m)
	assert.Equal(t, trickVineSwing, m.anim.trick)
}

func TestMonkeysStayInBounds(t *testing.T) {
	f := NewMonkeys(control.New())
	now := time.Now()
	for i := 1; i <= 600; i++ {
		f.Update(now.Add(time.Duration(i)*monkeysInterval), i)
	}
	for i := range f.monkeys {
		m := &f.monkeys[i]
		assert.GreaterOrEqual(t, m.x, 10)
		assert.LessOrEqual(t, m.x, W-10)
		assert.GreaterOrEqual(t, m.y, canopyTop+15)
		assert.LessOrEqual(t, m.y, monkeyGround-5)
		assert.GreaterOrEqual(t, m.anim.trick, trick(0))
		assert.Less(t, m.anim.trick, trickCount)
	}
}

func TestMonkeysRestWhileCharging(t *testing.T) {
	f := NewMonkeys(control.New())
	f.Battery(80, true)

	before := f.monkeys
	vines := f.vines
	f.Update(time.Now(), 1)
	assert.Equal(t, before, f.monkeys)
	assert.Equal(t, vines, f.vines)
}

func TestMonkeysInterval(t *testing.T) {
	f := NewMonkeys(control.New())
	assert.Equal(t, monkeysInterval, f.Interval(100))
	assert.Equal(t, monkeysLowInterval, f.Interval(20))
}

func TestVineLayout(t *testing.T) {
	f := NewMonkeys(control.New())
	assert.Equal(t, 15, f.vines[0].topX)
	assert.Equal(t, W-15, f.vines[numVines-1].topX)
	for i := range f.vines {
		assert.GreaterOrEqual(t, f.vines[i].length, 20)
		assert.LessOrEqual(t, f.vines[i].length, 70)
	}
}
