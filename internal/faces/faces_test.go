package faces

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailypush/watchface-go/internal/control"
)

func TestRegistry(t *testing.T) {
	assert.Equal(t,
		[]string{"beach", "castle", "drifter", "garden", "monkeys", "swordfight"},
		Names())

	ctrl := control.New()
	for _, name := range Names() {
		f, err := New(name, ctrl)
		require.NoError(t, err)
		assert.Equal(t, name, f.Name())
	}

	_, err := New("disco", ctrl)
	assert.Error(t, err)
}

func TestThrottle(t *testing.T) {
	assert.Equal(t, 100*time.Millisecond, throttle(50*time.Millisecond, 20, false))
	assert.Equal(t, 50*time.Millisecond, throttle(50*time.Millisecond, 20, true))
	assert.Equal(t, 50*time.Millisecond, throttle(50*time.Millisecond, 80, false))
}

// Every face should survive a couple of seconds of ticks and a full
// draw at any battery level without touching memory it shouldn't.
func TestFacesTickAndDraw(t *testing.T) {
	for _, name := range Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			ctrl := control.New()
			f, err := New(name, ctrl)
			require.NoError(t, err)
			if g, ok := f.(*Garden); ok {
				g.StateFile = filepath.Join(t.TempDir(), "garden.json")
			}

			for _, level := range []int{100, 21, 20, 5} {
				f.Battery(level, false)
				assert.Positive(t, f.Interval(level))

				now := time.Now()
				for i := 1; i <= 60; i++ {
					f.Update(now.Add(time.Duration(i)*50*time.Millisecond), i)
				}
				dc := gg.NewContext(W, H)
				f.Draw(dc)
			}
		})
	}
}
