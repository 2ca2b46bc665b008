package faces

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailypush/watchface-go/internal/control"
)

func newTestGarden(t *testing.T) *Garden {
	t.Helper()
	g := NewGarden(control.New())
	g.StateFile = filepath.Join(t.TempDir(), "garden.json")
	g.plant = plantState{Stage: stageSeed, WaterLevel: 50, LastWatered: time.Now()}
	return g
}

func TestShakeWaters(t *testing.T) {
	g := newTestGarden(t)
	g.plant.WaterLevel = 10

	g.Shake()

	assert.Equal(t, 40, g.plant.WaterLevel)
	assert.Equal(t, 1, g.plant.TotalWaters)
	assert.True(t, g.watering)
	assert.Equal(t, 8, g.plant.GrowthProgress)
	for i := range g.drops {
		assert.True(t, g.drops[i].active)
	}

	g.plant.WaterLevel = 90
	g.Shake()
	assert.Equal(t, waterMax, g.plant.WaterLevel)
}

func TestShakeAdvancesStage(t *testing.T) {
	g := newTestGarden(t)
	g.plant.WaterLevel = 80
	g.plant.GrowthProgress = 96

	g.Shake()

	assert.Equal(t, stageSprout, g.plant.Stage)
	assert.Equal(t, 0, g.plant.GrowthProgress)
	assert.Equal(t, 20, g.growthAnim)
}

func TestFloweringPlantStopsGrowing(t *testing.T) {
	g := newTestGarden(t)
	g.plant.Stage = stageFlowering
	g.plant.WaterLevel = 80

	g.Shake()

	assert.Equal(t, stageFlowering, g.plant.Stage)
	assert.Equal(t, 0, g.plant.GrowthProgress)
}

func TestWiltingPlantDoesNotGrow(t *testing.T) {
	g := newTestGarden(t)
	// Even after the shake's water lands, it stays thirsty; no growth.
	g.plant.WaterLevel = 5

	g.Shake()

	assert.Equal(t, 35, g.plant.WaterLevel)
	assert.Equal(t, 0, g.plant.GrowthProgress)
}

func TestDecayTruncatesWater(t *testing.T) {
	g := newTestGarden(t)
	now := time.Now()
	g.plant.WaterLevel = 100
	g.plant.LastWatered = now.Add(-2 * waterDecayInterval)

	g.decay(now)

	assert.Equal(t, 100-2*waterDecayAmount, g.plant.WaterLevel)
	_, err := os.Stat(g.StateFile)
	assert.NoError(t, err)
}

func TestDriedOutPlantIsReborn(t *testing.T) {
	g := newTestGarden(t)
	g.plant.Stage = stageSmall
	g.plant.WaterLevel = 0
	g.plant.TotalWaters = 17

	g.decay(time.Now())

	assert.Equal(t, stageSeed, g.plant.Stage)
	assert.Equal(t, 30, g.plant.WaterLevel)
	assert.Equal(t, 17, g.plant.TotalWaters, "lifetime waterings survive rebirth")
}

func TestSeedNeverReborn(t *testing.T) {
	g := newTestGarden(t)
	g.plant.Stage = stageSeed
	g.plant.WaterLevel = 0

	g.decay(time.Now())

	assert.Equal(t, 0, g.plant.WaterLevel)
}

func TestStateRoundTrip(t *testing.T) {
	g := newTestGarden(t)
	g.plant.Stage = stageFull
	g.plant.WaterLevel = 64
	g.plant.GrowthProgress = 40
	g.plant.TotalWaters = 9
	g.plant.LastWatered = time.Now()
	g.save()

	g2 := NewGarden(control.New())
	g2.StateFile = g.StateFile
	g2.load()

	assert.Equal(t, stageFull, g2.plant.Stage)
	assert.Equal(t, 64, g2.plant.WaterLevel)
	assert.Equal(t, 40, g2.plant.GrowthProgress)
	assert.Equal(t, 9, g2.plant.TotalWaters)
	assert.WithinDuration(t, g.plant.LastWatered, g2.plant.LastWatered, time.Second)
}

func TestLoadAppliesOfflineDecay(t *testing.T) {
	g := newTestGarden(t)
	g.plant.WaterLevel = 50
	g.plant.LastWatered = time.Now().Add(-2 * waterDecayInterval)
	g.save()

	g2 := NewGarden(control.New())
	g2.StateFile = g.StateFile
	g2.load()

	assert.Equal(t, 50-2*waterDecayAmount, g2.plant.WaterLevel)
}

func TestLoadCorruptStateFile(t *testing.T) {
	g := newTestGarden(t)
	require.NoError(t, os.WriteFile(g.StateFile, []byte("not json"), 0o644))

	g.load()

	assert.Equal(t, stageSeed, g.plant.Stage)
	assert.Equal(t, 50, g.plant.WaterLevel)
}

func TestWateringAnimationEnds(t *testing.T) {
	g := newTestGarden(t)
	g.Shake()

	now := time.Now()
	for i := 1; i <= 25; i++ {
		g.Update(now.Add(time.Duration(i)*gardenInterval), i)
	}
	assert.False(t, g.watering)
	for i := range g.drops {
		assert.False(t, g.drops[i].active, "drop %d should have landed", i)
	}
}
