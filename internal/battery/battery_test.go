package battery

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSupply(t *testing.T, dir, capacity, status string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "capacity"), []byte(capacity), 0o644))
	if status != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "status"), []byte(status), 0o644))
	}
}

func TestReadSupply(t *testing.T) {
	dir := t.TempDir()

	writeSupply(t, dir, "57\n", "Discharging\n")
	st, err := readSupply(dir)
	require.NoError(t, err)
	assert.Equal(t, State{Level: 57, Charging: false}, st)

	writeSupply(t, dir, "80", "Charging")
	st, err = readSupply(dir)
	require.NoError(t, err)
	assert.Equal(t, State{Level: 80, Charging: true}, st)

	writeSupply(t, dir, "100", "Full")
	st, err = readSupply(dir)
	require.NoError(t, err)
	assert.True(t, st.Charging)
}

func TestReadSupplyClamps(t *testing.T) {
	dir := t.TempDir()
	writeSupply(t, dir, "150", "Discharging")
	st, err := readSupply(dir)
	require.NoError(t, err)
	assert.Equal(t, 100, st.Level)
}

func TestReadSupplyBadCapacity(t *testing.T) {
	dir := t.TempDir()
	writeSupply(t, dir, "oops", "")
	_, err := readSupply(dir)
	assert.Error(t, err)

	_, err = readSupply(t.TempDir())
	assert.Error(t, err)
}

func TestSimSourceSetters(t *testing.T) {
	s := NewSimSource(50)
	st, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, State{Level: 50}, st)

	s.SetLevel(120)
	st, _ = s.Read()
	assert.Equal(t, 100, st.Level)

	s.SetLevel(-5)
	st, _ = s.Read()
	assert.Equal(t, 0, st.Level)

	s.SetCharging(true)
	st, _ = s.Read()
	assert.True(t, st.Charging)
}

func TestSimSourceDrain(t *testing.T) {
	s := NewSimSource(100)
	s.Drain(10)
	s.lastRead = time.Now().Add(-time.Hour)
	st, err := s.Read()
	require.NoError(t, err)
	assert.InDelta(t, 90, st.Level, 1)

	// Charging holds the level.
	s.SetLevel(100)
	s.SetCharging(true)
	s.lastRead = time.Now().Add(-time.Hour)
	st, _ = s.Read()
	assert.Equal(t, 100, st.Level)
}
