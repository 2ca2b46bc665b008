package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	jsonString := `
	{"Vars":{"speed":0.3,"wave_amp":5},"Colors":{"sky":"5c0d5c","sea":"0000ff"}}
	`

	c := New()
	require.NoError(t, c.Load(jsonString))
	assert.JSONEq(t, jsonString, c.State())
}

func TestVars(t *testing.T) {
	c := New()
	c.SetVar("speed", 0.25)
	assert.Equal(t, 0.25, c.GetVar("speed"))
	assert.Equal(t, 0.0, c.GetVar("missing"))
}

func TestColors(t *testing.T) {
	c := New()
	c.SetColorHex("sky", "#87ceeb")
	assert.Equal(t, "87ceeb", c.GetColorHex("sky"))

	col := c.GetColor("sky")
	c.SetColor("sky2", col)
	assert.Equal(t, "87ceeb", c.GetColorHex("sky2"))
}

func TestLoadBadJSON(t *testing.T) {
	c := New()
	assert.Error(t, c.Load("{nope"))
}
