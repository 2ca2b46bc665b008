// Package control is the runtime tuning surface: named float vars and hex
// colors that an HTTP endpoint or a signal handler can poke while a face
// runs.
package control

import (
	"encoding/json"
	"log"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

type Control struct {
	mu     sync.RWMutex
	Vars   map[string]float64
	Colors map[string]string
}

func New() *Control {
	return &Control{
		Vars:   make(map[string]float64),
		Colors: make(map[string]string),
	}
}

func (c *Control) GetVar(name string) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Vars[name]
}

func (c *Control) SetVar(name string, v float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Vars[name] = v
}

func (c *Control) GetColorHex(name string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Colors[name]
}

func (c *Control) SetColorHex(name, hex string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Colors[name] = strings.TrimPrefix(hex, "#")
}

func (c *Control) GetColor(name string) colorful.Color {
	hex := "#" + c.GetColorHex(name)
	col, err := colorful.Hex(hex)
	if err != nil {
		log.Printf("control: bad color %s=%s: %v", name, hex, err)
	}
	return col
}

func (c *Control) SetColor(name string, col colorful.Color) {
	c.SetColorHex(name, strings.TrimPrefix(col.Hex(), "#"))
}

// State serializes the whole control set.
func (c *Control) State() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, _ := json.Marshal(struct {
		Vars   map[string]float64
		Colors map[string]string
	}{c.Vars, c.Colors})
	return string(b)
}

// Load replaces the control set from State output.
func (c *Control) Load(jsonState string) error {
	var in struct {
		Vars   map[string]float64
		Colors map[string]string
	}
	if err := json.Unmarshal([]byte(jsonState), &in); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if in.Vars != nil {
		c.Vars = in.Vars
	}
	if in.Colors != nil {
		c.Colors = in.Colors
	}
	return nil
}
