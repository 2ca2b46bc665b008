// Package faces holds the watchface scenes. Every face renders a 144x168
// canvas and owns its own sprite state; the anim package drives the tick
// loop and battery plumbing.
package faces

import (
	"fmt"
	"sort"
	"time"

	"github.com/dailypush/watchface-go/internal/anim"
	"github.com/dailypush/watchface-go/internal/battery"
	"github.com/dailypush/watchface-go/internal/control"
)

// Canvas dimensions, shared by all faces.
const (
	W = 144
	H = 168
)

// Factory builds a face wired to the shared control surface.
type Factory func(ctrl *control.Control) anim.Face

var registry = map[string]Factory{
	"swordfight": func(c *control.Control) anim.Face { return NewSwordfight(c) },
	"beach":      func(c *control.Control) anim.Face { return NewBeach(c) },
	"castle":     func(c *control.Control) anim.Face { return NewCastle(c) },
	"garden":     func(c *control.Control) anim.Face { return NewGarden(c) },
	"monkeys":    func(c *control.Control) anim.Face { return NewMonkeys(c) },
	"drifter":    func(c *control.Control) anim.Face { return NewDrifter(c) },
}

// New builds the named face.
func New(name string, ctrl *control.Control) (anim.Face, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown face %q (have %v)", name, Names())
	}
	return f(ctrl), nil
}

// Names lists the registered faces, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// base carries the battery and clock state every face tracks the same
// way. Update implementations stash now here so Draw renders the tick's
// timestamp.
type base struct {
	level    int
	charging bool
	now      time.Time
}

func (b *base) Battery(level int, charging bool) {
	b.level = level
	b.charging = charging
}

// throttle doubles the frame interval at low battery.
func throttle(normal time.Duration, level int, charging bool) time.Duration {
	if level <= battery.LowThreshold && !charging {
		return normal * 2
	}
	return normal
}
