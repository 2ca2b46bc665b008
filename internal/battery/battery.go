// Package battery reads charge state for the animation engine. Faces
// throttle their frame interval below LowThreshold.
package battery

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// LowThreshold is the charge percent at or below which faces switch to
// their low-power frame interval.
const LowThreshold = 20

type State struct {
	Level    int
	Charging bool
}

type Source interface {
	Read() (State, error)
}

const sysfsRoot = "/sys/class/power_supply"

// SysfsSource reads a Linux power-supply node.
type SysfsSource struct {
	dir string
}

// NewSysfsSource opens the named supply, or the first one that reports
// type Battery when name is empty.
func NewSysfsSource(name string) (*SysfsSource, error) {
	if name != "" {
		return &SysfsSource{dir: filepath.Join(sysfsRoot, name)}, nil
	}
	entries, err := os.ReadDir(sysfsRoot)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		dir := filepath.Join(sysfsRoot, e.Name())
		b, err := os.ReadFile(filepath.Join(dir, "type"))
		if err == nil && strings.TrimSpace(string(b)) == "Battery" {
			return &SysfsSource{dir: dir}, nil
		}
	}
	return nil, fmt.Errorf("no battery under %s", sysfsRoot)
}

func (s *SysfsSource) Read() (State, error) {
	return readSupply(s.dir)
}

func readSupply(dir string) (State, error) {
	b, err := os.ReadFile(filepath.Join(dir, "capacity"))
	if err != nil {
		return State{}, err
	}
	level, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil {
		return State{}, fmt.Errorf("bad capacity in %s: %w", dir, err)
	}
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}
	st := State{Level: level}
	if b, err := os.ReadFile(filepath.Join(dir, "status")); err == nil {
		switch strings.TrimSpace(string(b)) {
		case "Charging", "Full":
			st.Charging = true
		}
	}
	return st, nil
}

// SimSource is a settable battery for previews and tests. When a drain
// rate is set the level falls linearly with wall time.
type SimSource struct {
	mu       sync.Mutex
	level    float64
	charging bool
	perHour  float64
	lastRead time.Time
}

func NewSimSource(level int) *SimSource {
	return &SimSource{level: float64(level), lastRead: time.Now()}
}

// Drain makes the level fall by pct per hour of wall time.
func (s *SimSource) Drain(pctPerHour float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.perHour = pctPerHour
}

func (s *SimSource) SetLevel(level int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}
	s.level = float64(level)
}

func (s *SimSource) SetCharging(c bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.charging = c
}

func (s *SimSource) Read() (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	if s.perHour > 0 && !s.charging {
		s.level -= s.perHour * now.Sub(s.lastRead).Hours()
		if s.level < 0 {
			s.level = 0
		}
	}
	s.lastRead = now
	return State{Level: int(s.level), Charging: s.charging}, nil
}
