package movement

import (
	"errors"
	"fmt"

	"github.com/cjeanneret/HexMove/internal/debug"
)

// ErrCapacityMismatch means the generated count differs from Profile.Capacity.
var ErrCapacityMismatch = errors.New("movement: generated count does not match declared capacity")

// Zone classifies a step of the sweep.
type Zone int

const (
	ZoneNormal   Zone = iota // single step at normal speed
	ZoneSlow                 // duplicated step near either end
	ZoneEndpoint             // 0 or angle, never duplicated
)

func (z Zone) String() string {
	switch z {
	case ZoneSlow:
		return "slow"
	case ZoneEndpoint:
		return "endpoint"
	default:
		return "normal"
	}
}

// Table is a generated movement sequence. It is not modified after Generate returns.
type Table struct {
	Profile Profile
	Lower   int // last step of the leading slow zone
	Upper   int // first step of the trailing slow zone

	positions []int
}

// Summary counts table entries per zone.
type Summary struct {
	Endpoints int
	Slow      int // entries, so each slow step counts twice
	Normal    int
}

// Generate builds the movement sequence for p.
//
// Steps 0 and p.Angle are written once. Steps with n <= lower or n >= upper
// are written twice. Every other step is written once.
func Generate(p Profile) *Table {
	lower, upper := p.Bounds()
	t := &Table{
		Profile:   p,
		Lower:     lower,
		Upper:     upper,
		positions: make([]int, 0, p.ExpectedCount()),
	}

	trace := debug.IsEnabled(debug.LevelTrace)
	for n := 0; n <= p.Angle; n++ {
		zone := t.zoneOf(n)
		t.positions = append(t.positions, n)
		if zone == ZoneSlow {
			t.positions = append(t.positions, n)
		}
		if trace {
			debug.Position(n, zone.String())
		}
	}
	return t
}

func (t *Table) zoneOf(n int) Zone {
	switch {
	case n == 0 || n == t.Profile.Angle:
		return ZoneEndpoint
	case n <= t.Lower || n >= t.Upper:
		return ZoneSlow
	default:
		return ZoneNormal
	}
}

// Positions returns a copy of the generated sequence.
func (t *Table) Positions() []int {
	out := make([]int, len(t.positions))
	copy(out, t.positions)
	return out
}

// Len returns the number of generated positions.
func (t *Table) Len() int {
	return len(t.positions)
}

// Capacity returns the declared size for the table's profile.
func (t *Table) Capacity() int {
	return t.Profile.Capacity()
}

// CheckCapacity reports whether the declared capacity fits the generated count.
func (t *Table) CheckCapacity() error {
	if c := t.Capacity(); c != t.Len() {
		return fmt.Errorf("%w: capacity=%d generated=%d (%s)", ErrCapacityMismatch, c, t.Len(), t.Profile)
	}
	return nil
}

// Zone returns the zone of the i-th entry. It panics if i is out of range.
func (t *Table) Zone(i int) Zone {
	return t.zoneOf(t.positions[i])
}

// Summary returns per-zone entry counts.
func (t *Table) Summary() Summary {
	var s Summary
	for i := range t.positions {
		switch t.Zone(i) {
		case ZoneEndpoint:
			s.Endpoints++
		case ZoneSlow:
			s.Slow++
		default:
			s.Normal++
		}
	}
	return s
}
