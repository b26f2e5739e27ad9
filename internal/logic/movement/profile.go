package movement

import (
	"errors"
	"fmt"
)

// Built-in sweep parameters used when no config file is given.
const (
	DefaultAngle          = 30 // total sweep in degrees
	DefaultSlowPercentage = 10 // share of the sweep treated as slow zone (0-100)
	DefaultSlowRepeat     = 2  // slow-zone repeat count used by the capacity formula
)

// ErrNegative is returned by Profile.Validate when a parameter is below zero.
var ErrNegative = errors.New("movement: parameter must not be negative")

// Profile holds the three parameters of a servo sweep.
type Profile struct {
	Angle          int // total sweep in degrees
	SlowPercentage int // slow zone as a percentage of Angle
	SlowRepeat     int // how many times a slow-zone step counts in Capacity
}

// DefaultProfile returns the built-in 30/10/2 profile.
func DefaultProfile() Profile {
	return Profile{
		Angle:          DefaultAngle,
		SlowPercentage: DefaultSlowPercentage,
		SlowRepeat:     DefaultSlowRepeat,
	}
}

// Validate only checks the sign of each parameter.
// SlowPercentage above 100 is accepted and simply widens both slow zones.
func (p Profile) Validate() error {
	if p.Angle < 0 {
		return fmt.Errorf("%w: angle=%d", ErrNegative, p.Angle)
	}
	if p.SlowPercentage < 0 {
		return fmt.Errorf("%w: slow_percentage=%d", ErrNegative, p.SlowPercentage)
	}
	if p.SlowRepeat < 0 {
		return fmt.Errorf("%w: slow_repeat=%d", ErrNegative, p.SlowRepeat)
	}
	return nil
}

// Bounds returns the last step of the leading slow zone (lower) and
// the first step of the trailing slow zone (upper).
func (p Profile) Bounds() (lower, upper int) {
	lower = p.Angle * p.SlowPercentage / 100
	upper = p.Angle - lower
	return lower, upper
}

// Capacity returns the declared table size:
// 1 + angle + (slow_percentage*angle/100)*slow_repeat.
// It matches the generated count only for some profiles, see Table.CheckCapacity.
func (p Profile) Capacity() int {
	return 1 + p.Angle + (p.SlowPercentage*p.Angle/100)*p.SlowRepeat
}

// ExpectedCount returns the number of positions Generate will produce,
// computed without building the table.
func (p Profile) ExpectedCount() int {
	if p.Angle < 0 {
		return 0
	}
	return p.Angle + 1 + p.slowSteps()
}

// slowSteps counts interior steps (0 < n < angle) inside either slow zone.
func (p Profile) slowSteps() int {
	last := p.Angle - 1
	if last < 1 {
		return 0
	}
	lower, upper := p.Bounds()

	leading := clamp(lower, 0, last)
	first := max(upper, 1)
	trailing := clamp(last-first+1, 0, last)
	overlap := clamp(min(lower, last)-first+1, 0, last)

	return leading + trailing - overlap
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func (p Profile) String() string {
	return fmt.Sprintf("angle=%d slow_percentage=%d slow_repeat=%d", p.Angle, p.SlowPercentage, p.SlowRepeat)
}
