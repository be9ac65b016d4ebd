// Package clock abstracts the time source used to stamp run reports.
package clock

import (
	"sync"
	"time"
)

// Clock provides the current time.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// Func adapts a function to the Clock interface.
type Func func() time.Time

// Now calls f.
func (f Func) Now() time.Time {
	return f()
}

// System is the wall clock.
var System Clock = Func(time.Now)

// Stepper is a deterministic Clock for tests. Each call to Now returns the
// current value and then advances it by Step.
type Stepper struct {
	mu      sync.Mutex
	current time.Time
	Step    time.Duration
}

// NewStepper creates a Stepper starting at start.
func NewStepper(start time.Time, step time.Duration) *Stepper {
	return &Stepper{current: start, Step: step}
}

// Now returns the current value and advances the clock.
func (s *Stepper) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.current
	s.current = s.current.Add(s.Step)
	return t
}
