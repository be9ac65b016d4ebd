package clock

import (
	"testing"
	"time"
)

func TestSystem(t *testing.T) {
	before := time.Now()
	got := System.Now()
	after := time.Now()

	if got.Before(before) || got.After(after) {
		t.Errorf("System.Now() = %v, want between %v and %v", got, before, after)
	}
}

func TestFunc(t *testing.T) {
	fixed := time.Date(2017, 11, 21, 12, 0, 0, 0, time.UTC)
	c := Func(func() time.Time { return fixed })
	if !c.Now().Equal(fixed) {
		t.Errorf("Now() = %v, want %v", c.Now(), fixed)
	}
}

func TestStepper(t *testing.T) {
	start := time.Date(2017, 11, 21, 12, 0, 0, 0, time.UTC)
	s := NewStepper(start, time.Second)

	tests := []time.Time{start, start.Add(time.Second), start.Add(2 * time.Second)}
	for i, want := range tests {
		if got := s.Now(); !got.Equal(want) {
			t.Errorf("call %d: Now() = %v, want %v", i, got, want)
		}
	}
}

func TestStepper_ZeroStep(t *testing.T) {
	start := time.Date(2017, 11, 21, 12, 0, 0, 0, time.UTC)
	s := NewStepper(start, 0)
	s.Now()
	if got := s.Now(); !got.Equal(start) {
		t.Errorf("Now() = %v, want %v", got, start)
	}
}
