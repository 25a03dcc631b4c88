package anim

import (
	"math"
	"testing"
)

func TestSpringConverges(t *testing.T) {
	cases := []struct {
		name string
		zeta float64
	}{
		{"under", 0.2},
		{"critical", 1},
		{"over", 2.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := NewFollower(NewSpring(FPS(15), 9, tc.zeta), 0)
			f.Set(12)
			for i := 0; i < 200; i++ {
				f.Step()
			}
			if !f.Settled(0.01) {
				t.Fatalf("not settled after 200 steps: pos=%v vel=%v", f.Pos, f.Vel)
			}
		})
	}
}

func TestUnderDampedOvershoots(t *testing.T) {
	f := NewFollower(NewSpring(FPS(15), 9, 0.2), 0)
	f.Set(12)
	peak := 0.0
	for i := 0; i < 30; i++ {
		peak = math.Max(peak, f.Step())
	}
	if peak <= 12 {
		t.Fatalf("under-damped spring peaked at %v, expected overshoot", peak)
	}
}

func TestZeroFrequencyHolds(t *testing.T) {
	s := NewSpring(FPS(15), 0, 0.5)
	p, v := s.Update(3, 1, 10)
	if p != 3 || v != 1 {
		t.Fatalf("Update = (%v, %v), want (3, 1)", p, v)
	}
}

func TestEasing(t *testing.T) {
	if EaseInOutExpo(0) != 0 || EaseInOutExpo(1) != 1 {
		t.Fatalf("EaseInOutExpo endpoints wrong")
	}
	if got := EaseInOutExpo(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("EaseInOutExpo(0.5) = %v", got)
	}
	prev := -1.0
	for i := 0; i <= 20; i++ {
		v := EaseInOutExpo(float64(i) / 20)
		if v < prev {
			t.Fatalf("EaseInOutExpo not monotonic at %d", i)
		}
		prev = v
	}
	if EaseOutExpoExtreme(1) != 1 || EaseOutExpoExtreme(0) != 0 {
		t.Fatalf("EaseOutExpoExtreme endpoints wrong")
	}
	if got := Remap(6, 0, 12, 20, -12); got != 4 {
		t.Fatalf("Remap = %v, want 4", got)
	}
}
