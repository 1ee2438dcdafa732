package core

import (
	"math"
	"testing"
)

type fakeTime struct {
	now float64
}

func (f *fakeTime) source() float64 {
	return f.now
}

func TestClockFirstTickSinceCreation(t *testing.T) {
	ft := &fakeTime{now: 10}
	c := NewClock(ft.source)
	if d := c.Tick(); d != 0 {
		t.Fatalf("expected 0 delta without time passing, got %f", d)
	}
	ft.now = 10.25
	if d := c.Tick(); d != 0.25 {
		t.Fatalf("expected 0.25 delta, got %f", d)
	}
}

func TestClockNeverNegative(t *testing.T) {
	ft := &fakeTime{now: 5}
	c := NewClock(ft.source)
	steps := []float64{5.1, 4.0, 4.5, 4.5, 100}
	for _, s := range steps {
		ft.now = s
		if d := c.Tick(); d < 0 {
			t.Fatalf("negative delta %f at time %f", d, s)
		}
	}
}

func TestClockFPSRollover(t *testing.T) {
	ft := &fakeTime{}
	c := NewClock(ft.source)

	// 0.1 s per frame: the tenth tick crosses one second.
	for i := 1; i <= 9; i++ {
		ft.now += 0.1
		c.Tick()
		if c.Rolled() {
			t.Fatalf("rolled over early at frame %d", i)
		}
		if c.Frames() != uint32(i) {
			t.Fatalf("expected %d frames, got %d", i, c.Frames())
		}
	}
	ft.now += 0.1 + 1e-9
	c.Tick()
	if !c.Rolled() {
		t.Fatalf("expected rollover after one second")
	}
	if c.Frames() != 0 || c.Accumulated() != 0 {
		t.Fatalf("expected counters reset, got frames=%d acc=%f", c.Frames(), c.Accumulated())
	}
	if math.Abs(c.FPS()-10) > 0.01 {
		t.Fatalf("expected ~10 fps, got %f", c.FPS())
	}

	ft.now += 0.1
	c.Tick()
	if c.Rolled() {
		t.Fatalf("rolled flag must only last one tick")
	}
}

func TestClockFrameTime(t *testing.T) {
	ft := &fakeTime{}
	c := NewClock(ft.source)
	for i := 0; i < 40; i++ {
		ft.now += 0.02
		c.Tick()
	}
	if math.Abs(c.FrameTime()-20) > 0.001 {
		t.Fatalf("expected 20ms average, got %f", c.FrameTime())
	}
}

func TestClockRequiresSource(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic without a time source")
		}
	}()
	NewClock(nil)
}
