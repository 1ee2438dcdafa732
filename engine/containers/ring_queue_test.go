package containers

import (
	"errors"
	"testing"
)

func TestRingQueueWrapsAround(t *testing.T) {
	rq := NewRingQueue[int](3)
	for round := 0; round < 4; round++ {
		for i := 0; i < 3; i++ {
			if err := rq.Enqueue(round*10 + i); err != nil {
				t.Fatalf("round %d: Enqueue: %v", round, err)
			}
		}
		if !rq.IsFull() {
			t.Fatal("queue should be full")
		}
		if err := rq.Enqueue(99); !errors.Is(err, ErrQueueFull) {
			t.Fatalf("Enqueue on a full queue = %v", err)
		}
		if v, _ := rq.Peek(); v != round*10 {
			t.Errorf("Peek = %d, want %d", v, round*10)
		}
		for i := 0; i < 3; i++ {
			v, err := rq.Dequeue()
			if err != nil || v != round*10+i {
				t.Fatalf("Dequeue = %d, %v, want %d", v, err, round*10+i)
			}
		}
	}
	if _, err := rq.Dequeue(); !errors.Is(err, ErrQueueEmpty) {
		t.Errorf("Dequeue on an empty queue = %v", err)
	}
	if _, err := rq.Peek(); !errors.Is(err, ErrQueueEmpty) {
		t.Errorf("Peek on an empty queue = %v", err)
	}
}

func TestRingQueueDrain(t *testing.T) {
	rq := NewRingQueue[string](4)
	if rq.Drain() != nil {
		t.Error("draining an empty queue returns nil")
	}
	rq.Enqueue("a")
	rq.Enqueue("b")
	rq.Dequeue()
	rq.Enqueue("c")
	rq.Enqueue("d")
	rq.Enqueue("e")

	got := rq.Drain()
	want := []string{"b", "c", "d", "e"}
	if len(got) != len(want) {
		t.Fatalf("Drain = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Drain = %v, want %v", got, want)
		}
	}
	if rq.Len() != 0 {
		t.Errorf("Len after Drain = %d", rq.Len())
	}
}

func TestRingQueueSizeMustBePositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	NewRingQueue[int](0)
}
