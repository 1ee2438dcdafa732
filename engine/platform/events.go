package platform

import (
	"github.com/spaghettifunk/anima2d/engine/containers"
	"github.com/spaghettifunk/anima2d/engine/core"
)

// EventQueueSize bounds the events a backend buffers between two polls.
const EventQueueSize = 1024

// EventQueue buffers the events produced by a backend until the engine
// polls them. Events arriving while it is full are dropped.
type EventQueue struct {
	queue   *containers.RingQueue[core.Event]
	dropped int
}

func NewEventQueue() *EventQueue {
	return &EventQueue{queue: containers.NewRingQueue[core.Event](EventQueueSize)}
}

func (q *EventQueue) Push(e core.Event) {
	if err := q.queue.Enqueue(e); err != nil {
		q.dropped++
	}
}

// Drain returns the buffered events, oldest first.
func (q *EventQueue) Drain() []core.Event {
	if q.dropped > 0 {
		core.LogWarn("event queue overflow, dropped %d events", q.dropped)
		q.dropped = 0
	}
	return q.queue.Drain()
}

func (q *EventQueue) Len() int {
	return q.queue.Len()
}
