package engine

import (
	"fmt"
	"sync/atomic"
)

const exclusive = -1

// borrowGuard checks at run time that a context is either borrowed once
// for writing or any number of times for reading, never both.
type borrowGuard struct {
	state atomic.Int32
}

func (g *borrowGuard) borrowMut(op string) func() {
	if !g.state.CompareAndSwap(0, exclusive) {
		panic(fmt.Sprintf("engine: %s: context already borrowed", op))
	}
	return func() { g.state.Store(0) }
}

func (g *borrowGuard) borrow(op string) func() {
	for {
		n := g.state.Load()
		if n == exclusive {
			panic(fmt.Sprintf("engine: %s: context already mutably borrowed", op))
		}
		if g.state.CompareAndSwap(n, n+1) {
			return func() { g.state.Add(-1) }
		}
	}
}
