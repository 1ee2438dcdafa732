package engine

import (
	"runtime/debug"

	"github.com/spaghettifunk/anima2d/engine/core"
)

// ReportPanic logs a panic together with the title of the running window
// and its stack, then panics again. Defer it at the top of main.
//
//	func main() {
//		defer engine.ReportPanic()
//		...
//	}
func ReportPanic() {
	r := recover()
	if r == nil {
		return
	}
	title := "anima2d"
	if ctx := live.Load(); ctx != nil {
		title = ctx.title
	}
	core.LogError("%s panicked: %v\n%s", title, r, debug.Stack())
	panic(r)
}
