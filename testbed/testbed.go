// Package testbed holds small applications that exercise the engine. They
// are selected by name from main.
package testbed

import (
	"sort"

	"github.com/spaghettifunk/anima2d/engine"
)

const (
	ScreenWidth  = 480
	ScreenHeight = 360
)

type Demo struct {
	Title string
	New   func() engine.Application
}

var demos = map[string]Demo{
	"hello":          {"Hello", func() engine.Application { return &Hello{} }},
	"color-cycle":    {"Color Cycle", func() engine.Application { return NewColorCycle() }},
	"closure":        {"Color Cycle", func() engine.Application { return ColorCycleFunc() }},
	"moving-rect":    {"Moving Rectangle", func() engine.Application { return NewMovingRect() }},
	"moving-circle":  {"Moving Circle", func() engine.Application { return NewMovingCircle() }},
	"moving-texture": {"Moving Texture", func() engine.Application { return NewMovingTexture("assets/anima.png") }},
	"text-input":     {"Text Input", func() engine.Application { return &TextInput{} }},
	"shapes":         {"Shapes", func() engine.Application { return &Shapes{} }},
}

func Lookup(name string) (Demo, bool) {
	d, ok := demos[name]
	return d, ok
}

func Names() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
