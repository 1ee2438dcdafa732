//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs a testbed demo in a window. Set DEMO to pick one.
func (Run) Testbed() error {
	fmt.Println("Run testbed...")
	return gocmd("run", ".", "-demo", demo())
}

// Renders a few frames of a demo without a window and saves the last one
// to frame.png.
func (Run) Headless() error {
	args := []string{"run", ".", "-backend", "headless", "-demo", demo(), "-frames", "120", "-screenshot", "frame.png"}
	return gocmd(args...)
}

func demo() string {
	if d := os.Getenv("DEMO"); d != "" {
		return d
	}
	return "shapes"
}
