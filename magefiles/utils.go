//go:build mage

package main

import (
	"fmt"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// gocmd runs the go tool and streams its output.
func gocmd(args ...string) error {
	fmt.Printf("Executing: %s %s\n", mg.GoCmd(), strings.Join(args, " "))
	return sh.RunV(mg.GoCmd(), args...)
}

// gocmdQuiet runs the go tool and only shows its output with -v or when
// it fails.
func gocmdQuiet(args ...string) error {
	if mg.Verbose() {
		return gocmd(args...)
	}
	out, err := sh.Output(mg.GoCmd(), args...)
	if err != nil {
		fmt.Println("... failed command output:")
		fmt.Println(out)
		return fmt.Errorf("go %s: %w", args[0], err)
	}
	return nil
}
