//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Downloads the modules and builds the testbed binary.
func (Build) All() error {
	if err := gocmdQuiet("mod", "download"); err != nil {
		return err
	}
	return gocmd("build", "-o", "bin/anima2d", ".")
}

type Test mg.Namespace

// Vets every package.
func (Test) Vet() error {
	return gocmdQuiet("vet", "./...")
}

// Runs every test. The headless backend keeps them free of a display.
func (Test) All() error {
	return gocmd("test", "./...")
}
