//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

// Build builds the eza binary
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/eza", "./cmd/eza")
}

// Test runs the full test suite with the race detector
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint vets all packages
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// QA runs lint and the test suite
func QA() error {
	mg.Deps(Lint)
	return Test()
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}
