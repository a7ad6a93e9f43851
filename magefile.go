//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary.
var Default = Build

// Build compiles the seam binary into bin/.
func Build() error {
	version, _ := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	commit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	ldflags := fmt.Sprintf(
		"-X github.com/dkoosis/seam/internal/version.Version=%s -X github.com/dkoosis/seam/internal/version.CommitHash=%s",
		version, commit,
	)
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", "bin/seam", "./cmd/seam")
}

// Test runs the full test suite with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs go vet across the module.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// QA runs lint and tests.
func QA() error {
	mg.Deps(Lint)
	return Test()
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("bin")
}
