//go:build mage

// Mage build targets for logoconv.
package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var Default = Build

const binary = "logoconv"

func ldflags() string {
	v := os.Getenv("VERSION")
	if v == "" {
		v = "dev"
	}
	return fmt.Sprintf("-X main.version=%s", v)
}

// Build compiles logoconv with the pure Go WebP encoder.
func Build() error {
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binary, ".")
}

// Vips compiles logoconv with the libvips codec (needs cgo and libvips).
func Vips() error {
	return sh.RunV("go", "build", "-tags", "vips", "-ldflags", ldflags(), "-o", binary, ".")
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// TestVips runs the unit tests including the libvips codec.
func TestVips() error {
	mg.Deps(Test)
	return sh.RunV("go", "test", "-tags", "vips", "./...")
}

// Convert builds and runs the conversion in the current directory.
func Convert() error {
	mg.Deps(Build)
	return sh.RunV("./" + binary)
}
