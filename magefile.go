//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binaryName = "hanyu"

// Default target to run when none is specified
var Default = Build

// Build compiles the hanyu binary
func Build() error {
	fmt.Println("Building", binaryName)
	return sh.RunV("go", "build", "-o", binaryName, "./cmd/hanyu")
}

// Test runs the unit tests. Integration tests run when API keys are set.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// TestShort runs the tests without the dictionary-backed segmenter tests
func TestShort() error {
	return sh.RunV("go", "test", "-short", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install builds and copies the binary to $GOPATH/bin
func Install() error {
	mg.Deps(Build)

	gopath, err := sh.Output("go", "env", "GOPATH")
	if err != nil {
		return err
	}
	dest := filepath.Join(gopath, "bin", binaryName)
	fmt.Println("Installing to", dest)
	return sh.Copy(dest, binaryName)
}

// Clean removes the built binary
func Clean() error {
	return os.RemoveAll(binaryName)
}
