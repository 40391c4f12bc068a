// Package main provides build targets for the arquetipo project using Mage.
//
// Usage:
//
//	mage build      Compile arquetipo binary to bin/
//	mage test       Run all tests
//	mage lint       Run golangci-lint
//	mage clean      Remove build artifacts
//	mage install    Install arquetipo to GOPATH/bin

//go:build mage

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "arquetipo"
	binaryDir  = "bin"
	cmdDir     = "./cmd/arquetipo"
)

// Build compiles the arquetipo binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests with race detection.
func Test() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Lint runs golangci-lint over the repository.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	return sh.Copy(filepath.Join(gopath, "bin", binaryName), filepath.Join(binaryDir, binaryName))
}
