// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build mage

// Build targets for fooditems.
//
//	mage build       Compile fooditems to bin/
//	mage test:all    Run every test
//	mage test:unit   Run tests without the sqlite journal
//	mage test:race   Run every test with the race detector
//	mage lint        Run golangci-lint
//	mage demo        Build, then print the reference chains
//	mage stats       Print Go line counts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "fooditems"
	binaryDir  = "bin"
	cmdDir     = "./cmd/fooditems"
)

// Build compiles the fooditems binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", binaryPath(), cmdDir)
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
	return sh.Copy(filepath.Join(gopath, "bin", binaryName), binaryPath())
}

// Demo builds the binary and prints the reference chains.
func Demo() error {
	mg.Deps(Build)
	return sh.RunV(binaryPath(), "demo")
}

func binaryPath() string {
	return filepath.Join(binaryDir, binaryName)
}
