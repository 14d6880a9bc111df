// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build mage

package main

import (
	"fmt"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Test groups test targets.
type Test mg.Namespace

// All runs every test.
func (Test) All() error {
	return sh.RunV(binGo, "test", "./...")
}

// Race runs every test with the race detector.
func (Test) Race() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Unit runs the tests of packages that never attach a sqlite journal:
// everything except internal/sqlite, pkg/sqlite and internal/cli.
func (Test) Unit() error {
	pkgs, err := sh.Output(binGo, "list", "./...")
	if err != nil {
		return err
	}
	var unitPkgs []string
	for pkg := range strings.SplitSeq(pkgs, "\n") {
		if pkg == "" || attachesJournal(pkg) {
			continue
		}
		unitPkgs = append(unitPkgs, pkg)
	}
	if len(unitPkgs) == 0 {
		fmt.Println("No unit test packages found.")
		return nil
	}
	return sh.RunV(binGo, append([]string{"test", "-v"}, unitPkgs...)...)
}

// journalPkgs are the package path suffixes whose tests attach a journal.
var journalPkgs = []string{"/internal/sqlite", "/pkg/sqlite", "/internal/cli"}

func attachesJournal(pkg string) bool {
	for _, suffix := range journalPkgs {
		if strings.HasSuffix(pkg, suffix) {
			return true
		}
	}
	return false
}
