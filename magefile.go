// Copyright 2023 uwu-tools Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/sh"
	"sigs.k8s.io/release-utils/mage"

	"github.com/uwu-tools/magex/pkg"
)

// Default target to run when none is specified
// If not set, running mage will list available targets
var Default = Verify

const (
	binDir  = "bin"
	binName = "dirnav"

	// Versions.
	golangciVersion = "v1.50.1"

	// Test variables.
	coverMode            = "atomic"
	coverProfileFilename = "unit-coverage.out"
)

// All runs all targets for this repository
func All() error {
	if err := Verify(); err != nil {
		return err
	}

	if err := Test(); err != nil {
		return err
	}

	return nil
}

// Test runs various test functions
func Test() error {
	return sh.RunV(
		"go",
		"test",
		"-v",
		"-covermode", coverMode,
		"-coverprofile", coverProfileFilename,
		"./...",
	)
}

// Verify runs repository verification scripts
func Verify() error {
	fmt.Println("Ensuring mage is available...")
	if err := pkg.EnsureMage(""); err != nil {
		return err
	}

	fmt.Println("Running golangci-lint...")
	if err := mage.RunGolangCILint(golangciVersion, false); err != nil {
		return err
	}

	if err := Build(); err != nil {
		return err
	}

	return nil
}

// Build runs go build with the release-utils version ldflags
func Build() error {
	fmt.Println("Running go build...")

	ldFlag, err := mage.GenerateLDFlags()
	if err != nil {
		return err
	}

	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-trimpath", "-ldflags", ldFlag, "-o", out, "."); err != nil {
		return err
	}

	fmt.Printf("Binary available at %s.\n", out)
	return nil
}

func Clean() {
	fmt.Println("Cleaning workspace...")
	toClean := []string{binDir, coverProfileFilename}

	for _, clean := range toClean {
		sh.Rm(clean)
	}

	fmt.Println("Done.")
}
