// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for syncparse using Mage.
//
// Usage:
//
//	mage build          Compile syncparse binary to bin/
//	mage test:all       Run all tests
//	mage test:unit      Run tests without the race detector, skipping the CLI
//	mage test:golden    Regenerate report golden files
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install syncparse to GOPATH/bin
//	mage stats          Print per-package Go LOC as JSON
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo       = "go"
	binaryName  = "syncparse"
	binaryDir   = "bin"
	cmdDir      = "./cmd/syncparse"
	versionVar  = "github.com/mesh-intelligence/syncparse/internal/cli.Version"
	versionFile = "VERSION"
)

// ldflags stamps the version from VERSION when that file exists.
func ldflags() string {
	data, err := os.ReadFile(versionFile)
	if err != nil {
		return ""
	}
	return "-X " + versionVar + "=" + strings.TrimSpace(string(data))
}

// Build compiles the syncparse binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-ldflags", ldflags(), "-o", filepath.Join(binaryDir, binaryName), cmdDir)
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
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
