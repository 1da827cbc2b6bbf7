//go:build mage

// Package main provides build targets for the contacts module using Mage.
//
// Usage:
//
//	mage test:all      Run all tests
//	mage test:unit     Run tests without the race detector or caching
//	mage test:cover    Run tests and write coverage.out
//	mage vet           Run go vet
//	mage lint          Run golangci-lint
//	mage clean         Remove coverage artifacts and the test cache
//	mage stats         Print Go lines of code
package main

import (
	"os"

	"github.com/magefile/mage/sh"
)

const (
	binGo        = "go"
	coverProfile = "coverage.out"
)

// Vet runs go vet over every package.
func Vet() error {
	return sh.RunV(binGo, "vet", "./...")
}

// Clean removes coverage artifacts and the test cache.
func Clean() error {
	if err := os.Remove(coverProfile); err != nil && !os.IsNotExist(err) {
		return err
	}
	return sh.RunV(binGo, "clean", "-testcache")
}
