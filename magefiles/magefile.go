//go:build mage

// Package main contains Mage build targets for svg2tsx developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir     = "bin"
	binName    = "svg2tsx"
	cmdPkg     = "./cmd/svg2tsx"
	versionPkg = "github.com/jmylchreest/svg2tsx/internal/version"
)

// Default target when running mage with no arguments.
var Default = Build

// ldflags stamps build metadata from git into internal/version.
func ldflags() string {
	version, err := sh.Output("git", "describe", "--tags", "--always")
	if err != nil {
		version = "dev"
	}
	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		commit = "unknown"
	}
	dirty := "false"
	if status, err := sh.Output("git", "status", "--porcelain"); err == nil && strings.TrimSpace(status) != "" {
		dirty = "true"
	}

	flags := []string{
		"-s", "-w",
		fmt.Sprintf("-X %s.Version=%s", versionPkg, strings.TrimPrefix(version, "v")),
		fmt.Sprintf("-X %s.Commit=%s", versionPkg, commit),
		fmt.Sprintf("-X %s.Dirty=%s", versionPkg, dirty),
		fmt.Sprintf("-X %s.BuildDate=%s", versionPkg, time.Now().UTC().Format(time.RFC3339)),
	}
	return strings.Join(flags, " ")
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-ldflags", ldflags(), "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Install installs the CLI into $GOBIN.
func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), cmdPkg)
}

// Vet runs go vet on all packages.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Test runs the unit tests with the race detector.
func Test() error {
	mg.Deps(Vet)
	return sh.RunV("go", "test", "-race", "./...")
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}
