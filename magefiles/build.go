//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the glreflect binary into bin/.
func (Build) Cli() error {
	_, err := executeCmd("go", withArgs("build", "-o", "bin/glreflect", "./cmd"), withStream())
	return err
}

// Builds the CLI with cgo forced on; needs the EGL development headers.
func (Build) Headless() error {
	_, err := executeCmd("go", withArgs("build", "-o", "bin/glreflect", "./cmd"), withEnv("CGO_ENABLED", "1"), withStream())
	return err
}

// Runs go mod tidy.
func Tidy() error {
	_, err := executeCmd("go", withArgs("mod", "tidy"))
	return err
}
