//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Packages whose tests need neither cgo nor a GL context.
var unitPackages = []string{
	"./reflection/...",
	"./glenum/...",
	"./shader/...",
	"./introspect/...",
	"./compiler/...",
	"./disasm/...",
	"./translator/...",
	"./shadertoy/...",
	"./options/...",
	"./watch/...",
	"./report/...",
	"./logging/...",
}

// Runs the unit tests against the fake driver.
func (Test) Unit() error {
	_, err := executeCmd("go", withArgs(append([]string{"test", "-race"}, unitPackages...)...), withStream())
	return err
}

// Runs go vet over the whole module.
func (Test) Vet() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}

// Runs vet then the unit tests.
func (Test) All() {
	mg.SerialDeps(Test.Vet, Test.Unit)
}
