//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the desktop input monitor.
func (Build) Desktop() error {
	mg.Deps(tidy)
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/lumen", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Builds the browser input monitor as a WebAssembly module.
func (Build) Wasm() error {
	mg.Deps(tidy)
	if _, err := executeCmd("go",
		withArgs("build", "-o", "web/lumen.wasm", "./cmd/lumen-web"),
		withEnv("GOOS=js", "GOARCH=wasm"),
		withStream(),
	); err != nil {
		return err
	}
	return nil
}
