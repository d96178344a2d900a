//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the desktop input monitor with the default config file.
func (Run) Desktop() error {
	fmt.Println("Run input monitor...")
	if _, err := executeCmd("go", withArgs("run", ".", "-config", "lumen.toml"), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the unit tests, then vets the wasm only packages.
func (Run) Test() error {
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	if _, err := executeCmd("go",
		withArgs("vet", "./engine/input/html5/...", "./cmd/lumen-web"),
		withEnv("GOOS=js", "GOARCH=wasm"),
		withStream(),
	); err != nil {
		return err
	}
	return nil
}
