//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

const shaderDir = "testbed/assets/shaders"

type Build mg.Namespace

// Validates every GLSL source under the testbed shader directory.
func (Build) Shaders() error {
	return buildShaders()
}

// Runs go mod download and then builds the testbed binary.
func (Build) Engine() error {
	mg.Deps(Build.Shaders)
	if _, err := executeCmd("go", withArgs("mod", "download")); err != nil {
		return err
	}
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/anima-gl", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the unit tests of every package.
func (Build) Test() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

func buildShaders() error {
	entries, err := os.ReadDir(shaderDir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", shaderDir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".vert", ".frag":
		default:
			continue
		}
		if _, err := executeCmd("glslangValidator", withArgs(filepath.Join(shaderDir, e.Name())), withStream()); err != nil {
			return err
		}
	}
	return nil
}
