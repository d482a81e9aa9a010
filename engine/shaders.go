package engine

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spaghettifunk/anima-gl/engine/core"
	"github.com/spaghettifunk/anima-gl/engine/renderer/gfx"
)

type shaderEntry struct {
	vertexPath   string
	fragmentPath string
	program      *gfx.Program
}

// ShaderLibrary owns the named programs of an application and rebuilds
// them when their sources change. It shares the confinement of its
// context: only the render goroutine may call it.
type ShaderLibrary struct {
	ctx     *gfx.Context
	entries map[string]*shaderEntry
}

func NewShaderLibrary(ctx *gfx.Context) *ShaderLibrary {
	return &ShaderLibrary{
		ctx:     ctx,
		entries: make(map[string]*shaderEntry),
	}
}

// Load builds a program from two source files and registers it under name,
// replacing and releasing any program previously registered there.
func (sl *ShaderLibrary) Load(name, vertexPath, fragmentPath string) (*gfx.Program, error) {
	vertexPath, fragmentPath = absPath(vertexPath), absPath(fragmentPath)
	program, err := gfx.LoadProgram(sl.ctx, vertexPath, fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("shader %q: %w", name, err)
	}
	if old, ok := sl.entries[name]; ok {
		old.program.Delete(sl.ctx)
	}
	sl.entries[name] = &shaderEntry{
		vertexPath:   vertexPath,
		fragmentPath: fragmentPath,
		program:      program,
	}
	core.LogInfo("shader %q loaded (program %d)", name, program.Handle())
	return program, nil
}

// Program returns the current program registered under name. Reloads swap
// programs, so callers should look it up again every frame.
func (sl *ShaderLibrary) Program(name string) (*gfx.Program, error) {
	e, ok := sl.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownProgram, name)
	}
	return e.program, nil
}

// Names lists the registered program names in order.
func (sl *ShaderLibrary) Names() []string {
	names := make([]string, 0, len(sl.entries))
	for name := range sl.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reload rebuilds every program that uses path. A program that fails to
// build keeps its previous version; the failure is logged and returned.
// It returns the names that were rebuilt.
func (sl *ShaderLibrary) Reload(path string) ([]string, error) {
	path = absPath(path)
	var reloaded []string
	var failures []error
	for _, name := range sl.Names() {
		e := sl.entries[name]
		if e.vertexPath != path && e.fragmentPath != path {
			continue
		}
		program, err := gfx.LoadProgram(sl.ctx, e.vertexPath, e.fragmentPath)
		if err != nil {
			core.LogError("shader %q: reload failed, keeping program %d: %s", name, e.program.Handle(), err)
			failures = append(failures, fmt.Errorf("shader %q: %w", name, err))
			continue
		}
		e.program.Delete(sl.ctx)
		e.program = program
		reloaded = append(reloaded, name)
		core.LogInfo("shader %q reloaded (program %d)", name, program.Handle())
	}
	return reloaded, errors.Join(failures...)
}

// Shutdown releases every program.
func (sl *ShaderLibrary) Shutdown() {
	for name, e := range sl.entries {
		e.program.Delete(sl.ctx)
		delete(sl.entries, name)
	}
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
