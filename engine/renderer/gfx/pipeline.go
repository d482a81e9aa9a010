package gfx

import (
	"errors"
	"fmt"
	"os"

	"github.com/spaghettifunk/anima-gl/engine/core"
)

// BuildKind tells which step of a program build failed.
type BuildKind uint8

const (
	BuildCompile BuildKind = iota
	BuildLink
	BuildIO
)

var (
	ErrShaderCompile = errors.New("shader compilation failed")
	ErrProgramLink   = errors.New("program link failed")
	ErrShaderIO      = errors.New("reading shader source failed")
)

// BuildError is the recoverable failure of a program build.
type BuildError struct {
	Kind BuildKind
	// Stage is set for compile errors.
	Stage ShaderType
	// Path is the source file, when the source came from disk.
	Path string
	// Log is the driver info log.
	Log string
	Err error
}

func (e *BuildError) Error() string {
	switch e.Kind {
	case BuildCompile:
		if e.Path != "" {
			return fmt.Sprintf("gfx: %s shader %s: %s", e.Stage, e.Path, e.Log)
		}
		return fmt.Sprintf("gfx: %s shader: %s", e.Stage, e.Log)
	case BuildLink:
		if e.Log != "" {
			return fmt.Sprintf("gfx: link: %s", e.Log)
		}
		return fmt.Sprintf("gfx: link: %v", e.Err)
	default:
		return fmt.Sprintf("gfx: shader source %s: %v", e.Path, e.Err)
	}
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

func (e *BuildError) Is(target error) bool {
	switch target {
	case ErrShaderCompile:
		return e.Kind == BuildCompile
	case ErrProgramLink:
		return e.Kind == BuildLink
	case ErrShaderIO:
		return e.Kind == BuildIO
	}
	return false
}

// BuildProgram compiles a vertex and a fragment shader from source and
// links them.
func BuildProgram(ctx *Context, vertexSource, fragmentSource string) (*Program, error) {
	return buildProgram(ctx, [2]string{vertexSource, fragmentSource}, [2]string{})
}

// LoadProgram reads the vertex and fragment sources from disk and builds a
// program from them.
func LoadProgram(ctx *Context, vertexPath, fragmentPath string) (*Program, error) {
	paths := [2]string{vertexPath, fragmentPath}
	var sources [2]string
	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &BuildError{Kind: BuildIO, Path: path, Err: err}
		}
		sources[i] = string(data)
	}
	return buildProgram(ctx, sources, paths)
}

// MustLoadProgram is LoadProgram for callers that treat any build failure
// as fatal.
func MustLoadProgram(ctx *Context, vertexPath, fragmentPath string) *Program {
	p, err := LoadProgram(ctx, vertexPath, fragmentPath)
	if err != nil {
		core.LogError("shader build failed: %s", err)
		panic(err)
	}
	return p
}

func buildProgram(ctx *Context, sources, paths [2]string) (*Program, error) {
	stages := [2]ShaderType{VertexShader, FragmentShader}
	shaders := make([]*Shader, 0, len(stages))
	defer func() {
		for _, s := range shaders {
			s.Delete(ctx)
		}
	}()

	for i, stage := range stages {
		s := NewShader(ctx, stage)
		shaders = append(shaders, s)
		if err := s.Compile(ctx, sources[i]); err != nil {
			var be *BuildError
			if errors.As(err, &be) {
				be.Path = paths[i]
			}
			return nil, err
		}
	}

	pb := NewProgramBuilder(ctx)
	for _, s := range shaders {
		pb.AttachShader(s)
	}
	p, err := pb.Link()
	if err != nil {
		return nil, err
	}
	core.LogDebug("gfx: program %d linked", p.handle)
	return p, nil
}
