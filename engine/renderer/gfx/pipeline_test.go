package gfx

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildProgram(t *testing.T) {
	ctx, dev := newTestContext(t)

	program, err := BuildProgram(ctx, vertexSource, fragmentSource)
	if err != nil {
		t.Fatalf("BuildProgram: %v", err)
	}
	if program.Handle() == 0 {
		t.Fatal("program has no handle")
	}
	if dev.Count("AttachShader") != 2 {
		t.Errorf("AttachShader called %d times, want 2", dev.Count("AttachShader"))
	}
	if dev.Count("LinkProgram") != 1 || dev.Count("ValidateProgram") != 1 {
		t.Errorf("program not linked and validated: %v", dev.Names())
	}
	if dev.Count("DeleteShader") != 2 {
		t.Errorf("DeleteShader called %d times, want 2", dev.Count("DeleteShader"))
	}
	attached, detached := dev.Named("AttachShader"), dev.Named("DetachShader")
	if len(detached) != len(attached) {
		t.Fatalf("DetachShader called %d times, want %d", len(detached), len(attached))
	}
	for i := range attached {
		if detached[i].Args[0] != program.Handle() || detached[i].Args[1] != attached[i].Args[1] {
			t.Errorf("DetachShader%v does not undo AttachShader%v", detached[i].Args, attached[i].Args)
		}
	}
	kinds := dev.Named("CreateShader")
	if len(kinds) != 2 || kinds[0].Args[0] != uint32(VertexShader) || kinds[1].Args[0] != uint32(FragmentShader) {
		t.Errorf("CreateShader calls = %v, want vertex then fragment", kinds)
	}
}

func TestBuildProgramCompileError(t *testing.T) {
	ctx, dev := newTestContext(t)
	dev.RejectSource = func(src string) string {
		if strings.Contains(src, "out vec4") {
			return "0:3: 'c' : syntax error\n"
		}
		return ""
	}

	_, err := BuildProgram(ctx, vertexSource, fragmentSource)
	if !errors.Is(err, ErrShaderCompile) {
		t.Fatalf("err = %v, want ErrShaderCompile", err)
	}
	var be *BuildError
	if !errors.As(err, &be) {
		t.Fatalf("err is %T, want *BuildError", err)
	}
	if be.Stage != FragmentShader {
		t.Errorf("Stage = %v, want fragment", be.Stage)
	}
	if be.Log != "0:3: 'c' : syntax error" {
		t.Errorf("Log = %q", be.Log)
	}
	if dev.Count("CreateProgram") != 0 {
		t.Error("program created after a compile failure")
	}
	if dev.Count("DeleteShader") != 2 {
		t.Errorf("DeleteShader called %d times, want 2", dev.Count("DeleteShader"))
	}
}

func TestBuildProgramLinkError(t *testing.T) {
	ctx, dev := newTestContext(t)
	dev.LinkLog = "error: vertex output 'v' not read by fragment shader"

	_, err := BuildProgram(ctx, vertexSource, fragmentSource)
	if !errors.Is(err, ErrProgramLink) {
		t.Fatalf("err = %v, want ErrProgramLink", err)
	}
	if errors.Is(err, ErrShaderCompile) {
		t.Error("link error also matches ErrShaderCompile")
	}
	if !strings.Contains(err.Error(), "not read by fragment shader") {
		t.Errorf("message %q misses the link log", err)
	}
	if dev.Count("DeleteProgram") != 1 {
		t.Error("failed program not released")
	}
	if dev.Count("ValidateProgram") != 0 {
		t.Error("validated a program that failed to link")
	}
}

func TestBuildProgramValidateError(t *testing.T) {
	ctx, dev := newTestContext(t)
	dev.ValidateLog = "validation failed: sampler mismatch"

	_, err := BuildProgram(ctx, vertexSource, fragmentSource)
	if !errors.Is(err, ErrProgramLink) {
		t.Fatalf("err = %v, want ErrProgramLink", err)
	}
}

func TestBuildProgramLinkDeviceError(t *testing.T) {
	ctx, dev := newTestContext(t)
	dev.FailOn("LinkProgram", uint32(InvalidOperation))

	_, err := BuildProgram(ctx, vertexSource, fragmentSource)
	if !errors.Is(err, ErrProgramLink) {
		t.Fatalf("err = %v, want ErrProgramLink", err)
	}
	var de *DeviceError
	if !errors.As(err, &de) || de.Codes[0] != InvalidOperation {
		t.Errorf("err = %v, want wrapped GL_INVALID_OPERATION", err)
	}
}

func writeShaders(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	vert := filepath.Join(dir, "basic.vert")
	frag := filepath.Join(dir, "basic.frag")
	if err := os.WriteFile(vert, []byte(vertexSource), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(frag, []byte(fragmentSource), 0o644); err != nil {
		t.Fatal(err)
	}
	return vert, frag
}

func TestLoadProgram(t *testing.T) {
	ctx, dev := newTestContext(t)
	vert, frag := writeShaders(t)

	if _, err := LoadProgram(ctx, vert, frag); err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}
	if dev.Count("ShaderSource") != 2 {
		t.Errorf("ShaderSource called %d times, want 2", dev.Count("ShaderSource"))
	}
}

func TestLoadProgramMissingFile(t *testing.T) {
	ctx, dev := newTestContext(t)
	vert, _ := writeShaders(t)
	missing := filepath.Join(t.TempDir(), "missing.frag")

	_, err := LoadProgram(ctx, vert, missing)
	if !errors.Is(err, ErrShaderIO) {
		t.Fatalf("err = %v, want ErrShaderIO", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v does not wrap fs.ErrNotExist", err)
	}
	var be *BuildError
	if errors.As(err, &be) && be.Path != missing {
		t.Errorf("Path = %q, want %q", be.Path, missing)
	}
	if len(dev.Calls) != 0 {
		t.Errorf("device calls issued before sources were read: %v", dev.Names())
	}
}

func TestLoadProgramCompileErrorCarriesPath(t *testing.T) {
	ctx, dev := newTestContext(t)
	vert, frag := writeShaders(t)
	dev.RejectSource = func(src string) string {
		if strings.Contains(src, "out vec4") {
			return "bad"
		}
		return ""
	}

	_, err := LoadProgram(ctx, vert, frag)
	var be *BuildError
	if !errors.As(err, &be) || be.Path != frag {
		t.Fatalf("err = %v, want compile error for %s", err, frag)
	}
}

func TestMustLoadProgramPanics(t *testing.T) {
	ctx, _ := newTestContext(t)
	missing := filepath.Join(t.TempDir(), "missing.vert")

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrShaderIO) {
			t.Errorf("recovered %v, want an ErrShaderIO error", r)
		}
	}()
	MustLoadProgram(ctx, missing, missing)
}
