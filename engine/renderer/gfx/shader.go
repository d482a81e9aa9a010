package gfx

import "strings"

// Shader is a device shader object for one pipeline stage.
type Shader struct {
	handle uint32
	stage  ShaderType
}

// NewShader creates an empty shader object for the given stage.
func NewShader(ctx *Context, stage ShaderType) *Shader {
	handle := ctx.dev.CreateShader(uint32(stage))
	ctx.check("CreateShader")
	if handle == 0 {
		fail(&DeviceError{Op: "CreateShader", Err: ErrInvalidHandle})
	}
	return &Shader{handle: handle, stage: stage}
}

func (s *Shader) Handle() uint32 {
	return s.handle
}

func (s *Shader) Stage() ShaderType {
	return s.stage
}

// Compile uploads source and compiles it. A rejected source is returned as
// a *BuildError of kind BuildCompile carrying the driver info log.
func (s *Shader) Compile(ctx *Context, source string) error {
	ctx.dev.ShaderSource(s.handle, source)
	ctx.dev.CompileShader(s.handle)
	ctx.check("CompileShader")

	status := ctx.dev.GetShaderiv(s.handle, glCompileStatus)
	ctx.check("GetShaderiv(GL_COMPILE_STATUS)")
	if status == 0 {
		info := ctx.dev.GetShaderInfoLog(s.handle)
		ctx.check("GetShaderInfoLog")
		return &BuildError{Kind: BuildCompile, Stage: s.stage, Log: strings.TrimRight(info, "\x00\n")}
	}
	return nil
}

// Delete releases the shader object. Attached shaders stay alive on the
// device until their program is deleted.
func (s *Shader) Delete(ctx *Context) {
	if s.handle == 0 {
		return
	}
	ctx.dev.DeleteShader(s.handle)
	ctx.check("DeleteShader")
	s.handle = 0
}
