package gfx

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/anima-gl/engine/core"
)

// ProgramBuilder collects compiled shaders and links them into a Program.
type ProgramBuilder struct {
	ctx     *Context
	handle  uint32
	shaders []*Shader
}

// NewProgramBuilder creates an empty device program object.
func NewProgramBuilder(ctx *Context) *ProgramBuilder {
	handle := ctx.dev.CreateProgram()
	ctx.check("CreateProgram")
	if handle == 0 {
		fail(&DeviceError{Op: "CreateProgram", Err: ErrInvalidHandle})
	}
	return &ProgramBuilder{ctx: ctx, handle: handle}
}

// AttachShader attaches a compiled shader. Shaders are detached again once
// Link succeeds.
func (pb *ProgramBuilder) AttachShader(s *Shader) {
	pb.ctx.dev.AttachShader(pb.handle, s.handle)
	pb.ctx.check("AttachShader")
	pb.shaders = append(pb.shaders, s)
}

// Link links and validates the program. Failures come back as a
// *BuildError of kind BuildLink and release the program object.
func (pb *ProgramBuilder) Link() (*Program, error) {
	dev := pb.ctx.dev

	dev.LinkProgram(pb.handle)
	if err := pb.status("LinkProgram", glLinkStatus); err != nil {
		pb.discard()
		return nil, err
	}

	dev.ValidateProgram(pb.handle)
	if err := pb.status("ValidateProgram", glValidateStatus); err != nil {
		pb.discard()
		return nil, err
	}

	// the linked program no longer needs its shader objects
	for _, s := range pb.shaders {
		dev.DetachShader(pb.handle, s.handle)
	}
	pb.ctx.check("DetachShader")
	pb.shaders = nil

	return &Program{
		handle:   pb.handle,
		uniforms: make(map[string]int32),
	}, nil
}

func (pb *ProgramBuilder) status(op string, pname uint32) error {
	if codes := pendingErrors(pb.ctx.dev); len(codes) > 0 {
		return &BuildError{Kind: BuildLink, Err: &DeviceError{Op: op, Codes: codes}}
	}
	if pb.ctx.dev.GetProgramiv(pb.handle, pname) != 0 {
		return nil
	}
	info := pb.ctx.dev.GetProgramInfoLog(pb.handle)
	pb.ctx.check("GetProgramInfoLog")
	return &BuildError{Kind: BuildLink, Log: strings.TrimRight(info, "\x00\n"), Err: fmt.Errorf("%s reported failure", op)}
}

func (pb *ProgramBuilder) discard() {
	pb.shaders = nil
	pb.ctx.dev.DeleteProgram(pb.handle)
	pb.ctx.check("DeleteProgram")
	pb.handle = 0
}

// Program is a linked device program with a private cache of uniform
// locations. Names are resolved once and never re-resolved.
type Program struct {
	handle   uint32
	uniforms map[string]int32
}

// Handle is the device name of the program, 0 once deleted.
func (p *Program) Handle() uint32 {
	return p.handle
}

// Bind makes the program current on the device.
func (p *Program) Bind(ctx *Context) {
	ctx.dev.UseProgram(p.handle)
	ctx.check("UseProgram")
}

// UniformLocation returns the device location of name, resolving it on the
// first request. Unknown names resolve to -1 and are cached like any other.
func (p *Program) UniformLocation(ctx *Context, name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := ctx.dev.GetUniformLocation(p.handle, name)
	ctx.check("GetUniformLocation")
	if loc < 0 {
		core.LogWarn("gfx: program %d has no active uniform %q", p.handle, name)
	} else {
		core.LogDebug("gfx: program %d uniform %q at location %d", p.handle, name, loc)
	}
	p.uniforms[name] = loc
	return loc
}

// SetUniform binds the program and writes value to the uniform called name.
// See uniformWriter for the accepted value types. A value of any other type
// is rejected before the program is bound or the name resolved.
func (p *Program) SetUniform(ctx *Context, name string, value any) error {
	write, err := uniformWriter(value)
	if err != nil {
		return fmt.Errorf("uniform %q: %w", name, err)
	}
	p.Bind(ctx)
	write(ctx.dev, p.UniformLocation(ctx, name))
	ctx.check("Uniform")
	return nil
}

// CachedUniforms reports how many uniform names have been resolved.
func (p *Program) CachedUniforms() int {
	return len(p.uniforms)
}

// Delete releases the program object. The program must not be used after.
func (p *Program) Delete(ctx *Context) {
	if p.handle == 0 {
		return
	}
	ctx.dev.DeleteProgram(p.handle)
	ctx.check("DeleteProgram")
	p.handle = 0
}
