package gfx

import "unsafe"

// Device is the call surface of a bound graphics device. Every method maps
// to exactly one driver entry point; implementations must not cache or
// reorder calls. Error reporting goes through GetError, which the Context
// drains after every call that must succeed.
//
// Signatures only use builtin types so that fakes do not need to import
// this package.
type Device interface {
	GetError() uint32
	GetIntegerv(pname uint32, data []int32)
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)

	CreateVertexArray() uint32
	VertexArrayAttribFormat(vao, attrib uint32, size int32, xtype uint32, normalized bool, offset uint32)
	VertexArrayAttribIFormat(vao, attrib uint32, size int32, xtype uint32, offset uint32)
	VertexArrayAttribLFormat(vao, attrib uint32, size int32, xtype uint32, offset uint32)
	VertexArrayAttribBinding(vao, attrib, binding uint32)
	EnableVertexArrayAttrib(vao, attrib uint32)
	VertexArrayVertexBuffer(vao, binding, buffer uint32, offset int, stride int32)
	BindVertexArray(vao uint32)

	CreateBuffer() uint32
	NamedBufferData(buffer uint32, size int, data unsafe.Pointer, usage uint32)
	BindBuffer(target, buffer uint32)

	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader, pname uint32) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ValidateProgram(program uint32)
	GetProgramiv(program, pname uint32) int32
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)
	GetUniformLocation(program uint32, name string) int32

	Uniform1f(location int32, v0 float32)
	Uniform2f(location int32, v0, v1 float32)
	Uniform3f(location int32, v0, v1, v2 float32)
	Uniform4f(location int32, v0, v1, v2, v3 float32)
	Uniform1i(location int32, v0 int32)
	Uniform1ui(location int32, v0 uint32)
	UniformMatrix3fv(location int32, transpose bool, value []float32)
	UniformMatrix4fv(location int32, transpose bool, value []float32)

	DrawArrays(mode uint32, first, count int32)
	DrawElements(mode uint32, count int32, xtype uint32, offset uintptr)
}

// ProcLoader resolves a device entry point by symbol name.
type ProcLoader func(name string) unsafe.Pointer
