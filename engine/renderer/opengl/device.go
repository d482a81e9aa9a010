package opengl

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/spaghettifunk/anima-gl/engine/renderer/gfx"
)

// Device forwards every gfx.Device call to the bound OpenGL 4.5 core
// function table. It has no state of its own.
type Device struct{}

var _ gfx.Device = Device{}

func (Device) GetError() uint32 {
	return gl.GetError()
}

func (Device) GetIntegerv(pname uint32, data []int32) {
	if len(data) == 0 {
		return
	}
	gl.GetIntegerv(pname, &data[0])
}

func (Device) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (Device) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (Device) Clear(mask uint32) {
	gl.Clear(mask)
}

func (Device) CreateVertexArray() uint32 {
	var vao uint32
	gl.CreateVertexArrays(1, &vao)
	return vao
}

func (Device) VertexArrayAttribFormat(vao, attrib uint32, size int32, xtype uint32, normalized bool, offset uint32) {
	gl.VertexArrayAttribFormat(vao, attrib, size, xtype, normalized, offset)
}

func (Device) VertexArrayAttribIFormat(vao, attrib uint32, size int32, xtype uint32, offset uint32) {
	gl.VertexArrayAttribIFormat(vao, attrib, size, xtype, offset)
}

func (Device) VertexArrayAttribLFormat(vao, attrib uint32, size int32, xtype uint32, offset uint32) {
	gl.VertexArrayAttribLFormat(vao, attrib, size, xtype, offset)
}

func (Device) VertexArrayAttribBinding(vao, attrib, binding uint32) {
	gl.VertexArrayAttribBinding(vao, attrib, binding)
}

func (Device) EnableVertexArrayAttrib(vao, attrib uint32) {
	gl.EnableVertexArrayAttrib(vao, attrib)
}

func (Device) VertexArrayVertexBuffer(vao, binding, buffer uint32, offset int, stride int32) {
	gl.VertexArrayVertexBuffer(vao, binding, buffer, offset, stride)
}

func (Device) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (Device) CreateBuffer() uint32 {
	var buf uint32
	gl.CreateBuffers(1, &buf)
	return buf
}

func (Device) NamedBufferData(buffer uint32, size int, data unsafe.Pointer, usage uint32) {
	gl.NamedBufferData(buffer, size, data, usage)
}

func (Device) BindBuffer(target, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

func (Device) CreateShader(xtype uint32) uint32 {
	return gl.CreateShader(xtype)
}

func (Device) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (Device) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (Device) GetShaderiv(shader, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (Device) GetShaderInfoLog(shader uint32) string {
	var length int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
	if length <= 0 {
		return ""
	}
	info := strings.Repeat("\x00", int(length+1))
	gl.GetShaderInfoLog(shader, length, nil, gl.Str(info))
	return strings.TrimRight(info, "\x00")
}

func (Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Device) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (Device) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (Device) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (Device) ValidateProgram(program uint32) {
	gl.ValidateProgram(program)
}

func (Device) GetProgramiv(program, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (Device) GetProgramInfoLog(program uint32) string {
	var length int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
	if length <= 0 {
		return ""
	}
	info := strings.Repeat("\x00", int(length+1))
	gl.GetProgramInfoLog(program, length, nil, gl.Str(info))
	return strings.TrimRight(info, "\x00")
}

func (Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (Device) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (Device) Uniform1f(location int32, v0 float32) {
	gl.Uniform1f(location, v0)
}

func (Device) Uniform2f(location int32, v0, v1 float32) {
	gl.Uniform2f(location, v0, v1)
}

func (Device) Uniform3f(location int32, v0, v1, v2 float32) {
	gl.Uniform3f(location, v0, v1, v2)
}

func (Device) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(location, v0, v1, v2, v3)
}

func (Device) Uniform1i(location int32, v0 int32) {
	gl.Uniform1i(location, v0)
}

func (Device) Uniform1ui(location int32, v0 uint32) {
	gl.Uniform1ui(location, v0)
}

func (Device) UniformMatrix3fv(location int32, transpose bool, value []float32) {
	if len(value) < 9 {
		return
	}
	gl.UniformMatrix3fv(location, int32(len(value)/9), transpose, &value[0])
}

func (Device) UniformMatrix4fv(location int32, transpose bool, value []float32) {
	if len(value) < 16 {
		return
	}
	gl.UniformMatrix4fv(location, int32(len(value)/16), transpose, &value[0])
}

func (Device) DrawArrays(mode uint32, first, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (Device) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	gl.DrawElements(mode, count, xtype, gl.PtrOffset(int(offset)))
}
