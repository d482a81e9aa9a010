package gfx

import "fmt"

// Device enum values. They match the OpenGL constants so a Device
// implementation backed by GL can pass them through unchanged.
const (
	glNoError                 = 0x0000
	glInvalidEnum             = 0x0500
	glInvalidValue            = 0x0501
	glInvalidOperation        = 0x0502
	glStackOverflow           = 0x0503
	glStackUnderflow          = 0x0504
	glOutOfMemory             = 0x0505
	glInvalidFramebufferOp    = 0x0506
	glContextLost             = 0x0507
	glViewport                = 0x0BA2
	glMaxTextureSize          = 0x0D33
	glMaxVertexAttribs        = 0x8869
	glMaxTextureImageUnits    = 0x8872
	glMaxCombinedTextureUnits = 0x8B4D
	glMaxVertexAttribBindings = 0x82DA
	glMaxUniformLocations     = 0x826E
	glMaxArrayTextureLayers   = 0x88FF
	glFragmentShader          = 0x8B30
	glVertexShader            = 0x8B31
	glCompileStatus           = 0x8B81
	glLinkStatus              = 0x8B82
	glValidateStatus          = 0x8B83
	glArrayBuffer             = 0x8892
	glElementArrayBuffer      = 0x8893
	glDepthBufferBit          = 0x0100
	glColorBufferBit          = 0x4000
)

// Exported query names, for Device implementations and tests.
const (
	QueryViewport       uint32 = glViewport
	QueryCompileStatus  uint32 = glCompileStatus
	QueryLinkStatus     uint32 = glLinkStatus
	QueryValidateStatus uint32 = glValidateStatus
)

// ErrorCode is a value returned by the device error query.
type ErrorCode uint32

const (
	NoError                     ErrorCode = glNoError
	InvalidEnum                 ErrorCode = glInvalidEnum
	InvalidValue                ErrorCode = glInvalidValue
	InvalidOperation            ErrorCode = glInvalidOperation
	StackOverflow               ErrorCode = glStackOverflow
	StackUnderflow              ErrorCode = glStackUnderflow
	OutOfMemory                 ErrorCode = glOutOfMemory
	InvalidFramebufferOperation ErrorCode = glInvalidFramebufferOp
	ContextLost                 ErrorCode = glContextLost
)

func (e ErrorCode) String() string {
	switch e {
	case NoError:
		return "GL_NO_ERROR"
	case InvalidEnum:
		return "GL_INVALID_ENUM"
	case InvalidValue:
		return "GL_INVALID_VALUE"
	case InvalidOperation:
		return "GL_INVALID_OPERATION"
	case StackOverflow:
		return "GL_STACK_OVERFLOW"
	case StackUnderflow:
		return "GL_STACK_UNDERFLOW"
	case OutOfMemory:
		return "GL_OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case ContextLost:
		return "GL_CONTEXT_LOST"
	}
	return fmt.Sprintf("GL_ERROR(0x%04X)", uint32(e))
}

// PrimitiveType is the kind of primitive assembled by a draw call.
type PrimitiveType uint32

const (
	Points        PrimitiveType = 0x0000
	Lines         PrimitiveType = 0x0001
	LineLoop      PrimitiveType = 0x0002
	LineStrip     PrimitiveType = 0x0003
	Triangles     PrimitiveType = 0x0004
	TriangleStrip PrimitiveType = 0x0005
	TriangleFan   PrimitiveType = 0x0006
)

// ElementType is the device-level scalar type of one attribute component.
type ElementType uint32

const (
	Byte          ElementType = 0x1400
	UnsignedByte  ElementType = 0x1401
	Short         ElementType = 0x1402
	UnsignedShort ElementType = 0x1403
	Int           ElementType = 0x1404
	UnsignedInt   ElementType = 0x1405
	Float         ElementType = 0x1406
	Double        ElementType = 0x140A
)

// Size returns the width of the element type in bytes.
func (t ElementType) Size() uint32 {
	switch t {
	case Byte, UnsignedByte:
		return 1
	case Short, UnsignedShort:
		return 2
	case Int, UnsignedInt, Float:
		return 4
	case Double:
		return 8
	}
	return 0
}

// Integer reports whether the element type is a signed or unsigned integer.
func (t ElementType) Integer() bool {
	switch t {
	case Byte, UnsignedByte, Short, UnsignedShort, Int, UnsignedInt:
		return true
	}
	return false
}

// UsageType hints the device about how buffer contents will be accessed.
type UsageType uint32

const (
	StreamDraw  UsageType = 0x88E0
	StreamRead  UsageType = 0x88E1
	StreamCopy  UsageType = 0x88E2
	StaticDraw  UsageType = 0x88E4
	StaticRead  UsageType = 0x88E5
	StaticCopy  UsageType = 0x88E6
	DynamicDraw UsageType = 0x88E8
	DynamicRead UsageType = 0x88E9
	DynamicCopy UsageType = 0x88EA
)

// BufferTarget is a device binding point for buffers.
type BufferTarget uint32

const (
	ArrayBuffer   BufferTarget = glArrayBuffer
	ElementBuffer BufferTarget = glElementArrayBuffer
)

// ShaderType is the pipeline stage a shader object is compiled for.
type ShaderType uint32

const (
	VertexShader   ShaderType = glVertexShader
	FragmentShader ShaderType = glFragmentShader
)

func (s ShaderType) String() string {
	switch s {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return fmt.Sprintf("ShaderType(0x%04X)", uint32(s))
}
