package gfx

import (
	"fmt"
	"reflect"

	"github.com/spaghettifunk/anima-gl/engine/core"
)

// vertexBinding is the single buffer binding index every attribute of a
// vertex array reads from.
const vertexBinding = 0

// VertexArray is a device vertex-format object configured for records of
// type V. It remembers the buffer last attached to it so that attaching the
// same buffer again costs no device call.
type VertexArray[V any] struct {
	handle uint32
	layout VertexLayout
	bound  uint32
}

// ForShape creates a vertex array and configures one attribute slot per
// attribute in the layout of V.
func ForShape[V any](ctx *Context) *VertexArray[V] {
	layout := LayoutOf[V]()
	if n := uint32(len(layout.Attributes)); ctx.limits.MaxVertexAttribs > 0 && n > ctx.limits.MaxVertexAttribs {
		fail(&DeviceError{
			Op:  "ForShape",
			Err: fmt.Errorf("%w: %s uses %d, limit %d", ErrTooManyAttributes, reflect.TypeFor[V](), n, ctx.limits.MaxVertexAttribs),
		})
	}

	handle := ctx.dev.CreateVertexArray()
	ctx.check("CreateVertexArray")
	if handle == 0 {
		fail(&DeviceError{Op: "CreateVertexArray", Err: ErrInvalidHandle})
	}

	for _, attr := range layout.Attributes {
		formatAttribute(ctx.dev, handle, attr)
		ctx.dev.VertexArrayAttribBinding(handle, attr.Location, vertexBinding)
		ctx.dev.EnableVertexArrayAttrib(handle, attr.Location)
		ctx.check("VertexArrayAttribFormat")
	}

	core.LogDebug("gfx: vertex array %d created for %s (%d attributes, stride %d)",
		handle, reflect.TypeFor[V](), len(layout.Attributes), layout.Stride)

	return &VertexArray[V]{handle: handle, layout: layout}
}

// formatAttribute picks the format entry point that keeps the attribute's
// type in the shader: integers stay integers unless normalized, doubles stay
// 64-bit, everything else is read as float.
func formatAttribute(dev Device, vao uint32, attr Attribute) {
	switch {
	case attr.Type.Integer() && !attr.Normalized:
		dev.VertexArrayAttribIFormat(vao, attr.Location, attr.Components, uint32(attr.Type), attr.Offset)
	case attr.Type == Double:
		dev.VertexArrayAttribLFormat(vao, attr.Location, attr.Components, uint32(attr.Type), attr.Offset)
	default:
		dev.VertexArrayAttribFormat(vao, attr.Location, attr.Components, uint32(attr.Type), attr.Normalized, attr.Offset)
	}
}

// WithBuffer attaches buf unconditionally and returns the vertex array.
func (va *VertexArray[V]) WithBuffer(ctx *Context, buf *Buffer[V]) *VertexArray[V] {
	va.attach(ctx, buf)
	return va
}

// SetBuffer attaches buf as the source of every attribute slot. Nothing is
// issued when buf is already the attached buffer.
func (va *VertexArray[V]) SetBuffer(ctx *Context, buf *Buffer[V]) {
	if va.bound == buf.handle {
		return
	}
	va.attach(ctx, buf)
}

func (va *VertexArray[V]) attach(ctx *Context, buf *Buffer[V]) {
	ctx.dev.VertexArrayVertexBuffer(va.handle, vertexBinding, buf.handle, 0, va.layout.Stride)
	ctx.check("VertexArrayVertexBuffer")
	va.bound = buf.handle
}

// Bind makes the vertex array the active one on the device.
func (va *VertexArray[V]) Bind(ctx *Context) {
	ctx.dev.BindVertexArray(va.handle)
	ctx.check("BindVertexArray")
}

// Handle is the device name of the vertex array.
func (va *VertexArray[V]) Handle() uint32 {
	return va.handle
}

// BoundBuffer is the handle of the attached buffer, 0 if none.
func (va *VertexArray[V]) BoundBuffer() uint32 {
	return va.bound
}

// Layout is the attribute layout the vertex array was configured with.
func (va *VertexArray[V]) Layout() VertexLayout {
	return va.layout
}
