package gfx

import (
	"unsafe"
)

type bufferConfig struct {
	usage UsageType
}

// BufferOption configures NewBuffer.
type BufferOption func(c *bufferConfig)

// WithUsage sets the usage hint passed to the device. Defaults to StaticDraw.
func WithUsage(usage UsageType) BufferOption {
	return func(c *bufferConfig) {
		c.usage = usage
	}
}

// Buffer is a device buffer holding records of type V.
type Buffer[V any] struct {
	handle uint32
	len    int
	usage  UsageType
}

// NewBuffer creates a device buffer and uploads data into it.
func NewBuffer[V any](ctx *Context, data []V, opts ...BufferOption) *Buffer[V] {
	cfg := &bufferConfig{usage: StaticDraw}
	for _, o := range opts {
		o(cfg)
	}

	handle := ctx.dev.CreateBuffer()
	ctx.check("CreateBuffer")
	if handle == 0 {
		fail(&DeviceError{Op: "CreateBuffer", Err: ErrInvalidHandle})
	}

	var zero V
	size := len(data) * int(unsafe.Sizeof(zero))
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = unsafe.Pointer(unsafe.SliceData(data))
	}
	ctx.dev.NamedBufferData(handle, size, ptr, uint32(cfg.usage))
	ctx.check("NamedBufferData")

	return &Buffer[V]{handle: handle, len: len(data), usage: cfg.usage}
}

// Handle is the device name of the buffer. It doubles as its identity.
func (b *Buffer[V]) Handle() uint32 {
	return b.handle
}

// Len is the number of records in the buffer.
func (b *Buffer[V]) Len() int {
	return b.len
}

// Usage is the usage hint the buffer was created with.
func (b *Buffer[V]) Usage() UsageType {
	return b.usage
}

// Bind attaches the buffer to a device binding point.
func (b *Buffer[V]) Bind(ctx *Context, target BufferTarget) {
	ctx.dev.BindBuffer(uint32(target), b.handle)
	ctx.check("BindBuffer")
}
