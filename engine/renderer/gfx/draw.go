package gfx

// DrawArrays draws every record of vertices with program.
//
// An empty vertex buffer issues no device calls at all and leaves the format
// cache untouched.
func DrawArrays[V any](ctx *Context, primitive PrimitiveType, program *Program, vertices *Buffer[V]) {
	if vertices.Len() == 0 {
		return
	}
	program.Bind(ctx)

	vao := formatFor(ctx, vertices)
	vao.SetBuffer(ctx, vertices)
	vao.Bind(ctx)

	ctx.dev.DrawArrays(uint32(primitive), 0, narrow("DrawArrays", vertices.Len()))
	ctx.check("DrawArrays")
}

// DrawElements draws vertices indexed by indices with program. Like
// DrawArrays it is a no-op when the vertex buffer is empty.
func DrawElements[V any, I BufferIndex](ctx *Context, primitive PrimitiveType, program *Program, vertices *Buffer[V], indices *Buffer[I]) {
	if vertices.Len() == 0 {
		return
	}
	program.Bind(ctx)

	vao := formatFor(ctx, vertices)
	vao.SetBuffer(ctx, vertices)
	vao.Bind(ctx)
	indices.Bind(ctx, ElementBuffer)

	ctx.dev.DrawElements(uint32(primitive), narrow("DrawElements", indices.Len()), uint32(IndexType[I]()), 0)
	ctx.check("DrawElements")
}

// formatFor finds the vertex array describing V, creating it with the
// given buffer attached on first use.
func formatFor[V any](ctx *Context, vertices *Buffer[V]) *VertexArray[V] {
	return entryFor[V](ctx.formats).orInsertWith(func() *VertexArray[V] {
		return ForShape[V](ctx).WithBuffer(ctx, vertices)
	})
}
