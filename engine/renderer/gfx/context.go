package gfx

import (
	"github.com/google/uuid"
	"github.com/spaghettifunk/anima-gl/engine/core"
)

// Context is the handle to one bound device and the caches built on top of
// it.
//
// A Context is confined to the goroutine (and OS thread) that owns the
// device binding. It holds no locks: every method, and every function that
// takes a *Context, must be called from that goroutine only. Multiple
// pointers to the same Context are fine as long as they stay there.
type Context struct {
	id  uuid.UUID
	dev Device

	limits   Limits
	viewport ViewportRect

	formats *formatCache
}

// NewContext wraps an already bound device. It queries the capability
// snapshot and the current viewport and returns a context with an empty
// format cache. A device error during the queries is fatal.
func NewContext(dev Device) *Context {
	c := &Context{
		id:      uuid.New(),
		dev:     dev,
		formats: newFormatCache(),
	}
	if stale := pendingErrors(dev); len(stale) > 0 {
		core.LogWarn("gfx: discarding %d pending device errors before load: %v", len(stale), stale)
	}
	c.limits = loadLimits(c)
	c.viewport = queryViewport(c)
	core.LogDebug("gfx: context %s loaded, viewport %s, %d vertex attribs", c.id, c.viewport, c.limits.MaxVertexAttribs)
	return c
}

// ID identifies the context in logs.
func (c *Context) ID() uuid.UUID {
	return c.id
}

// Limits returns the capability snapshot taken when the context was created.
func (c *Context) Limits() Limits {
	return c.limits
}

// Viewport returns the cached viewport without querying the device.
func (c *Context) Viewport() ViewportRect {
	return c.viewport
}

// SetViewport issues the device viewport call and caches exactly the
// requested rectangle.
func (c *Context) SetViewport(rect ViewportRect) {
	w, h := narrow("Viewport", rect.Width), narrow("Viewport", rect.Height)
	c.viewport = rect
	c.dev.Viewport(rect.X, rect.Y, w, h)
	c.check("Viewport")
}

// Clear fills the color and depth buffers of the current framebuffer.
func (c *Context) Clear(r, g, b, a float32) {
	c.dev.ClearColor(r, g, b, a)
	c.dev.Clear(glColorBufferBit | glDepthBufferBit)
	c.check("Clear")
}

// FormatCount reports how many distinct vertex shapes have a format object.
func (c *Context) FormatCount() int {
	return c.formats.len()
}
