package gfx

import "fmt"

// ViewportRect is the active draw rectangle in window coordinates.
type ViewportRect struct {
	X      int32
	Y      int32
	Width  uint32
	Height uint32
}

func NewViewportRect(x, y int32, width, height uint32) ViewportRect {
	return ViewportRect{X: x, Y: y, Width: width, Height: height}
}

// ViewportFromSize returns a rectangle anchored at the origin, as reported
// by framebuffer size callbacks. Negative sizes clamp to zero.
func ViewportFromSize(width, height int) ViewportRect {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return ViewportRect{Width: uint32(width), Height: uint32(height)}
}

func (r ViewportRect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

func queryViewport(c *Context) ViewportRect {
	var r [4]int32
	c.dev.GetIntegerv(glViewport, r[:])
	c.check("GetIntegerv(GL_VIEWPORT)")
	return ViewportRect{
		X:      r[0],
		Y:      r[1],
		Width:  uint32(r[2]),
		Height: uint32(r[3]),
	}
}
