package gfx

import (
	"testing"

	"github.com/spaghettifunk/anima-gl/engine/renderer/gfx/gfxtest"
)

var _ Device = (*gfxtest.Device)(nil)

// Record shapes used across the tests.
type position [3]float32

type colored struct {
	Pos   [3]float32
	Color [4]uint8 `gfx:"norm"`
}

type described struct {
	A float32
	B float32
}

func (described) VertexLayout() VertexLayout {
	return VertexLayout{
		Stride: 8,
		Attributes: []Attribute{
			{Location: 3, Type: Float, Components: 1, Offset: 0},
			{Location: 7, Type: Float, Components: 1, Offset: 4},
		},
	}
}

const (
	vertexSource   = "#version 450 core\nvoid main() {}\n"
	fragmentSource = "#version 450 core\nout vec4 c;\nvoid main() { c = vec4(1); }\n"
)

// newTestContext loads a context on a fresh fake and clears the load-time
// calls from the log.
func newTestContext(t *testing.T) (*Context, *gfxtest.Device) {
	t.Helper()
	dev := gfxtest.NewDevice()
	ctx := NewContext(dev)
	dev.Reset()
	return ctx, dev
}

func newTestProgram(t *testing.T, ctx *Context, dev *gfxtest.Device) *Program {
	t.Helper()
	p, err := BuildProgram(ctx, vertexSource, fragmentSource)
	if err != nil {
		t.Fatalf("BuildProgram: %v", err)
	}
	dev.Reset()
	return p
}

// expectDeviceError runs f and returns the *DeviceError it panicked with.
func expectDeviceError(t *testing.T, f func()) (de *DeviceError) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a device error panic, got none")
		}
		err, ok := r.(*DeviceError)
		if !ok {
			t.Fatalf("panic value is %T (%v), want *DeviceError", r, r)
		}
		de = err
	}()
	f()
	return nil
}
