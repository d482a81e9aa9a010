package gfx

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/anima-gl/engine/renderer/gfx/gfxtest"
)

func TestSetUniformResolvesNameOnce(t *testing.T) {
	ctx, dev := newTestContext(t)
	program := newTestProgram(t, ctx, dev)
	dev.Locations["u_time"] = 4

	const n = 5
	for i := 0; i < n; i++ {
		if err := program.SetUniform(ctx, "u_time", float32(i)); err != nil {
			t.Fatalf("SetUniform: %v", err)
		}
	}

	if got := dev.Count("GetUniformLocation"); got != 1 {
		t.Errorf("GetUniformLocation called %d times, want 1", got)
	}
	sets := dev.Named("Uniform1f")
	if len(sets) != n {
		t.Fatalf("Uniform1f called %d times, want %d", len(sets), n)
	}
	for i, call := range sets {
		if call.Args[0] != int32(4) || call.Args[1] != float32(i) {
			t.Errorf("Uniform1f call %d = %v, want [4 %d]", i, call.Args, i)
		}
	}
	if got := dev.Count("UseProgram"); got != n {
		t.Errorf("UseProgram called %d times, want %d", got, n)
	}
	if program.CachedUniforms() != 1 {
		t.Errorf("CachedUniforms = %d, want 1", program.CachedUniforms())
	}
}

func TestUniformCacheIsPerProgram(t *testing.T) {
	ctx, dev := newTestContext(t)
	a := newTestProgram(t, ctx, dev)
	b := newTestProgram(t, ctx, dev)

	_ = a.SetUniform(ctx, "u_color", mgl32.Vec4{1, 0, 0, 1})
	_ = b.SetUniform(ctx, "u_color", mgl32.Vec4{0, 1, 0, 1})
	_ = a.SetUniform(ctx, "u_color", mgl32.Vec4{0, 0, 1, 1})

	lookups := dev.Named("GetUniformLocation")
	if len(lookups) != 2 {
		t.Fatalf("GetUniformLocation called %d times, want 2", len(lookups))
	}
	if lookups[0].Args[0] != a.Handle() || lookups[1].Args[0] != b.Handle() {
		t.Errorf("lookups = %v, want one per program", lookups)
	}
}

func TestMissingUniformIsCached(t *testing.T) {
	ctx, dev := newTestContext(t)
	program := newTestProgram(t, ctx, dev)
	dev.Missing["u_unused"] = true

	_ = program.SetUniform(ctx, "u_unused", int32(1))
	_ = program.SetUniform(ctx, "u_unused", int32(2))

	if got := dev.Count("GetUniformLocation"); got != 1 {
		t.Errorf("GetUniformLocation called %d times, want 1", got)
	}
	for _, call := range dev.Named("Uniform1i") {
		if call.Args[0] != int32(-1) {
			t.Errorf("Uniform1i location = %v, want -1", call.Args[0])
		}
	}
}

type tint struct{ r, g float32 }

func (c tint) SetUniform(dev Device, location int32) {
	dev.Uniform2f(location, c.r, c.g)
}

func TestSetUniformValueTypes(t *testing.T) {
	tests := []struct {
		value any
		call  string
	}{
		{float32(1), "Uniform1f"},
		{int32(1), "Uniform1i"},
		{7, "Uniform1i"},
		{uint32(1), "Uniform1ui"},
		{true, "Uniform1i"},
		{[2]float32{1, 2}, "Uniform2f"},
		{mgl32.Vec2{1, 2}, "Uniform2f"},
		{[3]float32{1, 2, 3}, "Uniform3f"},
		{mgl32.Vec3{1, 2, 3}, "Uniform3f"},
		{[4]float32{1, 2, 3, 4}, "Uniform4f"},
		{mgl32.Vec4{1, 2, 3, 4}, "Uniform4f"},
		{mgl32.Ident3(), "UniformMatrix3fv"},
		{mgl32.Ident4(), "UniformMatrix4fv"},
		{tint{1, 2}, "Uniform2f"},
	}
	for _, tt := range tests {
		dev := gfxtest.NewDevice()
		write, err := uniformWriter(tt.value)
		if err != nil {
			t.Errorf("%T: %v", tt.value, err)
			continue
		}
		write(dev, 3)
		if len(dev.Calls) != 1 || dev.Calls[0].Name != tt.call {
			t.Errorf("%T issued %v, want one %s", tt.value, dev.Names(), tt.call)
		}
	}
}

func TestSetUniformUnsupportedType(t *testing.T) {
	ctx, dev := newTestContext(t)
	program := newTestProgram(t, ctx, dev)

	err := program.SetUniform(ctx, "u_name", "not a uniform")
	if !errors.Is(err, ErrUnsupportedUniform) {
		t.Fatalf("err = %v, want ErrUnsupportedUniform", err)
	}
	if len(dev.Calls) != 0 {
		t.Errorf("rejected value issued device calls: %v", dev.Names())
	}
	if program.CachedUniforms() != 0 {
		t.Errorf("rejected value cached %d uniform names", program.CachedUniforms())
	}
}

func TestSetUniformMatrixData(t *testing.T) {
	ctx, dev := newTestContext(t)
	program := newTestProgram(t, ctx, dev)
	m := mgl32.Translate3D(1, 2, 3)

	if err := program.SetUniform(ctx, "u_model", m); err != nil {
		t.Fatal(err)
	}
	calls := dev.Named("UniformMatrix4fv")
	if len(calls) != 1 {
		t.Fatalf("UniformMatrix4fv called %d times, want 1", len(calls))
	}
	data := calls[0].Args[2].([]float32)
	if len(data) != 16 || data[12] != 1 || data[13] != 2 || data[14] != 3 {
		t.Errorf("matrix data = %v, want translation in column 3", data)
	}
}

func TestProgramDelete(t *testing.T) {
	ctx, dev := newTestContext(t)
	program := newTestProgram(t, ctx, dev)
	handle := program.Handle()

	program.Delete(ctx)
	program.Delete(ctx)

	calls := dev.Named("DeleteProgram")
	if len(calls) != 1 || calls[0].Args[0] != handle {
		t.Errorf("DeleteProgram calls = %v, want one for %d", calls, handle)
	}
}
