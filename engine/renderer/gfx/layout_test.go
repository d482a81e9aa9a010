package gfx

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type meshVertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       [2]float32 `gfx:"4"`
	Weight   uint16     `gfx:"norm"`
	internal int32
	Skip     [3]float32 `gfx:"-"`
}

func TestDeriveLayoutStruct(t *testing.T) {
	layout, err := DeriveLayout(reflect.TypeFor[meshVertex]())
	if err != nil {
		t.Fatal(err)
	}
	want := VertexLayout{
		Stride: int32(reflect.TypeFor[meshVertex]().Size()),
		Attributes: []Attribute{
			{Location: 0, Type: Float, Components: 3, Offset: 0},
			{Location: 1, Type: Float, Components: 3, Offset: 12},
			{Location: 4, Type: Float, Components: 2, Offset: 24},
			{Location: 5, Type: UnsignedShort, Components: 1, Normalized: true, Offset: 32},
		},
	}
	if !reflect.DeepEqual(layout, want) {
		t.Errorf("layout = %+v\nwant     %+v", layout, want)
	}
}

func TestDeriveLayoutScalarAndArray(t *testing.T) {
	tests := []struct {
		typ  reflect.Type
		want Attribute
	}{
		{reflect.TypeFor[float32](), Attribute{Type: Float, Components: 1}},
		{reflect.TypeFor[position](), Attribute{Type: Float, Components: 3}},
		{reflect.TypeFor[[4]uint8](), Attribute{Type: UnsignedByte, Components: 4}},
		{reflect.TypeFor[[2]int16](), Attribute{Type: Short, Components: 2}},
		{reflect.TypeFor[float64](), Attribute{Type: Double, Components: 1}},
	}
	for _, tt := range tests {
		layout, err := DeriveLayout(tt.typ)
		if err != nil {
			t.Errorf("%s: %v", tt.typ, err)
			continue
		}
		if len(layout.Attributes) != 1 || layout.Attributes[0] != tt.want {
			t.Errorf("%s: attributes = %+v, want [%+v]", tt.typ, layout.Attributes, tt.want)
		}
		if layout.Stride != int32(tt.typ.Size()) {
			t.Errorf("%s: stride = %d, want %d", tt.typ, layout.Stride, tt.typ.Size())
		}
	}
}

func TestDeriveLayoutRejects(t *testing.T) {
	type badField struct {
		Name string
	}
	type badTag struct {
		A float32 `gfx:"first"`
	}
	type empty struct {
		hidden float32
	}
	// C follows B onto location 1, which A already holds
	type overlapping struct {
		A float32 `gfx:"1"`
		B float32 `gfx:"0"`
		C float32
	}
	type sameTag struct {
		A float32 `gfx:"2"`
		B float32 `gfx:"2"`
	}
	for _, typ := range []reflect.Type{
		reflect.TypeFor[string](),
		reflect.TypeFor[[5]float32](),
		reflect.TypeFor[badField](),
		reflect.TypeFor[badTag](),
		reflect.TypeFor[empty](),
		reflect.TypeFor[overlapping](),
		reflect.TypeFor[sameTag](),
	} {
		if _, err := DeriveLayout(typ); err == nil {
			t.Errorf("%s: expected an error", typ)
		}
	}
}

func TestDeriveLayoutNamesLocationCollision(t *testing.T) {
	type overlapping struct {
		A float32 `gfx:"1"`
		B float32 `gfx:"0"`
		C float32
	}
	_, err := DeriveLayout(reflect.TypeFor[overlapping]())
	if err == nil || !strings.Contains(err.Error(), "location 1 already used by A") {
		t.Errorf("err = %v, want a collision on location 1", err)
	}

	de := expectDeviceError(t, func() {
		LayoutOf[overlapping]()
	})
	if de.Op != "LayoutOf" {
		t.Errorf("Op = %q, want LayoutOf", de.Op)
	}
}

func TestLayoutOfPrefersDeclaredLayout(t *testing.T) {
	layout := LayoutOf[described]()
	if len(layout.Attributes) != 2 || layout.Attributes[0].Location != 3 {
		t.Errorf("layout = %+v, want the declared one", layout)
	}
}

func TestLayoutOfUnderivableIsFatal(t *testing.T) {
	de := expectDeviceError(t, func() {
		LayoutOf[map[string]int]()
	})
	if de.Op != "LayoutOf" || errors.Unwrap(de) == nil {
		t.Errorf("error = %v, want LayoutOf failure", de)
	}
}
