package gfx

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Attribute describes one attribute slot of a vertex record.
type Attribute struct {
	// Location is the shader attribute slot.
	Location uint32
	// Type is the scalar type of each component.
	Type ElementType
	// Components is the number of components, 1 to 4.
	Components int32
	// Normalized maps integer components to [0,1] or [-1,1].
	Normalized bool
	// Offset is the byte offset of the attribute inside the record.
	Offset uint32
}

// VertexLayout is the ordered attribute list of a record type together
// with the record stride in bytes.
type VertexLayout struct {
	Stride     int32
	Attributes []Attribute
}

// Layout lets a record type spell out its attribute slots instead of having
// them derived from its fields. The method is called on the zero value.
type Layout interface {
	VertexLayout() VertexLayout
}

// LayoutOf returns the layout for records of type V. Types implementing
// Layout describe themselves; everything else is derived from the type:
//
//   - scalars and arrays of 1 to 4 scalars are a single slot at location 0
//   - structs map exported fields in order to consecutive locations
//
// Struct fields accept a `gfx` tag: a number sets the location (following
// fields continue from it), "norm" normalises integer components and "-"
// skips the field. Two fields may not share a location. An underivable type
// is a programming error and aborts.
func LayoutOf[V any]() VertexLayout {
	var zero V
	if l, ok := any(zero).(Layout); ok {
		return l.VertexLayout()
	}
	if l, ok := any(&zero).(Layout); ok {
		return l.VertexLayout()
	}
	layout, err := DeriveLayout(reflect.TypeFor[V]())
	if err != nil {
		fail(&DeviceError{Op: "LayoutOf", Err: err})
	}
	return layout
}

// DeriveLayout computes the attribute list of t from its structure.
func DeriveLayout(t reflect.Type) (VertexLayout, error) {
	layout := VertexLayout{Stride: int32(t.Size())}

	if t.Kind() != reflect.Struct {
		elem, n, ok := components(t)
		if !ok {
			return VertexLayout{}, fmt.Errorf("type %s is not a vertex attribute type", t)
		}
		layout.Attributes = []Attribute{{Type: elem, Components: n}}
		return layout, nil
	}

	next := uint32(0)
	used := make(map[uint32]string)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, skip, err := parseTag(f.Tag.Get("gfx"))
		if err != nil {
			return VertexLayout{}, fmt.Errorf("field %s.%s: %w", t, f.Name, err)
		}
		if skip {
			continue
		}
		elem, n, ok := components(f.Type)
		if !ok {
			return VertexLayout{}, fmt.Errorf("field %s.%s: type %s is not a vertex attribute type", t, f.Name, f.Type)
		}
		if tag.hasLocation {
			next = tag.location
		}
		if other, ok := used[next]; ok {
			return VertexLayout{}, fmt.Errorf("field %s.%s: location %d already used by %s", t, f.Name, next, other)
		}
		used[next] = f.Name
		layout.Attributes = append(layout.Attributes, Attribute{
			Location:   next,
			Type:       elem,
			Components: n,
			Normalized: tag.normalized,
			Offset:     uint32(f.Offset),
		})
		next++
	}
	if len(layout.Attributes) == 0 {
		return VertexLayout{}, fmt.Errorf("type %s has no attribute fields", t)
	}
	return layout, nil
}

type fieldTag struct {
	location    uint32
	hasLocation bool
	normalized  bool
}

func parseTag(s string) (fieldTag, bool, error) {
	var tag fieldTag
	if s == "" {
		return tag, false, nil
	}
	if s == "-" {
		return tag, true, nil
	}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "norm":
			tag.normalized = true
		case part == "":
		default:
			loc, err := strconv.ParseUint(part, 10, 32)
			if err != nil {
				return tag, false, fmt.Errorf("bad gfx tag %q", s)
			}
			tag.location = uint32(loc)
			tag.hasLocation = true
		}
	}
	return tag, false, nil
}

func components(t reflect.Type) (ElementType, int32, bool) {
	if t.Kind() == reflect.Array {
		if t.Len() < 1 || t.Len() > 4 {
			return 0, 0, false
		}
		elem, ok := scalar(t.Elem())
		return elem, int32(t.Len()), ok
	}
	elem, ok := scalar(t)
	return elem, 1, ok
}

func scalar(t reflect.Type) (ElementType, bool) {
	switch t.Kind() {
	case reflect.Int8:
		return Byte, true
	case reflect.Uint8:
		return UnsignedByte, true
	case reflect.Int16:
		return Short, true
	case reflect.Uint16:
		return UnsignedShort, true
	case reflect.Int32:
		return Int, true
	case reflect.Uint32:
		return UnsignedInt, true
	case reflect.Float32:
		return Float, true
	case reflect.Float64:
		return Double, true
	}
	return 0, false
}
