package gfx

import "unsafe"

// BufferIndex is the set of element types usable in an index buffer.
type BufferIndex interface {
	~uint8 | ~uint16 | ~uint32
}

// IndexType returns the device element type for indices of type I.
func IndexType[I BufferIndex]() ElementType {
	var zero I
	switch unsafe.Sizeof(zero) {
	case 1:
		return UnsignedByte
	case 2:
		return UnsignedShort
	}
	return UnsignedInt
}
