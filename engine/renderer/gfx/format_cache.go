package gfx

import "reflect"

// formatCache holds one vertex array per record type ever drawn. Keys are
// reflect.Type values, which are unique per distinct Go type, so the value
// stored under reflect.TypeFor[V]() is always a *VertexArray[V].
// Entries are never removed.
type formatCache struct {
	table map[reflect.Type]any
}

func newFormatCache() *formatCache {
	return &formatCache{
		table: make(map[reflect.Type]any),
	}
}

func (fc *formatCache) len() int {
	return len(fc.table)
}

// formatEntry is the cache slot for record type V.
type formatEntry[V any] struct {
	cache *formatCache
	key   reflect.Type
}

func entryFor[V any](fc *formatCache) formatEntry[V] {
	return formatEntry[V]{cache: fc, key: reflect.TypeFor[V]()}
}

// get returns the stored vertex array, if any.
func (e formatEntry[V]) get() (*VertexArray[V], bool) {
	v, ok := e.cache.table[e.key]
	if !ok {
		return nil, false
	}
	return v.(*VertexArray[V]), true
}

// orInsertWith returns the stored vertex array, running create to build it
// the first time the slot is requested.
func (e formatEntry[V]) orInsertWith(create func() *VertexArray[V]) *VertexArray[V] {
	if vao, ok := e.get(); ok {
		return vao
	}
	vao := create()
	e.cache.table[e.key] = vao
	return vao
}
