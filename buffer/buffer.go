// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package buffer implements the name-keyed store of opaque byte
// buffers used for vertex/index data (the glGenBuffers/glBufferData
// family). Usage hints are advisory only: nothing in the pipeline
// changes behavior based on them.
package buffer

import (
	"github.com/pkg/errors"

	"github.com/gviegas/tinygl/internal/arena"
)

// Name identifies a buffer object. The zero Name means "unbound"
// (client arrays).
type Name = arena.Handle

// Usage is an advisory usage hint.
type Usage int

const (
	StaticDraw Usage = iota
	DynamicDraw
	StreamDraw
)

// Object is a single buffer: a byte array, its size, and a usage
// hint.
type Object struct {
	Data  []byte
	Usage Usage
}

// Store is the name-keyed collection of buffer objects bound to a
// context.
type Store struct {
	arena arena.Arena[Object]
}

// Gen allocates n fresh, empty buffer names.
func (s *Store) Gen(n int) []Name {
	out := make([]Name, n)
	for i := range out {
		h, obj := s.arena.New()
		*obj = Object{}
		out[i] = h
	}
	return out
}

// Delete frees name. Deleting name 0 or an unallocated name is a
// no-op.
func (s *Store) Delete(name Name) { s.arena.Free(name) }

// Lookup returns the buffer object for name and whether it exists.
func (s *Store) Lookup(name Name) (*Object, bool) { return s.arena.Get(name) }

// SetData replaces o's entire contents with a copy of data and records
// usage.
func (o *Object) SetData(data []byte, usage Usage) {
	o.Data = append([]byte(nil), data...)
	o.Usage = usage
}

// SubData overwrites o's contents at [offset, offset+len(data)).
// Writing past the end of the buffer is an error (spec.md §7
// invalid-value) and leaves o unmodified.
func (o *Object) SubData(offset int, data []byte) error {
	if offset < 0 || offset+len(data) > len(o.Data) {
		return errors.New("buffer: sub-data range out of bounds")
	}
	copy(o.Data[offset:], data)
	return nil
}
