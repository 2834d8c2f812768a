// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package arena implements a 1-based handle arena backed by a
// growable bitmap free-list, used by the texture, buffer, and
// display-list stores to hand out and recycle names the way
// glGenTextures/glGenBuffers/glGenLists do.
package arena

// Handle is a 1-based name. The zero Handle is reserved by every
// store that uses this package to mean "no object"/"unbound".
type Handle uint32

// words is a growable bitmap of free-list state, one bit per slot.
type words struct {
	w   []uint64
	rem int
}

const wbits = 64

func (b *words) len() int { return len(b.w) * wbits }

func (b *words) grow(nplus int) {
	if nplus <= 0 {
		return
	}
	b.rem += nplus * wbits
	b.w = append(b.w, make([]uint64, nplus)...)
}

func (b *words) set(i int)   { b.setTo(i, true) }
func (b *words) unset(i int) { b.setTo(i, false) }

func (b *words) setTo(i int, v bool) {
	word, bit := i/wbits, uint(i%wbits)
	mask := uint64(1) << bit
	cur := b.w[word]&mask != 0
	if cur == v {
		return
	}
	if v {
		b.w[word] |= mask
		b.rem--
	} else {
		b.w[word] &^= mask
		b.rem++
	}
}

func (b *words) isSet(i int) bool {
	word, bit := i/wbits, uint(i%wbits)
	return b.w[word]&(uint64(1)<<bit) != 0
}

// search finds the lowest unset bit, returning ok=false if the
// bitmap is full.
func (b *words) search() (index int, ok bool) {
	if b.rem == 0 {
		return 0, false
	}
	for i, w := range b.w {
		if w == ^uint64(0) {
			continue
		}
		for bit := 0; bit < wbits; bit++ {
			if w&(1<<uint(bit)) == 0 {
				return i*wbits + bit, true
			}
		}
	}
	return 0, false
}

// searchRange finds n contiguous unset bits, returning ok=false if
// no such range exists.
func (b *words) searchRange(n int) (index int, ok bool) {
	if n <= 1 {
		return b.search()
	}
	if b.rem < n {
		return 0, false
	}
	total := b.len()
	run := 0
	start := 0
	for i := 0; i < total; i++ {
		if !b.isSet(i) {
			if run == 0 {
				start = i
			}
			run++
			if run >= n {
				return start, true
			}
		} else {
			run = 0
		}
	}
	return 0, false
}

// Arena is a name-keyed collection of elements of type T, indexed
// by 1-based Handle values. It owns the storage slice; elements
// must not be referenced across a call that may grow the arena
// (New, NewRange), since growth may reallocate the backing slice.
type Arena[T any] struct {
	elems []T
	free  words
}

// New allocates a single handle and returns it along with a pointer
// to its zero-valued element. The returned pointer is invalidated
// by any subsequent call to New or NewRange that grows the arena.
func (a *Arena[T]) New() (Handle, *T) {
	if a.free.rem == 0 {
		a.growBy(max(1, len(a.elems)))
	}
	idx, ok := a.free.search()
	if !ok {
		// Should not happen: growBy guarantees at least one free slot.
		a.growBy(1)
		idx, _ = a.free.search()
	}
	a.free.set(idx)
	var zero T
	a.elems[idx] = zero
	return Handle(idx + 1), &a.elems[idx]
}

// NewRange allocates n contiguous handles atomically (as used by
// glGenLists' range form), returning the first handle in the run;
// the rest are first+1 ... first+n-1. ok is false if n contiguous
// free slots could not be made available.
func (a *Arena[T]) NewRange(n int) (first Handle, ok bool) {
	if n <= 0 {
		return 0, false
	}
	idx, found := a.free.searchRange(n)
	for !found {
		if a.free.len() > 1<<24 {
			return 0, false
		}
		a.growBy(max(n, len(a.elems), 1))
		idx, found = a.free.searchRange(n)
	}
	for i := idx; i < idx+n; i++ {
		a.free.set(i)
		var zero T
		a.elems[i] = zero
	}
	return Handle(idx + 1), true
}

func (a *Arena[T]) growBy(nplus int) {
	if nplus < 1 {
		nplus = 1
	}
	words := (nplus + wbits - 1) / wbits
	a.free.grow(words)
	a.elems = append(a.elems, make([]T, words*wbits)...)
}

// Free releases h, making it available for reuse. Freeing an
// unallocated or already-free handle is a no-op.
func (a *Arena[T]) Free(h Handle) {
	if h == 0 {
		return
	}
	i := int(h) - 1
	if i < 0 || i >= len(a.elems) || !a.free.isSet(i) {
		return
	}
	var zero T
	a.elems[i] = zero
	a.free.unset(i)
}

// Get returns a pointer to h's element and whether h is currently
// allocated. The zero Handle is never allocated.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	if h == 0 {
		return nil, false
	}
	i := int(h) - 1
	if i < 0 || i >= len(a.elems) || !a.free.isSet(i) {
		return nil, false
	}
	return &a.elems[i], true
}

// IsAllocated reports whether h names a currently allocated slot.
func (a *Arena[T]) IsAllocated(h Handle) bool {
	_, ok := a.Get(h)
	return ok
}

// Reserve marks h (which must not already be allocated, and must
// be within a range previously grown into, e.g. via NewRange) as
// allocated in-place, used when a caller names an object before
// its generation (e.g., binding a not-yet-generated buffer name is
// rejected, but some stores pre-reserve ranges). Returns false if h
// is out of range or already allocated.
func (a *Arena[T]) Reserve(h Handle) (*T, bool) {
	if h == 0 {
		return nil, false
	}
	i := int(h) - 1
	if i < 0 || i >= len(a.elems) || a.free.isSet(i) {
		return nil, false
	}
	a.free.set(i)
	return &a.elems[i], true
}
