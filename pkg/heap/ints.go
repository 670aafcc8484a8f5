package heap

import (
	"fmt"
	"unsafe"
)

// IntSize is the width of an int in bytes.
const IntSize = int(unsafe.Sizeof(int(0)))

// Ints owns a manually allocated []int. Release must be called exactly once.
type Ints struct {
	alloc Allocator
	raw   []byte
	s     []int
}

// AllocInts requests storage for n ints from a. A nil or short block counts as
// a failure, and nothing is held when an error is returned.
func AllocInts(a Allocator, n int) (*Ints, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: invalid length %d", ErrAllocFailed, n)
	}

	size := n * IntSize
	raw, err := a.Malloc(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %d bytes: %w", ErrAllocFailed, size, err)
	}
	if len(raw) < size {
		if len(raw) > 0 {
			_ = a.Free(raw)
		}
		return nil, fmt.Errorf("%w: got %d of %d bytes", ErrAllocFailed, len(raw), size)
	}

	return &Ints{
		alloc: a,
		raw:   raw,
		s:     unsafe.Slice((*int)(unsafe.Pointer(unsafe.SliceData(raw))), n),
	}, nil
}

// Slice returns the array. It is nil once the handle is released.
func (p *Ints) Slice() []int { return p.s }

// Len returns the number of elements, 0 after release.
func (p *Ints) Len() int { return len(p.s) }

// Addr returns the address of element i.
func (p *Ints) Addr(i int) uintptr {
	return uintptr(unsafe.Pointer(&p.s[i]))
}

// Release frees the block. Only the first call reaches the allocator.
func (p *Ints) Release() error {
	if p.raw == nil {
		return ErrReleased
	}

	raw := p.raw
	p.raw, p.s = nil, nil
	return p.alloc.Free(raw)
}
