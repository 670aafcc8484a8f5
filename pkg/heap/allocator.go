// Package heap hands out integer arrays backed by memory the Go garbage
// collector does not manage. Every block must be freed explicitly.
package heap

import (
	"errors"

	"modernc.org/memory"
)

var (
	// ErrAllocFailed is returned by AllocInts when no usable block was obtained.
	ErrAllocFailed = errors.New("memory allocation failed")
	// ErrOutOfMemory is what Failing reports for every request.
	ErrOutOfMemory = errors.New("out of memory")
	// ErrReleased is returned when an Ints handle is released a second time.
	ErrReleased = errors.New("block already released")
	// ErrUnknownBlock is returned when freeing a block that is not live.
	ErrUnknownBlock = errors.New("unknown or already freed block")
)

// Allocator is a malloc/free style byte allocator.
type Allocator interface {
	Malloc(size int) ([]byte, error)
	Free(b []byte) error
}

// Manual allocates from pages mapped directly from the OS.
// The zero value is not usable, use NewManual.
type Manual struct {
	a *memory.Allocator
}

// NewManual creates an allocator outside the Go heap.
func NewManual() *Manual {
	return &Manual{a: &memory.Allocator{}}
}

func (m *Manual) Malloc(size int) ([]byte, error) { return m.a.Malloc(size) }

func (m *Manual) Free(b []byte) error { return m.a.Free(b) }

// Close returns every page still held by the allocator to the OS.
func (m *Manual) Close() error { return m.a.Close() }

// Failing refuses every allocation. Err overrides the returned error.
type Failing struct {
	Err error
}

func (f Failing) Malloc(int) ([]byte, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return nil, ErrOutOfMemory
}

func (Failing) Free([]byte) error { return ErrUnknownBlock }
