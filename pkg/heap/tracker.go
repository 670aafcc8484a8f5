package heap

import (
	"fmt"
	"log"
	"unsafe"
)

// Stats is a snapshot of a Tracker's counters.
type Stats struct {
	Allocs     int
	Frees      int
	Failures   int
	LiveBlocks int
	LiveBytes  int
}

// Tracker decorates an Allocator and records every block it hands out, so
// leaks and double frees show up. Not safe for concurrent use.
type Tracker struct {
	next   Allocator
	logger *log.Logger
	live   map[uintptr]int // block address -> size
	stats  Stats
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger logs every allocation and free.
func WithLogger(logger *log.Logger) Option { return func(t *Tracker) { t.logger = logger } }

// NewTracker wraps next.
func NewTracker(next Allocator, opts ...Option) *Tracker {
	t := &Tracker{
		next: next,
		live: make(map[uintptr]int),
	}

	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) Malloc(size int) ([]byte, error) {
	b, err := t.next.Malloc(size)
	if err != nil || len(b) == 0 {
		t.stats.Failures++
		t.logf("malloc(%d) failed: %v", size, err)
		return b, err
	}

	addr := blockAddr(b)
	t.live[addr] = len(b)
	t.stats.Allocs++
	t.stats.LiveBlocks++
	t.stats.LiveBytes += len(b)
	t.logf("malloc(%d) = %#x", size, addr)
	return b, nil
}

func (t *Tracker) Free(b []byte) error {
	if len(b) == 0 {
		return ErrUnknownBlock
	}

	addr := blockAddr(b)
	size, ok := t.live[addr]
	if !ok {
		t.logf("free(%#x) rejected: not live", addr)
		return fmt.Errorf("%w: %#x", ErrUnknownBlock, addr)
	}
	if err := t.next.Free(b); err != nil {
		return err
	}

	delete(t.live, addr)
	t.stats.Frees++
	t.stats.LiveBlocks--
	t.stats.LiveBytes -= size
	t.logf("free(%#x) %d bytes", addr, size)
	return nil
}

// Stats returns the current counters.
func (t *Tracker) Stats() Stats { return t.stats }

// Outstanding reports how many blocks were allocated but not freed.
func (t *Tracker) Outstanding() int { return len(t.live) }

func (t *Tracker) logf(format string, args ...any) {
	if t.logger != nil {
		t.logger.Printf(format, args...)
	}
}

func blockAddr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}
