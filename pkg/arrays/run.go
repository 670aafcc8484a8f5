package arrays

import (
	"fmt"
	"io"
	"log"

	"arraymem/pkg/heap"
)

type runner struct {
	logger *log.Logger
}

// Option configures Run.
type Option func(*runner)

// WithLogger lets callers see the allocation lifecycle.
func WithLogger(logger *log.Logger) Option { return func(r *runner) { r.logger = logger } }

// Run fills the fixed array and a DynamicLen array taken from alloc, writes
// the report to w and releases the dynamic array on every path.
func Run(w io.Writer, alloc heap.Allocator, opts ...Option) (err error) {
	r := &runner{logger: log.New(io.Discard, "", 0)}
	for _, opt := range opts {
		opt(r)
	}

	static := FillStatic()

	dyn, err := heap.AllocInts(alloc, DynamicLen)
	if err != nil {
		r.logger.Printf("allocating %d ints: %v", DynamicLen, err)
		return err
	}
	defer func() {
		rerr := dyn.Release()
		if rerr != nil {
			r.logger.Printf("release dynamic array: %v", rerr)
			if err == nil {
				err = fmt.Errorf("release dynamic array: %w", rerr)
			}
			return
		}
		r.logger.Printf("released dynamic array")
	}()
	r.logger.Printf("allocated %d bytes at %s", DynamicLen*heap.IntSize, FormatAddr(dyn.Addr(0)))

	FillDynamic(dyn.Slice())

	// Addresses are recorded as uintptr so static stays in this frame.
	report := Report{
		Static:  StaticElements(&static),
		Dynamic: make([]Element, dyn.Len()),
	}
	for i, v := range dyn.Slice() {
		report.Dynamic[i] = Element{Value: v, Addr: dyn.Addr(i)}
	}

	if _, err = report.WriteTo(w); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
