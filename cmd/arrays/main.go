package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"arraymem/pkg/arrays"
	"arraymem/pkg/heap"
	"arraymem/pkg/metrics"
)

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	m := heap.NewManual()
	code := run(os.Stdout, logger, m)
	if err := m.Close(); err != nil {
		logger.Printf("closing allocator: %v", err)
	}

	os.Exit(code)
}

func run(stdout io.Writer, logger *log.Logger, alloc heap.Allocator) int {
	tracker := heap.NewTracker(alloc, heap.WithLogger(logger))
	metrics.LogMemStats(logger, "Before run")

	err := arrays.Run(stdout, tracker, arrays.WithLogger(logger))
	switch {
	case errors.Is(err, heap.ErrAllocFailed):
		fmt.Fprintln(stdout, err)
		return 1
	case err != nil:
		logger.Printf("run: %v", err)
		return 1
	}

	if n := tracker.Outstanding(); n != 0 {
		logger.Printf("%d block(s) still allocated", n)
		return 1
	}

	metrics.LogMemStats(logger, "After run")
	return 0
}
