package metrics

import (
	"log"
	"runtime"
	"time"
)

// MemStats returns current memory statistics
func MemStats() runtime.MemStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m
}

// LogMemStats logs the Go heap as seen by the runtime. Memory taken from a
// manual allocator never shows up in HeapAlloc, only in Sys once mapped.
func LogMemStats(logger *log.Logger, label string) {
	m := MemStats()

	logger.Printf("=== Memory Stats: %s ===", label)
	logger.Printf("Heap Alloc:   %d KB", m.HeapAlloc/1024)
	logger.Printf("Heap Objects: %d", m.HeapObjects)
	logger.Printf("Sys Memory:   %d KB", m.Sys/1024)
	logger.Printf("GC Cycles:    %d", m.NumGC)
	if m.NumGC > 0 {
		logger.Printf("Last GC Pause: %v", time.Duration(m.PauseNs[(m.NumGC-1)%256]))
	}
}
