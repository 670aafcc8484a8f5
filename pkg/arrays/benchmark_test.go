package arrays

import (
	"testing"

	"arraymem/pkg/heap"
)

var (
	sinkInt   int   // prevents dead-code elimination
	sliceSink []int // forces the Go-heap variant to escape
)

func BenchmarkFillStatic(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		a := FillStatic() // lives in this frame
		sinkInt = a[StaticLen-1]
	}
}

func BenchmarkFillDynamicGoHeap(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sliceSink = make([]int, DynamicLen) // always heap
		FillDynamic(sliceSink)
	}
}

func BenchmarkFillDynamicManual(b *testing.B) {
	m := heap.NewManual()
	defer m.Close()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := heap.AllocInts(m, DynamicLen)
		if err != nil {
			b.Fatal(err)
		}
		FillDynamic(p.Slice())
		sinkInt = p.Slice()[DynamicLen-1]
		if err := p.Release(); err != nil {
			b.Fatal(err)
		}
	}
}
