// Package arrays contrasts a fixed-size array living in the caller's frame
// with an array allocated by hand outside the Go heap.
package arrays

import (
	"bytes"
	"fmt"
	"io"
	"unsafe"
)

const (
	StaticLen   = 5
	DynamicLen  = 10
	DynamicBase = 10
)

// Element is one array slot: its value and where it lives.
type Element struct {
	Value int
	Addr  uintptr
}

// Report holds both arrays as they were laid out in memory.
type Report struct {
	Static  []Element
	Dynamic []Element
}

// FillStatic returns the fixed array {1, 2, 3, 4, 5}.
func FillStatic() [StaticLen]int {
	return [StaticLen]int{1, 2, 3, 4, 5}
}

// FillDynamic stores index+DynamicBase in every slot of s.
func FillDynamic(s []int) {
	for i := range s {
		s[i] = i + DynamicBase
	}
}

// Offset is dyn - static in bytes, computed at pointer width.
func Offset(dyn, static uintptr) int {
	return int(dyn) - int(static)
}

// FormatAddr renders an address the way the report prints it.
func FormatAddr(addr uintptr) string {
	return fmt.Sprintf("%#x", addr)
}

// StaticElements records values and addresses of a fixed array.
func StaticElements(a *[StaticLen]int) []Element {
	out := make([]Element, StaticLen)
	for i := range a {
		out[i] = Element{Value: a[i], Addr: uintptr(unsafe.Pointer(&a[i]))}
	}
	return out
}

// Offset returns the distance from the first static element to the first
// dynamic one. Zero if either side is empty.
func (r *Report) Offset() int {
	if len(r.Static) == 0 || len(r.Dynamic) == 0 {
		return 0
	}
	return Offset(r.Dynamic[0].Addr, r.Static[0].Addr)
}

// WriteTo prints both arrays followed by the first-element addresses and
// their difference.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer

	buf.WriteString("Static array:\n")
	writeElements(&buf, r.Static)

	buf.WriteString("\nDynamic array:\n")
	writeElements(&buf, r.Dynamic)

	if len(r.Static) > 0 && len(r.Dynamic) > 0 {
		buf.WriteString("\nAddress difference:\n")
		fmt.Fprintf(&buf, "First element of static array: %s\n", FormatAddr(r.Static[0].Addr))
		fmt.Fprintf(&buf, "First element of dynamic array: %s\n", FormatAddr(r.Dynamic[0].Addr))
		fmt.Fprintf(&buf, "Difference: %d bytes\n", r.Offset())
	}

	return buf.WriteTo(w)
}

func writeElements(buf *bytes.Buffer, elems []Element) {
	for _, e := range elems {
		fmt.Fprintf(buf, "Value: %d, Address: %s\n", e.Value, FormatAddr(e.Addr))
	}
}
