package main

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"arraymem/pkg/heap"
)

func TestRunSucceeds(t *testing.T) {
	m := heap.NewManual()
	defer m.Close()

	var out, logs bytes.Buffer
	code := run(&out, log.New(&logs, "", 0), m)

	require.Equal(t, 0, code)
	require.Equal(t, 1, strings.Count(out.String(), "Static array:"))
	require.Equal(t, 15, strings.Count(out.String(), "Value: "))
	require.Contains(t, out.String(), "Difference: ")
	require.Contains(t, logs.String(), "released dynamic array")
	require.NotContains(t, logs.String(), "still allocated")
}

func TestRunAllocationFailure(t *testing.T) {
	var out bytes.Buffer
	code := run(&out, log.New(io.Discard, "", 0), heap.Failing{})

	require.Equal(t, 1, code)
	require.True(t, strings.HasPrefix(out.String(), "memory allocation failed: "))
	require.NotContains(t, out.String(), "Value: ")
}
