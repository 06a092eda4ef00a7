package main

import (
	"bytes"
	"testing"
)

// pushFlags mirrors the push command's flags for tests.
type pushFlags struct {
	capacity   int
	fixed      bool
	growth     string
	backend    string
	shrink     bool
	resize     int
	resizeSet  bool
	singleLine bool
	metrics    bool
}

func defaultPushFlags() pushFlags {
	return pushFlags{capacity: 1, growth: "double", backend: "heap"}
}

// runPushCaptured runs the push command with the given flags and returns
// what it printed.
func runPushCaptured(t *testing.T, f pushFlags, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	origStdout, origQuiet := stdout, quiet
	stdout, quiet = &buf, false
	t.Cleanup(func() { stdout, quiet = origStdout, origQuiet })

	pushCapacity = f.capacity
	pushFixed = f.fixed
	pushGrowth = f.growth
	pushBackend = f.backend
	pushShrink = f.shrink
	pushResize = f.resize
	pushSingleLine = f.singleLine
	pushMetrics = f.metrics

	err := runPush(args, f.resizeSet)
	return buf.String(), err
}
