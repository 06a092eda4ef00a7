// Package rawmem hands out anonymous, private, zero-filled memory regions
// that live outside the Go heap.
//
// On Linux, Darwin and the BSDs regions come from mmap(2) through
// golang.org/x/sys/unix and are resized with mremap(2) where the kernel
// provides it. Other platforms get heap-backed byte slices with the same
// API so callers do not need build tags of their own.
//
// The garbage collector does not scan mapped regions. Never store Go
// pointers in memory returned by Map or Remap.
package rawmem
