// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package fb

import (
	"sync/atomic"
	"unsafe"
)

// holds the last value read back from device memory
var sink uint32

// Region represents a memory mapped device buffer. Unlike ordinary memory,
// each write is followed by a read-back to keep it from being elided or
// reordered with subsequent accesses.
type Region struct {
	buf []byte
}

// NewRegion returns a device memory region over the argument buffer, which
// must remain valid for the lifetime of the Region.
func NewRegion(buf []byte) *Region {
	return &Region{buf: buf}
}

// Len returns the region size in bytes.
func (r *Region) Len() int {
	return len(r.buf)
}

// Read returns the byte at the argument offset.
func (r *Region) Read(off int) byte {
	return *(*byte)(unsafe.Pointer(&r.buf[off]))
}

// Write copies the argument bytes at the given offset and reads back the first
// written byte. Writes exceeding the region bounds panic.
func (r *Region) Write(off int, p []byte) {
	if len(p) == 0 {
		return
	}

	copy(r.buf[off:off+len(p)], p)
	atomic.StoreUint32(&sink, uint32(r.Read(off)))
}

// Fill sets every byte of the region to the argument value.
func (r *Region) Fill(b byte) {
	if len(r.buf) == 0 {
		return
	}

	for i := range r.buf {
		r.buf[i] = b
	}

	atomic.StoreUint32(&sink, uint32(r.Read(0)))
}
