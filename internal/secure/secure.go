// Package secure provides best-effort memory hygiene for the transient
// byte buffers that briefly hold secret material during encode and decode:
// a polynomial's random coefficients, and the plaintext/reconstructed word
// being processed. It locks the backing memory where the OS allows it and
// guarantees the bytes are zeroed once the buffer is no longer needed.
//
// This is an ambient hygiene measure, not a security guarantee the
// specification requires: it changes no wire bytes, and a determined
// attacker with a memory dump taken mid-operation can still observe live
// buffers. It simply avoids leaving secret words sitting around in the GC
// heap any longer than necessary.
package secure

import (
	"runtime"
	"sync"
)

// Bytes is a wrapper for a sensitive byte slice that locks its backing
// memory (best effort) and zeroes it on Destroy.
type Bytes struct {
	data   []byte
	locked bool
	mu     sync.Mutex
}

// New allocates a zeroed Bytes of the given size. The memory is locked if
// the host OS supports it.
func New(size int) *Bytes {
	data := make([]byte, size)

	b := &Bytes{data: data}
	b.locked = mlock(data)

	runtime.SetFinalizer(b, func(s *Bytes) {
		s.Destroy()
	})

	return b
}

// FromSlice copies data into a new secure Bytes.
func FromSlice(data []byte) *Bytes {
	b := New(len(data))
	copy(b.data, data)
	return b
}

// Bytes returns the underlying slice. Returns nil once destroyed.
func (b *Bytes) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data
}

// Len returns the length of the held data, or 0 once destroyed.
func (b *Bytes) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// IsLocked reports whether the backing memory was successfully mlocked.
func (b *Bytes) IsLocked() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.locked
}

// Wipe zeroes the held bytes in place without releasing the lock, so the
// buffer can be reused for the next word in a streaming loop instead of
// allocating (and mlock'ing) a fresh one every iteration.
func (b *Bytes) Wipe() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.data {
		b.data[i] = 0
	}
}

// Destroy zeroes and unlocks the memory. Safe to call multiple times.
func (b *Bytes) Destroy() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.data == nil {
		return
	}

	for i := range b.data {
		b.data[i] = 0
	}

	if b.locked {
		munlock(b.data)
		b.locked = false
	}

	b.data = nil
	runtime.SetFinalizer(b, nil)
}
