// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package console

import (
	"sync/atomic"
)

// InterruptController represents the external interrupt masking facility of
// the running core.
type InterruptController interface {
	// EnableInterrupts unmasks external interrupts.
	EnableInterrupts()
	// DisableInterrupts masks external interrupts.
	DisableInterrupts()
	// InterruptsEnabled reports whether external interrupts are unmasked.
	InterruptsEnabled() bool
}

// WithoutInterrupts runs the argument function with external interrupts
// masked, their previous state is restored on return. A nil controller runs
// the function as is.
func WithoutInterrupts(irq InterruptController, fn func()) {
	if irq != nil && irq.InterruptsEnabled() {
		irq.DisableInterrupts()
		defer irq.EnableInterrupts()
	}

	fn()
}

// SpinLock is a non-reentrant busy-wait mutual exclusion lock, it never yields
// the running core to the lock holder.
//
// Acquiring a SpinLock with interrupts unmasked, when interrupt handlers
// acquire it as well, self-deadlocks the core as soon as a handler fires
// while the lock is held.
type SpinLock struct {
	state atomic.Uint32
}

// Lock spins until the lock is acquired.
func (l *SpinLock) Lock() {
	for !l.state.CompareAndSwap(0, 1) {
	}
}

// TryLock acquires the lock if available and reports whether it did.
func (l *SpinLock) TryLock() bool {
	return l.state.CompareAndSwap(0, 1)
}

// Unlock releases the lock.
func (l *SpinLock) Unlock() {
	if l.state.Swap(0) == 0 {
		panic("console: unlock of unlocked SpinLock")
	}
}
