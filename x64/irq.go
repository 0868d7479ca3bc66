// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && amd64

package x64

// RFLAGS interrupt enable flag
const rflagsIF = 1 << 9

// defined in irq_amd64.s
func cli()
func sti()
func rflags() uint64
func hlt()

// Interrupts implements the console.InterruptController interface over the
// running core interrupt flag.
type Interrupts struct{}

// EnableInterrupts unmasks external interrupts on the running core.
func (irq *Interrupts) EnableInterrupts() {
	sti()
}

// DisableInterrupts masks external interrupts on the running core.
func (irq *Interrupts) DisableInterrupts() {
	cli()
}

// InterruptsEnabled reports whether external interrupts are unmasked on the
// running core.
func (irq *Interrupts) InterruptsEnabled() bool {
	return rflags()&rflagsIF != 0
}

// Halt stops all further execution on the running core.
func Halt() {
	cli()

	for {
		hlt()
	}
}
