// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package console implements a text console over a linear framebuffer, safe
// for use from both ordinary control flow and interrupt handlers.
//
// Every console access masks external interrupts on the running core before
// acquiring the console lock and restores them after its release, this allows
// interrupt handlers to print without deadlocking against an interrupted
// lock holder.
//
// This package is meant to be used with `GOOS=tamago` as supported by the
// TamaGo framework for bare metal Go, see https://github.com/usbarmory/tamago.
package console

import (
	"fmt"

	"github.com/usbarmory/go-fbcon/fb"
	"github.com/usbarmory/go-fbcon/font"
)

// Default represents the system console instance.
var Default = &Console{}

// Console represents a lazily initialized framebuffer console instance
// guarded by a SpinLock.
type Console struct {
	// IRQ represents the interrupt controller masked during critical
	// sections, it must be set before any use on systems with interrupt
	// handlers.
	IRQ InterruptController

	// Font represents the glyph rasterizer, font.Default is used when nil.
	Font *font.Rasterizer

	lock   SpinLock
	writer *Writer
}

func (c *Console) critical(fn func(w *Writer)) {
	WithoutInterrupts(c.IRQ, func() {
		c.lock.Lock()
		defer c.lock.Unlock()

		// output is dropped until initialization
		if c.writer == nil {
			return
		}

		fn(c.writer)
	})
}

// Init initializes the console over the argument framebuffer memory and
// geometry, clearing the screen. The console is initialized only once,
// subsequent calls have no effect.
func (c *Console) Init(mem []byte, info fb.Info) (err error) {
	WithoutInterrupts(c.IRQ, func() {
		c.lock.Lock()
		defer c.lock.Unlock()

		if c.writer != nil {
			return
		}

		c.writer, err = NewWriter(mem, info, c.Font)
	})

	if err != nil {
		return fmt.Errorf("could not initialize console, %v", err)
	}

	return
}

// Initialized reports whether the console has been initialized.
func (c *Console) Initialized() (ok bool) {
	c.critical(func(_ *Writer) {
		ok = true
	})

	return
}

// Info returns the framebuffer geometry.
func (c *Console) Info() (info fb.Info, ok bool) {
	c.critical(func(w *Writer) {
		info = w.Info()
		ok = true
	})

	return
}

// Write implements the [io.Writer] interface, output before initialization is
// silently discarded.
func (c *Console) Write(p []byte) (n int, err error) {
	c.critical(func(w *Writer) {
		w.Write(p)
	})

	return len(p), nil
}

// WriteRune writes a single character.
func (c *Console) WriteRune(r rune) {
	c.critical(func(w *Writer) {
		w.WriteRune(r)
	})
}

// Printf formats according to a format specifier and writes to the console.
func (c *Console) Printf(format string, a ...any) {
	c.critical(func(w *Writer) {
		fmt.Fprintf(w, format, a...)
	})
}

// Print formats using the default formats for its operands and writes to the
// console.
func (c *Console) Print(a ...any) {
	c.critical(func(w *Writer) {
		fmt.Fprint(w, a...)
	})
}

// Println formats using the default formats for its operands and writes to
// the console, a newline is appended.
func (c *Console) Println(a ...any) {
	c.critical(func(w *Writer) {
		fmt.Fprintln(w, a...)
	})
}

// Pos returns the cursor position.
func (c *Console) Pos() (x int, y int) {
	c.critical(func(w *Writer) {
		x, y = w.Pos()
	})

	return
}

// SetPos sets the cursor position.
func (c *Console) SetPos(x int, y int) {
	c.critical(func(w *Writer) {
		w.SetPos(x, y)
	})
}

// SetX sets the cursor horizontal position.
func (c *Console) SetX(x int) {
	c.critical(func(w *Writer) {
		w.SetX(x)
	})
}

// SetY sets the cursor vertical position.
func (c *Console) SetY(y int) {
	c.critical(func(w *Writer) {
		w.SetY(y)
	})
}

// CursorLeft moves the cursor back by one character.
func (c *Console) CursorLeft() {
	c.critical((*Writer).CursorLeft)
}

// CursorRight moves the cursor forward by one character.
func (c *Console) CursorRight() {
	c.critical((*Writer).CursorRight)
}

// CursorUp moves the cursor up by one line.
func (c *Console) CursorUp() {
	c.critical((*Writer).CursorUp)
}

// CursorDown moves the cursor down by one line.
func (c *Console) CursorDown() {
	c.critical((*Writer).CursorDown)
}

// Backspace erases the character preceding the cursor.
func (c *Console) Backspace() {
	c.critical((*Writer).Backspace)
}

// Clear erases the whole screen.
func (c *Console) Clear() {
	c.critical((*Writer).Clear)
}
