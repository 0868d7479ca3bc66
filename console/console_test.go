// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package console

import (
	"bytes"
	"log"
	"sync"
	"testing"

	"github.com/usbarmory/go-fbcon/fb"
	"github.com/usbarmory/go-fbcon/font"
)

// testIRQ simulates a single core interrupt controller: interrupts raised
// while masked are latched and serviced once unmasked, handlers run with
// interrupts masked.
type testIRQ struct {
	enabled bool
	pending []func()

	// masked counts DisableInterrupts invocations
	masked int
}

func (irq *testIRQ) EnableInterrupts() {
	irq.enabled = true

	for irq.enabled && len(irq.pending) > 0 {
		isr := irq.pending[0]
		irq.pending = irq.pending[1:]
		irq.service(isr)
	}
}

func (irq *testIRQ) DisableInterrupts() {
	irq.enabled = false
	irq.masked++
}

func (irq *testIRQ) InterruptsEnabled() bool {
	return irq.enabled
}

func (irq *testIRQ) service(isr func()) {
	irq.enabled = false
	isr()
	irq.enabled = true
}

// Raise signals an interrupt, serviced immediately if unmasked.
func (irq *testIRQ) Raise(isr func()) {
	if irq.enabled {
		irq.service(isr)
		return
	}

	irq.pending = append(irq.pending, isr)
}

func newTestConsole(t *testing.T, face *testFace) (c *Console, irq *testIRQ, mem []byte) {
	info := testInfo(fb.RGB)
	mem = make([]byte, info.Size())
	irq = &testIRQ{enabled: true}

	c = &Console{
		IRQ:  irq,
		Font: font.MustNew(face, '?'),
	}

	if err := c.Init(mem, info); err != nil {
		t.Fatal(err)
	}

	return
}

// line returns the characters rendered on the first line.
func line(mem []byte, n int) string {
	var buf bytes.Buffer

	for i := 0; i < n; i++ {
		buf.WriteRune(cell(mem, BorderPadding+i*(cellW+LetterSpacing), BorderPadding))
	}

	return buf.String()
}

func TestUninitialized(t *testing.T) {
	c := &Console{IRQ: &testIRQ{enabled: true}}

	c.Printf("dropped %d", 1)
	c.Backspace()
	c.SetPos(10, 10)

	if n, err := c.Write([]byte("dropped")); n != 7 || err != nil {
		t.Fatalf("unexpected Write result %d, %v", n, err)
	}

	if c.Initialized() {
		t.Fatal("console should not be initialized")
	}

	if _, ok := c.Info(); ok {
		t.Fatal("unexpected geometry")
	}
}

func TestInitOnce(t *testing.T) {
	c, _, mem := newTestConsole(t, &testFace{})

	if !c.Initialized() {
		t.Fatal("console should be initialized")
	}

	c.Print("a")

	info := testInfo(fb.RGB)
	other := make([]byte, info.Size())

	if err := c.Init(other, info); err != nil {
		t.Fatal(err)
	}

	c.Print("b")

	if s := line(mem, 2); s != "ab" {
		t.Fatalf("unexpected output %q", s)
	}

	if !bytes.Equal(other, make([]byte, len(other))) {
		t.Fatal("second instance written")
	}
}

func TestInitInvalid(t *testing.T) {
	c := &Console{}
	info := testInfo(fb.RGB)

	if err := c.Init(make([]byte, 16), info); err == nil {
		t.Fatal("expected error")
	}

	if c.Initialized() {
		t.Fatal("console should not be initialized")
	}
}

func TestCriticalSectionMasking(t *testing.T) {
	face := &testFace{}
	c, irq, _ := newTestConsole(t, face)

	var enabled []bool

	face.hook = func(_ rune) {
		enabled = append(enabled, irq.InterruptsEnabled())
	}

	masked := irq.masked
	c.Printf("%d%s", 1, "x")

	if len(enabled) != 2 || enabled[0] || enabled[1] {
		t.Fatalf("interrupts not masked during rendering (%v)", enabled)
	}

	if irq.masked != masked+1 || !irq.InterruptsEnabled() {
		t.Fatal("interrupts not restored")
	}

	// handlers run with interrupts already masked, which must remain so
	irq.DisableInterrupts()
	c.Print("y")

	if irq.InterruptsEnabled() {
		t.Fatal("interrupts unmasked within handler context")
	}
}

func TestInterruptDuringPrint(t *testing.T) {
	face := &testFace{}
	c, irq, mem := newTestConsole(t, face)

	raised := false

	face.hook = func(r rune) {
		if r != 'X' || raised {
			return
		}

		raised = true

		irq.Raise(func() {
			c.Print("ij")
		})
	}

	c.Print("abXcd")

	if !raised {
		t.Fatal("interrupt not raised")
	}

	if s := line(mem, 7); s != "abXcdij" {
		t.Fatalf("unexpected output %q", s)
	}
}

func TestInterruptWithoutMasking(t *testing.T) {
	face := &testFace{}
	c, irq, _ := newTestConsole(t, face)

	// without masking the handler interrupts the lock holder
	c.IRQ = nil

	var acquired, serviced bool

	face.hook = func(r rune) {
		if r != 'X' {
			return
		}

		irq.Raise(func() {
			serviced = true

			if acquired = c.lock.TryLock(); acquired {
				c.lock.Unlock()
			}
		})
	}

	c.Print("X")

	if !serviced {
		t.Fatal("interrupt not serviced")
	}

	if acquired {
		t.Fatal("handler acquired a held lock")
	}
}

func TestLogOutput(t *testing.T) {
	c, _, mem := newTestConsole(t, &testFace{})

	l := log.New(c, "", 0)
	l.Printf("ok %d", 7)

	if s := line(mem, 4); s != "ok 7" {
		t.Fatalf("unexpected output %q", s)
	}

	if x, y := c.Pos(); x != BorderPadding || y != BorderPadding+cellH+LineSpacing {
		t.Fatalf("unexpected cursor (%d,%d)", x, y)
	}
}

func TestCursorAPI(t *testing.T) {
	c, _, mem := newTestConsole(t, &testFace{})

	c.SetPos(40, 30)

	if x, y := c.Pos(); x != 40 || y != 30 {
		t.Fatalf("unexpected cursor (%d,%d)", x, y)
	}

	c.SetX(BorderPadding)
	c.SetY(BorderPadding)
	c.WriteRune('q')
	c.CursorRight()
	c.CursorLeft()
	c.Backspace()

	if x, y := c.Pos(); x != BorderPadding || y != BorderPadding {
		t.Fatalf("unexpected cursor (%d,%d)", x, y)
	}

	if r := cell(mem, BorderPadding, BorderPadding); r != 0 {
		t.Fatal("glyph not erased")
	}

	c.CursorDown()
	c.CursorUp()
	c.Println("r")
	c.Clear()

	if !bytes.Equal(mem, make([]byte, len(mem))) {
		t.Fatal("framebuffer not cleared")
	}

	if info, ok := c.Info(); !ok || info != testInfo(fb.RGB) {
		t.Fatalf("unexpected geometry %+v", info)
	}
}

func TestConcurrentPrint(t *testing.T) {
	c, _, _ := newTestConsole(t, &testFace{})
	c.IRQ = nil

	var wg sync.WaitGroup

	for _, r := range "abcd" {
		wg.Add(1)

		go func(r rune) {
			defer wg.Done()

			for i := 0; i < 100; i++ {
				c.Printf("%c%c%c\n", r, r, r)
			}
		}(r)
	}

	wg.Wait()

	if x, _ := c.Pos(); x != BorderPadding {
		t.Fatalf("unexpected cursor x %d", x)
	}
}

func TestPackageDefault(t *testing.T) {
	if Default == nil {
		t.Fatal("missing default console")
	}

	// never initialized in tests, output is dropped
	Printf("%s", "dropped")
	Println("dropped")
	Print("dropped")
	SetPos(1, 1)
	SetX(1)
	SetY(1)
	Clear()

	if Default.Initialized() {
		t.Fatal("default console should not be initialized")
	}
}
