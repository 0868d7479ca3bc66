// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package console

import (
	"github.com/usbarmory/go-fbcon/fb"
	"github.com/usbarmory/go-fbcon/font"
)

// Layout parameters in pixels
const (
	// LineSpacing represents the vertical space between lines.
	LineSpacing = 2
	// LetterSpacing represents the horizontal space between characters.
	LetterSpacing = 0
	// TabSpacing represents the horizontal space of a tab character.
	TabSpacing = 30
	// BorderPadding represents the distance of text from the screen border.
	BorderPadding = 5
)

// Writer renders text on a framebuffer tracking the cursor position.
//
// When vertical space is exhausted the whole screen is cleared, text is never
// scrolled.
type Writer struct {
	blitter *fb.Blitter
	font    *font.Rasterizer

	cellWidth  int
	cellHeight int

	x int
	y int
}

// NewWriter returns a Writer over the argument framebuffer memory and
// geometry, the framebuffer is cleared.
func NewWriter(mem []byte, info fb.Info, r *font.Rasterizer) (w *Writer, err error) {
	if err = info.Validate(len(mem)); err != nil {
		return
	}

	if r == nil {
		r = font.Default
	}

	w = &Writer{
		blitter: &fb.Blitter{
			Info:   info,
			Region: fb.NewRegion(mem),
		},
		font: r,
	}

	w.cellWidth, w.cellHeight = r.Size()
	w.Clear()

	return
}

// Info returns the framebuffer geometry.
func (w *Writer) Info() fb.Info {
	return w.blitter.Info
}

func (w *Writer) width() int {
	return w.blitter.Info.Width
}

func (w *Writer) height() int {
	return w.blitter.Info.Height
}

func (w *Writer) advance() int {
	return w.cellWidth + LetterSpacing
}

func (w *Writer) lineHeight() int {
	return w.cellHeight + LineSpacing
}

func (w *Writer) newline() {
	w.y += w.lineHeight()

	// the cursor never leaves the screen
	if w.y >= w.height() {
		w.Clear()
		return
	}

	w.carriageReturn()
}

func (w *Writer) carriageReturn() {
	w.x = BorderPadding
}

// tab spacing is not wrapped, the next printable character is
func (w *Writer) tab() {
	w.x += TabSpacing
}

// Pos returns the cursor position.
func (w *Writer) Pos() (x int, y int) {
	return w.x, w.y
}

// SetX sets the cursor horizontal position, clamped within the screen.
func (w *Writer) SetX(x int) {
	w.x = min(max(x, 0), w.width()-1)
}

// SetY sets the cursor vertical position, clamped within the screen.
func (w *Writer) SetY(y int) {
	w.y = min(max(y, 0), w.height()-1)
}

// SetPos sets the cursor position, clamped within the screen.
func (w *Writer) SetPos(x int, y int) {
	w.SetX(x)
	w.SetY(y)
}

func (w *Writer) left() bool {
	switch {
	case w.x > BorderPadding:
		w.x = max(w.x-w.advance(), BorderPadding)
	case w.y >= w.lineHeight()+BorderPadding:
		w.x = max(w.width()-w.advance(), 0)
		w.y -= w.lineHeight()
	default:
		return false
	}

	return true
}

// CursorLeft moves the cursor back by one character, wrapping to the previous
// line end when at the left margin. It has no effect at the top left position.
func (w *Writer) CursorLeft() {
	w.left()
}

// CursorRight moves the cursor forward by one character, moving to the next
// line when at the line end.
func (w *Writer) CursorRight() {
	if w.x+w.advance() < w.width() {
		w.x += w.advance()
	} else {
		w.newline()
	}
}

// CursorUp moves the cursor up by one line, it has no effect on the first
// line.
func (w *Writer) CursorUp() {
	if w.y >= w.lineHeight()+BorderPadding {
		w.y -= w.lineHeight()
	}
}

// CursorDown moves the cursor down by one line, it has no effect on the last
// line.
func (w *Writer) CursorDown() {
	if w.y+w.lineHeight() < w.height() {
		w.y += w.lineHeight()
	}
}

// Backspace moves the cursor back by one character and erases it.
func (w *Writer) Backspace() {
	if !w.left() {
		return
	}

	for y := 0; y < w.cellHeight; y++ {
		for x := 0; x < w.cellWidth; x++ {
			w.pixel(w.x+x, w.y+y, 0)
		}
	}
}

// Clear erases the whole screen and resets the cursor to the top left
// position.
func (w *Writer) Clear() {
	w.x = BorderPadding
	w.y = BorderPadding
	w.blitter.Clear()
}

func (w *Writer) pixel(x int, y int, intensity uint8) {
	if x < 0 || y < 0 || x >= w.width() || y >= w.height() {
		return
	}

	w.blitter.WritePixel(x, y, intensity)
}

func (w *Writer) render(g *font.Glyph) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			w.pixel(w.x+x, w.y+y, g.At(x, y))
		}
	}

	w.x += g.Width + LetterSpacing
}

// WriteRune writes a single character, handling control characters.
func (w *Writer) WriteRune(c rune) {
	switch c {
	case '\t':
		w.tab()
	case '\n':
		w.newline()
	case '\r':
		w.carriageReturn()
	case '\b':
		w.Backspace()
	default:
		g := w.font.Glyph(c)

		if w.x+g.Width >= w.width() {
			w.newline()
		}

		if w.y+g.Height+BorderPadding >= w.height() {
			w.Clear()
		}

		w.render(g)
	}
}

// WriteString writes all characters of the argument string.
func (w *Writer) WriteString(s string) (n int, err error) {
	for _, c := range s {
		w.WriteRune(c)
	}

	return len(s), nil
}

// Write implements the [io.Writer] interface over UTF-8 encoded text.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.WriteString(string(p))
}
