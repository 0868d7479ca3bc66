// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package font implements glyph rasterization for framebuffer consoles,
// resolving code points to fixed size intensity bitmaps.
package font

import (
	"errors"
	"fmt"

	"golang.org/x/image/font/basicfont"
)

// MaxRasterWidth represents the maximum glyph width in pixels.
const MaxRasterWidth = 16

// Fallback represents the code point substituted for missing glyphs.
const Fallback = '�'

// Default represents the default console font.
var Default = MustNew(NewBitmapFace(basicfont.Face7x13), Fallback)

// Glyph represents a monochrome glyph bitmap of intensity values.
type Glyph struct {
	// Width represents the glyph width in pixels.
	Width int
	// Height represents the glyph height in pixels.
	Height int
	// Pix holds Width*Height intensities in row-major order.
	Pix []byte
}

// At returns the intensity at (x, y).
func (g *Glyph) At(x, y int) uint8 {
	return g.Pix[y*g.Width+x]
}

// Face represents a glyph collaborator, supplying a bitmap for a code point or
// declaring it has none.
type Face interface {
	// Glyph returns the bitmap of the argument code point.
	Glyph(r rune) (g *Glyph, ok bool)
	// Size returns the glyph cell dimensions.
	Size() (width int, height int)
}

// Rasterizer resolves characters to glyphs, substituting a fallback glyph
// when unavailable.
type Rasterizer struct {
	face     Face
	fallback rune
}

// New returns a Rasterizer for the argument face, the fallback glyph must be
// present.
func New(face Face, fallback rune) (r *Rasterizer, err error) {
	if face == nil {
		return nil, errors.New("invalid face")
	}

	if w, _ := face.Size(); w > MaxRasterWidth {
		return nil, fmt.Errorf("glyph width %d exceeds %d", w, MaxRasterWidth)
	}

	if _, ok := face.Glyph(fallback); !ok {
		return nil, fmt.Errorf("missing fallback glyph %U", fallback)
	}

	return &Rasterizer{face: face, fallback: fallback}, nil
}

// MustNew is like New but panics on error. It is intended for package level
// font declarations.
func MustNew(face Face, fallback rune) (r *Rasterizer) {
	var err error

	if r, err = New(face, fallback); err != nil {
		panic(err)
	}

	return
}

// Glyph returns the bitmap of the argument character or the fallback one.
//
// A face losing its fallback glyph is a fatal configuration error, therefore
// Glyph panics in such case.
func (r *Rasterizer) Glyph(c rune) *Glyph {
	if g, ok := r.face.Glyph(c); ok {
		return g
	}

	if g, ok := r.face.Glyph(r.fallback); ok {
		return g
	}

	panic(fmt.Sprintf("font: missing fallback glyph %U", r.fallback))
}

// Size returns the glyph cell dimensions.
func (r *Rasterizer) Size() (width int, height int) {
	return r.face.Size()
}
