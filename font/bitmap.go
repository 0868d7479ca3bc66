// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package font

import (
	"image/color"

	"golang.org/x/image/font/basicfont"
)

// BitmapFace implements Face over a fixed size bitmap font, all glyphs are
// rasterized once at creation and never modified.
type BitmapFace struct {
	width  int
	height int
	glyphs map[rune]*Glyph
}

// NewBitmapFace rasterizes all glyphs of the argument basicfont face, each
// cell spans the face advance and its ascent plus descent.
func NewBitmapFace(f *basicfont.Face) *BitmapFace {
	bf := &BitmapFace{
		width:  f.Advance,
		height: f.Ascent + f.Descent,
		glyphs: make(map[rune]*Glyph),
	}

	for _, rng := range f.Ranges {
		for r := rng.Low; r < rng.High; r++ {
			// ranges can overlap, the first match wins as in basicfont
			if _, ok := bf.glyphs[r]; ok {
				continue
			}

			top := (int(r-rng.Low) + rng.Offset) * bf.height
			bf.glyphs[r] = bf.rasterize(f, top)
		}
	}

	return bf
}

func (bf *BitmapFace) rasterize(f *basicfont.Face, top int) *Glyph {
	g := &Glyph{
		Width:  bf.width,
		Height: bf.height,
		Pix:    make([]byte, bf.width*bf.height),
	}

	for y := 0; y < bf.height; y++ {
		for x := 0; x < f.Width; x++ {
			col := f.Left + x

			if col < 0 || col >= bf.width {
				continue
			}

			a := color.AlphaModel.Convert(f.Mask.At(x, top+y)).(color.Alpha)
			g.Pix[y*bf.width+col] = a.A
		}
	}

	return g
}

// Glyph returns the bitmap of the argument code point.
func (bf *BitmapFace) Glyph(r rune) (g *Glyph, ok bool) {
	g, ok = bf.glyphs[r]
	return
}

// Size returns the glyph cell dimensions.
func (bf *BitmapFace) Size() (width int, height int) {
	return bf.width, bf.height
}
