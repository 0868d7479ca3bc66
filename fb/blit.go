// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package fb

import (
	"fmt"
)

// Grayscale threshold above which a pixel is lit
const grayscaleThreshold = 200

// Color returns the pixel bytes for the argument intensity according to the
// pixel format. Only the first bytes per pixel are meaningful.
func Color(format PixelFormat, intensity uint8) (c [4]byte, err error) {
	switch format {
	case RGB:
		c = [4]byte{intensity, intensity, intensity / 2, 0}
	case BGR:
		c = [4]byte{intensity / 2, intensity, intensity, 0}
	case Grayscale:
		if intensity > grayscaleThreshold {
			c[0] = 0xff
		}
	default:
		err = fmt.Errorf("pixel format %v not supported", format)
	}

	return
}

// Blitter writes glyph intensities as raw pixel bytes into a framebuffer.
type Blitter struct {
	// Info represents the framebuffer geometry
	Info Info
	// Region represents the framebuffer memory
	Region *Region
}

// Offset returns the byte offset of pixel (x, y).
func (b *Blitter) Offset(x, y int) int {
	return (y*b.Info.Stride + x) * b.Info.BytesPerPixel
}

// WritePixel writes a pixel of the argument intensity at (x, y), bounds are
// the caller's responsibility.
//
// An unsupported pixel format is a fatal condition as writing a wrong byte
// count would corrupt device memory, therefore WritePixel panics.
func (b *Blitter) WritePixel(x, y int, intensity uint8) {
	c, err := Color(b.Info.Format, intensity)

	if err != nil {
		panic("fb: " + err.Error())
	}

	b.Region.Write(b.Offset(x, y), c[:b.Info.BytesPerPixel])
}

// Clear zeroes the whole framebuffer memory.
func (b *Blitter) Clear() {
	b.Region.Fill(0)
}
