// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package fb implements pixel level access to a linear, memory mapped
// framebuffer handed off by the boot environment.
//
// This package is meant to be used with `GOOS=tamago` as supported by the
// TamaGo framework for bare metal Go, see https://github.com/usbarmory/tamago,
// but it does not depend on it and can be exercised on any memory region.
package fb

import (
	"errors"
	"fmt"
)

// PixelFormat represents the framebuffer pixel color layout.
type PixelFormat int

// Pixel formats
const (
	// Unsupported represents any color layout that the driver cannot
	// derive bytes for (e.g. bit masks or Blt only modes).
	Unsupported PixelFormat = iota
	// RGB represents one byte per channel in red, green, blue order.
	RGB
	// BGR represents one byte per channel in blue, green, red order.
	BGR
	// Grayscale represents a single intensity channel.
	Grayscale
)

// EFI_GRAPHICS_PIXEL_FORMAT
const (
	PixelRedGreenBlueReserved8BitPerColor = iota
	PixelBlueGreenRedReserved8BitPerColor
	PixelBitMask
	PixelBltOnly
)

// String returns the format name.
func (f PixelFormat) String() string {
	switch f {
	case RGB:
		return "RGB"
	case BGR:
		return "BGR"
	case Grayscale:
		return "Grayscale"
	default:
		return fmt.Sprintf("Unsupported(%d)", int(f))
	}
}

// ParsePixelFormat resolves a format name as returned by String().
func ParsePixelFormat(s string) (f PixelFormat, err error) {
	switch s {
	case "RGB", "rgb":
		return RGB, nil
	case "BGR", "bgr":
		return BGR, nil
	case "Grayscale", "grayscale", "U8", "u8":
		return Grayscale, nil
	}

	return Unsupported, fmt.Errorf("invalid pixel format %q", s)
}

// GOPFormat converts an EFI Graphics Output Protocol pixel format to its
// driver counterpart.
func GOPFormat(format uint32) PixelFormat {
	switch format {
	case PixelRedGreenBlueReserved8BitPerColor:
		return RGB
	case PixelBlueGreenRedReserved8BitPerColor:
		return BGR
	default:
		return Unsupported
	}
}

// Info represents the immutable framebuffer geometry supplied at boot.
type Info struct {
	// Width represents the horizontal resolution in pixels.
	Width int
	// Height represents the vertical resolution in pixels.
	Height int
	// Stride represents the number of pixels per scan line, which can
	// exceed Width when the scan line is padded.
	Stride int
	// BytesPerPixel represents the size of each pixel in memory.
	BytesPerPixel int
	// Format represents the pixel color layout.
	Format PixelFormat
}

// Size returns the number of bytes spanned by the framebuffer geometry.
func (i Info) Size() int {
	return i.Stride * i.Height * i.BytesPerPixel
}

// Validate checks the geometry against a memory region of the argument size.
func (i Info) Validate(size int) error {
	switch {
	case i.Width <= 0 || i.Height <= 0:
		return errors.New("invalid framebuffer resolution")
	case i.Stride < i.Width:
		return fmt.Errorf("invalid stride %d for width %d", i.Stride, i.Width)
	case i.BytesPerPixel < 1 || i.BytesPerPixel > 4:
		return fmt.Errorf("invalid bytes per pixel %d", i.BytesPerPixel)
	case i.Size() > size:
		return fmt.Errorf("framebuffer geometry exceeds memory (%d > %d)", i.Size(), size)
	}

	return nil
}
