// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && amd64

package x64

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/usbarmory/tamago/dma"

	"github.com/usbarmory/go-fbcon/fb"
)

// Framebuffer hand-off parameters, set at build time with:
//
//	-ldflags "-X github.com/usbarmory/go-fbcon/x64.FramebufferBase=0xfd000000"
var (
	// FramebufferBase represents the framebuffer physical address.
	FramebufferBase string
	// FramebufferWidth represents the horizontal resolution in pixels.
	FramebufferWidth = "1024"
	// FramebufferHeight represents the vertical resolution in pixels.
	FramebufferHeight = "768"
	// FramebufferStride represents the pixels per scan line, the width is
	// used when empty.
	FramebufferStride string
	// FramebufferBPP represents the bytes per pixel.
	FramebufferBPP = "4"
	// FramebufferFormat represents the pixel format (RGB, BGR, Grayscale).
	FramebufferFormat = "BGR"
)

func parseInt(name string, s string) (n int, err error) {
	v, err := strconv.ParseUint(s, 0, 32)

	if err != nil {
		return 0, fmt.Errorf("invalid framebuffer %s, %v", name, err)
	}

	return int(v), nil
}

// FramebufferInfo returns the framebuffer geometry from the hand-off
// parameters.
func FramebufferInfo() (info fb.Info, err error) {
	if info.Width, err = parseInt("width", FramebufferWidth); err != nil {
		return
	}

	if info.Height, err = parseInt("height", FramebufferHeight); err != nil {
		return
	}

	info.Stride = info.Width

	if len(FramebufferStride) > 0 {
		if info.Stride, err = parseInt("stride", FramebufferStride); err != nil {
			return
		}
	}

	if info.BytesPerPixel, err = parseInt("bytes per pixel", FramebufferBPP); err != nil {
		return
	}

	info.Format, err = fb.ParsePixelFormat(FramebufferFormat)

	return
}

// Framebuffer maps the framebuffer memory described by the hand-off
// parameters, the returned buffer is valid for the system lifetime.
func Framebuffer() (mem []byte, info fb.Info, err error) {
	if len(FramebufferBase) == 0 {
		return nil, info, errors.New("framebuffer address not set")
	}

	base, err := strconv.ParseUint(FramebufferBase, 0, 64)

	if err != nil || base == 0 {
		return nil, info, fmt.Errorf("invalid framebuffer address %q", FramebufferBase)
	}

	if info, err = FramebufferInfo(); err != nil {
		return
	}

	size := info.Size()

	if err = info.Validate(size); err != nil {
		return
	}

	r, err := dma.NewRegion(uint(base), size, true)

	if err != nil {
		return nil, info, fmt.Errorf("could not map framebuffer, %v", err)
	}

	// never released, the console owns the framebuffer from now on
	_, mem = r.Reserve(size, 0)

	return
}
