// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package fb

import (
	"bytes"
	"testing"
)

// 80x25 cells of 8x16 pixels
const (
	testWidth  = 80 * 8
	testHeight = 25 * 16
)

func testBlitter(format PixelFormat, bpp int) (b *Blitter, mem []byte) {
	info := Info{
		Width:         testWidth,
		Height:        testHeight,
		Stride:        testWidth,
		BytesPerPixel: bpp,
		Format:        format,
	}

	mem = make([]byte, info.Size())

	return &Blitter{Info: info, Region: NewRegion(mem)}, mem
}

func TestWritePixelOrigin(t *testing.T) {
	b, mem := testBlitter(RGB, 4)

	b.WritePixel(0, 0, 255)

	if !bytes.Equal(mem[0:4], []byte{255, 255, 127, 0}) {
		t.Fatalf("unexpected RGB pixel %v", mem[0:4])
	}

	b, mem = testBlitter(BGR, 4)
	b.WritePixel(0, 0, 255)

	if !bytes.Equal(mem[0:4], []byte{127, 255, 255, 0}) {
		t.Fatalf("unexpected BGR pixel %v", mem[0:4])
	}

	b, mem = testBlitter(Grayscale, 4)
	b.WritePixel(0, 0, 201)

	if !bytes.Equal(mem[0:4], []byte{0xff, 0, 0, 0}) {
		t.Fatalf("unexpected grayscale pixel %v", mem[0:4])
	}

	b.WritePixel(0, 0, 200)

	if !bytes.Equal(mem[0:4], []byte{0, 0, 0, 0}) {
		t.Fatalf("unexpected grayscale pixel %v", mem[0:4])
	}
}

func TestColorFormulas(t *testing.T) {
	for i := 0; i <= 255; i++ {
		v := uint8(i)

		c, err := Color(RGB, v)

		if err != nil || c != [4]byte{v, v, v / 2, 0} {
			t.Fatalf("RGB(%d) = %v, %v", i, c, err)
		}

		c, err = Color(BGR, v)

		if err != nil || c != [4]byte{v / 2, v, v, 0} {
			t.Fatalf("BGR(%d) = %v, %v", i, c, err)
		}

		c, err = Color(Grayscale, v)
		lit := byte(0)

		if i > 200 {
			lit = 0xff
		}

		if err != nil || c != [4]byte{lit, 0, 0, 0} {
			t.Fatalf("Grayscale(%d) = %v, %v", i, c, err)
		}
	}

	if _, err := Color(Unsupported, 0); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWritePixelOffset(t *testing.T) {
	b, mem := testBlitter(BGR, 3)
	b.Info.Stride = testWidth + 32

	mem = make([]byte, b.Info.Size())
	b.Region = NewRegion(mem)

	x, y := 7, 3
	off := (y*b.Info.Stride + x) * 3

	b.WritePixel(x, y, 100)

	if !bytes.Equal(mem[off:off+3], []byte{50, 100, 100}) {
		t.Fatalf("unexpected pixel %v at %d", mem[off:off+3], off)
	}

	// only bytes per pixel bytes are copied
	if mem[off+3] != 0 || mem[off-1] != 0 {
		t.Fatal("pixel write exceeded bytes per pixel")
	}
}

func TestWritePixelSingleChannel(t *testing.T) {
	b, mem := testBlitter(Grayscale, 1)

	b.WritePixel(1, 0, 255)

	if mem[0] != 0 || mem[1] != 0xff || mem[2] != 0 {
		t.Fatalf("unexpected memory %v", mem[0:3])
	}
}

func TestWritePixelUnsupported(t *testing.T) {
	b, mem := testBlitter(Unsupported, 4)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}

		if !bytes.Equal(mem[0:4], make([]byte, 4)) {
			t.Fatal("memory written with unsupported format")
		}
	}()

	b.WritePixel(0, 0, 255)
}

func TestClear(t *testing.T) {
	b, mem := testBlitter(RGB, 4)

	for i := range mem {
		mem[i] = 0xaa
	}

	b.Clear()

	if !bytes.Equal(mem, make([]byte, len(mem))) {
		t.Fatal("memory not cleared")
	}
}
