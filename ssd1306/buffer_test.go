// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"bytes"
	"testing"
)

func bufferDev(t *testing.T, w, h int) (*Dev, []byte) {
	t.Helper()
	d := testDev(w, h)
	pix := make([]byte, w*(h/8))
	if err := d.SetBuffer(w, h, pix); err != nil {
		t.Fatal(err)
	}
	return d, pix
}

func TestSetPixel(t *testing.T) {
	d, pix := bufferDev(t, 8, 16)

	d.SetPixel(0, 0, White)
	if pix[0] != 0x01 {
		t.Fatalf("pix[0] = %#02x, want 0x01", pix[0])
	}
	d.SetPixel(0, 0, Black)
	if pix[0] != 0x00 {
		t.Fatalf("pix[0] = %#02x, want 0x00", pix[0])
	}

	// (3, 9) lands in page 1: byte 8*(9/8)+3, bit 9&7.
	d.SetPixel(3, 9, White)
	if pix[11] != 0x02 {
		t.Fatalf("pix[11] = %#02x, want 0x02", pix[11])
	}
	for i, b := range pix {
		if i != 11 && b != 0 {
			t.Fatalf("pix[%d] = %#02x, want 0x00", i, b)
		}
	}
}

func TestSetPixelInverse(t *testing.T) {
	d, pix := bufferDev(t, 8, 16)

	d.SetPixel(3, 9, Inverse)
	if pix[11] != 0x02 {
		t.Fatalf("pix[11] = %#02x after flip, want 0x02", pix[11])
	}
	// Inverse is its own inverse.
	d.SetPixel(3, 9, Inverse)
	if pix[11] != 0x00 {
		t.Fatalf("pix[11] = %#02x after double flip, want 0x00", pix[11])
	}
}

func TestSetPixelOutOfBounds(t *testing.T) {
	d, pix := bufferDev(t, 8, 16)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 16}, {100, 100}} {
		d.SetPixel(p[0], p[1], White)
	}
	if !bytes.Equal(pix, make([]byte, len(pix))) {
		t.Fatal("out of bounds SetPixel modified the buffer")
	}

	// Rotated 90°, the logical dimensions swap: x ranges over the panel
	// height, y over the width.
	d.SetRotation(Rotation90)
	d.SetPixel(15, 0, White)
	if bytes.Equal(pix, make([]byte, len(pix))) {
		t.Fatal("SetPixel(15, 0) under Rotation90 should be in bounds")
	}
	d.SetPixel(15, 0, Black)
	d.SetPixel(16, 0, White)
	d.SetPixel(0, 8, White)
	if !bytes.Equal(pix, make([]byte, len(pix))) {
		t.Fatal("out of rotated bounds SetPixel modified the buffer")
	}
}

func TestSetPixelRotation(t *testing.T) {
	// All cases write the logical pixel (1, 2) on an 8x16 buffer.
	for _, tc := range []struct {
		r      Rotation
		offset int
		mask   byte
	}{
		// Identity: (1, 2).
		{Rotation0, 1, 0x04},
		// (1, 2) -> (8-1-2, 1) = (5, 1).
		{Rotation90, 5, 0x02},
		// (1, 2) -> (8-1-1, 16-1-2) = (6, 13).
		{Rotation180, 14, 0x20},
		// (1, 2) -> (2, 16-1-1) = (2, 14).
		{Rotation270, 10, 0x40},
	} {
		d, pix := bufferDev(t, 8, 16)
		d.SetRotation(tc.r)
		if got := d.Rotation(); got != tc.r {
			t.Fatalf("Rotation() = %d, want %d", got, tc.r)
		}

		d.SetPixel(1, 2, White)

		for i, b := range pix {
			want := byte(0)
			if i == tc.offset {
				want = tc.mask
			}
			if b != want {
				t.Errorf("rotation %d: pix[%d] = %#02x, want %#02x", tc.r, i, b, want)
			}
		}
	}
}

func TestRotation180RoundTrip(t *testing.T) {
	d := testDev(8, 16)
	d.rotation = Rotation180
	for _, p := range [][2]int{{0, 0}, {1, 2}, {7, 15}, {3, 8}} {
		x, y := d.transform(p[0], p[1], 8, 16)
		x, y = d.transform(x, y, 8, 16)
		if x != p[0] || y != p[1] {
			t.Errorf("double 180° of (%d, %d) = (%d, %d)", p[0], p[1], x, y)
		}
	}
}

func TestClearBuffer(t *testing.T) {
	d, pix := bufferDev(t, 128, 64)
	for i := range pix {
		pix[i] = 0xFF
	}

	d.ClearBuffer()

	if !bytes.Equal(pix, make([]byte, len(pix))) {
		t.Fatal("ClearBuffer left non-zero bytes")
	}
}
