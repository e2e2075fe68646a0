// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package image1bit

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestBit(t *testing.T) {
	if s := On.String(); s != "On" {
		t.Fatal(s)
	}
	if s := Off.String(); s != "Off" {
		t.Fatal(s)
	}
	if r, g, b, a := On.RGBA(); r != 0xFFFF || g != 0xFFFF || b != 0xFFFF || a != 0xFFFF {
		t.Fatal(r, g, b, a)
	}
	if r, g, b, a := Off.RGBA(); r != 0 || g != 0 || b != 0 || a != 0xFFFF {
		t.Fatal(r, g, b, a)
	}
}

func TestBitModel(t *testing.T) {
	for _, tc := range []struct {
		c    color.Color
		want Bit
	}{
		{On, On},
		{Off, Off},
		{color.White, On},
		{color.Black, Off},
		{color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, On},
		{color.RGBA{0x40, 0x40, 0x40, 0xFF}, Off},
	} {
		if got := BitModel.Convert(tc.c); got != tc.want {
			t.Errorf("Convert(%v) = %v, want %v", tc.c, got, tc.want)
		}
	}
}

func TestNewVerticalLSB(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 128, 64))
	if len(img.Pix) != 1024 {
		t.Fatalf("len(Pix) = %d, want 1024", len(img.Pix))
	}
	if img.Bounds() != image.Rect(0, 0, 128, 64) {
		t.Fatal(img.Bounds())
	}
	if img.ColorModel() != BitModel {
		t.Fatal("unexpected color model")
	}
	// Unaligned heights round up to a full page.
	img = NewVerticalLSB(image.Rect(0, 0, 8, 9))
	if len(img.Pix) != 16 {
		t.Fatalf("len(Pix) = %d, want 16", len(img.Pix))
	}
}

func TestSetBit(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 8, 16))
	img.SetBit(1, 10, On)
	// (1, 10) lands in page 1, bit 2.
	if got := img.Pix[8+1]; got != 0x04 {
		t.Fatalf("Pix[9] = %#02x, want 0x04", got)
	}
	if !img.BitAt(1, 10) {
		t.Fatal("BitAt(1, 10) = Off, want On")
	}
	img.SetBit(1, 10, Off)
	if got := img.Pix[8+1]; got != 0x00 {
		t.Fatalf("Pix[9] = %#02x, want 0x00", got)
	}
	// Out of bounds writes are dropped.
	img.SetBit(-1, 0, On)
	img.SetBit(8, 0, On)
	img.SetBit(0, 16, On)
	for i, b := range img.Pix {
		if b != 0 {
			t.Fatalf("Pix[%d] = %#02x after out of bounds writes", i, b)
		}
	}
}

func TestSet(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 8, 8))
	img.Set(3, 2, color.White)
	if img.Pix[3] != 0x04 {
		t.Fatalf("Pix[3] = %#02x, want 0x04", img.Pix[3])
	}
	if img.At(3, 2) != On {
		t.Fatal("At(3, 2) != On")
	}
	if img.At(-1, 0) != Off {
		t.Fatal("At out of bounds != Off")
	}
}

func TestDrawLines(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 8, 8))
	img.DrawHLine(0, 8, 0, On)
	for x := 0; x < 8; x++ {
		if img.Pix[x] != 0x01 {
			t.Fatalf("Pix[%d] = %#02x, want 0x01", x, img.Pix[x])
		}
	}
	img.DrawVLine(0, 8, 2, On)
	if img.Pix[2] != 0xFF {
		t.Fatalf("Pix[2] = %#02x, want 0xFF", img.Pix[2])
	}
}

func TestDrawSrc(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 16, 8))
	draw.Src.Draw(img, image.Rect(0, 0, 8, 8), &image.Uniform{color.White}, image.Point{})
	for x := 0; x < 8; x++ {
		if img.Pix[x] != 0xFF {
			t.Fatalf("Pix[%d] = %#02x, want 0xFF", x, img.Pix[x])
		}
	}
	for x := 8; x < 16; x++ {
		if img.Pix[x] != 0x00 {
			t.Fatalf("Pix[%d] = %#02x, want 0x00", x, img.Pix[x])
		}
	}
}
