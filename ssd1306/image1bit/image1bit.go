// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package image1bit implements black and white (1 bit per pixel) images in
// the vertical LSB layout used by SSD1306 display RAM.
//
// Each byte of VerticalLSB.Pix covers a vertical run of 8 pixels within an
// 8 pixel high horizontal band ("page"), least significant bit on top. The
// layout is exactly the byte stream the controller expects in horizontal
// addressing mode, so a VerticalLSB can wrap a caller-owned framebuffer
// without conversion.
package image1bit

import (
	"image"
	"image/color"
	"image/draw"
)

// Bit implements a 1 bit color.
type Bit bool

// Possible bitness.
const (
	On  Bit = true
	Off Bit = false
)

// RGBA returns either all white or all black.
func (b Bit) RGBA() (uint32, uint32, uint32, uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// BitModel is the color model for the 1 bit color.
var BitModel = color.ModelFunc(convert)

func convert(c color.Color) color.Color {
	return convertBit(c)
}

// convertBit thresholds a color at half luminance.
func convertBit(c color.Color) Bit {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// VerticalLSB is a 1 bit image with the vertical LSB page layout.
//
// It is compatible with image.Image and draw.Image. Pix holds
// Rect.Dx() * (Rect.Dy() / 8) bytes for page-aligned bounds.
type VerticalLSB struct {
	// Pix holds the image's pixels, one bit per pixel, packed in pages.
	Pix []byte
	// Rect is the image's bounds.
	Rect image.Rectangle
}

// NewVerticalLSB returns an initialized VerticalLSB instance.
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &VerticalLSB{Rect: r}
	}
	// Round the height up to a full page.
	pages := (h + 7) / 8
	return &VerticalLSB{
		Pix:  make([]byte, w*pages),
		Rect: r,
	}
}

// ColorModel implements image.Image.
func (i *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds implements image.Image.
func (i *VerticalLSB) Bounds() image.Rectangle {
	return i.Rect
}

// At implements image.Image.
func (i *VerticalLSB) At(x, y int) color.Color {
	return i.BitAt(x, y)
}

// BitAt is the optimized version of At().
func (i *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(i.Rect)) {
		return Off
	}
	offset, mask := i.pixOffset(x, y)
	return Bit(i.Pix[offset]&mask != 0)
}

// Set implements draw.Image.
func (i *VerticalLSB) Set(x, y int, c color.Color) {
	i.SetBit(x, y, convertBit(c))
}

// SetBit is the optimized version of Set().
func (i *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(i.Rect)) {
		return
	}
	offset, mask := i.pixOffset(x, y)
	if b {
		i.Pix[offset] |= mask
	} else {
		i.Pix[offset] &^= mask
	}
}

// DrawHLine draws a horizontal line at height y from x1 to x2 exclusive.
func (i *VerticalLSB) DrawHLine(x1, x2, y int, b Bit) {
	for x := x1; x < x2; x++ {
		i.SetBit(x, y, b)
	}
}

// DrawVLine draws a vertical line at column x from y1 to y2 exclusive.
func (i *VerticalLSB) DrawVLine(y1, y2, x int, b Bit) {
	for y := y1; y < y2; y++ {
		i.SetBit(x, y, b)
	}
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
func (i *VerticalLSB) pixOffset(x, y int) (int, byte) {
	lx := x - i.Rect.Min.X
	ly := y - i.Rect.Min.Y
	return (ly/8)*i.Rect.Dx() + lx, byte(1) << uint(ly&7)
}

var _ draw.Image = &VerticalLSB{}
