// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"image"

	"github.com/e-zsche/pico-ssd1306-oled/ssd1306/image1bit"
)

// Color is the tri-state drawing color applied to a single pixel.
type Color byte

const (
	// Black clears the pixel.
	Black Color = iota
	// White sets the pixel.
	White
	// Inverse flips the pixel.
	Inverse
)

// Rotation selects one of four 90° orientations for SetPixel coordinates.
// For Rotation90 and Rotation270 the logical width and height swap.
type Rotation uint8

const (
	Rotation0 Rotation = iota
	Rotation90
	Rotation180
	Rotation270
)

// SetBuffer assigns the caller-owned framebuffer the driver draws into and
// transfers from. pix must hold exactly w*(h/8) bytes; the driver never
// writes outside it. The caller keeps ownership and may inspect pix at any
// time, but must not resize it.
func (d *Dev) SetBuffer(w, h int, pix []byte) error {
	if pix == nil {
		return ErrNilBuffer
	}
	if len(pix) != w*(h/8) {
		return ErrBufferSize
	}
	d.buffer = &image1bit.VerticalLSB{Pix: pix, Rect: image.Rect(0, 0, w, h)}
	return nil
}

// SetRotation changes the orientation applied to subsequent SetPixel calls.
func (d *Dev) SetRotation(r Rotation) {
	d.rotation = r
}

// Rotation returns the current orientation.
func (d *Dev) Rotation() Rotation {
	return d.rotation
}

// SetPixel sets, clears or flips one pixel of the framebuffer. Coordinates
// outside the rotated logical bounds are silently dropped, matching the
// lenient convention of graphics libraries. It is a no-op until a buffer is
// assigned.
func (d *Dev) SetPixel(x, y int, c Color) {
	if d.buffer == nil {
		return
	}
	w := d.buffer.Rect.Dx()
	h := d.buffer.Rect.Dy()
	// Bounds are checked in rotated space: width and height swap for the
	// 90° and 270° orientations.
	switch d.rotation {
	case Rotation90, Rotation270:
		if x < 0 || x >= h || y < 0 || y >= w {
			return
		}
	default:
		if x < 0 || x >= w || y < 0 || y >= h {
			return
		}
	}
	x, y = d.transform(x, y, w, h)

	offset := w*(y/8) + x
	mask := byte(1) << uint(y&7)
	switch c {
	case White:
		d.buffer.Pix[offset] |= mask
	case Black:
		d.buffer.Pix[offset] &^= mask
	case Inverse:
		d.buffer.Pix[offset] ^= mask
	}
}

// transform maps rotated logical coordinates to unrotated buffer
// coordinates. w and h are the unrotated buffer dimensions.
func (d *Dev) transform(x, y, w, h int) (int, int) {
	switch d.rotation {
	case Rotation90:
		return w - 1 - y, x
	case Rotation180:
		return w - 1 - x, h - 1 - y
	case Rotation270:
		return y, h - 1 - x
	default:
		return x, y
	}
}

// ClearBuffer zeroes the framebuffer in place. The panel is not touched
// until the next Update.
func (d *Dev) ClearBuffer() {
	if d.buffer == nil {
		return
	}
	for i := range d.buffer.Pix {
		d.buffer.Pix[i] = 0x00
	}
}
