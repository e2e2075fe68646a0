// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

// DrawBitmap blits a horizontally addressed, MSB-first bitmap into the
// framebuffer at (x, y). Rows must be byte-aligned: w must be divisible
// by 8. Set bits render White and clear bits Black; invert swaps the two.
//
// The inputs are validated in order and the first violation is returned
// before any pixel is written: ErrBitmapBounds, ErrBitmapTooLarge,
// ErrNilBitmap, ErrBitmapWidth, ErrNoBuffer.
func (d *Dev) DrawBitmap(x, y, w, h int, data []byte, invert bool) error {
	if x > d.rect.Dx() || y > d.rect.Dy() {
		return ErrBitmapBounds
	}
	if w > d.rect.Dx() || h > d.rect.Dy() {
		return ErrBitmapTooLarge
	}
	if data == nil {
		return ErrNilBitmap
	}
	if w%8 != 0 {
		return ErrBitmapWidth
	}
	if d.buffer == nil {
		return ErrNoBuffer
	}

	byteWidth := (w + 7) / 8
	fg, bg := White, Black
	if invert {
		fg, bg = Black, White
	}
	var b byte
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if i&7 != 0 {
				b <<= 1
			} else {
				b = data[j*byteWidth+i/8]
			}
			c := bg
			if b&0x80 != 0 {
				c = fg
			}
			d.SetPixel(x+i, y+j, c)
		}
	}
	return nil
}
