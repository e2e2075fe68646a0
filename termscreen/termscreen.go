// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package termscreen emulates a monochrome OLED panel on the terminal
// (stdout) using ANSI color codes.
//
// Useful to develop display output on a host machine while the real panel is
// still in the mail.
package termscreen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"

	"github.com/e-zsche/pico-ssd1306-oled/ssd1306/image1bit"
)

// Opts represents the options available for this display.
type Opts struct {
	W, H    int
	Palette *ansi256.Palette
	// Writer overrides the default colorable stdout; used in tests.
	Writer io.Writer
}

// Dev is a monochrome panel emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	palette ansi256.Palette

	pixels *image1bit.VerticalLSB
	buf    bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.Writer
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &Dev{
		w:       w,
		palette: *p,
		pixels:  image1bit.NewVerticalLSB(image.Rect(0, 0, opts.W, opts.H)),
	}
}

func (d *Dev) String() string {
	return fmt.Sprintf("TermScreen{%dx%d}", d.pixels.Rect.Dx(), d.pixels.Rect.Dy())
}

// Halt implements conn.Resource.
//
// It resets the terminal colors so the shell is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.pixels.Rect
}

// Draw implements display.Drawer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Src.Draw(d.pixels, r.Intersect(d.Bounds()), src, sp)
	return d.refresh()
}

// Write accepts a frame in the vertical LSB page layout, as produced by
// image1bit.VerticalLSB or the ssd1306 framebuffer.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels) != len(d.pixels.Pix) {
		return 0, fmt.Errorf("termscreen: invalid pixel stream length %d, expected %d", len(pixels), len(d.pixels.Pix))
	}
	copy(d.pixels.Pix, pixels)
	if err := d.refresh(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

func (d *Dev) refresh() error {
	// This code is designed to minimize the amount of memory allocated per
	// call.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\033[0m")
	on := color.NRGBA{255, 255, 255, 255}
	off := color.NRGBA{0, 0, 0, 255}
	for y := 0; y < d.pixels.Rect.Dy(); y++ {
		for x := 0; x < d.pixels.Rect.Dx(); x++ {
			c := off
			if d.pixels.BitAt(x, y) {
				c = on
			}
			_, _ = io.WriteString(&d.buf, d.palette.Block(c))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
