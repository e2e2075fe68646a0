// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"

	"github.com/e-zsche/pico-ssd1306-oled/ssd1306/image1bit"
)

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	W:    128,
	H:    64,
	Addr: 0x3C,
}

// Opts defines the options for the device.
type Opts struct {
	W int
	// H must be one of 16, 32 or 64; the COM pin configuration and contrast
	// presets only exist for these panel heights.
	H int
	// Rotation applied to SetPixel coordinates.
	Rotation Rotation
	// Addr is the I²C address of the display.
	Addr uint16
}

// NewI2C returns a Dev object that communicates over I²C to a SSD1306 display
// controller and runs its power-on sequence.
//
// The display is left powered on with undefined RAM content; send a frame
// with Update or clear it with FillScreen(0x00).
func NewI2C(bus i2c.Bus, opts *Opts) (*Dev, error) {
	o := DefaultOpts
	if opts != nil {
		o = *opts
	}
	if o.Addr == 0x00 {
		o.Addr = DefaultOpts.Addr
	}
	if o.W < 1 || o.W > 128 {
		return nil, fmt.Errorf("ssd1306: invalid width %d", o.W)
	}
	switch o.H {
	case 16, 32, 64:
	default:
		return nil, fmt.Errorf("ssd1306: unsupported height %d, must be 16, 32 or 64", o.H)
	}
	d := &Dev{
		c:        &i2c.Dev{Bus: bus, Addr: o.Addr},
		rect:     image.Rect(0, 0, o.W, o.H),
		pages:    o.H / 8,
		rotation: o.Rotation,
	}
	eh := d.ctrl()
	initDisplay(eh, &o)
	if eh.err != nil {
		return nil, eh.err
	}
	return d, nil
}

// Dev is an open handle to the display controller.
//
// Dev is not safe for concurrent use: operations are multi-step command
// sequences on a shared bus and must not be interleaved.
type Dev struct {
	c conn.Conn

	// Display size controlled by the SSD1306.
	rect  image.Rectangle
	pages int

	// Caller-owned framebuffer, borrowed via SetBuffer.
	buffer   *image1bit.VerticalLSB
	rotation Rotation
}

func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%s, %s}", d.c, d.rect.Max)
}

// ColorModel implements display.Drawer.
//
// It is a one bit color model, as implemented by image1bit.Bit.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
//
// Bounds reports the unrotated panel size; Rotation only affects SetPixel
// coordinates.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw implements display.Drawer.
//
// It composites src into the assigned buffer and synchronously pushes the
// whole frame to the panel. A buffer must have been assigned with SetBuffer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if d.buffer == nil {
		return ErrNoBuffer
	}
	draw.Src.Draw(d.buffer, r.Intersect(d.rect), src, sp)
	return d.Update()
}

// Update pushes the entire framebuffer to the display.
func (d *Dev) Update() error {
	if d.buffer == nil {
		return ErrNoBuffer
	}
	eh := d.ctrl()
	b := d.buffer.Bounds()
	transferFrame(eh, 0, 0, b.Dx(), b.Dy(), d.rect.Dx(), d.rect.Dy(), d.pages, d.buffer.Pix)
	return eh.err
}

// FillScreen streams pattern to every column of every page, bypassing the
// framebuffer. A pattern of 0x00 clears the panel without touching the
// buffer.
func (d *Dev) FillScreen(pattern byte) error {
	eh := d.ctrl()
	fillScreen(eh, pattern, d.rect.Dx(), d.pages)
	return eh.err
}

// FillPage streams pattern to every column of one page, bypassing the
// framebuffer.
func (d *Dev) FillPage(page int, pattern byte) error {
	if page < 0 || page >= d.pages {
		return fmt.Errorf("ssd1306: invalid page %d, must be in 0..%d", page, d.pages-1)
	}
	eh := d.ctrl()
	fillPage(eh, page, pattern, d.rect.Dx())
	return eh.err
}

// Enable turns the display panel on or off. The RAM content is preserved
// while the panel is off.
func (d *Dev) Enable(on bool) error {
	if on {
		return d.sendCommand(displayOn)
	}
	return d.sendCommand(displayOff)
}

// PowerDown turns the display panel off. Call before cutting power.
func (d *Dev) PowerDown() error {
	return d.Enable(false)
}

// Halt implements conn.Resource and turns the display off.
func (d *Dev) Halt() error {
	return d.PowerDown()
}

// SetContrast changes the screen contrast.
func (d *Dev) SetContrast(level byte) error {
	eh := d.ctrl()
	eh.sendCommand(setContrastControl)
	eh.sendCommand(level)
	return eh.err
}

// Invert inverts the rendering of the panel (0=lit, 1=dark) without touching
// the RAM content.
func (d *Dev) Invert(inverted bool) error {
	if inverted {
		return d.sendCommand(invertDisplay)
	}
	return d.sendCommand(normalDisplay)
}

// ScrollRight starts a continuous right scroll of the pages in [start, stop].
func (d *Dev) ScrollRight(start, stop byte) error {
	eh := d.ctrl()
	startHorizontalScroll(eh, scrollRight, start, stop)
	return eh.err
}

// ScrollLeft starts a continuous left scroll of the pages in [start, stop].
func (d *Dev) ScrollLeft(start, stop byte) error {
	eh := d.ctrl()
	startHorizontalScroll(eh, scrollLeft, start, stop)
	return eh.err
}

// ScrollDiagRight starts a combined vertical and right horizontal scroll of
// the pages in [start, stop].
func (d *Dev) ScrollDiagRight(start, stop byte) error {
	eh := d.ctrl()
	startDiagonalScroll(eh, scrollVertRight, start, stop, d.rect.Dy())
	return eh.err
}

// ScrollDiagLeft starts a combined vertical and left horizontal scroll of
// the pages in [start, stop].
func (d *Dev) ScrollDiagLeft(start, stop byte) error {
	eh := d.ctrl()
	startDiagonalScroll(eh, scrollVertLeft, start, stop, d.rect.Dy())
	return eh.err
}

// StopScroll stops any scrolling previously set.
func (d *Dev) StopScroll() error {
	return d.sendCommand(deactivateScroll)
}

// CheckConnection probes the bus address with a 1-byte read and returns the
// number of bytes read: 1 if the device responded, 0 otherwise.
func (d *Dev) CheckConnection() int {
	var rx [1]byte
	if err := d.c.Tx(nil, rx[:]); err != nil {
		return 0
	}
	return 1
}

func (d *Dev) ctrl() *errorHandler {
	return &errorHandler{c: d.c}
}

func (d *Dev) sendCommand(cmds ...byte) error {
	eh := d.ctrl()
	for _, c := range cmds {
		eh.sendCommand(c)
	}
	return eh.err
}

var _ display.Drawer = &Dev{}
var _ conn.Resource = &Dev{}
