// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

// controller separates the command/data sequencing from the bus framing so
// the protocol functions below can be exercised without hardware.
type controller interface {
	sendCommand(byte)
	sendData(byte)
}

// initDisplay sends the power-on sequence. The order is significant: the
// addressing mode and remap configuration must be in place before the
// height-dependent COM pin and contrast setup.
func initDisplay(ctrl controller, opts *Opts) {
	ctrl.sendCommand(displayOff)
	ctrl.sendCommand(setDisplayClockDiv)
	ctrl.sendCommand(0x80)
	ctrl.sendCommand(setMultiplexRatio)
	ctrl.sendCommand(byte(opts.H - 1))
	ctrl.sendCommand(setDisplayOffset)
	ctrl.sendCommand(0x00)
	ctrl.sendCommand(setStartLine)
	ctrl.sendCommand(chargePump)
	ctrl.sendCommand(0x14)
	ctrl.sendCommand(memoryAddrMode)
	ctrl.sendCommand(0x00) // horizontal addressing
	ctrl.sendCommand(setSegmentRemap | 0x01)
	ctrl.sendCommand(comScanDec)

	ctrl.sendCommand(setComPins)
	ctrl.sendCommand(comPinsFor(opts.H))
	ctrl.sendCommand(setContrastControl)
	ctrl.sendCommand(contrastFor(opts.H))

	ctrl.sendCommand(setPrechargePeriod)
	ctrl.sendCommand(0xF1)
	ctrl.sendCommand(setVComDeselect)
	ctrl.sendCommand(0x40)
	ctrl.sendCommand(displayAllOnResume)
	ctrl.sendCommand(normalDisplay)
	ctrl.sendCommand(deactivateScroll)
	ctrl.sendCommand(displayOn)
}

func comPinsFor(h int) byte {
	if h == 64 {
		return 0x12
	}
	return 0x02
}

func contrastFor(h int) byte {
	switch h {
	case 64:
		return 0xCF
	case 32:
		return 0x8F
	default: // 16
		return 0xAF
	}
}

// transferFrame streams the w×h rectangle at (x, y) from pix to the display
// RAM. The address window always covers the whole panel, never the requested
// sub-rectangle; the skip checks below rely on the controller auto-advancing
// through a full-screen window.
func transferFrame(ctrl controller, x, y, w, h, devW, devH, pages int, pix []byte) {
	ctrl.sendCommand(setColumnAddr)
	ctrl.sendCommand(0x00)
	ctrl.sendCommand(byte(devW - 1))
	ctrl.sendCommand(setPageAddr)
	ctrl.sendCommand(0x00)
	ctrl.sendCommand(byte(pages - 1))

	for ty := 0; ty < h; ty += 8 {
		if y+ty < 0 || y+ty >= devH {
			continue
		}
		for tx := 0; tx < w; tx++ {
			if x+tx < 0 || x+tx >= devW {
				continue
			}
			ctrl.sendData(pix[w*(ty/8)+tx])
		}
	}
}

// fillPage streams pattern to every column of one page, bypassing the
// framebuffer.
func fillPage(ctrl controller, page int, pattern byte, width int) {
	ctrl.sendCommand(setPageStart | byte(page))
	ctrl.sendCommand(setLowColumn)
	ctrl.sendCommand(setHighColumn)
	for col := 0; col < width; col++ {
		ctrl.sendData(pattern)
	}
}

func fillScreen(ctrl controller, pattern byte, width, pages int) {
	for page := 0; page < pages; page++ {
		fillPage(ctrl, page, pattern, width)
	}
}

// startHorizontalScroll activates a continuous left or right scroll of the
// pages in [start, stop].
func startHorizontalScroll(ctrl controller, op, start, stop byte) {
	ctrl.sendCommand(op)
	ctrl.sendCommand(0x00)
	ctrl.sendCommand(start)
	ctrl.sendCommand(0x00)
	ctrl.sendCommand(stop)
	ctrl.sendCommand(0x00)
	ctrl.sendCommand(0xFF)
	ctrl.sendCommand(activateScroll)
}

// startDiagonalScroll activates a combined vertical and horizontal scroll.
// The vertical scroll area is set to the full panel height first.
func startDiagonalScroll(ctrl controller, op, start, stop byte, height int) {
	ctrl.sendCommand(setVertScrollArea)
	ctrl.sendCommand(0x00)
	ctrl.sendCommand(byte(height))
	ctrl.sendCommand(op)
	ctrl.sendCommand(0x00)
	ctrl.sendCommand(start)
	ctrl.sendCommand(0x00)
	ctrl.sendCommand(stop)
	ctrl.sendCommand(0x01)
	ctrl.sendCommand(activateScroll)
}
