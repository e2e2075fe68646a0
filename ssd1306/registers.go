// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

// Command set of the SSD1306 controller. Each opcode is a single byte,
// optionally followed by argument bytes; every byte is sent as its own
// command frame. See the datasheet, section 9.
const (
	setLowColumn       = 0x00 // OR'ed with the lower column start nibble
	setHighColumn      = 0x10 // OR'ed with the higher column start nibble
	memoryAddrMode     = 0x20 // 1 arg: 0x00 horizontal, 0x01 vertical, 0x02 page
	setColumnAddr      = 0x21 // 2 args: start and end column of the window
	setPageAddr        = 0x22 // 2 args: start and end page of the window
	scrollRight        = 0x26 // 6 args
	scrollLeft         = 0x27 // 6 args
	scrollVertRight    = 0x29 // 5 args
	scrollVertLeft     = 0x2A // 5 args
	deactivateScroll   = 0x2E
	activateScroll     = 0x2F
	setStartLine       = 0x40 // OR'ed with the start line, 0..63
	setContrastControl = 0x81 // 1 arg: contrast 0x00..0xFF
	setSegmentRemap    = 0xA0 // OR'ed with 0x01 to map column 127 to SEG0
	setVertScrollArea  = 0xA3 // 2 args: fixed rows, scroll rows
	displayAllOnResume = 0xA4 // resume rendering from GDDRAM
	normalDisplay      = 0xA6
	invertDisplay      = 0xA7
	setMultiplexRatio  = 0xA8 // 1 arg: height-1
	displayOff         = 0xAE
	displayOn          = 0xAF
	setPageStart       = 0xB0 // OR'ed with the page index, 0..7
	comScanInc         = 0xC0
	comScanDec         = 0xC8
	setDisplayOffset   = 0xD3 // 1 arg: vertical shift
	setDisplayClockDiv = 0xD5 // 1 arg: divide ratio / oscillator frequency
	setPrechargePeriod = 0xD9 // 1 arg
	setComPins         = 0xDA // 1 arg: COM pins hardware configuration
	setVComDeselect    = 0xDB // 1 arg: VCOMH deselect level
	chargePump         = 0x8D // 1 arg: 0x14 enable, 0x10 disable
)

// Control byte prefixing every I²C frame. It directs the payload byte either
// to the configuration registers or to the display RAM.
const (
	i2cCmd  = 0x00
	i2cData = 0x40
)
