// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Command oled-demo renders text and shapes on an SSD1306 OLED over I²C, or
// previews the frame on the terminal with -term.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/e-zsche/pico-ssd1306-oled/ssd1306"
	"github.com/e-zsche/pico-ssd1306-oled/ssd1306/image1bit"
	"github.com/e-zsche/pico-ssd1306-oled/termscreen"
)

func render(w, h int, text string) (image.Image, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	dc := gg.NewContext(w, h)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetRGB(1, 1, 1)
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: 13}))
	dc.DrawString(text, 2, float64(h)/2)
	dc.DrawCircle(float64(w)-14, float64(h)/2, 9)
	dc.DrawRectangle(0.5, 0.5, float64(w)-1, float64(h)-1)
	dc.Stroke()
	return dc.Image(), nil
}

func mainImpl() error {
	busName := flag.String("bus", "", "I²C bus name, empty for the first available")
	addr := flag.Uint("addr", 0x3C, "I²C address of the display")
	width := flag.Int("width", 128, "display width in pixels")
	height := flag.Int("height", 64, "display height in pixels (16, 32 or 64)")
	text := flag.String("text", "Hello!", "text to render")
	term := flag.Bool("term", false, "render to the terminal instead of a real display")
	flag.Parse()
	if flag.NArg() != 0 {
		return fmt.Errorf("unexpected argument: %s", flag.Args()[0])
	}

	src, err := render(*width, *height, *text)
	if err != nil {
		return err
	}
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, *width, *height))
	draw.Src.Draw(img, img.Bounds(), src, image.Point{})

	if *term {
		d := termscreen.New(&termscreen.Opts{W: *width, H: *height})
		if err := d.Draw(d.Bounds(), img, image.Point{}); err != nil {
			return err
		}
		return d.Halt()
	}

	if _, err = host.Init(); err != nil {
		return err
	}
	bus, err := i2creg.Open(*busName)
	if err != nil {
		return err
	}
	defer bus.Close()

	opts := ssd1306.DefaultOpts
	opts.W = *width
	opts.H = *height
	opts.Addr = uint16(*addr)
	dev, err := ssd1306.NewI2C(bus, &opts)
	if err != nil {
		return err
	}
	if dev.CheckConnection() != 1 {
		return fmt.Errorf("no device found at %#02x", opts.Addr)
	}
	if err := dev.SetBuffer(*width, *height, img.Pix); err != nil {
		return err
	}
	return dev.Update()
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "oled-demo: %s.\n", err)
		os.Exit(1)
	}
}
