// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package oled is a container for the SSD1306 OLED display driver and its
// support packages.
//
// The driver itself lives in ssd1306, the 1-bit image format in
// ssd1306/image1bit and a terminal based panel emulator in termscreen.
package oled
