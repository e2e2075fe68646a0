// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1306 controls a monochrome OLED display via a SSD1306 controller
// connected over I²C.
//
// The driver does not own the pixel memory. The caller allocates a buffer of
// exactly W*(H/8) bytes, hands it to the driver with Dev.SetBuffer, draws
// into it through Dev.SetPixel or the image/draw interfaces, and pushes it to
// the panel with Dev.Update. The buffer uses the controller's native GDDRAM
// layout: horizontal bands ("pages") of 8 pixels high, one bit per pixel,
// least significant bit on top.
//
// Every command and data byte is sent as an individual 2-byte I²C frame
// {control, payload}. This is slow on a 100kHz bus but keeps the transfer
// protocol identical for full updates and direct fills.
//
// # Datasheets
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package ssd1306
