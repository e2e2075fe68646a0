// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import "errors"

// Errors returned by buffer assignment and drawing operations. Each
// validation failure has its own value so callers can tell them apart.
var (
	// ErrNilBuffer is returned by SetBuffer when the pixel buffer is nil.
	ErrNilBuffer = errors.New("ssd1306: buffer is nil")

	// ErrBufferSize is returned by SetBuffer when the pixel buffer length
	// does not equal width * (height / 8).
	ErrBufferSize = errors.New("ssd1306: buffer length does not equal width * (height / 8)")

	// ErrNoBuffer is returned by drawing and update operations called before
	// a buffer was assigned with SetBuffer.
	ErrNoBuffer = errors.New("ssd1306: no buffer assigned, call SetBuffer first")

	// ErrBitmapBounds is returned by DrawBitmap when the bitmap origin lies
	// beyond the screen.
	ErrBitmapBounds = errors.New("ssd1306: bitmap origin is out of screen bounds")

	// ErrBitmapTooLarge is returned by DrawBitmap when the bitmap is larger
	// than the screen.
	ErrBitmapTooLarge = errors.New("ssd1306: bitmap is larger than the screen")

	// ErrNilBitmap is returned by DrawBitmap when the bitmap data is nil.
	ErrNilBitmap = errors.New("ssd1306: bitmap data is nil")

	// ErrBitmapWidth is returned by DrawBitmap when the bitmap width is not
	// divisible by 8.
	ErrBitmapWidth = errors.New("ssd1306: bitmap width must be divisible by 8")
)
