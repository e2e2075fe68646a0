// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import "periph.io/x/conn/v3"

// errorHandler implements controller over an I²C connection. The first
// transport error latches and suppresses the remaining writes of the
// sequence, so multi-command operations need a single error check at the end.
type errorHandler struct {
	c   conn.Conn
	err error
}

func (eh *errorHandler) sendCommand(cmd byte) {
	if eh.err != nil {
		return
	}
	eh.err = eh.c.Tx([]byte{i2cCmd, cmd}, nil)
}

func (eh *errorHandler) sendData(b byte) {
	if eh.err != nil {
		return
	}
	eh.err = eh.c.Tx([]byte{i2cData, b}, nil)
}
