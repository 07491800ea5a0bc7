// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package i3g4250d

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

var errEmptyBuffer = errors.New("i3g4250d: read requires a non-empty buffer")

// tx runs one full-duplex transfer with the chip select held low for its
// whole duration. The select line is released on every exit path so a failed
// transfer cannot leave the device addressed, and the transaction is
// exclusive so concurrent callers cannot interleave their framing.
func (d *Dev) tx(w, r []byte) error {
	d.busMu.Lock()
	defer d.busMu.Unlock()
	if d.cs != nil {
		if err := d.cs.Out(gpio.Low); err != nil {
			return fmt.Errorf("i3g4250d: chip select: %w", err)
		}
		defer d.cs.Out(gpio.High)
	}
	if err := d.c.Tx(w, r); err != nil {
		return fmt.Errorf("i3g4250d: transfer: %w", err)
	}
	return nil
}

// writeReg writes one or more bytes starting at reg. Multi-byte writes use
// the device's address auto-increment.
func (d *Dev) writeReg(reg byte, values ...byte) error {
	if len(values) > 1 {
		reg |= flagAutoIncrement
	}
	w := make([]byte, 0, 1+len(values))
	w = append(w, reg)
	w = append(w, values...)
	return d.tx(w, nil)
}

// readRegs fills buf with consecutive register contents starting at reg.
// The first clocked-out byte arrives while the address is still shifting in
// and is discarded; buf receives exactly len(buf) bytes no matter how long
// the transfer is.
func (d *Dev) readRegs(reg byte, buf []byte) error {
	if len(buf) == 0 {
		return errEmptyBuffer
	}
	reg |= flagRead
	if len(buf) > 1 {
		reg |= flagAutoIncrement
	}
	w := make([]byte, 1+len(buf))
	w[0] = reg
	r := make([]byte, len(w))
	if err := d.tx(w, r); err != nil {
		return err
	}
	copy(buf, r[1:])
	return nil
}

// readReg reads a single register.
func (d *Dev) readReg(reg byte) (byte, error) {
	var buf [1]byte
	if err := d.readRegs(reg, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}
