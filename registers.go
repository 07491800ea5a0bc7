// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package i3g4250d

// Register addresses.
const (
	regWhoAmI   = 0x0F // Device identification, reads 0xD3
	regCtrl1    = 0x20 // Power mode, output data rate, bandwidth, axis enables
	regCtrl2    = 0x21 // High-pass filter mode and cutoff
	regCtrl3    = 0x22 // Interrupt routing (unused, polling only)
	regCtrl4    = 0x23 // Full scale, self test, SPI wire mode
	regCtrl5    = 0x24 // FIFO and filter routing (unused)
	regStatus   = 0x27 // Data-ready and overrun flags
	regOutXLow  = 0x28 // X angular rate, low byte
	regOutXHigh = 0x29 // X angular rate, high byte
	regOutYLow  = 0x2A // Y angular rate, low byte
	regOutYHigh = 0x2B // Y angular rate, high byte
	regOutZLow  = 0x2C // Z angular rate, low byte
	regOutZHigh = 0x2D // Z angular rate, high byte
)

// Address byte flags. Bit 7 requests a read, bit 6 enables register address
// auto-increment for multi-byte transfers.
const (
	flagRead          = 0x80
	flagAutoIncrement = 0x40
)

// WhoAmI is the identification value the device returns from its WHO_AM_I
// register.
const WhoAmI = 0xD3

// AxisMask selects which axes are powered and sampled. The low three bits
// enable X, Y and Z; bit 3 takes the device out of power-down mode.
type AxisMask byte

const (
	EnableX   AxisMask = 0x09 // Only the X axis
	EnableY   AxisMask = 0x0A // Only the Y axis
	EnableZ   AxisMask = 0x0C // Only the Z axis
	EnableAll AxisMask = 0x0F // All three axes
)

// ODRBandwidth presets combine the output data rate and low-pass bandwidth
// bits of CTRL_REG1. Refer to table 21 of the datasheet.
type ODRBandwidth byte

const (
	ODRLow    ODRBandwidth = 0x10 // 100 Hz, 12.5 Hz cutoff
	ODRMedium ODRBandwidth = 0x60 // 200 Hz, 50 Hz cutoff
	ODRHigh   ODRBandwidth = 0xB0 // 400 Hz, 110 Hz cutoff
	ODRUltra  ODRBandwidth = 0xF0 // 800 Hz, 110 Hz cutoff
)

// HighPassMode selects the high-pass filter operating mode (CTRL_REG2 bits
// 5:4).
type HighPassMode byte

const (
	HPNormalReset HighPassMode = 0x00 // Normal mode, reference reset on read
	HPReference   HighPassMode = 0x10 // Reference signal for filtering
	HPNormal      HighPassMode = 0x20 // Normal mode
	HPAutoreset   HighPassMode = 0x30 // Autoreset on interrupt event
)

// HighPassCutoff selects the high-pass filter cutoff frequency (CTRL_REG2
// bits 3:0). The resulting frequency depends on the output data rate; refer
// to table 27 of the datasheet.
type HighPassCutoff byte

const (
	HPCutoff1  HighPassCutoff = 0x00 // 8 Hz at 100 Hz ODR, 56 Hz at 800 Hz
	HPCutoff2  HighPassCutoff = 0x01 // 4 Hz at 100 Hz ODR, 30 Hz at 800 Hz
	HPCutoff3  HighPassCutoff = 0x02 // 2 Hz at 100 Hz ODR, 15 Hz at 800 Hz
	HPCutoff4  HighPassCutoff = 0x03 // 1 Hz at 100 Hz ODR, 8 Hz at 800 Hz
	HPCutoff5  HighPassCutoff = 0x04 // 0.5 Hz at 100 Hz ODR, 4 Hz at 800 Hz
	HPCutoff6  HighPassCutoff = 0x05 // 0.2 Hz at 100 Hz ODR, 2 Hz at 800 Hz
	HPCutoff7  HighPassCutoff = 0x06 // 0.1 Hz at 100 Hz ODR, 1 Hz at 800 Hz
	HPCutoff8  HighPassCutoff = 0x07 // 0.05 Hz at 100 Hz ODR, 0.5 Hz at 800 Hz
	HPCutoff9  HighPassCutoff = 0x08 // 0.02 Hz at 100 Hz ODR, 0.2 Hz at 800 Hz
	HPCutoff10 HighPassCutoff = 0x09 // 0.01 Hz at 100 Hz ODR, 0.1 Hz at 800 Hz
)

// FullScale selects the measurement range (CTRL_REG4 bits 5:4). The
// datasheet encodes 2000 °/s twice; both encodings behave identically.
type FullScale byte

const (
	Scale245     FullScale = 0x00 // ±245 °/s
	Scale500     FullScale = 0x10 // ±500 °/s
	Scale2000    FullScale = 0x20 // ±2000 °/s
	Scale2000Alt FullScale = 0x30 // ±2000 °/s, alternate encoding
)

// Sensitivity in milli-degrees per second per count for each full-scale
// range (datasheet table 4, typical values).
const (
	sensitivity245  = 8.75
	sensitivity500  = 17.50
	sensitivity2000 = 70
)

// Status register bits. The low three bits flag new data per axis.
const (
	statusXAvailable = 0x01
	statusYAvailable = 0x02
	statusZAvailable = 0x04
	statusAvailable  = statusXAvailable | statusYAvailable | statusZAvailable
)

// CTRL_REG1 field masks.
const (
	maskAxes  = 0x0F
	maskODRBW = 0xF0
)

// CTRL_REG2 field masks.
const (
	maskHighPassMode   = 0x30
	maskHighPassCutoff = 0x0F
)

// CTRL_REG4 field mask. The remaining bits are left zero, selecting 4-wire
// SPI and disabling self test.
const maskFullScale = 0x30
