// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.
//
// Package i3g4250d provides a driver for the ST I3G4250D three-axis MEMS
// gyroscope, as found on the STM32F429 Discovery board, connected over
// 4-wire SPI.
//
// The driver configures the sensor's output data rate, bandwidth, high-pass
// filter and full-scale range, reads raw angular-rate counts, and converts
// them to milli-degree-per-second values using per-axis bias/scale
// calibration.
//
// Range: ±245, ±500 or ±2000 °/s
//
// Sensitivity: 8.75, 17.50 or 70 m°/s per count
//
// For detailed information, refer to the [datasheet].
//
// [datasheet]: https://www.st.com/resource/en/datasheet/i3g4250d.pdf
package i3g4250d
