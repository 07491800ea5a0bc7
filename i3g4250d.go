// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package i3g4250d

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// SPI parameters used to communicate with the device. The I3G4250D supports
// clocks up to 10MHz with CPOL=1, CPHA=1.
var (
	SpiFrequency = 5 * physic.MegaHertz
	SpiMode      = spi.Mode3
	SpiBits      = 8
)

var (
	// ErrInvalidScale is returned when Opts carries a full-scale selection
	// outside the documented encodings.
	ErrInvalidScale = errors.New("i3g4250d: unsupported full-scale selection")
	// ErrInvalidCalibrationRange is returned when a calibration range is
	// degenerate (min == max).
	ErrInvalidCalibrationRange = errors.New("i3g4250d: calibration range must have min != max")
	// ErrWrongDevice is returned when the WHO_AM_I register does not
	// identify an I3G4250D.
	ErrWrongDevice = errors.New("i3g4250d: unexpected WHO_AM_I value")
)

// Axis identifies one of the three measurement axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// DataRaw is one angular-rate sample in raw two's-complement counts.
type DataRaw struct {
	X int16
	Y int16
	Z int16
}

func (d DataRaw) String() string {
	return fmt.Sprintf("X:%d Y:%d Z:%d", d.X, d.Y, d.Z)
}

// DataScaled is one angular-rate sample in milli-degrees per second, after
// sensitivity and per-axis calibration have been applied.
type DataScaled struct {
	X float64
	Y float64
	Z float64
}

func (d DataScaled) String() string {
	return fmt.Sprintf("X:%.1fm°/s Y:%.1fm°/s Z:%.1fm°/s", d.X, d.Y, d.Z)
}

// Opts holds the configuration applied to the device at startup. The
// configuration is written once by New and not changed afterwards.
type Opts struct {
	// Axes selects the powered measurement axes.
	Axes AxisMask
	// ODR selects the output data rate and bandwidth preset.
	ODR ODRBandwidth
	// HighPassMode selects the high-pass filter operating mode.
	HighPassMode HighPassMode
	// HighPassCutoff selects the high-pass filter cutoff frequency.
	HighPassCutoff HighPassCutoff
	// Scale selects the full-scale range, which in turn fixes the
	// sensitivity used to scale raw counts.
	Scale FullScale
	// CS is an optional chip-select pin driven explicitly around each
	// transaction. Leave nil when the SPI port handles chip select itself.
	CS gpio.PinOut
	// SkipIDCheck disables the WHO_AM_I verification on startup.
	SkipIDCheck bool
}

// DefaultOpts enables all axes at 200Hz with a ±500°/s range and no
// high-pass filtering.
var DefaultOpts = Opts{
	Axes:  EnableAll,
	ODR:   ODRMedium,
	Scale: Scale500,
}

type axisCal struct {
	bias  float64
	scale float64
}

// Dev is a driver for the I3G4250D gyroscope.
//
// Calibration state and sensitivity are guarded by a mutex, and each bus
// transaction is a critical section of its own, so a Dev may be shared
// between goroutines.
type Dev struct {
	c    spi.Conn
	cs   gpio.PinOut
	opts Opts

	// busMu serializes transactions so concurrent callers cannot
	// interleave chip-select framing.
	busMu sync.Mutex

	mu          sync.Mutex
	sensitivity float64 // m°/s per count, fixed by the full-scale range
	cal         [3]axisCal
	shutdown    chan struct{}
}

// New connects to an I3G4250D on the provided SPI port, verifies its
// identity and applies the configuration in opts. Passing nil opts selects
// DefaultOpts.
func New(p spi.Port, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	sensitivity, err := sensitivityFor(opts.Scale)
	if err != nil {
		return nil, err
	}
	c, err := p.Connect(SpiFrequency, SpiMode, SpiBits)
	if err != nil {
		return nil, fmt.Errorf("i3g4250d: connect: %w", err)
	}
	d := &Dev{
		c:           c,
		cs:          opts.CS,
		opts:        *opts,
		sensitivity: sensitivity,
	}
	if !opts.SkipIDCheck {
		id, err := d.readReg(regWhoAmI)
		if err != nil {
			return nil, err
		}
		if id != WhoAmI {
			return nil, fmt.Errorf("%w: got %#02x, want %#02x", ErrWrongDevice, id, WhoAmI)
		}
	}
	if err := d.configure(); err != nil {
		return nil, err
	}
	return d, nil
}

// configure packs the option fields into the control registers and writes
// them out. Writing the same Opts twice produces identical register state.
func (d *Dev) configure() error {
	ctrl1 := byte(d.opts.Axes)&maskAxes | byte(d.opts.ODR)&maskODRBW
	if err := d.writeReg(regCtrl1, ctrl1); err != nil {
		return err
	}
	ctrl2 := byte(d.opts.HighPassMode)&maskHighPassMode | byte(d.opts.HighPassCutoff)&maskHighPassCutoff
	if err := d.writeReg(regCtrl2, ctrl2); err != nil {
		return err
	}
	// Remaining CTRL_REG4 bits stay zero: 4-wire SPI, self test off.
	ctrl4 := byte(d.opts.Scale) & maskFullScale
	return d.writeReg(regCtrl4, ctrl4)
}

func sensitivityFor(scale FullScale) (float64, error) {
	switch scale {
	case Scale245:
		return sensitivity245, nil
	case Scale500:
		return sensitivity500, nil
	case Scale2000, Scale2000Alt:
		return sensitivity2000, nil
	default:
		return 0, fmt.Errorf("%w: %#02x", ErrInvalidScale, byte(scale))
	}
}

// Sensitivity returns the active conversion factor in milli-degrees per
// second per raw count.
func (d *Dev) Sensitivity() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sensitivity
}

// ReadRaw reads one sample of raw angular-rate counts, one 16-bit
// little-endian value per axis.
func (d *Dev) ReadRaw() (DataRaw, error) {
	var raw DataRaw
	var buf [2]byte
	if err := d.readRegs(regOutXLow, buf[:]); err != nil {
		return DataRaw{}, err
	}
	raw.X = int16(uint16(buf[1])<<8 | uint16(buf[0]))
	if err := d.readRegs(regOutYLow, buf[:]); err != nil {
		return DataRaw{}, err
	}
	raw.Y = int16(uint16(buf[1])<<8 | uint16(buf[0]))
	if err := d.readRegs(regOutZLow, buf[:]); err != nil {
		return DataRaw{}, err
	}
	raw.Z = int16(uint16(buf[1])<<8 | uint16(buf[0]))
	return raw, nil
}

// Read reads one sample and converts it to milli-degrees per second using
// the active sensitivity and the per-axis calibration. Axes that have not
// been calibrated read as zero until Calibrate is called for them.
func (d *Dev) Read() (DataScaled, error) {
	raw, err := d.ReadRaw()
	if err != nil {
		return DataScaled{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return DataScaled{
		X: float64(raw.X)*d.sensitivity*d.cal[AxisX].scale - d.cal[AxisX].bias,
		Y: float64(raw.Y)*d.sensitivity*d.cal[AxisY].scale - d.cal[AxisY].bias,
		Z: float64(raw.Z)*d.sensitivity*d.cal[AxisZ].scale - d.cal[AxisZ].bias,
	}, nil
}

// Calibrate derives one axis's bias and scale from the extremes observed
// while sweeping that axis over its full measurement range. Other axes keep
// their calibration.
func (d *Dev) Calibrate(axis Axis, min, max float64) error {
	if axis < AxisX || axis > AxisZ {
		return fmt.Errorf("i3g4250d: invalid axis %d", axis)
	}
	if min == max {
		return ErrInvalidCalibrationRange
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cal[axis] = axisCal{
		bias:  (max + min) / 2,
		scale: 2000 / (max - min),
	}
	return nil
}

// WaitDataReady polls the status register until any axis flags new data or
// the timeout elapses. It returns true when data is available and false on
// timeout. The status register is always polled at least once, so a zero
// timeout performs a single check.
func (d *Dev) WaitDataReady(timeout time.Duration) (bool, error) {
	start := time.Now()
	for {
		status, err := d.readReg(regStatus)
		if err != nil {
			return false, err
		}
		if status&statusAvailable != 0 {
			return true, nil
		}
		if time.Since(start) >= timeout {
			return false, nil
		}
	}
}

// ReadContinuous reads the device at the requested interval and delivers
// scaled samples on the returned channel until Halt is called, after which
// a new continuous read may be started. Samples are dropped when the
// channel is full or a read fails. Only one continuous read can run at a
// time.
func (d *Dev) ReadContinuous(interval time.Duration) (<-chan DataScaled, error) {
	if interval <= 0 {
		return nil, errors.New("i3g4250d: interval must be positive")
	}
	d.mu.Lock()
	if d.shutdown != nil {
		d.mu.Unlock()
		return nil, errors.New("i3g4250d: continuous read already running")
	}
	shutdown := make(chan struct{})
	d.shutdown = shutdown
	d.mu.Unlock()
	channel := make(chan DataScaled, 16)
	go func(channel chan DataScaled, shutdown <-chan struct{}) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-shutdown:
				close(channel)
				return
			case <-ticker.C:
				s, err := d.Read()
				if err == nil && len(channel) < cap(channel) {
					channel <- s
				}
			}
		}
	}(channel, shutdown)
	return channel, nil
}

// Halt stops any ReadContinuous operation and puts the device in power-down
// mode. Implements conn.Resource.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.shutdown != nil {
		close(d.shutdown)
		d.shutdown = nil
	}
	return d.writeReg(regCtrl1, 0x00)
}

func (d *Dev) String() string {
	return fmt.Sprintf("i3g4250d{%s}", d.c)
}

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
