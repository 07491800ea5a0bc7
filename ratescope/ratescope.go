// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ratescope renders angular-rate samples as colored bars on the
// terminal (stdout) using ANSI color codes.
//
// Useful to eyeball gyroscope behavior while wiring or calibrating a board
// without any display attached.
package ratescope

import (
	"bytes"
	"image/color"
	"io"
	"math"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// Opts represents the options available for the scope.
type Opts struct {
	// Width is the number of blocks drawn per axis bar.
	Width int
	// FullScale is the rate magnitude in m°/s that lights a full bar.
	FullScale float64
	// Palette converts colors to ANSI codes. Defaults to ansi256.Default.
	Palette *ansi256.Palette

	_ struct{}
}

// Scope draws one line of three axis bars per sample, redrawing in place.
type Scope struct {
	w         io.Writer
	width     int
	fullScale float64
	palette   ansi256.Palette

	buf bytes.Buffer
}

// New returns a Scope that draws to the console.
func New(opts *Opts) *Scope {
	return NewWriter(colorable.NewColorableStdout(), opts)
}

// NewWriter returns a Scope that draws to an arbitrary writer.
func NewWriter(w io.Writer, opts *Opts) *Scope {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	width := opts.Width
	if width <= 0 {
		width = 16
	}
	fullScale := opts.FullScale
	if fullScale <= 0 {
		fullScale = 500000 // ±500°/s in m°/s
	}
	return &Scope{
		w:         w,
		width:     width,
		fullScale: fullScale,
		palette:   *p,
	}
}

func (s *Scope) String() string {
	return "RateScope"
}

// Axis bar base colors: X red, Y green, Z blue.
var barColors = [3]color.NRGBA{
	{R: 255, A: 255},
	{G: 255, A: 255},
	{B: 255, A: 255},
}

// Plot redraws the current line with one bar per axis. Bar length tracks
// the rate magnitude, negative rates dim the bar color.
func (s *Scope) Plot(x, y, z float64) error {
	// Minimize allocations per call, the scope redraws at sample rate.
	s.buf.Reset()
	_, _ = s.buf.WriteString("\r\033[0m")
	for i, v := range [3]float64{x, y, z} {
		lit := int(math.Round(math.Abs(v) / s.fullScale * float64(s.width)))
		if lit > s.width {
			lit = s.width
		}
		c := barColors[i]
		if v < 0 {
			c.R /= 2
			c.G /= 2
			c.B /= 2
		}
		for block := 0; block < s.width; block++ {
			if block < lit {
				_, _ = io.WriteString(&s.buf, s.palette.Block(c))
			} else {
				_, _ = io.WriteString(&s.buf, s.palette.Block(color.NRGBA{R: 40, G: 40, B: 40, A: 255}))
			}
		}
		_, _ = s.buf.WriteString("\033[0m ")
	}
	_, err := s.buf.WriteTo(s.w)
	return err
}

// Close resets the terminal colors so the shell is not left corrupted.
func (s *Scope) Close() error {
	_, err := s.w.Write([]byte("\n\033[0m"))
	return err
}
