// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package rateplot records timed angular-rate samples and renders them as a
// three-trace PNG chart, one colored line per axis.
package rateplot

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrNoSamples is returned when rendering an empty recording.
var ErrNoSamples = errors.New("rateplot: no samples recorded")

// Sample is one scaled reading with its offset from the start of the
// recording.
type Sample struct {
	At time.Duration
	X  float64
	Y  float64
	Z  float64
}

// Recorder accumulates samples. It is safe for concurrent use, so an
// acquisition goroutine can feed it while another renders.
type Recorder struct {
	mu      sync.Mutex
	samples []Sample
}

// Add appends one sample taken at the given offset.
func (r *Recorder) Add(at time.Duration, x, y, z float64) {
	r.mu.Lock()
	r.samples = append(r.samples, Sample{At: at, X: x, Y: y, Z: z})
	r.mu.Unlock()
}

// Len returns the number of recorded samples.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.samples)
}

const margin = 40.0

// WritePNG renders the recording as a width×height PNG chart: a framed
// plot area with a zero line, the three axis traces in red, green and
// blue, and labeled extremes in m°/s.
func (r *Recorder) WritePNG(w io.Writer, width, height int) error {
	r.mu.Lock()
	samples := make([]Sample, len(r.samples))
	copy(samples, r.samples)
	r.mu.Unlock()
	if len(samples) == 0 {
		return ErrNoSamples
	}

	// Symmetric vertical range around zero so the zero line sits centered.
	limit := 1.0
	for _, s := range samples {
		for _, v := range [3]float64{s.X, s.Y, s.Z} {
			if a := math.Abs(v); a > limit {
				limit = a
			}
		}
	}
	span := samples[len(samples)-1].At
	if span <= 0 {
		span = time.Nanosecond
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("rateplot: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: 12}))

	plotW := float64(width) - 2*margin
	plotH := float64(height) - 2*margin
	toX := func(at time.Duration) float64 {
		return margin + plotW*float64(at)/float64(span)
	}
	toY := func(v float64) float64 {
		return margin + plotH/2 - v/limit*plotH/2
	}

	// Frame and zero line.
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawRectangle(margin, margin, plotW, plotH)
	dc.Stroke()
	dc.SetRGB(0.7, 0.7, 0.7)
	dc.DrawLine(margin, toY(0), margin+plotW, toY(0))
	dc.Stroke()

	traces := []struct {
		label   string
		r, g, b float64
		value   func(Sample) float64
	}{
		{"x", 0.8, 0, 0, func(s Sample) float64 { return s.X }},
		{"y", 0, 0.6, 0, func(s Sample) float64 { return s.Y }},
		{"z", 0, 0, 0.8, func(s Sample) float64 { return s.Z }},
	}
	for i, tr := range traces {
		dc.SetRGB(tr.r, tr.g, tr.b)
		dc.SetLineWidth(1.5)
		for _, s := range samples {
			dc.LineTo(toX(s.At), toY(tr.value(s)))
		}
		dc.Stroke()
		dc.DrawString(tr.label, margin+plotW+6, margin+14*float64(i+1))
	}

	dc.SetRGB(0, 0, 0)
	dc.DrawString(fmt.Sprintf("+%.0f m°/s", limit), 2, margin+10)
	dc.DrawString(fmt.Sprintf("-%.0f m°/s", limit), 2, margin+plotH)
	dc.DrawString(fmt.Sprintf("%s, %d samples", span.Round(time.Millisecond), len(samples)), margin, float64(height)-margin/2)

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("rateplot: %w", err)
	}
	return nil
}
