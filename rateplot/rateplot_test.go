// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rateplot

import (
	"bytes"
	"errors"
	"image/png"
	"testing"
	"time"
)

func TestWritePNG(t *testing.T) {
	var r Recorder
	for i := 0; i < 50; i++ {
		at := time.Duration(i) * 10 * time.Millisecond
		r.Add(at, float64(i)*100, float64(-i)*50, 0)
	}
	if r.Len() != 50 {
		t.Fatalf("Len() = %d, want 50", r.Len())
	}

	var buf bytes.Buffer
	if err := r.WritePNG(&buf, 640, 480); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != 640 || b.Dy() != 480 {
		t.Errorf("image is %dx%d, want 640x480", b.Dx(), b.Dy())
	}
}

func TestWritePNGEmpty(t *testing.T) {
	var r Recorder
	var buf bytes.Buffer
	if err := r.WritePNG(&buf, 100, 100); !errors.Is(err, ErrNoSamples) {
		t.Errorf("expected ErrNoSamples, got %v", err)
	}
}

func TestWritePNGSingleSample(t *testing.T) {
	var r Recorder
	r.Add(0, 1, 2, 3)
	var buf bytes.Buffer
	// A single sample has zero time span; the render must not divide by
	// zero.
	if err := r.WritePNG(&buf, 200, 200); err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Fatal(err)
	}
}
