// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ratescope

import (
	"bytes"
	"strings"
	"testing"
)

func TestPlot(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriter(&buf, &Opts{Width: 4, FullScale: 1000})
	if err := s.Plot(1000, -500, 0); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "\r\033[0m") {
		t.Errorf("line does not rewind and reset: %q", out)
	}
	if strings.Count(out, "\033[0m ") != 3 {
		t.Errorf("expected three bar groups, got %q", out)
	}
}

func TestPlotClamped(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriter(&buf, &Opts{Width: 2, FullScale: 100})
	// Far beyond full scale must not panic or overrun the bar.
	if err := s.Plot(1e9, -1e9, 1e9); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("nothing written")
	}
}

func TestDefaults(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriter(&buf, &Opts{})
	if s.width != 16 || s.fullScale != 500000 {
		t.Errorf("unexpected defaults: width=%d fullScale=%v", s.width, s.fullScale)
	}
	if s.String() != "RateScope" {
		t.Errorf("invalid String(): %q", s.String())
	}
}

func TestClose(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriter(&buf, &Opts{})
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(buf.String(), "\033[0m") {
		t.Errorf("colors not reset on close: %q", buf.String())
	}
}
