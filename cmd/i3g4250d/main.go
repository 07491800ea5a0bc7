// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// i3g4250d reads angular rate from an I3G4250D gyroscope and optionally
// draws it on the terminal or into a PNG trace.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/GermanBionicSystems/i3g4250d"
	"github.com/GermanBionicSystems/i3g4250d/rateplot"
	"github.com/GermanBionicSystems/i3g4250d/ratescope"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

func scaleFor(dps int) (i3g4250d.FullScale, error) {
	switch dps {
	case 245:
		return i3g4250d.Scale245, nil
	case 500:
		return i3g4250d.Scale500, nil
	case 2000:
		return i3g4250d.Scale2000, nil
	default:
		return 0, fmt.Errorf("unsupported full-scale range %d, use 245, 500 or 2000", dps)
	}
}

// calibrate parses a "min,max" flag value and applies it to one axis.
func calibrate(d *i3g4250d.Dev, axis i3g4250d.Axis, arg string) error {
	if arg == "" {
		return nil
	}
	var min, max float64
	if _, err := fmt.Sscanf(arg, "%f,%f", &min, &max); err != nil {
		return fmt.Errorf("calibration %q: want min,max: %w", arg, err)
	}
	return d.Calibrate(axis, min, max)
}

func mainImpl() error {
	spiName := flag.String("spi", "", "SPI port to use, empty for the first available")
	csName := flag.String("cs", "", "chip-select GPIO pin, when not driven by the SPI port")
	scale := flag.Int("scale", 500, "full-scale range in °/s (245, 500 or 2000)")
	interval := flag.Duration("interval", 50*time.Millisecond, "sampling interval")
	duration := flag.Duration("duration", 5*time.Second, "total capture time")
	scope := flag.Bool("scope", false, "draw live rate bars on the terminal")
	plot := flag.String("plot", "", "write a PNG trace of the capture to this file")
	calX := flag.String("cal-x", "", "X calibration as min,max raw sweep extremes")
	calY := flag.String("cal-y", "", "Y calibration as min,max raw sweep extremes")
	calZ := flag.String("cal-z", "", "Z calibration as min,max raw sweep extremes")
	flag.Parse()

	fs, err := scaleFor(*scale)
	if err != nil {
		return err
	}

	if _, err := host.Init(); err != nil {
		return err
	}
	p, err := spireg.Open(*spiName)
	if err != nil {
		return err
	}
	defer p.Close()

	opts := i3g4250d.DefaultOpts
	opts.Scale = fs
	if *csName != "" {
		pin := gpioreg.ByName(*csName)
		if pin == nil {
			return fmt.Errorf("no GPIO pin named %q", *csName)
		}
		opts.CS = pin
	}

	d, err := i3g4250d.New(p, &opts)
	if err != nil {
		return err
	}
	defer d.Halt()
	log.Printf("connected to %s", d)

	if err := calibrate(d, i3g4250d.AxisX, *calX); err != nil {
		return err
	}
	if err := calibrate(d, i3g4250d.AxisY, *calY); err != nil {
		return err
	}
	if err := calibrate(d, i3g4250d.AxisZ, *calZ); err != nil {
		return err
	}

	var sc *ratescope.Scope
	if *scope {
		sc = ratescope.New(&ratescope.Opts{FullScale: float64(*scale) * 1000})
		defer sc.Close()
	}
	var rec rateplot.Recorder

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	stop := time.After(*duration)
	start := time.Now()

	for {
		select {
		case <-stop:
			if *plot != "" {
				f, err := os.Create(*plot)
				if err != nil {
					return err
				}
				if err := rec.WritePNG(f, 800, 400); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				log.Printf("wrote %d samples to %s", rec.Len(), *plot)
			}
			return nil
		case <-ticker.C:
			ready, err := d.WaitDataReady(*interval)
			if err != nil {
				return err
			}
			if !ready {
				log.Print("timed out waiting for data ready")
				continue
			}
			s, err := d.Read()
			if err != nil {
				return err
			}
			rec.Add(time.Since(start), s.X, s.Y, s.Z)
			if sc != nil {
				if err := sc.Plot(s.X, s.Y, s.Z); err != nil {
					return err
				}
			} else {
				fmt.Println(s)
			}
		}
	}
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "i3g4250d: %s.\n", err)
		os.Exit(1)
	}
}
