// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package i3g4250d_test

import (
	"fmt"
	"log"
	"time"

	"github.com/GermanBionicSystems/i3g4250d"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// Example reads angular rate every 30ms for 3 seconds.
func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use spireg SPI port registry to find the first available SPI bus.
	p, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	d, err := i3g4250d.New(p, &i3g4250d.DefaultOpts)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Halt()

	fmt.Println(d.String())

	// Calibrate each axis from previously recorded range sweeps.
	if err := d.Calibrate(i3g4250d.AxisX, -500, 500); err != nil {
		log.Fatal(err)
	}

	ticker := time.NewTicker(30 * time.Millisecond)
	defer ticker.Stop()
	stop := time.After(3 * time.Second)

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if ready, err := d.WaitDataReady(100 * time.Millisecond); err != nil || !ready {
				continue
			}
			s, err := d.Read()
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(s)
		}
	}
}
