// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package i3g4250d

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spitest"
)

// TestReadRegsBurst verifies that a multi-byte read returns every requested
// byte. Lengths that are not a multiple of four used to be a problem on
// this device family, so a 5-byte burst is the interesting case.
func TestReadRegsBurst(t *testing.T) {
	ops := append(initOps(), conntest.IO{
		W: []byte{0xE8, 0x00, 0x00, 0x00, 0x00, 0x00},
		R: []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05},
	})
	d, pb := playbackDev(t, ops)
	defer pb.Close()

	buf := make([]byte, 5)
	if err := d.readRegs(regOutXLow, buf); err != nil {
		t.Fatal(err)
	}
	for i, b := range buf {
		if b != byte(i+1) {
			t.Fatalf("buf[%d] = %#02x, want %#02x; burst read truncated", i, b, i+1)
		}
	}
}

func TestReadRegsEmptyBuffer(t *testing.T) {
	d, pb := playbackDev(t, initOps())
	defer pb.Close()

	if err := d.readRegs(regStatus, nil); !errors.Is(err, errEmptyBuffer) {
		t.Errorf("expected errEmptyBuffer, got %v", err)
	}
}

// exclusiveConn reports an error when a transfer starts while another is
// still in flight.
type exclusiveConn struct {
	busy int32
}

func (e *exclusiveConn) String() string { return "exclusive" }

func (e *exclusiveConn) Duplex() conn.Duplex { return conn.Full }

func (e *exclusiveConn) Tx(w, r []byte) error {
	if !atomic.CompareAndSwapInt32(&e.busy, 0, 1) {
		return errors.New("overlapping transfer")
	}
	time.Sleep(100 * time.Microsecond)
	atomic.StoreInt32(&e.busy, 0)
	return nil
}

func (e *exclusiveConn) TxPackets(p []spi.Packet) error {
	return errors.New("not implemented")
}

type exclusivePort struct {
	c exclusiveConn
}

func (e *exclusivePort) String() string { return "exclusive" }

func (e *exclusivePort) Connect(f physic.Frequency, m spi.Mode, bits int) (spi.Conn, error) {
	return &e.c, nil
}

// TestTxSerialized drives reads and power-down writes from two goroutines
// and checks that no two transfers ever overlap on the bus.
func TestTxSerialized(t *testing.T) {
	opts := DefaultOpts
	opts.SkipIDCheck = true
	d, err := New(&exclusivePort{}, &opts)
	if err != nil {
		t.Fatal(err)
	}

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 10; i++ {
			if _, err := d.ReadRaw(); err != nil {
				errs <- err
				return
			}
		}
		errs <- nil
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 10; i++ {
			if err := d.Halt(); err != nil {
				errs <- err
				return
			}
		}
		errs <- nil
	}()
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Error(err)
		}
	}
}

func TestWriteRegBurst(t *testing.T) {
	opts := DefaultOpts
	opts.SkipIDCheck = true
	record := &spitest.Record{}
	d, err := New(record, &opts)
	if err != nil {
		t.Fatal(err)
	}
	record.Ops = make([]conntest.IO, 0)
	if err := d.writeReg(regCtrl1, 0x6F, 0x13); err != nil {
		t.Fatal(err)
	}
	expected := []conntest.IO{
		{W: []byte{0x60, 0x6F, 0x13}}, // auto-increment set for the burst
	}
	if err := verifyOperations(record.Ops, expected); err != nil {
		t.Error(err)
	}
}
