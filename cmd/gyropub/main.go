// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// gyropub publishes scaled angular-rate samples from an I3G4250D to an MQTT
// broker as JSON, one message per sample.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/GermanBionicSystems/i3g4250d"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

type sample struct {
	Time string  `json:"time"`
	X    float64 `json:"x_mdps"`
	Y    float64 `json:"y_mdps"`
	Z    float64 `json:"z_mdps"`
}

func mainImpl() error {
	broker := flag.String("broker", "tcp://localhost:1883", "MQTT broker URL")
	clientID := flag.String("client-id", "gyropub", "MQTT client ID")
	topic := flag.String("topic", "gyro/rate", "MQTT topic for samples")
	spiName := flag.String("spi", "", "SPI port to use, empty for the first available")
	interval := flag.Duration("interval", 100*time.Millisecond, "publish interval")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		return err
	}
	p, err := spireg.Open(*spiName)
	if err != nil {
		return err
	}
	defer p.Close()

	d, err := i3g4250d.New(p, &i3g4250d.DefaultOpts)
	if err != nil {
		return err
	}
	defer d.Halt()

	opts := mqtt.NewClientOptions().
		AddBroker(*broker).
		SetClientID(*clientID)
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("MQTT connect: %w", token.Error())
	}
	defer client.Disconnect(250)

	log.Printf("publishing %s to %s every %s", d, *topic, *interval)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for t := range ticker.C {
		s, err := d.Read()
		if err != nil {
			log.Printf("read error: %v", err)
			continue
		}
		payload, err := json.Marshal(sample{
			Time: t.Format(time.RFC3339Nano),
			X:    s.X,
			Y:    s.Y,
			Z:    s.Z,
		})
		if err != nil {
			log.Printf("json marshal error: %v", err)
			continue
		}
		if token := client.Publish(*topic, 0, true, payload); token.Wait() && token.Error() != nil {
			log.Printf("MQTT publish error: %v", token.Error())
		}
	}
	return nil
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "gyropub: %s.\n", err)
		os.Exit(1)
	}
}
