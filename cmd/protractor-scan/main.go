// Command protractor-scan exercises a Protractor sensor from a host
// machine: it optionally applies configuration, then runs scans and prints
// the detected objects and open pathways.
//
// With -sim it drives a built-in simulated sensor instead of hardware,
// which is handy for checking wiring-independent behaviour:
//
//	protractor-scan -sim -count 3
//	protractor-scan -port /dev/ttyUSB0 -scan-time 50 -led paths
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"protractor-go/drivers/protractor"
	"protractor-go/drivers/protractor/sim"
	"protractor-go/transport/serialport"
)

func main() {
	var (
		portName = flag.String("port", "", "serial port the sensor is attached to (e.g. /dev/ttyUSB0)")
		baud     = flag.Int("baud", protractor.DefaultBaudRate, "serial baud rate")
		useSim   = flag.Bool("sim", false, "drive a built-in simulated sensor instead of hardware")
		objects  = flag.Int("objects", protractor.MaxObjects, "objects/paths to request per scan (1..8)")
		count    = flag.Int("count", 10, "number of scans to run (0 = run forever)")
		interval = flag.Duration("interval", 200*time.Millisecond, "delay between scans")
		scanTime = flag.Int("scan-time", -1, "set the sensor scan period in ms before scanning (-1 = leave unchanged, 0 = scan on demand)")
		led      = flag.String("led", "", "set LED feedback mode: objects, paths or off")
		setAddr  = flag.Int("set-address", 0, "store a new two-wire address (2..127) and exit")
		setBaud  = flag.Int("set-baud", 0, "store a new serial baud rate (1200..250000) and exit")
	)
	flag.Parse()

	dev, err := attach(*portName, *baud, *useSim)
	if err != nil {
		log.Fatal(err)
	}

	// One-shot persistent settings.
	if *setAddr != 0 {
		dev.SetI2CAddress(*setAddr)
		log.Printf("stored two-wire address %#x (takes effect after sensor restart)", *setAddr)
		return
	}
	if *setBaud != 0 {
		dev.SetBaudRate(*setBaud)
		log.Printf("stored baud rate %d (takes effect after sensor restart)", *setBaud)
		return
	}

	if *scanTime >= 0 {
		dev.SetScanTime(*scanTime)
	}
	switch *led {
	case "":
	case "objects":
		dev.LEDShowObjects()
	case "paths":
		dev.LEDShowPaths()
	case "off":
		dev.LEDOff()
	default:
		log.Fatalf("unknown -led mode %q (objects, paths or off)", *led)
	}

	var scan protractor.Scan
	for i := 0; *count == 0 || i < *count; i++ {
		if i > 0 {
			time.Sleep(*interval)
		}
		if !dev.ReadN(*objects) {
			log.Printf("scan %d: no response", i)
			continue
		}
		dev.SnapshotInto(&scan)
		fmt.Printf("scan %d: %d objects, %d paths\n", i, len(scan.Objects), len(scan.Paths))
		for j, o := range scan.Objects {
			fmt.Printf("  object %d: angle %3d°  visibility %3d\n", j, o.Angle, o.Visibility)
		}
		for j, p := range scan.Paths {
			fmt.Printf("  path   %d: angle %3d°  visibility %3d\n", j, p.Angle, p.Visibility)
		}
	}
}

func attach(portName string, baud int, useSim bool) (*protractor.Device, error) {
	if useSim {
		per := sim.New()
		per.SetScene(
			[]sim.Target{
				{AngleRaw: 0x40, Visibility: 0xC8},
				{AngleRaw: 0xC0, Visibility: 0x96},
			},
			[]sim.Target{
				{AngleRaw: 0x80, Visibility: 0xFF},
			},
		)
		return protractor.New(per), nil
	}
	if portName == "" {
		return nil, errors.New("either -port or -sim is required")
	}
	p, err := serialport.Open(portName, baud)
	if err != nil {
		return nil, err
	}
	if err := p.Flush(); err != nil {
		return nil, err
	}
	return protractor.New(p), nil
}
