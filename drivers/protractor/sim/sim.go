// Package sim provides a host-side simulated Protractor peripheral. One
// Peripheral implements both the driver's Stream and the two-wire Tx shape,
// so the same scripted scene can exercise either transport, the demo CLI,
// or integration tests without hardware.
//
// The simulator is single-context like the driver itself; serialise access
// to one Peripheral.
package sim

import (
	"errors"

	"tinygo.org/x/drivers"

	"protractor-go/drivers/protractor"
)

// One Peripheral serves both transports.
var (
	_ protractor.Stream = (*Peripheral)(nil)
	_ drivers.I2C       = (*Peripheral)(nil)
)

var errRxEmpty = errors.New("sim: rx empty")

// Target is one scripted detection, in wire units: a raw angle byte
// (0 = far left, 255 = far right) and a visibility byte.
type Target struct {
	AngleRaw   byte
	Visibility byte
}

// Peripheral models the sensor's command parser and its persisted state.
type Peripheral struct {
	objects []Target
	paths   []Target

	addr       byte
	baud       int
	scanMillis int
	ledMode    protractor.LEDMode

	cmd []byte // partial command frame accumulated across writes
	out []byte // queued serial response bytes
}

// New returns a Peripheral with factory settings and an empty scene.
func New() *Peripheral {
	return &Peripheral{
		addr:       protractor.AddressDefault,
		baud:       protractor.DefaultBaudRate,
		scanMillis: protractor.MinScanMillis,
		ledMode:    protractor.LEDModeObjects,
	}
}

// SetScene replaces the detections the next scans will report. Counts above
// the header nibble ceiling are truncated to 15.
func (p *Peripheral) SetScene(objects, paths []Target) {
	if len(objects) > 15 {
		objects = objects[:15]
	}
	if len(paths) > 15 {
		paths = paths[:15]
	}
	p.objects = append(p.objects[:0], objects...)
	p.paths = append(p.paths[:0], paths...)
}

// Persisted-state accessors for tests and demos.

func (p *Peripheral) ScanMillis() int             { return p.scanMillis }
func (p *Peripheral) Addr() byte                  { return p.addr }
func (p *Peripheral) Baud() int                   { return p.baud }
func (p *Peripheral) LEDMode() protractor.LEDMode { return p.ledMode }

// ---------------- Stream side ----------------

func (p *Peripheral) Buffered() int { return len(p.out) }

func (p *Peripheral) ReadByte() (byte, error) {
	if len(p.out) == 0 {
		return 0, errRxEmpty
	}
	b := p.out[0]
	p.out = p.out[1:]
	return b, nil
}

func (p *Peripheral) Write(frame []byte) (int, error) {
	p.feed(frame)
	return len(frame), nil
}

// ---------------- Two-wire side ----------------

// Tx mirrors the sensor's bus behaviour: command frames arrive as a single
// bracketed write; a controller read pulls the packed response
// synchronously. A mismatched address never acks.
func (p *Peripheral) Tx(addr uint16, w, r []byte) error {
	if byte(addr) != p.addr {
		return errors.New("sim: address not acknowledged")
	}
	if len(w) > 0 {
		p.feed(w)
	}
	if len(r) > 0 {
		p.fillResponse(r)
	}
	return nil
}

// ---------------- Command parser ----------------

// feed accumulates command bytes and executes every complete frame. Frames
// are length-framed by tag, not split on the terminator, since payload
// bytes may legitimately be 0x0A.
func (p *Peripheral) feed(data []byte) {
	p.cmd = append(p.cmd, data...)
	for {
		n := p.frameLen()
		if n == 0 || len(p.cmd) < n {
			return
		}
		p.exec(p.cmd[:n])
		p.cmd = append(p.cmd[:0], p.cmd[n:]...)
	}
}

// frameLen returns the length of the frame at the head of cmd, or 0 if it
// cannot be determined yet. An unknown tag consumes one byte.
func (p *Peripheral) frameLen() int {
	if len(p.cmd) == 0 {
		return 0
	}
	switch p.cmd[0] {
	case protractor.CmdRequestData, protractor.CmdI2CAddress, protractor.CmdLEDUsage:
		return 3
	case protractor.CmdScanTime:
		// The firmware accepts a short clamped form {tag, MinScanMillis, \n}
		// and the general form {tag, lo, hi, \n}.
		if len(p.cmd) < 3 {
			return 0
		}
		if p.cmd[1] == protractor.MinScanMillis && p.cmd[2] == protractor.FrameEnd {
			return 3
		}
		return 4
	case protractor.CmdBaudRate:
		return 5
	default:
		return 1
	}
}

func (p *Peripheral) exec(frame []byte) {
	if frame[len(frame)-1] != protractor.FrameEnd {
		return // malformed; the sensor ignores it
	}
	switch frame[0] {
	case protractor.CmdRequestData:
		n := int(frame[1])
		resp := make([]byte, n)
		p.fillResponse(resp)
		p.out = append(p.out, resp...)
	case protractor.CmdScanTime:
		if len(frame) == 3 {
			p.scanMillis = protractor.MinScanMillis
			return
		}
		p.scanMillis = int(frame[1]) | int(frame[2])<<8
	case protractor.CmdI2CAddress:
		p.addr = frame[1]
	case protractor.CmdBaudRate:
		p.baud = int(frame[1]) | int(frame[2])<<8 | int(frame[3])<<16
	case protractor.CmdLEDUsage:
		p.ledMode = protractor.LEDMode(frame[1])
	}
}

// ---------------- Response encoder ----------------

// fillResponse packs the scene into dst: header nibbles, then the 4-byte
// stride records, truncated to the requested budget and zero-padded past
// the scene.
func (p *Peripheral) fillResponse(dst []byte) {
	for i := range dst {
		dst[i] = 0
	}
	if len(dst) == 0 {
		return
	}
	dst[0] = byte(len(p.objects))<<4 | byte(len(p.paths))
	put := func(off int, b byte) {
		if off < len(dst) {
			dst[off] = b
		}
	}
	for i, o := range p.objects {
		put(1+4*i, o.AngleRaw)
		put(2+4*i, o.Visibility)
	}
	for i, pa := range p.paths {
		put(3+4*i, pa.AngleRaw)
		put(4+4*i, pa.Visibility)
	}
}
