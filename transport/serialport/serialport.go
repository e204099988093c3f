// Package serialport adapts a host serial port to the sensor driver's
// Stream. The serial library exposes no pending-byte count, so the adapter
// keeps a small receive queue topped up by short-timeout poll reads; a poll
// with nothing pending costs about a millisecond, well inside the driver's
// inter-byte deadline.
package serialport

import (
	"errors"
	"time"

	"go.bug.st/serial"

	"protractor-go/drivers/protractor"
)

var _ protractor.Stream = (*Port)(nil)

var errNoData = errors.New("serialport: no data")

// pollTimeout is the port read timeout used to emulate a pending-byte probe.
const pollTimeout = time.Millisecond

// Port wraps an open serial port.
type Port struct {
	port serial.Port
	rx   []byte
	tmp  [64]byte
}

// Open opens name at baud, 8N1. baud 0 selects the sensor's default rate.
func Open(name string, baud int) (*Port, error) {
	if baud == 0 {
		baud = protractor.DefaultBaudRate
	}
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(name, mode)
	if err != nil {
		return nil, err
	}
	if err := port.SetReadTimeout(pollTimeout); err != nil {
		port.Close()
		return nil, err
	}
	return &Port{port: port}, nil
}

// poll moves any pending bytes into the receive queue.
func (p *Port) poll() {
	n, _ := p.port.Read(p.tmp[:])
	if n > 0 {
		p.rx = append(p.rx, p.tmp[:n]...)
	}
}

func (p *Port) Buffered() int {
	if len(p.rx) == 0 {
		p.poll()
	}
	return len(p.rx)
}

func (p *Port) ReadByte() (byte, error) {
	if len(p.rx) == 0 {
		p.poll()
	}
	if len(p.rx) == 0 {
		return 0, errNoData
	}
	b := p.rx[0]
	p.rx = p.rx[1:]
	return b, nil
}

func (p *Port) Write(b []byte) (int, error) { return p.port.Write(b) }

// Flush drops queued and in-flight input, for a clean request/response
// exchange after the port has been idle.
func (p *Port) Flush() error {
	p.rx = p.rx[:0]
	return p.port.ResetInputBuffer()
}

// SetBaudRate retunes the host side, e.g. after storing a new rate in the
// sensor with SetBaudRate.
func (p *Port) SetBaudRate(baud int) error {
	return p.port.SetMode(&serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
}

func (p *Port) Close() error { return p.port.Close() }
