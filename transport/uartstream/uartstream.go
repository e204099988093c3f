//go:build rp2040 || rp2350

// Package uartstream adapts an RP2-class UART to the sensor driver's Stream
// for on-target builds.
package uartstream

import (
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"protractor-go/drivers/protractor"
)

var _ protractor.Stream = (*Port)(nil)

// Config holds the UART settings the sensor cares about.
type Config struct {
	// BaudRate 0 selects the sensor default (9600).
	BaudRate uint32
	TX, RX   machine.Pin
}

// Port wraps a configured hardware UART.
type Port struct {
	u *uartx.UART
}

// Attach configures hw (uartx.UART0 or uartx.UART1) and wraps it as a
// Stream.
func Attach(hw *uartx.UART, cfg Config) (*Port, error) {
	if cfg.BaudRate == 0 {
		cfg.BaudRate = protractor.DefaultBaudRate
	}
	if err := hw.Configure(uartx.UARTConfig{
		BaudRate: cfg.BaudRate,
		TX:       cfg.TX,
		RX:       cfg.RX,
	}); err != nil {
		return nil, err
	}
	return &Port{u: hw}, nil
}

func (p *Port) Buffered() int               { return p.u.Buffered() }
func (p *Port) ReadByte() (byte, error)     { return p.u.ReadByte() }
func (p *Port) Write(b []byte) (int, error) { return p.u.Write(b) }

// SetBaudRate retunes the host side, e.g. after storing a new rate in the
// sensor, so both ends stay in step.
func (p *Port) SetBaudRate(baud uint32) { p.u.SetBaudRate(baud) }
