package protractor

// Stream is the byte-stream side of the transport: a serial port with a
// readable-count indicator. TinyGo machine.UART and the uartx fork satisfy
// it directly; transport/serialport adapts a host serial port.
type Stream interface {
	Buffered() int
	ReadByte() (byte, error)
	Write(p []byte) (int, error)
}

type comm uint8

const (
	commNone comm = iota
	commSerial
	commI2C
)

// available reports how many response bytes can be read without blocking.
func (d *Device) available() int {
	switch d.comm {
	case commI2C:
		return d.rxLen - d.rxPos
	case commSerial:
		return d.stream.Buffered()
	default:
		return 0
	}
}

// readByte pops one response byte.
func (d *Device) readByte() (byte, bool) {
	switch d.comm {
	case commI2C:
		if d.rxPos >= d.rxLen {
			return 0, false
		}
		b := d.rx[d.rxPos]
		d.rxPos++
		return b, true
	case commSerial:
		b, err := d.stream.ReadByte()
		return b, err == nil
	default:
		return 0, false
	}
}

// write sends one command frame. On the two-wire bus the whole frame is a
// single addressed transaction.
func (d *Device) write(frame []byte) {
	switch d.comm {
	case commI2C:
		_ = d.i2c.Tx(d.addr, frame, nil)
	case commSerial:
		_, _ = d.stream.Write(frame)
	}
}

// request asks the sensor for n response bytes. The two-wire controller
// pulls them synchronously into the receive queue; the serial peripheral
// streams its reply after an application-level request frame.
func (d *Device) request(n int) {
	switch d.comm {
	case commI2C:
		d.rxPos, d.rxLen = 0, 0
		if err := d.i2c.Tx(d.addr, nil, d.rx[:n]); err != nil {
			return
		}
		d.rxLen = n
	case commSerial:
		d.write([]byte{CmdRequestData, byte(n), FrameEnd})
	}
}
