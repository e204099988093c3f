// Package protractor drives the Protractor proximity sensor, which reports
// the angle and visibility of detected objects and open pathways across a
// 180° field of view.
//
// The sensor attaches over either a byte stream (UART/USB-CDC) or a
// two-wire bus; both speak the same packed request/response protocol:
//
//	byte 0     : (objectCount << 4) | pathCount
//	byte 1+4i  : object[i] raw angle
//	byte 2+4i  : object[i] visibility
//	byte 3+4i  : path[i]   raw angle
//	byte 4+4i  : path[i]   visibility
//
// One Device serves one sensor and is not safe for concurrent use; a scan
// busy-polls the transport under a 20 ms inter-byte deadline and never
// blocks longer than that between bytes.
package protractor

import (
	"time"

	"tinygo.org/x/drivers"

	"protractor-go/x/mathx"
)

// interByteTimeout bounds the wait for the next response byte (20 000 µs).
// The deadline restarts on every byte, so it is not a whole-transfer limit.
const interByteTimeout = 20 * time.Millisecond

// bufSize fits the largest response the firmware can send.
const bufSize = 1 + 4*MaxObjects

// Device is one logical attachment to one sensor over one transport.
type Device struct {
	comm   comm
	stream Stream
	i2c    drivers.I2C
	addr   uint16

	// buf holds the most recent response. A scan overwrites only the bytes
	// it received; received tracks how many of them the last non-empty scan
	// delivered, and the accessors return their sentinel beyond it.
	buf      [bufSize]byte
	received int

	// rx is the two-wire receive queue filled by request.
	rx    [bufSize]byte
	rxPos int
	rxLen int
}

// New attaches to a sensor over a byte stream. The stream must already be
// configured (the sensor default is 9600 baud, 8N1).
func New(stream Stream) *Device {
	return &Device{comm: commSerial, stream: stream}
}

// NewI2C attaches to a sensor over a two-wire bus. The bus must already be
// configured. addr 0 selects the factory address.
func NewI2C(bus drivers.I2C, addr uint16) *Device {
	if addr == 0 {
		addr = AddressDefault
	}
	return &Device{comm: commI2C, i2c: bus, addr: addr}
}

// Read requests a full scan: up to MaxObjects objects and paths. It reports
// whether any response bytes arrived; a partial response still reports true
// and the accessors expose whatever records were received.
func (d *Device) Read() bool { return d.ReadN(MaxObjects) }

// ReadN requests the objects most visible objects and most open pathways,
// trading detail for transfer time. objects is clamped to [0, MaxObjects].
func (d *Device) ReadN(objects int) bool {
	n := mathx.Clamp(objects, 0, MaxObjects)
	want := 1 + 4*n
	d.request(want)

	got := 0
	last := time.Now()
	for got < want && time.Since(last) < interByteTimeout {
		if d.available() == 0 {
			continue
		}
		b, ok := d.readByte()
		if !ok {
			continue
		}
		d.buf[got] = b
		got++
		last = time.Now()
	}
	if got > 0 {
		d.received = got
		return true
	}
	return false
}

// ObjectCount returns the number of objects in the last response (0..15),
// the high nibble of the header byte.
func (d *Device) ObjectCount() int { return int(d.buf[0] >> 4) }

// PathCount returns the number of open pathways in the last response
// (0..15), the low nibble of the header byte.
func (d *Device) PathCount() int { return int(d.buf[0] & 0x0f) }

// ObjectAngle returns the angle in degrees (0..180, left to right) to
// object i. Index 0 is the most visible object. Indexes outside the
// reported count, or whose record bytes never arrived, return -1.
func (d *Device) ObjectAngle(i int) int {
	off := 1 + 4*i
	if !d.inScan(i, d.ObjectCount(), off) {
		return -1
	}
	return decodeAngle(d.buf[off])
}

// ObjectVisibility returns the visibility (0..255, higher is stronger) of
// object i, or -1 out of range.
func (d *Device) ObjectVisibility(i int) int {
	off := 2 + 4*i
	if !d.inScan(i, d.ObjectCount(), off) {
		return -1
	}
	return int(d.buf[off])
}

// PathAngle returns the angle in degrees to pathway i. Index 0 is the most
// open pathway. Out of range returns -1.
func (d *Device) PathAngle(i int) int {
	off := 3 + 4*i
	if !d.inScan(i, d.PathCount(), off) {
		return -1
	}
	return decodeAngle(d.buf[off])
}

// PathVisibility returns the visibility of pathway i, or -1 out of range.
func (d *Device) PathVisibility(i int) int {
	off := 4 + 4*i
	if !d.inScan(i, d.PathCount(), off) {
		return -1
	}
	return int(d.buf[off])
}

// inScan bounds an accessor: the index must fall inside the reported count,
// inside the buffer, and the record byte must have actually been received.
func (d *Device) inScan(i, count, off int) bool {
	return i >= 0 && i < count && i < MaxObjects && off < d.received
}

// SetScanTime sets the period between scans in milliseconds. 0 means scan
// only on demand. Periods in [1, MinScanMillis-1] clamp to MinScanMillis;
// values outside [0, 32767] are dropped without a frame being sent. The
// setting does not survive a power cycle.
func (d *Device) SetScanTime(ms int) { d.send(scanTimeFrame(ms)) }

// SetI2CAddress stores a new two-wire address, effective after the sensor
// restarts and persistent across power cycles. Addresses outside [2, 127]
// are dropped.
func (d *Device) SetI2CAddress(addr int) { d.send(addressFrame(addr)) }

// SetBaudRate stores a new serial baud rate, persistent across power
// cycles. Rates outside [MinBaudRate, MaxBaudRate] are dropped.
func (d *Device) SetBaudRate(baud int) { d.send(baudRateFrame(baud)) }

// SetLEDMode selects the feedback LED behaviour. Unknown modes are dropped.
// The setting does not survive a power cycle.
func (d *Device) SetLEDMode(m LEDMode) { d.send(ledModeFrame(m)) }

// LED conveniences mirroring the sensor's documented usages.

func (d *Device) LEDShowObjects() { d.SetLEDMode(LEDModeObjects) }
func (d *Device) LEDShowPaths()   { d.SetLEDMode(LEDModePaths) }
func (d *Device) LEDOff()         { d.SetLEDMode(LEDModeOff) }

// send is fire-and-forget: nil frames (out-of-range input) emit nothing and
// the sensor never acknowledges.
func (d *Device) send(frame []byte) {
	if frame == nil {
		return
	}
	d.write(frame)
}
