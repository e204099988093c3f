package protractor

// Wire contract with the sensor firmware. Tags, mode bytes and limits must
// match the peripheral; every outbound frame is tag, payload..., FrameEnd.

const (
	// MaxObjects is the firmware ceiling on simultaneously reported objects
	// (and paths) per scan. The header nibbles could carry up to 15.
	MaxObjects = 8

	// AddressDefault is the factory two-wire address. A stored address
	// survives a power cycle.
	AddressDefault = 0x45

	// MinScanMillis is the shortest scan period the sensor can sustain.
	MinScanMillis = 15

	// Serial baud limits. A stored baud rate survives a power cycle.
	DefaultBaudRate = 9600
	MinBaudRate     = 1200
	MaxBaudRate     = 250000

	// maxScanMillis bounds the 16-bit scan-period payload.
	maxScanMillis = 32767
)

// Command tag bytes.
const (
	CmdRequestData = 0x15
	CmdScanTime    = 0x20
	CmdI2CAddress  = 0x24
	CmdBaudRate    = 0x26
	CmdLEDUsage    = 0x30

	// FrameEnd terminates every outbound command frame.
	FrameEnd = '\n'
)

// LEDMode selects what the sensor's feedback LEDs track.
type LEDMode uint8

const (
	LEDModeObjects LEDMode = 0x31 // follow the most visible objects
	LEDModePaths   LEDMode = 0x32 // follow the most open pathway
	LEDModeOff     LEDMode = 0x33
)
