package protractor

import "protractor-go/x/mathx"

// decodeAngle maps a raw angle byte onto degrees across the 180° field of
// view, left to right, rounding to the nearest degree.
func decodeAngle(raw byte) int {
	return int(mathx.MapRound(uint16(raw), 0, 255, 0, 180))
}

// Frame builders return nil for values the firmware cannot accept; the
// caller emits nothing in that case.

// scanTimeFrame encodes the scan-period command. Periods in
// [1, MinScanMillis-1] clamp to the sensor minimum using the short frame
// form the firmware accepts; other in-range values use the little-endian
// 16-bit form.
func scanTimeFrame(ms int) []byte {
	switch {
	case ms >= 1 && ms < MinScanMillis:
		return []byte{CmdScanTime, MinScanMillis, FrameEnd}
	case ms >= 0 && ms <= maxScanMillis:
		return []byte{CmdScanTime, byte(ms), byte(ms >> 8), FrameEnd}
	default:
		return nil
	}
}

func addressFrame(addr int) []byte {
	if !mathx.Between(addr, 2, 127) {
		return nil
	}
	return []byte{CmdI2CAddress, byte(addr), FrameEnd}
}

// baudRateFrame encodes the rate as little-endian 24-bit.
func baudRateFrame(baud int) []byte {
	if !mathx.Between(baud, MinBaudRate, MaxBaudRate) {
		return nil
	}
	return []byte{CmdBaudRate, byte(baud), byte(baud >> 8), byte(baud >> 16), FrameEnd}
}

func ledModeFrame(m LEDMode) []byte {
	switch m {
	case LEDModeObjects, LEDModePaths, LEDModeOff:
		return []byte{CmdLEDUsage, byte(m), FrameEnd}
	default:
		return nil
	}
}
