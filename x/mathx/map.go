package mathx

// MapRound maps x in [inMin,inMax] to [outMin,outMax], rounding to the
// nearest output value with 32-bit intermediates. Inputs outside the in
// range clamp to the corresponding out bound.
func MapRound(x, inMin, inMax, outMin, outMax uint16) uint16 {
	if inMax == inMin {
		return outMin
	}
	if x < inMin {
		return outMin
	}
	if x > inMax {
		return outMax
	}
	num := uint32(x-inMin) * uint32(outMax-outMin)
	den := uint32(inMax - inMin)
	return uint16(uint32(outMin) + RoundDiv(num, den))
}
