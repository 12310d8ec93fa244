package adc

// encodeRequest builds the 3-byte MCP3208 frame: start bit, single-ended
// mode, then the 3-bit channel split across the first two bytes.
func encodeRequest(channel uint8) [3]byte {
	return [3]byte{
		0x06 | (channel>>2)&0x01,
		(channel & 0x03) << 6,
		0x00,
	}
}

// decodeResponse extracts the 12-bit result from the last two bytes.
func decodeResponse(rx [3]byte) uint16 {
	return uint16(rx[1]&0x0F)<<8 | uint16(rx[2])
}
