package bech32

// bech32Polymod computes the BCH checksum polynomial remainder used by both checksum creation and verification.
func bech32Polymod(values []byte) uint32 {
	generator := [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

	chk := uint32(1)
	for _, v := range values {
		b := byte(chk >> 25)
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (b>>uint(i))&1 == 1 {
				chk ^= generator[i]
			}
		}
	}

	return chk
}

func bech32HRPExpand(hrp string) []byte {
	out := make([]byte, 0, len(hrp)*2+1)
	for _, c := range hrp {
		out = append(out, byte(c>>5))
	}
	out = append(out, 0)
	for _, c := range hrp {
		out = append(out, byte(c&31))
	}

	return out
}

// bech32CreateChecksum computes the 6 byte checksum appended to the base32-encoded data part of a bech32 string.
func bech32CreateChecksum(hrp string, data []byte) []byte {
	values := append(bech32HRPExpand(hrp), data...)
	values = append(values, 0, 0, 0, 0, 0, 0)

	mod := bech32Polymod(values) ^ 1

	checksum := make([]byte, checksumLength)
	for i := 0; i < checksumLength; i++ {
		checksum[i] = byte((mod >> uint(5*(5-i))) & 31)
	}

	return checksum
}

// bech32VerifyChecksum checks that the trailing checksum bytes of data validate against hrp.
func bech32VerifyChecksum(hrp string, data []byte) bool {
	values := append(bech32HRPExpand(hrp), data...)

	return bech32Polymod(values) == 1
}
