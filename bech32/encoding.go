package bech32

// encoding maps 5-bit values (0-31) to and from the bech32 character alphabet.
type encoding struct {
	alphabet string
	decodeMap [256]int8
}

func newEncoding(alphabet string) *encoding {
	enc := &encoding{alphabet: alphabet}
	for i := range enc.decodeMap {
		enc.decodeMap[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		enc.decodeMap[alphabet[i]] = int8(i)
	}

	return enc
}

// encode maps each 5-bit value in data to its bech32 character.
func (e *encoding) encode(data []byte) string {
	out := make([]byte, len(data))
	for i, v := range data {
		out[i] = e.alphabet[v]
	}

	return string(out)
}

// decode maps each bech32 character in s back to its 5-bit value.
func (e *encoding) decode(s string) ([]byte, error) {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		v := e.decodeMap[s[i]]
		if v == -1 {
			return out[:i], ErrInvalidCharacter
		}
		out[i] = byte(v)
	}

	return out, nil
}
