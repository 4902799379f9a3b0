package bech32

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrInvalidLength is returned when a bech32 string (or its human-readable part) has an invalid length.
	ErrInvalidLength = ierrors.New("invalid bech32 string length")
	// ErrInvalidCharacter is returned when a bech32 string contains a character outside of its alphabet.
	ErrInvalidCharacter = ierrors.New("invalid bech32 character")
	// ErrMixedCase is returned when a bech32 string mixes upper and lower case characters.
	ErrMixedCase = ierrors.New("bech32 string mixes upper and lower case")
	// ErrMissingSeparator is returned when a bech32 string is missing its '1' separator.
	ErrMissingSeparator = ierrors.New("bech32 string is missing separator")
	// ErrInvalidSeparator is returned when the separator is positioned such that the string cannot be valid.
	ErrInvalidSeparator = ierrors.New("invalid bech32 separator position")
	// ErrInvalidChecksum is returned when a bech32 string's checksum does not verify.
	ErrInvalidChecksum = ierrors.New("invalid bech32 checksum")
)

// SyntaxError describes a malformed bech32 string along with the offset at which the issue was found.
type SyntaxError struct {
	err    error
	Offset int
}

func (e *SyntaxError) Error() string {
	return e.err.Error()
}

func (e *SyntaxError) Unwrap() error {
	return e.err
}
