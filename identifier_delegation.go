package iotago

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/iota.go/v4/hexutil"
)

// DelegationIDLength defines the length of a DelegationID.
const DelegationIDLength = blake2b.Size256

var (
	EmptyDelegationID = DelegationID{}

	ErrInvalidDelegationIDLength = ierrors.New("invalid DelegationID length")
)

// DelegationID is a 32 byte hash value that, together with the output type, represents a unique delegation.
// Like AccountID or NFTID, a DelegationID is derived from the OutputID of the output that created the delegation
// (see DelegationOutput.ID).
type DelegationID [DelegationIDLength]byte

type DelegationIDs []DelegationID

// DelegationIDFromOutputID returns the DelegationID computed from a given OutputID.
func DelegationIDFromOutputID(outputID OutputID) DelegationID {
	return blake2b.Sum256(outputID[:])
}

func DelegationIDFromHexString(hexStr string) (DelegationID, error) {
	b, err := hexutil.DecodeHex(hexStr)
	if err != nil {
		return EmptyDelegationID, err
	}

	var d DelegationID
	if len(b) < DelegationIDLength {
		return EmptyDelegationID, ErrInvalidDelegationIDLength
	}
	copy(d[:], b)

	return d, nil
}

func (d DelegationID) Bytes() ([]byte, error) {
	return d[:], nil
}

func (d DelegationID) MarshalText() ([]byte, error) {
	dst := make([]byte, hex.EncodedLen(len(EmptyDelegationID)))
	hex.Encode(dst, d[:])

	return dst, nil
}

func (d *DelegationID) UnmarshalText(text []byte) error {
	_, err := hex.Decode(d[:], text)

	return err
}

func (d DelegationID) Empty() bool {
	return d == EmptyDelegationID
}

func (d DelegationID) ToHex() string {
	return hexutil.EncodeHex(d[:])
}

func (d DelegationID) String() string {
	return d.ToHex()
}

func (d DelegationID) Matches(other ChainID) bool {
	otherDelegationID, isDelegationID := other.(DelegationID)
	if !isDelegationID {
		return false
	}

	return d == otherDelegationID
}

// Addressable is always false: there is no address type representing ownership of a delegation output by its
// chain identity, delegation outputs are only ever owned by a regular address.
func (d DelegationID) Addressable() bool {
	return false
}

func (d DelegationID) ToAddress() ChainAddress {
	panic("DelegationID is not addressable")
}

func (d DelegationID) Key() interface{} {
	return d.String()
}

func (d DelegationID) FromOutputID(in OutputID) ChainID {
	return DelegationIDFromOutputID(in)
}

// FoundryIDLength defines the length of a FoundryID.
const FoundryIDLength = AccountAddressSerializedBytesLength + serialNumberLength + tokenSchemeTypeLength

const (
	serialNumberLength  = 4
	tokenSchemeTypeLength = 1
)

var (
	EmptyFoundryID = FoundryID{}

	ErrInvalidFoundryIDLength = ierrors.New("invalid FoundryID length")
)

// FoundryID is the identifier of a foundry, deterministically derived from the controlling account address, the
// foundry's serial number and its token scheme type -- unlike other chain IDs it is not a hash of an OutputID,
// since a foundry's identity must be predictable before its genesis output is even built.
type FoundryID [FoundryIDLength]byte

// FoundryIDFromAddressAndSerialNumberAndTokenScheme builds a FoundryID.
func FoundryIDFromAddressAndSerialNumberAndTokenScheme(accountAddr *AccountAddress, serialNumber uint32, tokenSchemeType TokenSchemeType) FoundryID {
	var id FoundryID
	copy(id[:AccountAddressSerializedBytesLength], mustSerixEncode(accountAddr))
	binary.LittleEndian.PutUint32(id[AccountAddressSerializedBytesLength:], serialNumber)
	id[AccountAddressSerializedBytesLength+serialNumberLength] = byte(tokenSchemeType)

	return id
}

func (f FoundryID) Bytes() ([]byte, error) {
	return f[:], nil
}

func (f FoundryID) MarshalText() ([]byte, error) {
	dst := make([]byte, hex.EncodedLen(len(EmptyFoundryID)))
	hex.Encode(dst, f[:])

	return dst, nil
}

func (f *FoundryID) UnmarshalText(text []byte) error {
	_, err := hex.Decode(f[:], text)

	return err
}

func (f FoundryID) Empty() bool {
	return f == EmptyFoundryID
}

func (f FoundryID) ToHex() string {
	return hexutil.EncodeHex(f[:])
}

func (f FoundryID) String() string {
	return f.ToHex()
}

func (f FoundryID) Matches(other ChainID) bool {
	otherFoundryID, isFoundryID := other.(FoundryID)
	if !isFoundryID {
		return false
	}

	return f == otherFoundryID
}

// Addressable is always false: foundries are owned by their controlling account, not unlockable directly.
func (f FoundryID) Addressable() bool {
	return false
}

func (f FoundryID) ToAddress() ChainAddress {
	panic("FoundryID is not addressable")
}

func (f FoundryID) Key() interface{} {
	return f.String()
}

// SerialNumber returns the serial number component of the FoundryID.
func (f FoundryID) SerialNumber() uint32 {
	return binary.LittleEndian.Uint32(f[AccountAddressSerializedBytesLength:])
}

// TokenSchemeType returns the token scheme type component of the FoundryID.
func (f FoundryID) TokenSchemeType() TokenSchemeType {
	return TokenSchemeType(f[AccountAddressSerializedBytesLength+serialNumberLength])
}
