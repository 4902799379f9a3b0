package iotago

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/iota.go/v4/hexutil"
)

// Ed25519AddressBytesLength is the length of an Ed25519Address: the blake2b-256 hash of an Ed25519 public key.
const Ed25519AddressBytesLength = 32

// Ed25519AddressSerializedBytesSize is the serialized size of an Ed25519Address: type byte + hash.
const Ed25519AddressSerializedBytesSize = 1 + Ed25519AddressBytesLength

// Ed25519Address is an address directly unlockable with a matching Ed25519 signature.
type Ed25519Address [Ed25519AddressBytesLength]byte

func (addr *Ed25519Address) Clone() Address {
	cpy := &Ed25519Address{}
	copy(cpy[:], addr[:])

	return cpy
}

func (addr *Ed25519Address) StorageScore(storageScoreParams *StorageScoreParameters, _ StorageScoreFunc) StorageScore {
	return storageScoreParams.FactorData.Multiply(StorageScore(addr.Size()))
}

func (addr *Ed25519Address) Key() string {
	return hexutil.EncodeHex([]byte{byte(addr.Type())}) + hexutil.EncodeHex(addr[:])
}

func (addr *Ed25519Address) Unlock(msg []byte, sig Unlock) error {
	sigUnlock, isSigUnlock := sig.(*SignatureUnlock)
	if !isSigUnlock {
		return ierrors.Wrapf(ErrInvalidInputUnlock, "can not unlock Ed25519Address with unlock of type %T", sig)
	}

	edSig, isEdSig := sigUnlock.Signature.(*Ed25519Signature)
	if !isEdSig {
		return ierrors.Wrapf(ErrInvalidInputUnlock, "can not unlock Ed25519Address with signature of type %T", sigUnlock.Signature)
	}

	return edSig.Valid(msg, addr)
}

func (addr *Ed25519Address) VerifySignature(msg []byte, sig Signature) error {
	edSig, isEdSig := sig.(*Ed25519Signature)
	if !isEdSig {
		return ierrors.Wrapf(ErrInvalidInputUnlock, "can not verify Ed25519Address with signature of type %T", sig)
	}

	return edSig.Valid(msg, addr)
}

func (addr *Ed25519Address) Equal(other Address) bool {
	otherAddr, is := other.(*Ed25519Address)
	if !is {
		return false
	}

	return *addr == *otherAddr
}

func (addr *Ed25519Address) Type() AddressType {
	return AddressEd25519
}

func (addr *Ed25519Address) Bech32(hrp NetworkPrefix) string {
	return bech32String(hrp, addr)
}

func (addr *Ed25519Address) String() string {
	return addr.Bech32(PrefixTestnet)
}

func (addr *Ed25519Address) Size() int {
	return Ed25519AddressSerializedBytesSize
}

// Ed25519AddressFromPubKey returns the Ed25519Address belonging to the given Ed25519 public key.
func Ed25519AddressFromPubKey(pubKey []byte) *Ed25519Address {
	address := blake2bSum256(pubKey)
	addr := &Ed25519Address{}
	copy(addr[:], address[:])

	return addr
}
