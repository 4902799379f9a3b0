package iotago

import (
	"crypto/ed25519"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/serializer/v2/serix"
)

// SignatureType denotes the type of signature.
type SignatureType byte

const (
	// SignatureEd25519 denotes an Ed25519Signature.
	SignatureEd25519 SignatureType = iota
)

func (sigType SignatureType) String() string {
	if sigType == SignatureEd25519 {
		return "Ed25519Signature"
	}

	return "unknown signature type"
}

// Ed25519SignatureSerializedBytesSize is the serialized size of an Ed25519Signature: type byte + public key + signature.
const Ed25519SignatureSerializedBytesSize = serializer.SmallTypeDenotationByteSize + ed25519.PublicKeySize + ed25519.SignatureSize

// Signature is a signature unlocking one or more inputs.
type Signature interface {
	Sizer
	NonEphemeralObject

	// Type returns the type of the Signature.
	Type() SignatureType
}

func registerSignatures(api *serix.API) {
	mustRegisterInterfaceObjects(api, (*Signature)(nil),
		(*Ed25519Signature)(nil),
	)
}

// Ed25519Signature defines an Ed25519 signature over a message together with the public key needed to verify it.
type Ed25519Signature struct {
	PublicKey [ed25519.PublicKeySize]byte `serix:"0,mapKey=publicKey"`
	Signature [ed25519.SignatureSize]byte `serix:"1,mapKey=signature"`
}

func (s *Ed25519Signature) Type() SignatureType {
	return SignatureEd25519
}

func (s *Ed25519Signature) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.FactorData.Multiply(StorageScore(s.Size()))
}

func (s *Ed25519Signature) Size() int {
	return Ed25519SignatureSerializedBytesSize
}

// Valid verifies whether the signature is valid for msg given the address it is supposed to unlock.
func (s *Ed25519Signature) Valid(msg []byte, addr *Ed25519Address) error {
	pubKeyDerivedAddr := Ed25519AddressFromPubKey(s.PublicKey[:])
	if !addr.Equal(pubKeyDerivedAddr) {
		return ierrors.Wrapf(ErrEd25519PubKeyAndAddrMismatch, "address %s, expected address %s", addr, pubKeyDerivedAddr)
	}

	if !ed25519.Verify(s.PublicKey[:], msg, s.Signature[:]) {
		return ierrors.Wrapf(ErrEd25519SignatureInvalid, "address %s", addr)
	}

	return nil
}
