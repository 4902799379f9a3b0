package iotago

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/iota.go/v4/hexutil"
)

// ImplicitAccountCreationAddress is an address directly unlockable with a matching Ed25519 signature that, when
// used as the address of a basic output, implicitly creates an account upon the output's consumption (instead of
// requiring an explicit account output in the same transaction).
type ImplicitAccountCreationAddress [Ed25519AddressBytesLength]byte

func (addr *ImplicitAccountCreationAddress) Clone() Address {
	cpy := &ImplicitAccountCreationAddress{}
	copy(cpy[:], addr[:])

	return cpy
}

func (addr *ImplicitAccountCreationAddress) StorageScore(storageScoreParams *StorageScoreParameters, _ StorageScoreFunc) StorageScore {
	return storageScoreParams.FactorData.Multiply(StorageScore(addr.Size()))
}

func (addr *ImplicitAccountCreationAddress) Key() string {
	return hexutil.EncodeHex([]byte{byte(addr.Type())}) + hexutil.EncodeHex(addr[:])
}

func (addr *ImplicitAccountCreationAddress) Unlock(msg []byte, sig Unlock) error {
	sigUnlock, isSigUnlock := sig.(*SignatureUnlock)
	if !isSigUnlock {
		return ierrors.Wrapf(ErrInvalidInputUnlock, "can not unlock ImplicitAccountCreationAddress with unlock of type %T", sig)
	}

	edSig, isEdSig := sigUnlock.Signature.(*Ed25519Signature)
	if !isEdSig {
		return ierrors.Wrapf(ErrInvalidInputUnlock, "can not unlock ImplicitAccountCreationAddress with signature of type %T", sigUnlock.Signature)
	}

	ed25519Addr := Ed25519Address(*addr)

	return edSig.Valid(msg, &ed25519Addr)
}

func (addr *ImplicitAccountCreationAddress) VerifySignature(msg []byte, sig Signature) error {
	edSig, isEdSig := sig.(*Ed25519Signature)
	if !isEdSig {
		return ierrors.Wrapf(ErrInvalidInputUnlock, "can not verify ImplicitAccountCreationAddress with signature of type %T", sig)
	}

	ed25519Addr := Ed25519Address(*addr)

	return edSig.Valid(msg, &ed25519Addr)
}

func (addr *ImplicitAccountCreationAddress) Equal(other Address) bool {
	otherAddr, is := other.(*ImplicitAccountCreationAddress)
	if !is {
		return false
	}

	return *addr == *otherAddr
}

func (addr *ImplicitAccountCreationAddress) Type() AddressType {
	return AddressImplicitAccountCreation
}

func (addr *ImplicitAccountCreationAddress) Bech32(hrp NetworkPrefix) string {
	return bech32String(hrp, addr)
}

func (addr *ImplicitAccountCreationAddress) String() string {
	return addr.Bech32(PrefixTestnet)
}

func (addr *ImplicitAccountCreationAddress) Size() int {
	return Ed25519AddressSerializedBytesSize
}

// ImplicitAccountCreationAddressFromPubKey returns the address belonging to the given Ed25519 public key.
func ImplicitAccountCreationAddressFromPubKey(pubKey []byte) *ImplicitAccountCreationAddress {
	hash := blake2bSum256(pubKey)
	addr := &ImplicitAccountCreationAddress{}
	copy(addr[:], hash[:])

	return addr
}
