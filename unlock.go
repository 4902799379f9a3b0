package iotago

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/serializer/v2/serix"
)

// UnlockType denotes the type of unlock.
type UnlockType byte

const (
	// UnlockSignature denotes a SignatureUnlock.
	UnlockSignature UnlockType = iota
	// UnlockReference denotes a ReferenceUnlock.
	UnlockReference
	// UnlockAccount denotes an AccountUnlock.
	UnlockAccount
	// UnlockAnchor denotes an AnchorUnlock.
	UnlockAnchor
	// UnlockNFT denotes an NFTUnlock.
	UnlockNFT
)

func (u UnlockType) String() string {
	if int(u) >= len(unlockNames) {
		return "unknown unlock type"
	}

	return unlockNames[u]
}

var unlockNames = [UnlockNFT + 1]string{
	"SignatureUnlock", "ReferenceUnlock", "AccountUnlock", "AnchorUnlock", "NFTUnlock",
}

// Unlock unlocks an input, be it by carrying a signature or by referencing another input's unlock.
type Unlock interface {
	Sizer
	NonEphemeralObject
	ProcessableObject
	constraints.Cloneable[Unlock]
	constraints.Equalable[Unlock]

	// Type returns the type of the Unlock.
	Type() UnlockType
}

// ReferentialUnlock is an Unlock which references a prior input's unlock, such as a ReferenceUnlock, AccountUnlock,
// AnchorUnlock or NFTUnlock.
type ReferentialUnlock interface {
	Unlock

	// Index returns the index of the input/unlock this ReferentialUnlock references.
	Index() uint16

	// Chainable indicates whether this kind of unlock can reference another ReferentialUnlock in turn.
	Chainable() bool

	// SourceAllowed tells whether the given Address is allowed to be the source of this ReferentialUnlock.
	SourceAllowed(address Address) bool
}

func registerUnlocks(api *serix.API) {
	mustRegisterInterfaceObjects(api, (*Unlock)(nil),
		(*SignatureUnlock)(nil),
		(*ReferenceUnlock)(nil),
		(*AccountUnlock)(nil),
		(*AnchorUnlock)(nil),
		(*NFTUnlock)(nil),
	)
}

// Unlocks is a slice of Unlock.
type Unlocks []Unlock

func (u Unlocks) Size() int {
	sum := serializer.OneByte
	for _, unlock := range u {
		sum += unlock.Size()
	}

	return sum
}

// SignatureUnlock holds a Signature unlocking one or more inputs.
type SignatureUnlock struct {
	Signature Signature `serix:"0,mapKey=signature"`
}

func (s *SignatureUnlock) Clone() Unlock {
	return &SignatureUnlock{Signature: s.Signature}
}

func (s *SignatureUnlock) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.FactorData.Multiply(StorageScore(s.Size()))
}

func (s *SignatureUnlock) WorkScore(workScoreParams *WorkScoreParameters) (WorkScore, error) {
	switch s.Signature.(type) {
	case *Ed25519Signature:
		return workScoreParams.SignatureEd25519, nil
	default:
		return 0, ierrors.Errorf("unsupported signature type in unlock: %T", s.Signature)
	}
}

func (s *SignatureUnlock) Equal(other Unlock) bool {
	otherUnlock, is := other.(*SignatureUnlock)
	if !is {
		return false
	}

	return string(mustSerixEncode(s.Signature)) == string(mustSerixEncode(otherUnlock.Signature))
}

func (s *SignatureUnlock) Type() UnlockType {
	return UnlockSignature
}

func (s *SignatureUnlock) Size() int {
	return serializer.SmallTypeDenotationByteSize + s.Signature.Size()
}

// referenceUnlockSize is the serialized size shared by all referential unlocks: type byte + uint16 index.
const referenceUnlockSize = serializer.SmallTypeDenotationByteSize + serializer.UInt16ByteSize

// ReferenceUnlock references a prior SignatureUnlock at the given index; valid for any address type except chain
// addresses, which require their own dedicated referential unlock kind.
type ReferenceUnlock struct {
	Reference uint16 `serix:"0,mapKey=reference"`
}

func (r *ReferenceUnlock) Clone() Unlock {
	return &ReferenceUnlock{Reference: r.Reference}
}

func (r *ReferenceUnlock) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.FactorData.Multiply(StorageScore(r.Size()))
}

func (r *ReferenceUnlock) WorkScore(_ *WorkScoreParameters) (WorkScore, error) {
	return 0, nil
}

func (r *ReferenceUnlock) Equal(other Unlock) bool {
	otherUnlock, is := other.(*ReferenceUnlock)
	if !is {
		return false
	}

	return r.Reference == otherUnlock.Reference
}

func (r *ReferenceUnlock) Type() UnlockType {
	return UnlockReference
}

func (r *ReferenceUnlock) Size() int {
	return referenceUnlockSize
}

func (r *ReferenceUnlock) Index() uint16 {
	return r.Reference
}

func (r *ReferenceUnlock) Chainable() bool {
	return false
}

func (r *ReferenceUnlock) SourceAllowed(address Address) bool {
	_, ok := address.(DirectUnlockableAddress)

	return ok
}

// AccountUnlock references a prior unlock of the input holding the AccountAddress controlling this input.
type AccountUnlock struct {
	Reference uint16 `serix:"0,mapKey=reference"`
}

func (r *AccountUnlock) Clone() Unlock {
	return &AccountUnlock{Reference: r.Reference}
}

func (r *AccountUnlock) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.FactorData.Multiply(StorageScore(r.Size()))
}

func (r *AccountUnlock) WorkScore(_ *WorkScoreParameters) (WorkScore, error) {
	return 0, nil
}

func (r *AccountUnlock) Equal(other Unlock) bool {
	otherUnlock, is := other.(*AccountUnlock)
	if !is {
		return false
	}

	return r.Reference == otherUnlock.Reference
}

func (r *AccountUnlock) Type() UnlockType {
	return UnlockAccount
}

func (r *AccountUnlock) Size() int {
	return referenceUnlockSize
}

func (r *AccountUnlock) Index() uint16 {
	return r.Reference
}

func (r *AccountUnlock) Chainable() bool {
	return true
}

func (r *AccountUnlock) SourceAllowed(address Address) bool {
	_, ok := address.(*AccountAddress)

	return ok
}

// AnchorUnlock references a prior unlock of the input holding the AnchorAddress controlling this input.
type AnchorUnlock struct {
	Reference uint16 `serix:"0,mapKey=reference"`
}

func (r *AnchorUnlock) Clone() Unlock {
	return &AnchorUnlock{Reference: r.Reference}
}

func (r *AnchorUnlock) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.FactorData.Multiply(StorageScore(r.Size()))
}

func (r *AnchorUnlock) WorkScore(_ *WorkScoreParameters) (WorkScore, error) {
	return 0, nil
}

func (r *AnchorUnlock) Equal(other Unlock) bool {
	otherUnlock, is := other.(*AnchorUnlock)
	if !is {
		return false
	}

	return r.Reference == otherUnlock.Reference
}

func (r *AnchorUnlock) Type() UnlockType {
	return UnlockAnchor
}

func (r *AnchorUnlock) Size() int {
	return referenceUnlockSize
}

func (r *AnchorUnlock) Index() uint16 {
	return r.Reference
}

func (r *AnchorUnlock) Chainable() bool {
	return true
}

func (r *AnchorUnlock) SourceAllowed(address Address) bool {
	_, ok := address.(*AnchorAddress)

	return ok
}

// NFTUnlock references a prior unlock of the input holding the NFTAddress controlling this input.
type NFTUnlock struct {
	Reference uint16 `serix:"0,mapKey=reference"`
}

func (r *NFTUnlock) Clone() Unlock {
	return &NFTUnlock{Reference: r.Reference}
}

func (r *NFTUnlock) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.FactorData.Multiply(StorageScore(r.Size()))
}

func (r *NFTUnlock) WorkScore(_ *WorkScoreParameters) (WorkScore, error) {
	return 0, nil
}

func (r *NFTUnlock) Equal(other Unlock) bool {
	otherUnlock, is := other.(*NFTUnlock)
	if !is {
		return false
	}

	return r.Reference == otherUnlock.Reference
}

func (r *NFTUnlock) Type() UnlockType {
	return UnlockNFT
}

func (r *NFTUnlock) Size() int {
	return referenceUnlockSize
}

func (r *NFTUnlock) Index() uint16 {
	return r.Reference
}

func (r *NFTUnlock) Chainable() bool {
	return true
}

func (r *NFTUnlock) SourceAllowed(address Address) bool {
	_, ok := address.(*NFTAddress)

	return ok
}
