package iotago

import "github.com/iotaledger/hive.go/core/safemath"

// BaseToken is the type used for the protocol's base token (IOTA/Shimmer coins).
type BaseToken uint64

// StorageScore is a weighted count of the bytes/fields an object occupies in the ledger state, used to derive its
// minimum required storage deposit.
type StorageScore uint64

// StorageScoreParameters define the storage score factors and offsets used to compute the minimum amount of base
// tokens that must be deposited into an output to cover its footprint on the unspent output ledger.
//
// This is the storage-score oriented successor of the older rent-structure based deposit model: the same factor /
// offset shape, renamed and re-scaled to the vocabulary used by the rest of this package.
type StorageScoreParameters struct {
	// SchemaVersion denotes the version of the storage score parameters.
	SchemaVersion byte `serix:"0,mapKey=schemaVersion"`
	// StorageCost is the number of IOTA tokens required per unit of storage score.
	StorageCost BaseToken `serix:"1,mapKey=storageCost"`
	// FactorData is the factor to be used for data only fields.
	FactorData StorageScoreFactor `serix:"2,mapKey=factorData"`
	// OffsetOutputOverhead is the offset to be used for the overhead of an output.
	OffsetOutputOverhead StorageScore `serix:"3,mapKey=offsetOutputOverhead"`
	// OffsetEd25519BlockIssuerKey is the offset to be used for block issuer feature public keys.
	OffsetEd25519BlockIssuerKey StorageScore `serix:"4,mapKey=offsetEd25519BlockIssuerKey"`
	// OffsetStakingFeature is the offset to be used for the staking feature.
	OffsetStakingFeature StorageScore `serix:"5,mapKey=offsetStakingFeature"`
	// OffsetDelegation is the offset to be used for delegation outputs.
	OffsetDelegation StorageScore `serix:"6,mapKey=offsetDelegation"`
}

// StorageScoreFactor defines the multiplier used for data fields in the storage score computation.
type StorageScoreFactor byte

// Multiply multiplies in with the factor.
func (f StorageScoreFactor) Multiply(in StorageScore) StorageScore {
	return StorageScore(f) * in
}

// StorageScoreStructure is kept as an alias for the parameters so that code that talks about "the structure"
// (mirroring work score's "Structure" naming) reads naturally alongside WorkScoreParameters.
type StorageScoreStructure = StorageScoreParameters

// NonEphemeralObject is an object that can be stored on the unspent output ledger and therefore has a storage
// score and a minimum deposit.
type NonEphemeralObject interface {
	// StorageScore returns the storage score using the given StorageScoreParameters.
	StorageScore(storageScoreParameters *StorageScoreParameters, f StorageScoreFunc) StorageScore
}

// StorageScoreFunc is a function that overrides the StorageScore computation of an object, e.g. for fields whose
// score depends on the context of their parent object.
type StorageScoreFunc func(storageScoreParameters *StorageScoreParameters) StorageScore

// Equals tells whether other is equal to these parameters.
func (p *StorageScoreParameters) Equals(other *StorageScoreParameters) bool {
	return p.SchemaVersion == other.SchemaVersion &&
		p.StorageCost == other.StorageCost &&
		p.FactorData == other.FactorData &&
		p.OffsetOutputOverhead == other.OffsetOutputOverhead &&
		p.OffsetEd25519BlockIssuerKey == other.OffsetEd25519BlockIssuerKey &&
		p.OffsetStakingFeature == other.OffsetStakingFeature &&
		p.OffsetDelegation == other.OffsetDelegation
}

// MinStorageDeposit returns the minimum base token amount required to cover the storage deposit of an object
// with the given storage score.
func (p *StorageScoreParameters) MinStorageDeposit(score StorageScore) BaseToken {
	deposit, err := safemath.SafeMul(uint64(score), uint64(p.StorageCost))
	if err != nil {
		return BaseToken(^uint64(0))
	}

	return BaseToken(deposit)
}

// CoversMinStorageDeposit tells whether amount covers the minimum storage deposit for an object with the given
// storage score.
func (p *StorageScoreParameters) CoversMinStorageDeposit(object NonEphemeralObject, amount BaseToken) (bool, BaseToken) {
	minDeposit := p.MinStorageDeposit(object.StorageScore(p, nil))

	return amount >= minDeposit, minDeposit
}
