package iotago

import (
	"bytes"
	"sort"

	"github.com/iotaledger/hive.go/serializer/v2"
)

// BlockIssuerKeyEd25519Length is the length of an Ed25519 public key block issuer key.
const BlockIssuerKeyEd25519Length = 32

// BlockIssuerKey is a public key usable to verify the signature of a block issued on behalf of an account holding
// a BlockIssuerFeature.
type BlockIssuerKey [BlockIssuerKeyEd25519Length]byte

// BlockIssuerKeyFromEd25519PublicKey derives a BlockIssuerKey from an Ed25519 public key.
func BlockIssuerKeyFromEd25519PublicKey(pubKey []byte) BlockIssuerKey {
	var key BlockIssuerKey
	copy(key[:], pubKey)

	return key
}

// BlockIssuerKeys is an ordered, duplicate-free set of BlockIssuerKey.
type BlockIssuerKeys []BlockIssuerKey

// NewBlockIssuerKeys creates a new, empty BlockIssuerKeys set.
func NewBlockIssuerKeys() BlockIssuerKeys {
	return make(BlockIssuerKeys, 0)
}

// Add inserts key into the set, keeping it sorted, and is a no-op if the key is already present.
func (keys *BlockIssuerKeys) Add(key BlockIssuerKey) {
	for _, existing := range *keys {
		if existing == key {
			return
		}
	}
	*keys = append(*keys, key)
	keys.Sort()
}

// Remove deletes key from the set if present.
func (keys *BlockIssuerKeys) Remove(key BlockIssuerKey) {
	for i, existing := range *keys {
		if existing == key {
			*keys = append((*keys)[:i], (*keys)[i+1:]...)

			return
		}
	}
}

// Sort orders the keys lexicographically, as required for deterministic serialization.
func (keys BlockIssuerKeys) Sort() {
	sort.Slice(keys, func(i, j int) bool {
		return bytes.Compare(keys[i][:], keys[j][:]) < 0
	})
}

// Size returns the serialized size of the key set.
func (keys BlockIssuerKeys) Size() int {
	return serializer.OneByte + len(keys)*BlockIssuerKeyEd25519Length
}

func (keys BlockIssuerKeys) Clone() BlockIssuerKeys {
	cpy := make(BlockIssuerKeys, len(keys))
	copy(cpy, keys)

	return cpy
}

func (keys BlockIssuerKeys) Equal(other BlockIssuerKeys) bool {
	if len(keys) != len(other) {
		return false
	}
	for i := range keys {
		if keys[i] != other[i] {
			return false
		}
	}

	return true
}

// BlockIssuerFeature marks an account as eligible to issue blocks, carrying the public keys used to verify block
// signatures and a slot after which the feature may be removed.
type BlockIssuerFeature struct {
	BlockIssuerKeys BlockIssuerKeys `serix:"0,mapKey=blockIssuerKeys"`
	ExpirySlot      SlotIndex       `serix:"1,mapKey=expirySlot"`
}

func (s *BlockIssuerFeature) Clone() Feature {
	return &BlockIssuerFeature{
		BlockIssuerKeys: s.BlockIssuerKeys.Clone(),
		ExpirySlot:      s.ExpirySlot,
	}
}

func (s *BlockIssuerFeature) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.OffsetEd25519BlockIssuerKey * StorageScore(len(s.BlockIssuerKeys))
}

func (s *BlockIssuerFeature) WorkScore(workScoreParams *WorkScoreParameters) (WorkScore, error) {
	return workScoreParams.BlockIssuer, nil
}

func (s *BlockIssuerFeature) Equal(other Feature) bool {
	otherFeat, is := other.(*BlockIssuerFeature)
	if !is {
		return false
	}

	return s.ExpirySlot == otherFeat.ExpirySlot && s.BlockIssuerKeys.Equal(otherFeat.BlockIssuerKeys)
}

func (s *BlockIssuerFeature) Type() FeatureType {
	return FeatureBlockIssuer
}

func (s *BlockIssuerFeature) Size() int {
	return serializer.SmallTypeDenotationByteSize + serializer.UInt32ByteSize + s.BlockIssuerKeys.Size()
}
