package iotago

import (
	"bytes"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2"
)

// MaxMetadataLength is the max. allowed length for a MetadataFeature or StateMetadataFeature value.
const MaxMetadataLength = 8192

// MetadataFeature is a feature which allows to additionally tag an output with user defined metadata, set on
// output genesis and immutable for the output's lifetime within a single transfer.
type MetadataFeature struct {
	Data []byte `serix:"0,lengthPrefixType=uint16,mapKey=data,minLen=1,maxLen=8192"`
}

func (s *MetadataFeature) Clone() Feature {
	return &MetadataFeature{Data: append([]byte(nil), s.Data...)}
}

func (s *MetadataFeature) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.FactorData.Multiply(StorageScore(s.Size()))
}

func (s *MetadataFeature) WorkScore(workScoreParams *WorkScoreParameters) (WorkScore, error) {
	dataWorkScore, err := workScoreParams.DataKibibyte.Multiply((len(s.Data) + 1023) / 1024)
	if err != nil {
		return 0, ierrors.Wrap(err, "failed to calculate work score for metadata feature")
	}

	return dataWorkScore, nil
}

func (s *MetadataFeature) Equal(other Feature) bool {
	otherFeat, is := other.(*MetadataFeature)
	if !is {
		return false
	}

	return bytes.Equal(s.Data, otherFeat.Data)
}

func (s *MetadataFeature) Type() FeatureType {
	return FeatureMetadata
}

func (s *MetadataFeature) Size() int {
	return serializer.SmallTypeDenotationByteSize + serializer.UInt16ByteSize + len(s.Data)
}

// StateMetadataFeature is like MetadataFeature but mutable across state transitions of the chain output it is
// attached to (it models the "state" of the owning account/anchor as opposed to immutable provenance data).
type StateMetadataFeature struct {
	Data []byte `serix:"0,lengthPrefixType=uint16,mapKey=data,minLen=0,maxLen=8192"`
}

func (s *StateMetadataFeature) Clone() Feature {
	return &StateMetadataFeature{Data: append([]byte(nil), s.Data...)}
}

func (s *StateMetadataFeature) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.FactorData.Multiply(StorageScore(s.Size()))
}

func (s *StateMetadataFeature) WorkScore(workScoreParams *WorkScoreParameters) (WorkScore, error) {
	dataWorkScore, err := workScoreParams.DataKibibyte.Multiply((len(s.Data) + 1023) / 1024)
	if err != nil {
		return 0, ierrors.Wrap(err, "failed to calculate work score for state metadata feature")
	}

	return dataWorkScore, nil
}

func (s *StateMetadataFeature) Equal(other Feature) bool {
	otherFeat, is := other.(*StateMetadataFeature)
	if !is {
		return false
	}

	return bytes.Equal(s.Data, otherFeat.Data)
}

func (s *StateMetadataFeature) Type() FeatureType {
	return FeatureStateMetadata
}

func (s *StateMetadataFeature) Size() int {
	return serializer.SmallTypeDenotationByteSize + serializer.UInt16ByteSize + len(s.Data)
}
