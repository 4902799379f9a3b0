package iotago

import "github.com/iotaledger/hive.go/serializer/v2"

// SenderFeature is a feature which associates an output with a sender identity. Outputs carrying it may only be
// created in a transaction that unlocks the sender's address.
type SenderFeature struct {
	Address Address `serix:"0,mapKey=address"`
}

func (s *SenderFeature) Clone() Feature {
	return &SenderFeature{Address: s.Address.Clone()}
}

func (s *SenderFeature) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.FactorData.Multiply(StorageScore(s.Size()))
}

func (s *SenderFeature) WorkScore(_ *WorkScoreParameters) (WorkScore, error) {
	return 0, nil
}

func (s *SenderFeature) Equal(other Feature) bool {
	otherFeat, is := other.(*SenderFeature)
	if !is {
		return false
	}

	return s.Address.Equal(otherFeat.Address)
}

func (s *SenderFeature) Type() FeatureType {
	return FeatureSender
}

func (s *SenderFeature) Size() int {
	return serializer.SmallTypeDenotationByteSize + s.Address.Size()
}
