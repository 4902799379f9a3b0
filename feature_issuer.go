package iotago

import "github.com/iotaledger/hive.go/serializer/v2"

// IssuerFeature is an immutable feature which associates an output with an issuer identity. Only chain-constrained
// outputs may carry it, and only on their genesis transition.
type IssuerFeature struct {
	Address Address `serix:"0,mapKey=address"`
}

func (s *IssuerFeature) Clone() Feature {
	return &IssuerFeature{Address: s.Address.Clone()}
}

func (s *IssuerFeature) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.FactorData.Multiply(StorageScore(s.Size()))
}

func (s *IssuerFeature) WorkScore(_ *WorkScoreParameters) (WorkScore, error) {
	return 0, nil
}

func (s *IssuerFeature) Equal(other Feature) bool {
	otherFeat, is := other.(*IssuerFeature)
	if !is {
		return false
	}

	return s.Address.Equal(otherFeat.Address)
}

func (s *IssuerFeature) Type() FeatureType {
	return FeatureIssuer
}

func (s *IssuerFeature) Size() int {
	return serializer.SmallTypeDenotationByteSize + s.Address.Size()
}
