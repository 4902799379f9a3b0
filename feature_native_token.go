package iotago

import (
	"math/big"

	"github.com/iotaledger/hive.go/serializer/v2"
)

// NativeTokenFeature is a feature which carries a single NativeToken balance on the output it is attached to.
type NativeTokenFeature struct {
	NativeToken
}

func (s *NativeTokenFeature) Clone() Feature {
	return &NativeTokenFeature{NativeToken: *s.NativeToken.Clone()}
}

func (s *NativeTokenFeature) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.FactorData.Multiply(StorageScore(s.Size()))
}

func (s *NativeTokenFeature) WorkScore(workScoreParams *WorkScoreParameters) (WorkScore, error) {
	return workScoreParams.NativeToken, nil
}

func (s *NativeTokenFeature) Equal(other Feature) bool {
	otherFeat, is := other.(*NativeTokenFeature)
	if !is {
		return false
	}

	return s.NativeToken.Equal(&otherFeat.NativeToken)
}

func (s *NativeTokenFeature) Type() FeatureType {
	return FeatureNativeToken
}

func (s *NativeTokenFeature) Size() int {
	return serializer.SmallTypeDenotationByteSize + s.NativeToken.Size()
}

// Amount returns the native token amount carried by this feature.
func (s *NativeTokenFeature) Amount() *big.Int {
	return s.NativeToken.Amount
}
