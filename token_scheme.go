package iotago

import (
	"math/big"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/serializer/v2/serix"
)

// TokenSchemeType defines the type of token schemes.
type TokenSchemeType byte

const (
	// TokenSchemeSimple denotes a SimpleTokenScheme.
	TokenSchemeSimple TokenSchemeType = iota
)

func (t TokenSchemeType) String() string {
	if t == TokenSchemeSimple {
		return "SimpleTokenScheme"
	}

	return "unknown token scheme type"
}

// TokenScheme defines the mechanics by which a foundry can mint and melt native tokens.
type TokenScheme interface {
	Sizer
	NonEphemeralObject
	ProcessableObject
	constraints.Cloneable[TokenScheme]
	constraints.Equalable[TokenScheme]

	// Type returns the type of the TokenScheme.
	Type() TokenSchemeType

	// StateTransition validates the transition of this TokenScheme from its previous state, given the transaction's
	// input (in) and output (out) sums of the foundry's native token; out minus in is positive for mints and
	// negative for melts. next is nil when the foundry is being destroyed.
	StateTransition(transType ChainTransitionType, next TokenScheme, in *big.Int, out *big.Int) error
}

func registerTokenSchemes(api *serix.API) {
	mustRegisterInterfaceObjects(api, (*TokenScheme)(nil),
		(*SimpleTokenScheme)(nil),
	)
}

// SimpleTokenScheme is a TokenScheme defined by a minted, melted and maximum supply of a native token, monotonic
// across the foundry's lifetime: circulating supply (minted - melted) may never exceed MaximumSupply, and melted
// supply may never exceed minted supply.
type SimpleTokenScheme struct {
	// MintedTokens denotes the number of tokens this foundry has minted across its entire lifetime.
	MintedTokens *big.Int `serix:"0,mapKey=mintedTokens"`
	// MeltedTokens denotes the number of tokens this foundry has melted across its entire lifetime.
	MeltedTokens *big.Int `serix:"1,mapKey=meltedTokens"`
	// MaximumSupply denotes the maximum supply of tokens controlled by the foundry.
	MaximumSupply *big.Int `serix:"2,mapKey=maximumSupply"`
}

func (s *SimpleTokenScheme) Clone() TokenScheme {
	return &SimpleTokenScheme{
		MintedTokens:  new(big.Int).Set(s.MintedTokens),
		MeltedTokens:  new(big.Int).Set(s.MeltedTokens),
		MaximumSupply: new(big.Int).Set(s.MaximumSupply),
	}
}

func (s *SimpleTokenScheme) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.FactorData.Multiply(StorageScore(s.Size()))
}

func (s *SimpleTokenScheme) WorkScore(_ *WorkScoreParameters) (WorkScore, error) {
	return 0, nil
}

func (s *SimpleTokenScheme) Equal(other TokenScheme) bool {
	otherScheme, is := other.(*SimpleTokenScheme)
	if !is {
		return false
	}

	return s.MintedTokens.Cmp(otherScheme.MintedTokens) == 0 &&
		s.MeltedTokens.Cmp(otherScheme.MeltedTokens) == 0 &&
		s.MaximumSupply.Cmp(otherScheme.MaximumSupply) == 0
}

func (s *SimpleTokenScheme) Type() TokenSchemeType {
	return TokenSchemeSimple
}

func (s *SimpleTokenScheme) Size() int {
	return serializer.SmallTypeDenotationByteSize + 3*serializer.UInt256ByteSize
}

// CirculatingSupply returns the amount of tokens currently in circulation.
func (s *SimpleTokenScheme) CirculatingSupply() *big.Int {
	return new(big.Int).Sub(s.MintedTokens, s.MeltedTokens)
}

// StateTransition verifies a SimpleTokenScheme transition: next must only grow MintedTokens and MeltedTokens
// monotonically, MaximumSupply must stay constant, and the amount minted/melted must match the reported diff.
func (s *SimpleTokenScheme) StateTransition(transType ChainTransitionType, next TokenScheme, in *big.Int, out *big.Int) error {
	switch transType {
	case ChainTransitionTypeGenesis:
		if s.MintedTokens.Sign() <= 0 {
			return ierrors.Wrap(ErrTokenSchemeTransitionInvalid, "newly created foundry must mint at least one token")
		}
		if s.MeltedTokens.Sign() != 0 {
			return ierrors.Wrap(ErrTokenSchemeTransitionInvalid, "newly created foundry must not have melted tokens")
		}
		if s.MintedTokens.Cmp(s.MaximumSupply) > 0 {
			return ierrors.Wrap(ErrTokenSchemeTransitionInvalid, "minted tokens exceed maximum supply")
		}

		return nil

	case ChainTransitionTypeStateChange:
		nextScheme, is := next.(*SimpleTokenScheme)
		if !is {
			return ierrors.Wrap(ErrTokenSchemeTransitionInvalid, "token scheme type changed")
		}

		if s.MaximumSupply.Cmp(nextScheme.MaximumSupply) != 0 {
			return ierrors.Wrap(ErrTokenSchemeTransitionInvalid, "maximum supply must not change")
		}
		if nextScheme.MintedTokens.Cmp(s.MintedTokens) < 0 {
			return ierrors.Wrap(ErrTokenSchemeTransitionInvalid, "minted tokens must not decrease")
		}
		if nextScheme.MeltedTokens.Cmp(s.MeltedTokens) < 0 {
			return ierrors.Wrap(ErrTokenSchemeTransitionInvalid, "melted tokens must not decrease")
		}
		if nextScheme.MeltedTokens.Cmp(nextScheme.MintedTokens) > 0 {
			return ierrors.Wrap(ErrTokenSchemeTransitionInvalid, "melted tokens must not exceed minted tokens")
		}
		if nextScheme.CirculatingSupply().Cmp(nextScheme.MaximumSupply) > 0 {
			return ierrors.Wrap(ErrTokenSchemeTransitionInvalid, "circulating supply exceeds maximum supply")
		}

		mintedDiff := new(big.Int).Sub(nextScheme.MintedTokens, s.MintedTokens)
		meltedDiff := new(big.Int).Sub(nextScheme.MeltedTokens, s.MeltedTokens)
		netDiff := new(big.Int).Sub(mintedDiff, meltedDiff)

		actualDiff := new(big.Int).Sub(out, in)
		if netDiff.Cmp(actualDiff) != 0 {
			return ierrors.Wrapf(ErrTokenSchemeTransitionInvalid, "circulating supply diff %s does not match native token balance diff %s", netDiff, actualDiff)
		}

		return nil

	case ChainTransitionTypeDestroy:
		if s.CirculatingSupply().Sign() != 0 {
			return ierrors.Wrap(ErrTokenSchemeTransitionInvalid, "foundry can only be destroyed when circulating supply is zero")
		}

		return nil

	default:
		return ierrors.Errorf("unknown chain transition type %d", transType)
	}
}
