package iotago

import "github.com/iotaledger/hive.go/ierrors"

// Protocol parameter / API errors.
var (
	ErrInvalidActiveAPI      = ierrors.New("active API is invalid")
	ErrTypeSettingsNotFound  = ierrors.New("type settings not found")
	ErrInvalidIdentifierLength = ierrors.New("invalid identifier length")
)

// Output / builder precondition errors.
var (
	ErrOutputAmountMoreThanTotalSupply  = ierrors.New("output amount is more than total supply")
	ErrOutputsSumExceedsTotalSupply     = ierrors.New("accumulated output balance exceeds total supply")
	ErrStorageDepositNotCovered         = ierrors.New("storage deposit is not covered by the output's base token amount")
	ErrOutputAmountLessThanMinStorageDeposit = ierrors.New("output's base token amount is less than the minimum required storage deposit")
	ErrInvalidNativeTokenCount          = ierrors.New("invalid native token count")
	ErrNativeTokenAmountLessThanEqualZero = ierrors.New("native token amount must be greater than zero")
	ErrInvalidImmutableFeatureSet       = ierrors.New("invalid immutable feature set")
	ErrFeaturesNotUnique                = ierrors.New("features must be unique in their respective set")
	ErrUnlockConditionsNotUnique        = ierrors.New("unlock conditions must be unique in their respective set")
	ErrUnknownOutputType                = ierrors.New("unknown output type")
	ErrUnknownAddressType                = ierrors.New("unknown address type")
	ErrUnknownFeatureType                = ierrors.New("unknown feature type")
	ErrUnknownUnlockConditionType        = ierrors.New("unknown unlock condition type")
	ErrUnknownUnlockType                 = ierrors.New("unknown unlock type")
	ErrUnknownInputType                  = ierrors.New("unknown input type")
	ErrUnknownContextInputType           = ierrors.New("unknown context input type")
	ErrUnknownTokenSchemeType            = ierrors.New("unknown token scheme type")
)

// Transaction builder / input selection errors.
var (
	ErrTransactionBuilder                  = ierrors.New("transaction builder error")
	ErrNoInputsProvided                    = ierrors.New("no inputs provided to satisfy requirements")
	ErrNoAvailableInputsProvided            = ierrors.New("no available inputs provided")
	ErrTransactionSumInputsOutputsMismatch  = ierrors.New("inputs and outputs do not spend/deposit the same amount of base tokens")
	ErrTransactionSumNativeTokensMismatch   = ierrors.New("inputs and outputs do not contain the same amount of manifested native tokens")
	ErrTransactionManaInputOutputMismatch   = ierrors.New("inputs and outputs do not contain the same amount of mana")
	ErrUnfulfillableRequirement             = ierrors.New("unable to fulfill builder requirement with available inputs")
	ErrNoAddressForRemainder                = ierrors.New("no address provided for remainder output(s)")
	ErrUnlockConditionRemainderMismatch     = ierrors.New("remainder output mismatches expected return output")
	ErrAccountAddressWithoutAccountInput    = ierrors.New("account address used but no account input provided")
	ErrInvalidInputUnlock                   = ierrors.New("invalid input unlock")
	ErrSenderFeatureNotUnlocked              = ierrors.New("sender feature not unlocked")
	ErrIssuerFeatureNotUnlocked              = ierrors.New("issuer feature not unlocked")
	ErrTimelockNotExpired                    = ierrors.New("timelock not expired")
	ErrExpirationNotUnlockable               = ierrors.New("expiration unlock condition not unlockable")
	ErrInvalidChainStateTransition            = ierrors.New("invalid chain output state transition")
	ErrInvalidChainStateIndex                 = ierrors.New("invalid chain output state index")
	ErrInvalidBlockIssuerTransition           = ierrors.New("invalid block issuer feature transition")
	ErrInvalidFoundryCounter                  = ierrors.New("invalid foundry counter delta")
	ErrInvalidFoundrySerialNumber             = ierrors.New("invalid foundry serial number")
	ErrTokenSchemeTransitionInvalid           = ierrors.New("invalid token scheme transition")
	ErrNegativeBICDuringAccountDestruction    = ierrors.New("account cannot be destroyed while block issuer credits are negative")
	ErrManaMovedOffBlockIssuerAccount         = ierrors.New("mana moved off block issuer feature account without expiration")
	ErrInvalidStakingTransition                = ierrors.New("invalid staking feature transition")
	ErrInvalidStakingRewardClaim                = ierrors.New("invalid staking reward claim")
	ErrInvalidManaDecayProvider                = ierrors.New("invalid mana decay provider configuration")
	ErrManaAmountOverflow                      = ierrors.New("mana amount overflow")
	ErrInvalidRemainderAmount                  = ierrors.New("invalid remainder amount")
	ErrInvalidCapabilitiesBitMask              = ierrors.New("invalid capabilities bitmask")
	ErrEd25519PubKeyAndAddrMismatch             = ierrors.New("public key does not correspond to given Ed25519 address")
	ErrEd25519SignatureInvalid                  = ierrors.New("Ed25519 signature is invalid")
	ErrSignatureAndAddrIncompatible              = ierrors.New("address and signature type are not compatible")
	ErrInvalidInputsCommitment                   = ierrors.New("invalid inputs commitment")
	ErrInvalidAccountStateTransition             = ierrors.New("invalid account state transition")
	ErrInvalidAccountGovernanceTransition         = ierrors.New("invalid account governance transition")
	ErrInvalidFoundryStateTransition              = ierrors.New("invalid foundry state transition")
	ErrInvalidNFTStateTransition                  = ierrors.New("invalid NFT state transition")
	ErrInvalidAnchorStateTransition                = ierrors.New("invalid anchor state transition")
	ErrInvalidDelegationTransition                 = ierrors.New("invalid delegation transition")
	ErrChainMissing                                = ierrors.New("chain missing from transaction")
	ErrNonUniqueUnlockConditions                   = ierrors.New("unlock conditions must be unique within their set")
	ErrTimelockNotDeserializable                   = ierrors.New("timelock unlock condition failed to deserialize")
	ErrUnlockSignatureInvalid                      = ierrors.New("unlock signature invalid")
	ErrReferentialUnlockInvalid                    = ierrors.New("referential unlock is invalid")
	ErrMultiAddressLengthUnlockLengthMismatch      = ierrors.New("multi address and multi unlock length do not match")
	ErrExpirationConditionZero                     = ierrors.New("expiration unlock condition slot index is zero")
	ErrTimelockConditionZero                       = ierrors.New("timelock unlock condition slot index is zero")
	ErrStorageDepositReturnExceedsOutputAmount      = ierrors.New("storage deposit return amount exceeds the output's base token amount")
	ErrStorageDepositReturnOverflow                 = ierrors.New("storage deposit return amount overflows return output's minimum storage deposit")
	ErrMaxNativeTokensCountExceeded                 = ierrors.New("max native token count exceeded")
	ErrMaxInputsCountExceeded                       = ierrors.New("max inputs count exceeded")
	ErrMaxOutputsCountExceeded                      = ierrors.New("max outputs count exceeded")
	ErrMaxContextInputsCountExceeded                = ierrors.New("max context inputs count exceeded")
	ErrMaxAllotmentsCountExceeded                   = ierrors.New("max allotments count exceeded")
	ErrInputOutputSumMismatch                       = ierrors.New("input and output sums do not match")
	ErrInvalidTaggedDataTag                         = ierrors.New("invalid tagged data tag")
	ErrTxEssenceNetworkIDInvalid                    = ierrors.New("transaction network ID does not match current network ID")
	ErrTxEssenceTooManyInputs                       = ierrors.New("transaction essence has too many inputs")
	ErrTxEssenceTooManyOutputs                      = ierrors.New("transaction essence has too many outputs")
	ErrTxEssenceContextInputsNotUnique               = ierrors.New("transaction essence context inputs are not unique")
	ErrTxEssenceAllotmentsNotUnique                  = ierrors.New("transaction essence allotments are not unique")
	ErrNonMatchingUnlocksTransactionInputs           = ierrors.New("input and unlock count does not match")
	ErrInputBICNotAllowed                            = ierrors.New("block issuance credit context input references an account without a pending block issuer transaction")
	ErrRewardInputReferenceInvalid                   = ierrors.New("reward input does not reference a staking or delegation output")
	ErrCommitmentInputMissing                        = ierrors.New("commitment input required but missing")
)
