// Package tpkg provides random value generators used to build fixtures for unit tests across the module.
package tpkg

import (
	"bytes"
	"math/big"
	"math/rand"
	"sort"

	"github.com/iotaledger/hive.go/crypto/ed25519"
	iotago "github.com/iotaledger/iota.go/v4"
	"github.com/iotaledger/iota.go/v4/builder"
)

// Must panics if the given error is not nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// RandBytes returns length amount of random bytes.
func RandBytes(length int) []byte {
	b := make([]byte, length)
	for i := 0; i < length; i++ {
		b[i] = byte(rand.Intn(256))
	}

	return b
}

// RandUint64 returns a random uint64.
func RandUint64() uint64 {
	return rand.Uint64()
}

// RandUint256 returns a random uint256 value as a *big.Int.
func RandUint256() *big.Int {
	return new(big.Int).SetUint64(rand.Uint64())
}

// Rand12ByteArray returns an array with 12 random bytes.
func Rand12ByteArray() [12]byte {
	var h [12]byte
	copy(h[:], RandBytes(12))

	return h
}

// Rand20ByteArray returns an array with 20 random bytes.
func Rand20ByteArray() [20]byte {
	var h [20]byte
	copy(h[:], RandBytes(20))

	return h
}

// Rand32ByteArray returns an array with 32 random bytes.
func Rand32ByteArray() [32]byte {
	var h [32]byte
	copy(h[:], RandBytes(32))

	return h
}

// Rand38ByteArray returns an array with 38 random bytes.
func Rand38ByteArray() [38]byte {
	var h [38]byte
	copy(h[:], RandBytes(38))

	return h
}

// Rand49ByteArray returns an array with 49 random bytes.
func Rand49ByteArray() [49]byte {
	var h [49]byte
	copy(h[:], RandBytes(49))

	return h
}

// Rand64ByteArray returns an array with 64 random bytes.
func Rand64ByteArray() [64]byte {
	var h [64]byte
	copy(h[:], RandBytes(64))

	return h
}

// SortedRand32BytArray returns a count length slice of sorted 32 byte arrays.
func SortedRand32BytArray(count int) [][32]byte {
	hashes := make([][32]byte, count)
	for i := 0; i < count; i++ {
		hashes[i] = Rand32ByteArray()
	}
	sort.Slice(hashes, func(i, j int) bool {
		return bytes.Compare(hashes[i][:], hashes[j][:]) < 0
	})

	return hashes
}

// RandSlotIndex returns a random SlotIndex.
func RandSlotIndex() iotago.SlotIndex {
	return iotago.SlotIndex(rand.Uint32())
}

// RandEpochIndex returns a random EpochIndex.
func RandEpochIndex() iotago.EpochIndex {
	return iotago.EpochIndex(rand.Uint32())
}

// RandMana returns a random Mana value.
func RandMana() iotago.Mana {
	return iotago.Mana(rand.Uint64())
}

// RandBaseToken returns a random BaseToken amount bounded by TestTokenSupply.
func RandBaseToken() iotago.BaseToken {
	return iotago.BaseToken(rand.Int63n(int64(TestTokenSupply)))
}

// RandEd25519PrivateKey returns a random Ed25519 private key.
func RandEd25519PrivateKey() ed25519.PrivateKey {
	_, priv, err := ed25519.GenerateKey()
	Must(err)

	return priv
}

// RandEd25519Identity returns a random Ed25519 keypair along with the Ed25519Address it derives.
func RandEd25519Identity() (ed25519.PrivateKey, *iotago.Ed25519Address) {
	priv := RandEd25519PrivateKey()
	pub := priv.Public()
	addr := iotago.Ed25519AddressFromPubKey(pub[:])

	return priv, addr
}

// RandEd25519Address returns a random Ed25519Address.
func RandEd25519Address() *iotago.Ed25519Address {
	_, addr := RandEd25519Identity()

	return addr
}

// RandEd25519Signature returns a random Ed25519Signature. It is not a valid signature over any message.
func RandEd25519Signature() *iotago.Ed25519Signature {
	sig := &iotago.Ed25519Signature{}
	copy(sig.PublicKey[:], RandBytes(ed25519.PublicKeySize))
	copy(sig.Signature[:], RandBytes(ed25519.SignatureSize))

	return sig
}

// RandAccountID returns a random AccountID.
func RandAccountID() iotago.AccountID {
	var id iotago.AccountID
	copy(id[:], RandBytes(iotago.AccountIDLength))

	return id
}

// RandAccountAddress returns a random AccountAddress.
func RandAccountAddress() *iotago.AccountAddress {
	addr := iotago.AccountAddress(RandAccountID())

	return &addr
}

// RandNFTID returns a random NFTID.
func RandNFTID() iotago.NFTID {
	var id iotago.NFTID
	copy(id[:], RandBytes(iotago.NFTIDLength))

	return id
}

// RandNFTAddress returns a random NFTAddress.
func RandNFTAddress() *iotago.NFTAddress {
	addr := iotago.NFTAddress(RandNFTID())

	return &addr
}

// RandRestrictedEd25519Address returns a random Ed25519Address wrapped in a RestrictedAddress carrying the given
// capabilities bitmask.
func RandRestrictedEd25519Address(capabilities iotago.AddressCapabilitiesBitMask) *iotago.RestrictedAddress {
	return &iotago.RestrictedAddress{
		Address:      RandEd25519Address(),
		Capabilities: capabilities,
	}
}

// RandImplicitAccountCreationAddress returns a random ImplicitAccountCreationAddress.
func RandImplicitAccountCreationAddress() *iotago.ImplicitAccountCreationAddress {
	addr := &iotago.ImplicitAccountCreationAddress{}
	copy(addr[:], RandBytes(iotago.Ed25519AddressBytesLength))

	return addr
}

// RandAnchorID returns a random AnchorID.
func RandAnchorID() iotago.AnchorID {
	var id iotago.AnchorID
	copy(id[:], RandBytes(iotago.AnchorIDLength))

	return id
}

// RandAnchorAddress returns a random AnchorAddress.
func RandAnchorAddress() *iotago.AnchorAddress {
	addr := iotago.AnchorAddress(RandAnchorID())

	return &addr
}

// RandDelegationID returns a random DelegationID.
func RandDelegationID() iotago.DelegationID {
	var id iotago.DelegationID
	copy(id[:], RandBytes(iotago.DelegationIDLength))

	return id
}

// RandFoundryID returns a random FoundryID controlled by a random account address.
func RandFoundryID() iotago.FoundryID {
	return iotago.FoundryIDFromAddressAndSerialNumberAndTokenScheme(RandAccountAddress(), rand.Uint32(), iotago.TokenSchemeSimple)
}

// RandNativeToken returns a random NativeToken.
func RandNativeToken() *iotago.NativeToken {
	return &iotago.NativeToken{
		ID:     RandFoundryID(),
		Amount: RandUint256(),
	}
}

// RandSortedNativeTokens returns count random NativeToken entries, each with an independently derived ID.
func RandSortedNativeTokens(count int) iotago.NativeTokens {
	tokens := make(iotago.NativeTokens, count)
	for i := range tokens {
		tokens[i] = RandNativeToken()
	}

	return tokens
}

// RandSimpleTokenScheme returns a random, internally consistent SimpleTokenScheme.
func RandSimpleTokenScheme() *iotago.SimpleTokenScheme {
	maxSupply := RandUint256()
	minted := new(big.Int).Rsh(maxSupply, 1)

	return &iotago.SimpleTokenScheme{
		MintedTokens:  minted,
		MeltedTokens:  big.NewInt(0),
		MaximumSupply: maxSupply,
	}
}

// RandTransactionID returns a random TransactionID.
func RandTransactionID() iotago.TransactionID {
	return iotago.NewTransactionID(RandSlotIndex(), RandIdentifier())
}

// RandIdentifier returns a random Identifier.
func RandIdentifier() iotago.Identifier {
	var id iotago.Identifier
	copy(id[:], RandBytes(iotago.IdentifierLength))

	return id
}

// RandOutputID returns a random OutputID.
func RandOutputID() iotago.OutputID {
	return iotago.MustOutputIDFromTransactionIDAndIndex(RandTransactionID(), uint16(rand.Intn(iotago.MaxOutputIndex+1)))
}

// RandUTXOInput returns a random UTXOInput.
func RandUTXOInput() *iotago.UTXOInput {
	outputID := RandOutputID()

	return &iotago.UTXOInput{
		TransactionID:          outputID.TransactionID(),
		TransactionOutputIndex: outputID.Index(),
	}
}

// RandCommitmentInput returns a random CommitmentInput.
func RandCommitmentInput() *iotago.CommitmentInput {
	return &iotago.CommitmentInput{CommitmentID: RandIdentifier()}
}

// RandBlockIssuanceCreditInput returns a random BlockIssuanceCreditInput.
func RandBlockIssuanceCreditInput() *iotago.BlockIssuanceCreditInput {
	return &iotago.BlockIssuanceCreditInput{AccountID: RandAccountID()}
}

// RandRewardInput returns a random RewardInput.
func RandRewardInput() *iotago.RewardInput {
	return &iotago.RewardInput{Index: iotago.RewardInputIndex(rand.Intn(iotago.MaxInputsCount))}
}

// RandAddress returns a random Address of the given type.
func RandAddress(addressType iotago.AddressType) iotago.Address {
	switch addressType {
	case iotago.AddressEd25519:
		return RandEd25519Address()
	case iotago.AddressAccount:
		return RandAccountAddress()
	case iotago.AddressNFT:
		return RandNFTAddress()
	case iotago.AddressAnchor:
		return RandAnchorAddress()
	default:
		panic("unsupported address type for random generation")
	}
}

// RandBasicOutput returns a random BasicOutput unlockable by an address of the given type.
func RandBasicOutput(addressType iotago.AddressType) *iotago.BasicOutput {
	return &iotago.BasicOutput{
		Amount: RandBaseToken(),
		Mana:   RandMana(),
		Conditions: iotago.BasicOutputUnlockConditions{
			&iotago.AddressUnlockCondition{Address: RandAddress(addressType)},
		},
	}
}

// RandAccountOutput returns a random, genesis-state AccountOutput.
func RandAccountOutput() *iotago.AccountOutput {
	stateController := RandEd25519Address()
	governor := RandEd25519Address()

	return &iotago.AccountOutput{
		Amount: RandBaseToken(),
		Mana:   RandMana(),
		UnlockConditions: iotago.AccountOutputUnlockConditions{
			&iotago.StateControllerAddressUnlockCondition{Address: stateController},
			&iotago.GovernorAddressUnlockCondition{Address: governor},
		},
	}
}

// RandNFTOutput returns a random, genesis-state NFTOutput.
func RandNFTOutput(addressType iotago.AddressType) *iotago.NFTOutput {
	return &iotago.NFTOutput{
		Amount: RandBaseToken(),
		Mana:   RandMana(),
		Conditions: iotago.NFTOutputUnlockConditions{
			&iotago.AddressUnlockCondition{Address: RandAddress(addressType)},
		},
	}
}

// RandFoundryOutput returns a random, genesis-state FoundryOutput controlled by controller.
func RandFoundryOutput(controller *iotago.AccountAddress) *iotago.FoundryOutput {
	scheme := RandSimpleTokenScheme()

	return &iotago.FoundryOutput{
		Amount:       RandBaseToken(),
		SerialNumber: rand.Uint32(),
		TokenScheme:  scheme,
		Conditions: iotago.FoundryOutputUnlockConditions{
			&iotago.ImmutableAccountAddressUnlockCondition{Address: controller},
		},
	}
}

// RandDelegationOutput returns a random DelegationOutput delegating to a random validator account.
func RandDelegationOutput() *iotago.DelegationOutput {
	return &iotago.DelegationOutput{
		Amount:           RandBaseToken(),
		DelegatedAmount:  RandBaseToken(),
		ValidatorAddress: RandAccountAddress(),
		StartEpoch:       RandEpochIndex(),
		Conditions: iotago.DelegationOutputUnlockConditions{
			&iotago.AddressUnlockCondition{Address: RandEd25519Address()},
		},
	}
}

// RandOutput returns a random Output of the given OutputType.
func RandOutput(outputType iotago.OutputType) iotago.Output {
	switch outputType {
	case iotago.OutputBasic:
		return RandBasicOutput(iotago.AddressEd25519)
	case iotago.OutputAccount:
		return RandAccountOutput()
	case iotago.OutputNFT:
		return RandNFTOutput(iotago.AddressEd25519)
	case iotago.OutputFoundry:
		return RandFoundryOutput(RandAccountAddress())
	case iotago.OutputDelegation:
		return RandDelegationOutput()
	default:
		panic("unsupported output type for random generation")
	}
}

// RandAllotment returns a random Allotment.
func RandAllotment() *iotago.Allotment {
	return &iotago.Allotment{
		AccountID: RandAccountID(),
		Mana:      RandMana(),
	}
}

// RandTaggedData returns a random TaggedData payload with optional tag/data lengths.
func RandTaggedData(tagLength int, dataLength int) *iotago.TaggedData {
	return &iotago.TaggedData{
		Tag:  RandBytes(tagLength),
		Data: RandBytes(dataLength),
	}
}

// RandTransactionEssence returns a random TransactionEssence spending a single random UTXOInput into a single
// random BasicOutput.
func RandTransactionEssence() *iotago.TransactionEssence {
	return &iotago.TransactionEssence{
		NetworkID:    TestNetworkID,
		CreationTime: RandSlotIndex(),
		Inputs:       iotago.Inputs{RandUTXOInput()},
		Outputs:      iotago.TxEssenceOutputs{RandBasicOutput(iotago.AddressEd25519)},
	}
}

// RandTransaction returns a random Transaction whose single SignatureUnlock carries a random Ed25519 signature
// that is not valid over the essence.
func RandTransaction() *iotago.Transaction {
	essence := RandTransactionEssence()

	return &iotago.Transaction{
		Essence: essence,
		Unlocks: iotago.Unlocks{&iotago.SignatureUnlock{Signature: RandEd25519Signature()}},
	}
}

// OneInputOutputTransaction returns a BasicBlock carrying a signed Transaction spending a single Ed25519-owned
// BasicOutput into a single freshly generated Ed25519 BasicOutput. The input and output amounts and mana are
// independent random values, so the transaction is not balanced.
func OneInputOutputTransaction() *builder.BasicBlock {
	inputPriv, inputAddr := RandEd25519Identity()
	inputID := RandOutputID()

	txBuilder := builder.NewEssenceBuilder(TestNetworkID)
	txBuilder.AddInput(&builder.TxInput{
		UnlockTarget: inputAddr,
		InputID:      inputID,
		Input:        RandBasicOutput(iotago.AddressEd25519),
	})
	txBuilder.AddOutput(RandBasicOutput(iotago.AddressEd25519))
	txBuilder.SetCreationTime(RandSlotIndex())

	signer := iotago.NewInMemoryEd25519Signer(iotago.AddressSignerKey{Address: inputAddr, PrivateKey: inputPriv})

	blockBuilder := txBuilder.BuildAndSwapToBlockBuilder(TestProtoParams, signer, nil)
	block, err := blockBuilder.Build()
	Must(err)

	return block
}
