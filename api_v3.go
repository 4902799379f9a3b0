package iotago

import (
	"context"
	"sync"

	"github.com/iotaledger/hive.go/serializer/v2/serix"
)

// v3api is the concrete API implementation for protocol version 3.
type v3api struct {
	protocolParameters ProtocolParameters
	timeProvider       *TimeProvider
	manaDecayProvider  *ManaDecayProvider
	serixAPI           *serix.API
}

// V3API creates a new API instance for the given protocol parameters, registering every object type known to
// this package with the underlying serix codec.
func V3API(protoParams ProtocolParameters) API {
	api := &v3api{
		protocolParameters: protoParams,
		timeProvider:       protoParams.TimeProvider(),
		manaDecayProvider:  protoParams.ManaDecayProvider(),
		serixAPI:           serix.NewAPI(),
	}

	registerAddresses(api.serixAPI)
	registerFeatures(api.serixAPI)
	registerUnlockConditions(api.serixAPI)
	registerOutputs(api.serixAPI)
	registerInputs(api.serixAPI)
	registerContextInputs(api.serixAPI)
	registerUnlocks(api.serixAPI)
	registerSignatures(api.serixAPI)
	registerPayloads(api.serixAPI)
	registerTokenSchemes(api.serixAPI)

	return api
}

func (a *v3api) Encode(obj any, opts ...serix.Option) ([]byte, error) {
	return a.serixAPI.Encode(context.Background(), obj, opts...)
}

func (a *v3api) Decode(b []byte, obj any, opts ...serix.Option) (int, error) {
	return a.serixAPI.Decode(context.Background(), b, obj, opts...)
}

func (a *v3api) JSONEncode(obj any, opts ...serix.Option) ([]byte, error) {
	return a.serixAPI.JSONEncode(context.Background(), obj, opts...)
}

func (a *v3api) JSONDecode(jsonData []byte, obj any, opts ...serix.Option) error {
	return a.serixAPI.JSONDecode(context.Background(), jsonData, obj, opts...)
}

func (a *v3api) Underlying() *serix.API {
	return a.serixAPI
}

func (a *v3api) ProtocolParameters() ProtocolParameters {
	return a.protocolParameters
}

func (a *v3api) TimeProvider() *TimeProvider {
	return a.timeProvider
}

func (a *v3api) ManaDecayProvider() *ManaDecayProvider {
	return a.manaDecayProvider
}

var (
	commonAPI     *serix.API
	commonAPIOnce sync.Once
)

// commonSerixAPI returns a serix API instance used for encoding objects whose wire shape does not depend on a
// concrete set of protocol parameters (e.g. the protocol parameters themselves).
func commonSerixAPI() *serix.API {
	commonAPIOnce.Do(func() {
		commonAPI = serix.NewAPI()
		registerAddresses(commonAPI)
		registerFeatures(commonAPI)
		registerUnlockConditions(commonAPI)
		registerOutputs(commonAPI)
		registerInputs(commonAPI)
		registerContextInputs(commonAPI)
		registerUnlocks(commonAPI)
		registerSignatures(commonAPI)
		registerPayloads(commonAPI)
		registerTokenSchemes(commonAPI)
	})

	return commonAPI
}
