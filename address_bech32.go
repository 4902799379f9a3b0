package iotago

import (
	"context"

	"github.com/iotaledger/iota.go/v4/bech32"
)

// bech32String encodes addr using its serix wire representation as the bech32 data part.
func bech32String(hrp NetworkPrefix, addr Address) string {
	b, err := commonSerixAPI().Encode(context.Background(), addr)
	if err != nil {
		panic(err)
	}

	s, err := bech32.Encode(string(hrp), b)
	if err != nil {
		panic(err)
	}

	return s
}

// ParseBech32 decodes a bech32 encoded address string into its network prefix and Address.
func ParseBech32(s string) (NetworkPrefix, Address, error) {
	hrp, data, err := bech32.Decode(s)
	if err != nil {
		return "", nil, err
	}

	addr := &addressHolder{}
	if _, err := commonSerixAPI().Decode(context.Background(), data, &addr.Address); err != nil {
		return "", nil, err
	}

	return NetworkPrefix(hrp), addr.Address, nil
}

// addressHolder is used to decode an Address through its registered interface implementations.
type addressHolder struct {
	Address Address `serix:"0"`
}
