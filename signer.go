package iotago

import (
	"github.com/iotaledger/hive.go/crypto/ed25519"
	"github.com/iotaledger/hive.go/ierrors"
)

// AddressSigner produces a Signature that unlocks addr over msg. Implementations may hold private keys in memory,
// delegate to a hardware wallet or forward to a remote signing service; the builder only ever calls Sign once per
// distinct address per transaction.
type AddressSigner interface {
	// Sign signs msg and returns a Signature that unlocks addr.
	Sign(addr Address, msg []byte) (Signature, error)
}

// AddressSignerKey pairs an Address with the private key that unlocks it, the unit an InMemoryEd25519Signer is
// built from.
type AddressSignerKey struct {
	Address    Address
	PrivateKey ed25519.PrivateKey
}

// InMemoryEd25519Signer is an AddressSigner that holds Ed25519 private keys in memory, indexed by the Key() of the
// Ed25519Address they derive.
type InMemoryEd25519Signer struct {
	keys map[string]ed25519.PrivateKey
}

// NewInMemoryEd25519Signer creates an InMemoryEd25519Signer from the given address/private key pairs.
func NewInMemoryEd25519Signer(keyPairs ...AddressSignerKey) *InMemoryEd25519Signer {
	signer := &InMemoryEd25519Signer{keys: make(map[string]ed25519.PrivateKey, len(keyPairs))}
	for _, pair := range keyPairs {
		signer.keys[pair.Address.Key()] = pair.PrivateKey
	}

	return signer
}

// Sign signs msg with the private key registered for addr.
func (s *InMemoryEd25519Signer) Sign(addr Address, msg []byte) (Signature, error) {
	ed25519Addr, is := addr.(*Ed25519Address)
	if !is {
		return nil, ierrors.Errorf("in-memory Ed25519 signer cannot sign for address of type %T", addr)
	}

	privKey, has := s.keys[ed25519Addr.Key()]
	if !has {
		return nil, ierrors.Errorf("no private key known for address %s", ed25519Addr)
	}

	signature := privKey.Sign(msg)
	pubKey := privKey.Public()

	sig := &Ed25519Signature{}
	copy(sig.PublicKey[:], pubKey[:])
	copy(sig.Signature[:], signature[:])

	return sig, nil
}
