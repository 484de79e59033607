// Package signer keeps the ed25519 keys of the addresses whose positions are managed by this service.
package signer

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/model"
	"golang.org/x/crypto/blake2b"
)

// ed25519Flag is the Sui signature scheme flag for ed25519 keys.
const ed25519Flag byte = 0x00

// ErrSignerNotFound is returned when no key is stored for an address.
var ErrSignerNotFound = errors.New("signer not found")

// Signer is an ed25519 key bound to its Sui address.
type Signer struct {
	key     ed25519.PrivateKey
	address model.Address
}

// NewSigner derives the address of key.
func NewSigner(key ed25519.PrivateKey) (*Signer, error) {
	if len(key) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("invalid ed25519 private key length %d", len(key))
	}
	pub, ok := key.Public().(ed25519.PublicKey)
	if !ok {
		return nil, errors.New("unexpected public key type")
	}
	return &Signer{key: key, address: AddressFromPublicKey(pub)}, nil
}

// NewSignerFromSeed builds a signer from a 32-byte ed25519 seed.
func NewSignerFromSeed(seed []byte) (*Signer, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("invalid ed25519 seed length %d", len(seed))
	}
	return NewSigner(ed25519.NewKeyFromSeed(seed))
}

// AddressFromPublicKey returns blake2b-256(flag || pubkey).
func AddressFromPublicKey(pub ed25519.PublicKey) model.Address {
	buf := make([]byte, 0, 1+len(pub))
	buf = append(buf, ed25519Flag)
	buf = append(buf, pub...)
	return model.Address(blake2b.Sum256(buf))
}

func (s *Signer) Address() model.Address {
	return s.address
}

func (s *Signer) PublicKey() ed25519.PublicKey {
	return s.key.Public().(ed25519.PublicKey)
}

// Sign signs msg with the stored key.
func (s *Signer) Sign(msg []byte) []byte {
	return ed25519.Sign(s.key, msg)
}

// Store is a concurrency-safe address to signer map.
type Store struct {
	mu      sync.RWMutex
	signers map[model.Address]*Signer
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{signers: make(map[model.Address]*Signer)}
}

// GetSignerByAddress returns the signer stored for address.
func (s *Store) GetSignerByAddress(address model.Address) (*Signer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	signer, ok := s.signers[address]
	if !ok {
		return nil, fmt.Errorf("%s: %w", address, ErrSignerNotFound)
	}
	return signer, nil
}

// StoreSigner adds or replaces the signer for its address.
func (s *Store) StoreSigner(signer *Signer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.signers[signer.address] = signer
}

// GetAllAddresses returns the stored addresses in ascending order.
func (s *Store) GetAllAddresses() []model.Address {
	s.mu.RLock()
	out := make([]model.Address, 0, len(s.signers))
	for addr := range s.signers {
		out = append(out, addr)
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b model.Address) int {
		return slices.Compare(a[:], b[:])
	})
	return out
}

// Len returns the number of stored signers.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.signers)
}
