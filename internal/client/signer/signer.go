// Package signer models the wallet/signing layer at its interface boundary:
// the coordinator only needs the caller identity and a way to approve a
// pending ledger write before it is submitted.
package signer

import (
	"sync"

	"github.com/camertanev/FraudDetect-Z/internal/common"
)

// Signer exposes the authenticated caller identity.
type Signer interface {
	// Address returns the caller address, or ErrUnauthenticated when no
	// identity has been established.
	Address() (string, error)
}

// LocalSigner holds the identity established by the auth flow. Safe for
// concurrent use.
type LocalSigner struct {
	mu      sync.RWMutex
	address string
}

func NewLocalSigner() *LocalSigner {
	return &LocalSigner{}
}

func (s *LocalSigner) Address() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.address == "" {
		return "", common.ErrUnauthenticated
	}
	return s.address, nil
}

// SetIdentity records the address returned by a successful login.
func (s *LocalSigner) SetIdentity(address string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.address = address
}

// Clear drops the identity on logout.
func (s *LocalSigner) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.address = ""
}
