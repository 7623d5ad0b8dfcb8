// Package sealing implements the development stand-in for the external
// encryption service: amounts are sealed with AES-GCM into opaque handles,
// and submissions/reveals carry HMAC-SHA256 tags that the dev ledger can
// recheck without learning the plaintext handling rules of the real scheme.
//
// The core never imports this package directly; it only sees the
// gateway.Gateway interface. Only the dev gateway and the dev ledger share
// the sealing key.
package sealing

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"errors"

	"golang.org/x/crypto/argon2"
)

const nonceSize = 12

// DevSalt is the fixed key-derivation salt for development deployments, so a
// dev gateway and a dev ledger configured with the same passphrase derive the
// same sealing key.
var DevSalt = []byte("frauddetect-dev")

var ErrInvalidHandle = errors.New("invalid ciphertext handle")

// DeriveKey stretches a passphrase into a 32-byte sealing key.
func DeriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier returns a one-way commitment to a derived key, safe to store
// server-side for login checks.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

func amountBytes(amount uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, amount)
	return buf
}

func tag(key []byte, parts ...[]byte) []byte {
	mac := hmac.New(sha256.New, key)
	for _, p := range parts {
		mac.Write(p)
	}
	return mac.Sum(nil)
}

// SealAmount encrypts the amount bound to the destination context and returns
// the opaque handle plus an input proof binding it to the caller.
func SealAmount(key []byte, destination, caller string, amount uint64) (handle, inputProof []byte, err error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}

	sealed := aesgcm.Seal(nil, nonce, amountBytes(amount), []byte(destination))
	handle = append(nonce, sealed...)
	inputProof = tag(key, []byte("input"), []byte(destination), []byte(caller), handle)
	return handle, inputProof, nil
}

// VerifySubmission rechecks the input proof attached to a sealed amount.
func VerifySubmission(key []byte, destination, caller string, handle, inputProof []byte) bool {
	want := tag(key, []byte("input"), []byte(destination), []byte(caller), handle)
	return hmac.Equal(want, inputProof)
}

// OpenAmount decrypts a handle produced by SealAmount.
func OpenAmount(key []byte, destination string, handle []byte) (uint64, error) {
	if len(handle) < nonceSize {
		return 0, ErrInvalidHandle
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return 0, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return 0, err
	}

	plaintext, err := aesgcm.Open(nil, handle[:nonceSize], handle[nonceSize:], []byte(destination))
	if err != nil {
		return 0, err
	}
	if len(plaintext) != 8 {
		return 0, ErrInvalidHandle
	}
	return binary.LittleEndian.Uint64(plaintext), nil
}

// ProveReveal produces the proof tag the ledger checks before accepting a
// revealed amount for a handle.
func ProveReveal(key []byte, destination string, handle []byte, amount uint64) []byte {
	return tag(key, []byte("reveal"), []byte(destination), handle, amountBytes(amount))
}

// VerifyReveal rechecks a reveal proof against the stored handle and the
// submitted amount.
func VerifyReveal(key, proof []byte, destination string, handle []byte, amount uint64) bool {
	want := ProveReveal(key, destination, handle, amount)
	return hmac.Equal(want, proof)
}
