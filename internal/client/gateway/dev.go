package gateway

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/camertanev/FraudDetect-Z/internal/common"
	"github.com/camertanev/FraudDetect-Z/internal/sealing"
)

// DevGateway is the development implementation of the encryption capability,
// built on the shared sealing primitive. It holds the sealing key the dev
// ledger also knows, so the full decrypt-and-verify protocol can run against
// a local deployment.
type DevGateway struct {
	key []byte
}

func NewDevGateway(passphrase, salt []byte) *DevGateway {
	return &DevGateway{key: sealing.DeriveKey(passphrase, salt)}
}

func (g *DevGateway) Encrypt(ctx context.Context, destination, caller string, amount uint64) (*Encrypted, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ciphertext, proof, err := sealing.SealAmount(g.key, destination, caller, amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrEncryptionFailed, err)
	}

	return &Encrypted{Ciphertext: ciphertext, Proof: proof}, nil
}

func (g *DevGateway) ProveDecryption(ctx context.Context, handles [][]byte, destination string) (*Reveal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reveal := &Reveal{
		Values: make(map[string]uint64, len(handles)),
		Proofs: make(map[string][]byte, len(handles)),
	}

	for _, handle := range handles {
		value, err := sealing.OpenAmount(g.key, destination, handle)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrDecryptionFailed, err)
		}
		k := hex.EncodeToString(handle)
		reveal.Values[k] = value
		reveal.Proofs[k] = sealing.ProveReveal(g.key, destination, handle, value)
	}

	return reveal, nil
}
