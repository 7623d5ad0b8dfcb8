package services

import (
	"context"
	"fmt"

	"github.com/camertanev/FraudDetect-Z/internal/client/ledger"
	"github.com/camertanev/FraudDetect-Z/internal/client/signer"
	"github.com/camertanev/FraudDetect-Z/internal/common"
	"github.com/camertanev/FraudDetect-Z/internal/sealing"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create a new user on the ledger (salt + verifier, the
//     password itself never leaves the client).
//   - Login: authenticate and bind the returned caller address to the signer.
//   - Logout: drop the local identity.
//   - Ping: check ledger liveness.
//   - Close: release underlying client resources.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) error
	Logout()
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by the ledger client and
// the local signer that holds the session identity.
type authService struct {
	client ledger.Client
	signer *signer.LocalSigner
}

// NewAuthService constructs an AuthService bound to the given ledger client
// and signer.
func NewAuthService(client ledger.Client, signer *signer.LocalSigner) AuthService {
	return &authService{client: client, signer: signer}
}

// Register derives a verifier from (password, fresh salt) and registers it
// with the ledger.
func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	salt := common.GenerateRandByteArray(16)

	key := sealing.DeriveKey(password, salt)
	defer common.WipeByteArray(key)
	verifier := sealing.MakeVerifier(key)

	if err := a.client.Register(ctx, username, salt, verifier); err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return nil
}

// Login fetches the user's salt, derives the verifier candidate and
// authenticates against the ledger. On success the returned caller address
// becomes the signer identity for subsequent claim submissions.
func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	salt, err := a.client.GetSalt(ctx, username)
	if err != nil {
		return fmt.Errorf("get salt error: %w", err)
	}

	key := sealing.DeriveKey(password, salt)
	defer common.WipeByteArray(key)
	verifier := sealing.MakeVerifier(key)

	address, err := a.client.Login(ctx, username, verifier)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	a.signer.SetIdentity(address)
	return nil
}

func (a *authService) Logout() {
	a.signer.Clear()
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
