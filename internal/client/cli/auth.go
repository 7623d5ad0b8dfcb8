package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/camertanev/FraudDetect-Z/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a username and password and attempts to
// create a new account via the AuthService.
//
// On success it prints "Success!" and returns nil. The password byte slice
// is securely wiped before returning. Any I/O or service error is returned
// unchanged.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, userName, password); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Login prompts the user for credentials and tries to authenticate against
// the ledger. On success the signer holds the caller address and the app
// switches to online mode; claims are refreshed so the session starts with
// a current snapshot.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, userName, password); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.userName = userName
	a.setMode(ModeOnline)
	log.Printf("Login successful")

	if err := a.coordinator.RefreshClaims(ctx); err != nil {
		log.Printf("Initial claim refresh failed: %s", err.Error())
	}
	return nil
}

// Logout drops the in-memory identity. Cached claims stay on disk so the
// next session can start offline.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout()
	a.userName = ""
	return nil
}
