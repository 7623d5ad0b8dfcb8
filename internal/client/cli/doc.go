// Package cli provides the interactive FraudDetect-Z command-line client.
//
// It wires configuration, the local claim cache, the claim lifecycle
// coordinator, and an interactive REPL. Typical flow: prompt for credentials,
// start a background connectivity watcher, and execute user commands.
//
// Key features:
//   - Register / Login / Logout against the claim ledger
//   - Create claims with end-to-end encrypted amounts
//   - Decrypt-and-verify a claim's amount on the ledger
//   - List / Show claims, derive fraud statistics
//   - Attach supporting documents via presigned uploads
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and StartOnlineStatusWatcher for details.
package cli
