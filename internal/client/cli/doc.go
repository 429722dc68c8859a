// Package cli provides the interactive roster command-line client.
//
// It wires configuration, local storage, the API services, and an
// interactive REPL. Typical flow: restore any persisted session, fetch the
// activity list (viewing needs no login), then execute user commands.
//
// Key features:
//   - List activities with capacity and participants
//   - Login / Logout as an operator
//   - Signup / Unregister a participant by email (requires login)
//
// Outcomes of asynchronous actions are reported through a single transient
// notification printed as it arrives; see the notify package for the
// dismissal rules.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
