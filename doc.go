// Package dce provides the shared vocabulary of the DCE client: identities,
// accounts with their dual-currency balance, transfer records as returned by
// the ledger service, and the error taxonomy used across the client.
//
// The client itself is split into small packages, from leaves to root:
//   - session: authentication handshake with an identity provider, producing
//     a signed identity and the authenticated channel to the ledger.
//   - ledger: typed request/response facade over the remote ledger service.
//   - account: process-local state of the logged in account.
//   - workflow: the coordinator governing the modal workflows (register
//     name, grant, transfer) and the refresh of the local state.
//   - renderer: pure transformation of transfer records into a table model,
//     and its markdown rendering.
//
// The dce command (package cmd) hosts them behind subcommands, with config
// and logger providing the settings and the structured logger.
//
// Amounts are expressed in two independent currencies, orange and green,
// counted in whole units. There are no fractional units.
package dce
