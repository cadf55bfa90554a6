// Package cli provides the interactive KrishiConnect command-line client.
//
// It wires configuration, the REST API client, and the onboarding services
// into an interactive REPL. Typical flow: prompt for credentials, resolve
// whether the account already has a role-specific profile, and execute user
// commands for the session's role.
//
// Key features:
//   - Register an account (admin, farmer or landlord) with profile details
//     and optional image attachments
//   - Login / Logout with role-based command routing
//   - Profile status and creation for farmers and landlords
//   - Dashboard statistics, listings and collaborations for admins
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
