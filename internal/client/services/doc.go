// Package services contains the application services of the KrishiConnect
// client: the authentication gate, the attachment uploader, the profile
// resolver, the registration orchestrator, and the dashboard reads.
//
// Every service is stateless given its inputs except the registration
// orchestrator, which tracks per-attempt state so duplicate submissions can
// be rejected and partial failures reported. Sessions are passed in
// explicitly; no service holds ambient authentication state.
package services
