// Package cli provides the interactive Luga command-line client.
//
// It wires configuration, the local credential store, the session manager,
// and the API clients into an interactive REPL. Typical flow: restore any
// persisted session, then execute user commands against the backend.
//
// Key features:
//   - Register / Login / Logout and password reset
//   - Chat: list conversations, read transcripts, send prompts
//   - Speech: list voices, synthesize text, clone a voice from samples
//   - Video: upload media, submit lipsync jobs, watch job progress
//   - Billing: list plans, open a checkout session, check quota balance
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
