// Package cli provides the interactive VoltShop command-line client.
//
// It wires configuration, local storage, the token machinery, API services
// and an interactive REPL. A stored session survives restarts: if a refresh
// token is present the user starts logged in and the first request refreshes
// the access token as needed.
//
// Key features:
//   - Login / Logout
//   - Browse products, show a product
//   - Local cart: add, remove, view, checkout
//   - Orders and account messages
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
