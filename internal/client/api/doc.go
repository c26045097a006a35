// Package api contains the storefront REST client used by the VoltShop CLI.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface): Login,
//     catalog browsing, orders, and account messages.
//  2. An HTTP implementation (see HTTPClient). Login goes out on a plain
//     *http.Client; every other call goes through a Doer, normally an
//     *auth.Dispatcher that attaches the bearer token and refreshes it.
//
// # Error Handling
//
// Non-2xx responses become *StatusError, which unwraps to ErrNotFound (404)
// or ErrUnauthorized (401, 403) so callers can match with errors.Is.
// Transport failures wrap ErrUnavailable. auth.ErrAuthRequired from the
// dispatcher is returned unchanged.
package api
