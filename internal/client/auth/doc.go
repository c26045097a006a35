// Package auth keeps outbound storefront requests authenticated.
//
// # Overview
//
// Three pieces cooperate:
//
//  1. Validator decodes the exp claim of an access token and treats a token
//     that expires within a look-ahead margin (300s by default) as already
//     expired. Missing or undecodable tokens are expired too; the check never
//     fails.
//  2. Refresher exchanges the stored refresh token for a new access token via
//     POST {base}/auth/token/refresh/. It persists the result on success and
//     purges both tokens on any failure.
//  3. Dispatcher sends requests with "Authorization: Bearer <token>". It
//     refreshes proactively when the stored token is missing or expiring and,
//     on a 401, refreshes once and replays the request once.
//
// # Single-flight refresh
//
// A Dispatcher is either idle or refreshing. The first caller that needs a
// refresh while idle starts one; every caller arriving while it is in flight
// waits on the same pending result and observes the same token or the same
// failure. At most one refresh call is in flight per Dispatcher.
//
// The refresh itself runs detached from the caller's context (bounded by the
// refresh timeout), so one caller giving up does not fail the refresh for the
// others.
//
// # Errors
//
// ErrAuthRequired means the session cannot be recovered and the user has to
// log in again; it wraps the underlying cause (ErrNoRefreshToken,
// ErrRefreshRejected, a transport error). Transport errors and non-401
// responses of the request itself are returned unchanged.
package auth
