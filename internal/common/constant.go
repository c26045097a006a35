// Package common contains shared constants and sentinel errors used across
// VoltShop components.
package common

// Local storage keys. The token pair is always written and deleted together.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
	CartKey         = "local_cart"
)

// AuthorizationHeaderName carries the bearer access token on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is prepended to the access token in the Authorization header.
const BearerPrefix = "Bearer "
