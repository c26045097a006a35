package refreshtokens

import "time"

// RefreshToken is a stored refresh token. Only the SHA-256 of the token is
// kept. A rotated token stays around with Revoked set so reuse can be told
// apart from an unknown token.
type RefreshToken struct {
	Hash      string
	UserID    string
	Expires   time.Time
	Revoked   bool
	CreatedAt time.Time
}
