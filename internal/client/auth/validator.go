package auth

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultExpiryMargin is how close to its expiry a token may get before it is
// treated as expired.
const DefaultExpiryMargin = 300 * time.Second

// Validator judges access tokens by their exp claim only. Signatures are not
// checked: the client cannot verify them and the server stays authoritative.
type Validator struct {
	margin time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

func NewValidator(margin time.Duration) *Validator {
	return &Validator{margin: margin, now: time.Now, parser: jwt.NewParser()}
}

// Expired reports whether token must not be used: it is empty, cannot be
// decoded, carries no exp, or expires at or before now+margin.
func (v *Validator) Expired(token string) bool {
	if token == "" {
		return true
	}
	exp, err := v.ExpiresAt(token)
	if err != nil {
		return true
	}
	return !exp.After(v.now().Add(v.margin))
}

// ExpiresAt decodes the exp claim from the payload segment of token. The
// header is not looked at, so any alg (or none) is accepted.
func (v *Validator) ExpiresAt(token string) (time.Time, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: token has %d segments", errMalformedToken, len(parts))
	}
	payload, err := v.parser.DecodeSegment(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", errMalformedToken, err)
	}
	var claims jwt.RegisteredClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", errMalformedToken, err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, errNoExpiry
	}
	return claims.ExpiresAt.Time, nil
}
