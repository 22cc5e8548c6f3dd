package storefront

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// TokenPair holds the two independent credentials issued by the API: a
// short-lived access token (a JWT, presented on authenticated requests) and a
// long-lived refresh token (used only to mint a new access token).
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// stripBearer removes the "Bearer " prefix the API prepends to access tokens
// in its responses. Clients of this SDK always handle the bare JWT; the
// prefix is reattached by the request machinery.
func stripBearer(accessToken string) string {
	return strings.TrimPrefix(accessToken, "Bearer ")
}

// TokenExpiry extracts the expiry claim from an access token WITHOUT
// verifying its signature. Verification is the server's job; the client only
// needs the expiry to decide whether presenting the token is pointless.
func TokenExpiry(accessToken string) (time.Time, error) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(accessToken, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, errors.Wrap(err, "error parsing access token")
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, errors.Wrap(
			err,
			"error reading access token expiry claim",
		)
	}
	if exp == nil {
		return time.Time{}, errors.New("access token carries no expiry claim")
	}
	return exp.Time, nil
}

// TokenStale reports whether an access token is expired or will expire within
// the given skew. An unparsable token is reported stale-- the refresh path is
// the only sensible next step for it anyway.
func TokenStale(accessToken string, skew time.Duration) bool {
	expiry, err := TokenExpiry(accessToken)
	if err != nil {
		return true
	}
	return time.Now().Add(skew).After(expiry)
}
