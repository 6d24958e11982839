package oauth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// TokenFromJWT wraps a raw bearer in an oauth2.Token, taking the expiry from
// the exp claim when raw parses as a JWT. The signature is not verified; the
// API does that. Opaque tokens are accepted with no expiry.
func TokenFromJWT(raw string) (*oauth2.Token, error) {
	raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "Bearer "))
	if raw == "" {
		return nil, ErrEmptyToken
	}

	token := &oauth2.Token{
		AccessToken: raw,
		TokenType:   "Bearer",
	}

	if strings.Count(raw, ".") != 2 {
		return token, nil
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if claims.ExpiresAt != nil {
		token.Expiry = claims.ExpiresAt.Time
	}

	return token, nil
}

// Subject returns the sub claim of a JWT bearer, or "" for opaque tokens.
func Subject(raw string) string {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return ""
	}
	return claims.Subject
}
