package oauth

import (
	"context"

	"golang.org/x/oauth2"
)

var (
	_ TokenChecker       = (*StaticSource)(nil)
	_ oauth2.TokenSource = (*StaticSource)(nil)
)

// StaticSource serves a bearer supplied through configuration instead of the
// local store. It never refreshes.
type StaticSource struct {
	token *oauth2.Token
}

func NewStaticSource(raw string) (*StaticSource, error) {
	token, err := TokenFromJWT(raw)
	if err != nil {
		return nil, err
	}
	return &StaticSource{token: token}, nil
}

func (s *StaticSource) Token() (*oauth2.Token, error) {
	if !s.token.Valid() {
		return nil, ErrTokenExpired
	}
	return s.token, nil
}

func (s *StaticSource) HasToken(context.Context) (bool, error) {
	return s.token.Valid(), nil
}
