package oauth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/garrettladley/healthion/internal/db"
)

type TokenChecker interface {
	HasToken(ctx context.Context) (bool, error)
}

// TokenStore persists the credential the user handed to the CLI.
type TokenStore interface {
	Save(ctx context.Context, token *oauth2.Token) error
	Clear(ctx context.Context) error
}

var (
	_ TokenChecker       = (*DBTokenSource)(nil)
	_ TokenStore         = (*DBTokenSource)(nil)
	_ oauth2.TokenSource = (*DBTokenSource)(nil)
)

type DBTokenSource struct {
	config  *oauth2.Config
	querier db.Querier
	mu      sync.Mutex
	token   *oauth2.Token
}

type TokenSourceOption func(*DBTokenSource)

// WithRefreshConfig enables refreshing expired tokens against config's token
// endpoint. Without it an expired token yields ErrTokenExpired.
func WithRefreshConfig(config *oauth2.Config) TokenSourceOption {
	return func(s *DBTokenSource) { s.config = config }
}

func NewDBTokenSource(querier db.Querier, opts ...TokenSourceOption) *DBTokenSource {
	s := &DBTokenSource{querier: querier}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *DBTokenSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != nil && s.token.Valid() {
		return s.token, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	dbToken, err := s.querier.GetToken(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoToken
		}

		return nil, fmt.Errorf("failed to load token: %w", err)
	}

	token := dbTokenToOAuth2(dbToken)

	if token.Valid() {
		s.token = token
		return token, nil
	}

	if token.RefreshToken == "" || s.config == nil {
		return nil, ErrTokenExpired
	}

	newToken, err := s.config.TokenSource(ctx, token).Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	if err := s.saveToken(ctx, newToken); err != nil {
		return nil, fmt.Errorf("failed to save refreshed token: %w", err)
	}

	s.token = newToken

	return newToken, nil
}

func (s *DBTokenSource) HasToken(ctx context.Context) (bool, error) {
	_, err := s.querier.GetToken(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get token: %w", err)
	}
	return true, nil
}

func (s *DBTokenSource) Save(ctx context.Context, token *oauth2.Token) error {
	if token == nil || token.AccessToken == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.saveToken(ctx, token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	s.token = token
	return nil
}

// Clear removes the stored credential and drops the in-memory copy.
func (s *DBTokenSource) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = nil
	if err := s.querier.DeleteToken(ctx); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}

func (s *DBTokenSource) saveToken(ctx context.Context, token *oauth2.Token) error {
	tokenType := token.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}

	params := db.UpsertTokenParams{
		AccessToken: token.AccessToken,
		TokenType:   tokenType,
		Expiry:      token.Expiry,
	}

	if token.RefreshToken != "" {
		params.RefreshToken = &token.RefreshToken
	}

	return s.querier.UpsertToken(ctx, params)
}

func dbTokenToOAuth2(t db.Token) *oauth2.Token {
	token := &oauth2.Token{
		AccessToken: t.AccessToken,
		TokenType:   t.TokenType,
		Expiry:      t.Expiry,
	}

	if t.RefreshToken != nil {
		token.RefreshToken = *t.RefreshToken
	}

	return token
}
