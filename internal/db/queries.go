package db

import (
	"context"
	"database/sql"
	"time"
)

type Token struct {
	AccessToken  string
	TokenType    string
	RefreshToken *string
	Expiry       time.Time
	UpdatedAt    time.Time
}

type UpsertTokenParams struct {
	AccessToken  string
	TokenType    string
	RefreshToken *string
	Expiry       time.Time
}

type Querier interface {
	GetToken(ctx context.Context) (Token, error)
	UpsertToken(ctx context.Context, arg UpsertTokenParams) error
	DeleteToken(ctx context.Context) error
}

var _ Querier = (*Queries)(nil)

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

const getToken = `SELECT access_token, token_type, refresh_token, expiry, updated_at FROM credentials WHERE id = 1`

// GetToken returns sql.ErrNoRows when no credential is stored.
func (q *Queries) GetToken(ctx context.Context) (Token, error) {
	var (
		t       Token
		refresh sql.NullString
		expiry  sql.NullTime
	)
	err := q.db.QueryRowContext(ctx, getToken).Scan(&t.AccessToken, &t.TokenType, &refresh, &expiry, &t.UpdatedAt)
	if err != nil {
		return Token{}, err
	}
	if refresh.Valid {
		t.RefreshToken = &refresh.String
	}
	if expiry.Valid {
		t.Expiry = expiry.Time
	}
	return t, nil
}

const upsertToken = `
INSERT INTO credentials (id, access_token, token_type, refresh_token, expiry, updated_at)
VALUES (1, ?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (id) DO UPDATE SET
    access_token = excluded.access_token,
    token_type = excluded.token_type,
    refresh_token = excluded.refresh_token,
    expiry = excluded.expiry,
    updated_at = CURRENT_TIMESTAMP`

func (q *Queries) UpsertToken(ctx context.Context, arg UpsertTokenParams) error {
	var expiry sql.NullTime
	if !arg.Expiry.IsZero() {
		expiry = sql.NullTime{Time: arg.Expiry.UTC(), Valid: true}
	}
	_, err := q.db.ExecContext(ctx, upsertToken, arg.AccessToken, arg.TokenType, arg.RefreshToken, expiry)
	return err
}

const deleteToken = `DELETE FROM credentials WHERE id = 1`

func (q *Queries) DeleteToken(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteToken)
	return err
}
