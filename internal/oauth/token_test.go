package oauth

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"github.com/garrettladley/healthion/internal/db"
)

type fakeQuerier struct {
	mu      sync.Mutex
	token   *db.Token
	getErr  error
	upserts int
}

var _ db.Querier = (*fakeQuerier)(nil)

func (q *fakeQuerier) GetToken(context.Context) (db.Token, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.getErr != nil {
		return db.Token{}, q.getErr
	}
	if q.token == nil {
		return db.Token{}, sql.ErrNoRows
	}
	return *q.token, nil
}

func (q *fakeQuerier) UpsertToken(_ context.Context, arg db.UpsertTokenParams) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.upserts++
	q.token = &db.Token{
		AccessToken:  arg.AccessToken,
		TokenType:    arg.TokenType,
		RefreshToken: arg.RefreshToken,
		Expiry:       arg.Expiry,
	}
	return nil
}

func (q *fakeQuerier) DeleteToken(context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.token = nil
	return nil
}

func ptr[T any](v T) *T { return &v }

func TestDBTokenSourceToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		stored     *db.Token
		getErr     error
		wantToken  string
		wantErr    error
		wantAnyErr bool
	}{
		{
			name:    "nothing stored",
			wantErr: ErrNoToken,
		},
		{
			name:      "valid token",
			stored:    &db.Token{AccessToken: "abc", TokenType: "Bearer", Expiry: time.Now().Add(time.Hour)},
			wantToken: "abc",
		},
		{
			name:      "no expiry is treated as valid",
			stored:    &db.Token{AccessToken: "opaque", TokenType: "Bearer"},
			wantToken: "opaque",
		},
		{
			name:    "expired without refresh token",
			stored:  &db.Token{AccessToken: "old", TokenType: "Bearer", Expiry: time.Now().Add(-time.Hour)},
			wantErr: ErrTokenExpired,
		},
		{
			name:    "expired with refresh token but no refresh config",
			stored:  &db.Token{AccessToken: "old", TokenType: "Bearer", RefreshToken: ptr("r"), Expiry: time.Now().Add(-time.Hour)},
			wantErr: ErrTokenExpired,
		},
		{
			name:       "database failure",
			getErr:     errors.New("disk I/O error"),
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := NewDBTokenSource(&fakeQuerier{token: tt.stored, getErr: tt.getErr})
			got, err := src.Token()

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Token() error = %v, want %v", err, tt.wantErr)
				}
				return
			case tt.wantAnyErr:
				if err == nil {
					t.Fatal("Token() error = nil, want error")
				}
				if IsCredentialUnavailable(err) {
					t.Errorf("IsCredentialUnavailable(%v) = true, want false", err)
				}
				return
			case err != nil:
				t.Fatalf("Token() unexpected error = %v", err)
			}

			if got.AccessToken != tt.wantToken {
				t.Errorf("Token().AccessToken = %q, want %q", got.AccessToken, tt.wantToken)
			}
		})
	}
}

func TestDBTokenSourceRefresh(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm() error = %v", err)
		}
		if got := r.PostForm.Get("refresh_token"); got != "refresh-1" {
			t.Errorf("refresh_token = %q, want %q", got, "refresh-1")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"fresh","token_type":"Bearer","expires_in":3600,"refresh_token":"refresh-2"}`))
	}))
	t.Cleanup(srv.Close)

	q := &fakeQuerier{token: &db.Token{
		AccessToken:  "stale",
		TokenType:    "Bearer",
		RefreshToken: ptr("refresh-1"),
		Expiry:       time.Now().Add(-time.Minute),
	}}
	src := NewDBTokenSource(q, WithRefreshConfig(&oauth2.Config{
		ClientID: "client",
		Endpoint: oauth2.Endpoint{TokenURL: srv.URL, AuthStyle: oauth2.AuthStyleInParams},
	}))

	got, err := src.Token()
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if got.AccessToken != "fresh" {
		t.Errorf("Token().AccessToken = %q, want %q", got.AccessToken, "fresh")
	}
	if q.upserts != 1 {
		t.Errorf("upserts = %d, want 1", q.upserts)
	}
	if q.token.RefreshToken == nil || *q.token.RefreshToken != "refresh-2" {
		t.Errorf("stored refresh token = %v, want refresh-2", q.token.RefreshToken)
	}
}

func TestDBTokenSourceSaveAndClear(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	q := &fakeQuerier{}
	src := NewDBTokenSource(q)

	if err := src.Save(ctx, &oauth2.Token{}); !errors.Is(err, ErrEmptyToken) {
		t.Fatalf("Save(empty) error = %v, want %v", err, ErrEmptyToken)
	}

	if err := src.Save(ctx, &oauth2.Token{AccessToken: "abc"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if q.token == nil || q.token.TokenType != "Bearer" {
		t.Fatalf("stored token = %+v, want Bearer token", q.token)
	}

	has, err := src.HasToken(ctx)
	if err != nil || !has {
		t.Fatalf("HasToken() = %v, %v, want true, nil", has, err)
	}

	if err := src.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, err := src.Token(); !errors.Is(err, ErrNoToken) {
		t.Errorf("Token() after Clear error = %v, want %v", err, ErrNoToken)
	}
	has, err = src.HasToken(ctx)
	if err != nil || has {
		t.Errorf("HasToken() after Clear = %v, %v, want false, nil", has, err)
	}
}
