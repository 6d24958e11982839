package oauth

import (
	"context"
	"errors"
	"testing"
)

type checkerFunc func(ctx context.Context) (bool, error)

func (f checkerFunc) HasToken(ctx context.Context) (bool, error) { return f(ctx) }

func TestStatusTracker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		checker checkerFunc
		want    Status
		wantErr bool
	}{
		{
			name:    "token present",
			checker: func(context.Context) (bool, error) { return true, nil },
			want:    Status{Authenticated: true},
		},
		{
			name:    "no token",
			checker: func(context.Context) (bool, error) { return false, nil },
			want:    Status{},
		},
		{
			name:    "checker failure",
			checker: func(context.Context) (bool, error) { return true, errors.New("boom") },
			want:    Status{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tracker := NewStatusTracker(tt.checker)
			if got := tracker.Status(); !got.Pending {
				t.Fatalf("initial Status() = %+v, want pending", got)
			}

			got, err := tracker.Resolve(t.Context())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
			if tracker.Status() != tt.want {
				t.Errorf("Status() = %+v, want %+v", tracker.Status(), tt.want)
			}

			tracker.SignOut()
			if got := tracker.Status(); got.Authenticated || got.Pending {
				t.Errorf("Status() after SignOut = %+v, want zero", got)
			}
		})
	}
}
