package xcontext

import "testing"

func TestEnsureRequestID(t *testing.T) {
	t.Parallel()

	ctx, id := EnsureRequestID(t.Context())
	if id == "" {
		t.Fatal("EnsureRequestID() id is empty")
	}

	got, ok := GetRequestID(ctx)
	if !ok || got != id {
		t.Errorf("GetRequestID() = %q, %v, want %q, true", got, ok, id)
	}

	_, again := EnsureRequestID(ctx)
	if again != id {
		t.Errorf("EnsureRequestID() on existing ctx = %q, want %q", again, id)
	}
}

func TestCredential(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		token  string
		set    bool
		want   string
		wantOK bool
	}{
		{name: "unset", set: false, want: "", wantOK: false},
		{name: "empty token", set: true, token: "", want: "", wantOK: false},
		{name: "token", set: true, token: "abc", want: "abc", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := t.Context()
			if tt.set {
				ctx = SetCredential(ctx, tt.token)
			}

			got, ok := GetCredential(ctx)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("GetCredential() = %q, %v, want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
