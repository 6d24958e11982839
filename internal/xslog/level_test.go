package xslog

import (
	"log/slog"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Level
		wantErr bool
	}{
		{name: "debug", input: "debug", want: LevelDebug},
		{name: "upper case", input: "WARN", want: LevelWarn},
		{name: "mixed case", input: "Error", want: LevelError},
		{name: "invalid", input: "verbose", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelToSlog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level Level
		want  slog.Level
	}{
		{level: LevelDebug, want: slog.LevelDebug},
		{level: LevelInfo, want: slog.LevelInfo},
		{level: LevelWarn, want: slog.LevelWarn},
		{level: LevelError, want: slog.LevelError},
		{level: Level("bogus"), want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			t.Parallel()
			if got := tt.level.ToSlog(); got != tt.want {
				t.Errorf("Level(%q).ToSlog() = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestLevelUnmarshalText(t *testing.T) {
	t.Parallel()

	var l Level
	if err := l.UnmarshalText([]byte("DEBUG")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if l != LevelDebug {
		t.Errorf("UnmarshalText() = %q, want %q", l, LevelDebug)
	}

	if err := l.UnmarshalText([]byte("loud")); err == nil {
		t.Error("UnmarshalText(loud) error = nil, want error")
	}
}
