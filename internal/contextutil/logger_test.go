package contextutil

import (
	"context"
	"io"
	"log/slog"
	"testing"
)

func TestLoggerFromContext(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name string
		ctx  context.Context
		want *slog.Logger
	}{
		{
			name: "falls back to default",
			ctx:  context.Background(),
			want: slog.Default(),
		},
		{
			name: "returns attached logger",
			ctx:  WithLogger(context.Background(), custom),
			want: custom,
		},
		{
			name: "ignores foreign value under same string key",
			ctx:  context.WithValue(context.Background(), "logger", custom), //nolint:staticcheck
			want: slog.Default(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LoggerFromContext(tt.ctx); got != tt.want {
				t.Errorf("LoggerFromContext() = %p, want %p", got, tt.want)
			}
		})
	}
}
