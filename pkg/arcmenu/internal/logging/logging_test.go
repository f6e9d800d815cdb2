package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" DEBUG ": slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for raw, want := range cases {
		require.Equal(t, want, ParseLevel(raw), raw)
	}
}

func TestInternalLoggerDefaultsToError(t *testing.T) {
	ctx := context.Background()
	logger := GetInternalLogger()
	require.NotNil(t, logger)
	require.False(t, logger.Enabled(ctx, slog.LevelWarn))
	require.True(t, logger.Enabled(ctx, slog.LevelError))

	SetInternalLogLevel(slog.LevelDebug)
	t.Cleanup(func() { SetInternalLogLevel(slog.LevelError) })
	require.True(t, logger.Enabled(ctx, slog.LevelDebug))
}
