// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	tests := []struct {
		name string
		ctx  context.Context
		want *slog.Logger
	}{
		{
			name: "context with logger",
			ctx:  New(context.Background(), custom),
			want: custom,
		},
		{
			name: "context without logger",
			ctx:  context.Background(),
			want: DefaultLogger,
		},
		{
			name: "New with nil logger",
			ctx:  New(context.Background(), nil),
			want: DefaultLogger,
		},
		{
			name: "context with wrong type value",
			ctx:  context.WithValue(context.Background(), loggerKey{}, "not a logger"),
			want: DefaultLogger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.want, Logger(tt.ctx))
		})
	}
}

func TestLoggingFunctions(t *testing.T) {
	var buf bytes.Buffer

	ctx := New(context.Background(), slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	tests := []struct {
		name    string
		logFunc func(context.Context, string, ...any)
		level   string
	}{
		{name: "info", logFunc: Info, level: "INFO"},
		{name: "debug", logFunc: Debug, level: "DEBUG"},
		{name: "warn", logFunc: Warn, level: "WARN"},
		{name: "error", logFunc: Error, level: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.logFunc(ctx, "table built", "entries", 3)

			out := buf.String()
			assert.Contains(t, out, tt.level)
			assert.Contains(t, out, "table built")
			assert.Contains(t, out, "entries=3")
		})
	}
}

func TestLogLevelFromEnv(t *testing.T) {
	tests := []struct {
		env  string
		want slog.Level
	}{
		{env: "DEBUG", want: slog.LevelDebug},
		{env: "info", want: slog.LevelInfo},
		{env: "WARN", want: slog.LevelWarn},
		{env: " ERROR ", want: slog.LevelError},
		{env: "verbose", want: slog.LevelWarn},
		{env: "", want: slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(LogLevelEnvVar, tt.env)
			assert.Equal(t, tt.want, logLevelFromEnv())
		})
	}
}

func TestNewJSONLogger(t *testing.T) {
	original := LevelVar.Level()
	defer LevelVar.Set(original)

	LevelVar.Set(slog.LevelInfo)

	var buf bytes.Buffer

	NewJSONLogger(&buf).Info("wrote header", "path", "stdColors.h")
	require.NotEmpty(t, buf.String())
	assert.Contains(t, buf.String(), `"path":"stdColors.h"`)

	buf.Reset()
	NewJSONLogger(&buf).Debug("hidden")
	assert.Empty(t, buf.String())
}
