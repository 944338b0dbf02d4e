// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrettyHandler(t *testing.T) {
	handler := NewPrettyHandler(nil)
	require.NotNil(t, handler)
	assert.NotNil(t, handler.h)
	assert.NotNil(t, handler.b)
	assert.NotNil(t, handler.m)
	assert.NotNil(t, handler.writer)
	assert.False(t, handler.colour)

	handler = NewPrettyHandler(&slog.HandlerOptions{}, WithColour(), WithOutputEmptyAttrs())
	assert.True(t, handler.colour)
	assert.True(t, handler.outputEmptyAttrs)
}

func TestPrettyHandler_Enabled(t *testing.T) {
	handler := NewPrettyHandler(&slog.HandlerOptions{Level: slog.LevelInfo})
	assert.False(t, handler.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelError))
}

func TestPrettyHandler_Handle(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(NewPrettyHandler(&slog.HandlerOptions{Level: slog.LevelDebug}, WithDestinationWriter(&buf)))
	logger.Info("table built", "entries", 752)

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Contains(t, out, "INFO:")
	assert.Contains(t, out, "table built")
	assert.Contains(t, out, `"entries": 752`)
	assert.NotContains(t, out, "\033[")
}

func TestPrettyHandler_WithAttrsSharesBuffer(t *testing.T) {
	var buf bytes.Buffer

	handler := NewPrettyHandler(&slog.HandlerOptions{}, WithDestinationWriter(&buf))
	child, ok := handler.WithAttrs([]slog.Attr{slog.String("command", "generate")}).(*PrettyHandler)
	require.True(t, ok)
	assert.Same(t, handler.b, child.b)
	assert.Same(t, handler.m, child.m)

	slog.New(child).Warn("fetching")
	assert.Contains(t, buf.String(), `"command": "generate"`)

	group, ok := handler.WithGroup("fetch").(*PrettyHandler)
	require.True(t, ok)
	assert.Same(t, handler.b, group.b)
}

func TestPrettyHandler_SuppressedKeys(t *testing.T) {
	var buf bytes.Buffer

	handler := NewPrettyHandler(&slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return a
		},
	}, WithDestinationWriter(&buf))

	slog.New(handler).Warn("no time")
	assert.True(t, strings.HasPrefix(buf.String(), "WARN:"))
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestPrettyHandler_WriteError(t *testing.T) {
	handler := NewPrettyHandler(&slog.HandlerOptions{}, WithDestinationWriter(errWriter{}))

	r := slog.NewRecord(time.Time{}, slog.LevelError, "x", 0)
	err := handler.Handle(context.Background(), r)
	require.ErrorIs(t, err, ErrIoWrite)
}
