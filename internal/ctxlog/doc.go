// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a *slog.Logger on a context.Context.
//
// The default logger writes to stderr through PrettyHandler so that generated
// output on stdout is never interleaved with log lines. The level is read from
// the STDCOLORS_LOG_LEVEL environment variable (DEBUG, INFO, WARN or ERROR),
// anything else means WARN.
package ctxlog
