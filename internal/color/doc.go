// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color decorates log output with ANSI escape codes.
// Output is colored when NO_COLOR is unset and either FORCE_COLOR is set or
// stderr is a terminal (golang.org/x/term).
package color
