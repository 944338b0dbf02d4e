// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package colortable parses an X11 rgb.txt style color list into an ordered,
// deduplicated table of normalized names and packed RGBA values.
//
// Lines that split into fewer than four whitespace separated tokens are
// skipped. The first three tokens are the red, green and blue channels and the
// remaining tokens, joined by single spaces and lowercased, form the name.
// A name is dropped when its space-stripped form matches the space-stripped
// form of an earlier name that starts with the same character, so the first
// spelling seen in the input wins.
package colortable
