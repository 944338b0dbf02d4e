// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package colortable

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const minRecordTokens = 4

// ErrParseChannel is returned when a record line has a channel that is not a base 10 integer in 0..255.
var ErrParseChannel = errors.New("invalid color channel")

// Record is a single color line from the source.
type Record struct {
	Red   uint8
	Green uint8
	Blue  uint8
	// Name is the lowercased, single space joined name.
	Name string
}

// Packed returns the packed, fully opaque value of the record.
func (r Record) Packed() PackedColor {
	return Pack(r.Red, r.Green, r.Blue)
}

// ParseLine parses a single source line.
// The boolean result is false for lines that are not records (fewer than four tokens).
func ParseLine(line string) (Record, bool, error) {
	parts := strings.Fields(line)
	if len(parts) < minRecordTokens {
		return Record{}, false, nil
	}

	var channels [3]uint8

	for i := range channels {
		v, err := strconv.ParseUint(parts[i], 10, 8)
		if err != nil {
			return Record{}, false, fmt.Errorf("%w: %q: %w", ErrParseChannel, parts[i], err)
		}

		channels[i] = uint8(v)
	}

	return Record{
		Red:   channels[0],
		Green: channels[1],
		Blue:  channels[2],
		Name:  strings.ToLower(strings.Join(parts[3:], " ")),
	}, true, nil
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
