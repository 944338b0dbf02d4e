// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package colortable

import "fmt"

const opaque = 0xFF

// PackedColor is a 32 bit RRGGBBAA value.
type PackedColor uint32

// Pack returns the packed value of the channels with a fully opaque alpha.
func Pack(red, green, blue uint8) PackedColor {
	return PackedColor(uint32(red)<<24 | uint32(green)<<16 | uint32(blue)<<8 | opaque)
}

// RGBA returns the individual channels.
func (p PackedColor) RGBA() (red, green, blue, alpha uint8) {
	return uint8(p >> 24), uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// Literal renders the value as a C hexadecimal literal, e.g. 0xFF1000FF.
func (p PackedColor) Literal() string {
	return fmt.Sprintf("0x%08X", uint32(p))
}

// Hex renders the color channels as a #rrggbb string.
func (p PackedColor) Hex() string {
	return fmt.Sprintf("#%06x", uint32(p)>>8)
}

func (p PackedColor) String() string {
	return p.Literal()
}
