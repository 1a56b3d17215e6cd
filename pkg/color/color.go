/*
MIT License

Copyright (c) 2025 Misael Montero
Copyright (c) 2020-2023 fumiama (original go-docx)

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

// Package color parses the hex color strings WordprocessingML uses for
// w:color and w:shd fill values.
package color

import (
	"strconv"

	"github.com/yonatan-v/minidocx/domain"
)

// Parse reads a 6-digit ("RRGGBB", A=255) or 8-digit ("RRGGBBAA") hex
// string into a domain.Color. Any other length, or any non-hex character,
// yields domain.Empty: malformed color attributes are soft errors (they
// are treated as unset, never rejected).
func Parse(hex string) domain.Color {
	switch len(hex) {
	case 6:
		r, okR := parseByte(hex[0:2])
		g, okG := parseByte(hex[2:4])
		b, okB := parseByte(hex[4:6])
		if !okR || !okG || !okB {
			return domain.Empty
		}
		return domain.Color{R: r, G: g, B: b, A: 255}
	case 8:
		r, okR := parseByte(hex[0:2])
		g, okG := parseByte(hex[2:4])
		b, okB := parseByte(hex[4:6])
		a, okA := parseByte(hex[6:8])
		if !okR || !okG || !okB || !okA {
			return domain.Empty
		}
		return domain.Color{R: r, G: g, B: b, A: a}
	default:
		return domain.Empty
	}
}

func parseByte(s string) (uint8, bool) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}

// ToHex renders a color back to its 6-digit "RRGGBB" form, ignoring alpha.
// Used by the CLI dump tool for human-readable output.
func ToHex(c domain.Color) string {
	const hexDigits = "0123456789ABCDEF"
	buf := make([]byte, 6)
	buf[0] = hexDigits[c.R>>4]
	buf[1] = hexDigits[c.R&0xF]
	buf[2] = hexDigits[c.G>>4]
	buf[3] = hexDigits[c.G&0xF]
	buf[4] = hexDigits[c.B>>4]
	buf[5] = hexDigits[c.B&0xF]
	return string(buf)
}
