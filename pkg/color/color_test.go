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

package color

import (
	"testing"

	"github.com/yonatan-v/minidocx/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		hex      string
		expected domain.Color
	}{
		{"rgb orange", "FF8000", domain.Color{R: 255, G: 128, B: 0, A: 255}},
		{"rgba half alpha", "FF800080", domain.Color{R: 255, G: 128, B: 0, A: 128}},
		{"lowercase", "ff0000", domain.Color{R: 255, G: 0, B: 0, A: 255}},
		{"too short falls back to empty", "FF00", domain.Empty},
		{"too long falls back to empty", "FF0000FF00", domain.Empty},
		{"empty string falls back to empty", "", domain.Empty},
		{"non-hex characters fall back to empty", "GGGGGG", domain.Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.hex); got != tt.expected {
				t.Errorf("Parse(%q) = %+v; want %+v", tt.hex, got, tt.expected)
			}
		})
	}
}

func TestToHex(t *testing.T) {
	got := ToHex(domain.Color{R: 255, G: 128, B: 0, A: 255})
	if got != "FF8000" {
		t.Errorf("ToHex = %s; want FF8000", got)
	}
}

func TestParseToHexRoundTrip(t *testing.T) {
	c := Parse("00FF80")
	if ToHex(c) != "00FF80" {
		t.Errorf("round trip failed: %+v -> %s", c, ToHex(c))
	}
}
