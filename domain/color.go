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

// Package domain defines the in-memory representation produced by reading a
// WordprocessingML document: colors, styles, runs, paragraphs, notes, and
// the document that ties them together.
package domain

// Color is an RGBA quadruple. A parsed color has A = 255 unless the source
// carried an 8-digit (RGBA) hex string.
type Color struct {
	R, G, B, A uint8
}

// Empty is the sentinel "unset" color: all channels zero except full alpha.
var Empty = Color{R: 0, G: 0, B: 0, A: 255}

// IsEmpty reports whether c is unset: equal to the Empty sentinel, or the
// zero Color a field holds when nothing was assigned to it. A fully
// transparent black parsed from "00000000" therefore also counts as unset.
func (c Color) IsEmpty() bool {
	return c == Empty || c == (Color{})
}
