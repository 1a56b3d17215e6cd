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

package domain

// Run is a contiguous span of text sharing character-level formatting. A
// note-reference run (NoteID != 0) carries the footnote/endnote marker
// glyph in Text and is never merged with a neighboring run.
type Run struct {
	Text string

	Bold        bool
	Italic      bool
	Underline   bool
	Strike      bool
	Subscript   bool
	Superscript bool
	Color       Color
	BackColor   Color
	FontFamily  string
	FontSize    float64 // points

	Lang    string
	StyleID string
	NoteID  int // 0 means "not a note reference"
}

// fingerprint is the subset of Run fields that determines whether two
// adjacent runs are stylistically indistinguishable. Runs with NoteID != 0
// are excluded from fingerprint comparison entirely by the caller; they are
// never considered equal to anything.
type fingerprint struct {
	styleID                         string
	lang                            string
	bold, italic, underline, strike bool
	subscript, superscript          bool
	color, backColor                Color
	fontFamily                      string
	fontSize                        float64
}

func (r Run) fingerprint() fingerprint {
	return fingerprint{
		styleID:     r.StyleID,
		lang:        r.Lang,
		bold:        r.Bold,
		italic:      r.Italic,
		underline:   r.Underline,
		strike:      r.Strike,
		subscript:   r.Subscript,
		superscript: r.Superscript,
		color:       r.Color,
		backColor:   r.BackColor,
		fontFamily:  r.FontFamily,
		fontSize:    r.FontSize,
	}
}

// SameStyle reports whether r and other are fingerprint-equal and therefore
// mergeable by the run coalescer. Note-reference runs are never SameStyle.
func (r Run) SameStyle(other Run) bool {
	if r.NoteID != 0 || other.NoteID != 0 {
		return false
	}
	return r.fingerprint() == other.fingerprint()
}
