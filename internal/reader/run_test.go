/*
MIT License

Copyright (c) 2025 Misael Monterroca

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

package reader

import (
	"testing"

	"github.com/yonatan-v/minidocx/domain"
)

func TestReadRunColorFontAndLang(t *testing.T) {
	p := mustParseElement(t, `<w:p xmlns:w="w">
		<w:r>
			<w:rPr>
				<w:lang w:val="en-US"/>
				<w:color w:val="FF8000"/>
				<w:shd w:fill="00FF80"/>
				<w:rFonts w:ascii="Consolas"/>
				<w:sz w:val="28"/>
			</w:rPr>
			<w:t>x</w:t>
		</w:r>
	</w:p>`)

	para := ReadParagraph(p, noStyles)
	run := para.Runs[0]

	if run.Lang != "en-US" {
		t.Errorf("Lang = %q; want en-US", run.Lang)
	}
	if want := (domain.Color{R: 255, G: 128, B: 0, A: 255}); run.Color != want {
		t.Errorf("Color = %+v; want %+v", run.Color, want)
	}
	if want := (domain.Color{R: 0, G: 255, B: 128, A: 255}); run.BackColor != want {
		t.Errorf("BackColor = %+v; want %+v", run.BackColor, want)
	}
	if run.FontFamily != "Consolas" {
		t.Errorf("FontFamily = %q; want Consolas", run.FontFamily)
	}
	if run.FontSize != 14 {
		t.Errorf("FontSize = %v; want 14 (28 half-points)", run.FontSize)
	}
}

func TestReadRunStyleIDDefaultsToParagraphStyle(t *testing.T) {
	styles := map[string]*domain.StyleDef{
		"Quote": {Italic: true},
	}
	p := mustParseElement(t, `<w:p xmlns:w="w">
		<w:pPr><w:pStyle w:val="Quote"/></w:pPr>
		<w:r><w:t>x</w:t></w:r>
	</w:p>`)

	para := ReadParagraph(p, lookupFrom(styles))
	if !para.Runs[0].Italic {
		t.Error("run did not inherit paragraph style when rStyle absent")
	}
	if para.Runs[0].StyleID != "Quote" {
		t.Errorf("StyleID = %q; want Quote", para.Runs[0].StyleID)
	}
}

func TestReadRunEndnoteReference(t *testing.T) {
	p := mustParseElement(t, `<w:p xmlns:w="w">
		<w:r><w:endnoteReference w:id="3"/></w:r>
	</w:p>`)

	para := ReadParagraph(p, noStyles)
	if para.Runs[0].NoteID != 3 {
		t.Errorf("NoteID = %d; want 3", para.Runs[0].NoteID)
	}
}
