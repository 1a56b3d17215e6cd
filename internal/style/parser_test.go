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

package style

import (
	"testing"

	"github.com/yonatan-v/minidocx/domain"
	"github.com/yonatan-v/minidocx/internal/reader"
)

func TestParseStylesNilRoot(t *testing.T) {
	got := ParseStyles(nil)
	if len(got) != 0 {
		t.Errorf("ParseStyles(nil) = %v; want empty map", got)
	}
}

func TestParseStylesSkipsMissingStyleID(t *testing.T) {
	root := mustParse(t, `<w:styles xmlns:w="w">
		<w:style w:type="character"><w:rPr><w:b/></w:rPr></w:style>
	</w:styles>`)

	got := ParseStyles(root)
	if len(got) != 0 {
		t.Errorf("ParseStyles with no styleId = %v; want empty map", got)
	}
}

func TestParseStyleFontSizeHalfPoints(t *testing.T) {
	// B1: <w:sz w:val="24"/> yields fontSize == 12.0.
	root := mustParse(t, `<w:styles xmlns:w="w">
		<w:style w:type="character" w:styleId="Big"><w:rPr><w:sz w:val="24"/></w:rPr></w:style>
	</w:styles>`)

	got := ParseStyles(root)
	def, ok := got["Big"]
	if !ok {
		t.Fatal("styleId Big missing")
	}
	if def.FontSize != 12.0 {
		t.Errorf("FontSize = %v; want 12.0", def.FontSize)
	}
}

func TestParseStyleSpacingConversion(t *testing.T) {
	// B2: before=240 after=120 line=360 -> 12.0, 6.0, 1.5.
	root := mustParse(t, `<w:styles xmlns:w="w">
		<w:style w:type="paragraph" w:styleId="Body">
			<w:pPr><w:spacing w:before="240" w:after="120" w:line="360"/></w:pPr>
		</w:style>
	</w:styles>`)

	def := ParseStyles(root)["Body"]
	if def.SpaceBefore != 12.0 {
		t.Errorf("SpaceBefore = %v; want 12.0", def.SpaceBefore)
	}
	if def.SpaceAfter != 6.0 {
		t.Errorf("SpaceAfter = %v; want 6.0", def.SpaceAfter)
	}
	if def.LineSpacing != 1.5 {
		t.Errorf("LineSpacing = %v; want 1.5", def.LineSpacing)
	}
}

func TestParseStyleJustificationAndBidi(t *testing.T) {
	root := mustParse(t, `<w:styles xmlns:w="w">
		<w:style w:type="paragraph" w:styleId="Centered">
			<w:pPr><w:jc w:val="center"/><w:bidi/></w:pPr>
		</w:style>
	</w:styles>`)

	def := ParseStyles(root)["Centered"]
	if def.Justification != domain.JustifyCenter {
		t.Errorf("Justification = %v; want Center", def.Justification)
	}
	if !def.RightDirection {
		t.Error("RightDirection = false; want true")
	}
}

func TestParseStyleJustificationEndAndDistributeLeaveLeft(t *testing.T) {
	// spec.md enumerates exactly "center", "right", "both" as non-Left
	// values; "end" and "distribute" are real OOXML values but fall
	// through to the default (Left) here.
	root := mustParse(t, `<w:styles xmlns:w="w">
		<w:style w:type="paragraph" w:styleId="End">
			<w:pPr><w:jc w:val="end"/></w:pPr>
		</w:style>
		<w:style w:type="paragraph" w:styleId="Distribute">
			<w:pPr><w:jc w:val="distribute"/></w:pPr>
		</w:style>
	</w:styles>`)

	styles := ParseStyles(root)
	if got := styles["End"].Justification; got != domain.JustifyLeft {
		t.Errorf("Justification for w:val=\"end\" = %v; want Left", got)
	}
	if got := styles["Distribute"].Justification; got != domain.JustifyLeft {
		t.Errorf("Justification for w:val=\"distribute\" = %v; want Left", got)
	}
}

func TestParseStyleBasedOn(t *testing.T) {
	root := mustParse(t, `<w:styles xmlns:w="w">
		<w:style w:type="character" w:styleId="A"><w:basedOn w:val="B"/></w:style>
	</w:styles>`)

	def := ParseStyles(root)["A"]
	if def.BasedOn != "B" {
		t.Errorf("BasedOn = %q; want B", def.BasedOn)
	}
}

func mustParse(t *testing.T, xmlSrc string) *reader.Element {
	t.Helper()
	el, err := reader.ParseXMLTree([]byte(xmlSrc))
	if err != nil {
		t.Fatalf("ParseXMLTree: %v", err)
	}
	return el
}
