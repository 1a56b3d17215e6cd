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
	"strings"

	"github.com/yonatan-v/minidocx/domain"
	pkgcolor "github.com/yonatan-v/minidocx/pkg/color"
)

// StyleLookup resolves a styleId to its fully inherited StyleDef. Paragraph
// and run readers accept one as a plain function value rather than depending
// on the resolver type directly, so this package never imports the style
// package that in turn depends on it for the Element tree.
type StyleLookup func(styleID string) *domain.StyleDef

func readRun(elem *Element, paraStyleID string, resolve StyleLookup) domain.Run {
	if ref := FindChild(elem, "footnoteReference"); ref != nil {
		return domain.Run{NoteID: noteRefID(ref), Text: runText(elem)}
	}
	if ref := FindChild(elem, "endnoteReference"); ref != nil {
		return domain.Run{NoteID: noteRefID(ref), Text: runText(elem)}
	}

	rPr := FindChild(elem, "rPr")
	styleID := paraStyleID
	if rPr != nil {
		if rStyle := FindChild(rPr, "rStyle"); rStyle != nil {
			if v := attrVal(rStyle, "val"); v != "" {
				styleID = v
			}
		}
	}

	style := resolve(styleID)
	run := domain.Run{
		StyleID:     styleID,
		Bold:        style.Bold,
		Italic:      style.Italic,
		Underline:   style.Underline,
		Strike:      style.Strike,
		Subscript:   style.Subscript,
		Superscript: style.Superscript,
		Color:       style.Color,
		BackColor:   style.BackColor,
		FontFamily:  style.FontFamily,
		FontSize:    style.FontSize,
		Text:        runText(elem),
	}

	if rPr != nil {
		overlayDirectRunProps(&run, rPr)
	}

	return run
}

func noteRefID(ref *Element) int {
	n, _ := parseIntAttr(ref, "id")
	return n
}

// runText extracts a run's visible text from its <w:t> child. Text marked
// xml:space="preserve" is returned verbatim; otherwise leading and trailing
// ASCII spaces are trimmed, so a text node made up entirely of spaces
// collapses to empty.
func runText(elem *Element) string {
	t := FindChild(elem, "t")
	if t == nil {
		return ""
	}
	if v, ok := GetAttr(t, "space"); ok && v == "preserve" {
		return t.Text
	}
	return strings.Trim(t.Text, " ")
}

func overlayDirectRunProps(run *domain.Run, rPr *Element) {
	if lang := FindChild(rPr, "lang"); lang != nil {
		run.Lang = attrVal(lang, "val")
	}

	if HasChild(rPr, "b") {
		run.Bold = true
	}
	if HasChild(rPr, "i") {
		run.Italic = true
	}
	if HasChild(rPr, "u") {
		run.Underline = true
	}
	if HasChild(rPr, "strike") {
		run.Strike = true
	}
	if HasChild(rPr, "subscript") {
		run.Subscript = true
	}
	if HasChild(rPr, "superscript") {
		run.Superscript = true
	}

	if color := FindChild(rPr, "color"); color != nil {
		if c := pkgcolor.Parse(attrVal(color, "val")); !c.IsEmpty() {
			run.Color = c
		}
	}
	if shd := FindChild(rPr, "shd"); shd != nil {
		if c := pkgcolor.Parse(attrVal(shd, "fill")); !c.IsEmpty() {
			run.BackColor = c
		}
	}
	if fonts := FindChild(rPr, "rFonts"); fonts != nil {
		if v := attrVal(fonts, "ascii"); v != "" {
			run.FontFamily = v
		}
	}
	if sz := FindChild(rPr, "sz"); sz != nil {
		if v, ok := parseFloatAttr(sz, "val"); ok {
			run.FontSize = v / 2
		}
	}
}
