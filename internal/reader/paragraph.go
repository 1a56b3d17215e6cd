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
	"github.com/yonatan-v/minidocx/domain"
	"github.com/yonatan-v/minidocx/pkg/constants"
)

const defaultStyleID = "Normal"

// ReadParagraph builds a Paragraph from a <w:p> element: it seeds every
// field from the resolved paragraph style, overlays any direct pPr
// properties, reads each child run, and coalesces the result.
func ReadParagraph(elem *Element, resolve StyleLookup) domain.Paragraph {
	pPr := FindChild(elem, "pPr")

	styleID := defaultStyleID
	if pPr != nil {
		if pStyle := FindChild(pPr, "pStyle"); pStyle != nil {
			if v := attrVal(pStyle, "val"); v != "" {
				styleID = v
			}
		}
	}

	paraStyle := resolve(styleID)
	p := domain.Paragraph{
		StyleID:               styleID,
		Numbered:              paraStyle.Numbered,
		NumberFormat:          paraStyle.NumberFormat,
		NumberStyle:           paraStyle.NumberStyle,
		Level:                 paraStyle.Level,
		Justification:         paraStyle.Justification,
		RightDirection:        paraStyle.RightDirection,
		LineSpacing:           paraStyle.LineSpacing,
		SpaceBefore:           paraStyle.SpaceBefore,
		SpaceAfter:            paraStyle.SpaceAfter,
		SpaceBetweenSameStyle: paraStyle.SpaceBetweenSameStyle,
		IndentLeft:            paraStyle.IndentLeft,
		IndentRight:           paraStyle.IndentRight,
		IndentFirstLine:       paraStyle.IndentFirstLine,
		Tabs:                  append([]domain.TabStop(nil), paraStyle.Tabs...),
	}

	if pPr != nil {
		overlayDirectParagraphProps(&p, pPr)
	}

	for _, r := range FindChildren(elem, "r") {
		p.Runs = append(p.Runs, readRun(r, styleID, resolve))
	}

	p.Runs = Coalesce(p.Runs)
	return p
}

// overlayDirectParagraphProps applies inline <w:pPr> overrides on top of the
// inherited style. Unlike the style resolver's basedOn merge, a direct tab
// list here replaces the inherited one rather than appending to it.
func overlayDirectParagraphProps(p *domain.Paragraph, pPr *Element) {
	if numPr := FindChild(pPr, "numPr"); numPr != nil {
		p.Numbered = true
		if FindChild(numPr, "numId") != nil {
			p.NumberFormat = "decimal"
		}
		if ilvl := FindChild(numPr, "ilvl"); ilvl != nil {
			if n, ok := parseIntAttr(ilvl, "val"); ok {
				p.Level = n
			}
		}
	}

	if jc := FindChild(pPr, "jc"); jc != nil {
		p.Justification = parseJustification(attrVal(jc, "val"))
	}

	if HasChild(pPr, "bidi") {
		p.RightDirection = true
	}

	if ind := FindChild(pPr, "ind"); ind != nil {
		if v, ok := parseFloatAttr(ind, "left"); ok {
			p.IndentLeft = v / constants.TwipsPerPoint
		}
		if v, ok := parseFloatAttr(ind, "right"); ok {
			p.IndentRight = v / constants.TwipsPerPoint
		}
		if v, ok := parseFloatAttr(ind, "firstLine"); ok {
			p.IndentFirstLine = v / constants.TwipsPerPoint
		}
	}

	if spacing := FindChild(pPr, "spacing"); spacing != nil {
		if v, ok := parseFloatAttr(spacing, "line"); ok {
			p.LineSpacing = v / 240
		}
		if v, ok := parseFloatAttr(spacing, "before"); ok {
			p.SpaceBefore = v / constants.TwipsPerPoint
		}
		if v, ok := parseFloatAttr(spacing, "after"); ok {
			p.SpaceAfter = v / constants.TwipsPerPoint
		}
		if rule, ok := GetAttr(spacing, "lineRule"); ok && rule == "exact" {
			p.SpaceBetweenSameStyle = true
		}
	}

	if tabsElem := FindChild(pPr, "tabs"); tabsElem != nil {
		var tabs []domain.TabStop
		for _, tab := range FindChildren(tabsElem, "tab") {
			tabs = append(tabs, parseTabStop(tab))
		}
		p.Tabs = tabs
	}
}
