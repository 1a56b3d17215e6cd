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

// Package style parses styles.xml into a raw style map and resolves the
// basedOn inheritance chain into fully merged style definitions.
package style

import (
	"strconv"
	"strings"

	"github.com/yonatan-v/minidocx/domain"
	"github.com/yonatan-v/minidocx/internal/reader"
	pkgcolor "github.com/yonatan-v/minidocx/pkg/color"
	"github.com/yonatan-v/minidocx/pkg/constants"
)

// ParseStyles walks the <w:styles> root produced from styles.xml and
// returns a mapping styleId -> StyleDef, unmerged. A nil or unparseable
// root yields an empty map: a missing or malformed styles.xml is a soft
// failure.
func ParseStyles(root *reader.Element) map[string]*domain.StyleDef {
	out := map[string]*domain.StyleDef{}
	if root == nil {
		return out
	}

	for _, styleElem := range reader.FindChildren(root, "style") {
		id, ok := reader.GetAttr(styleElem, "styleId")
		if !ok || id == "" {
			continue
		}
		out[id] = parseStyle(styleElem)
	}

	return out
}

func parseStyle(elem *reader.Element) *domain.StyleDef {
	def := &domain.StyleDef{Kind: domain.StyleRun}

	if typ, ok := reader.GetAttr(elem, "type"); ok && typ == "paragraph" {
		def.Kind = domain.StyleParagraph
	}

	if basedOn := reader.FindChild(elem, "basedOn"); basedOn != nil {
		def.BasedOn = attrVal(basedOn, "val")
	}

	if rPr := reader.FindChild(elem, "rPr"); rPr != nil {
		applyRunProperties(def, rPr)
	}

	if pPr := reader.FindChild(elem, "pPr"); pPr != nil {
		applyParagraphProperties(def, pPr)
	}

	return def
}

func applyRunProperties(def *domain.StyleDef, rPr *reader.Element) {
	def.Bold = def.Bold || reader.HasChild(rPr, "b")
	def.Italic = def.Italic || reader.HasChild(rPr, "i")
	def.Underline = def.Underline || reader.HasChild(rPr, "u")
	def.Strike = def.Strike || reader.HasChild(rPr, "strike")
	def.Subscript = def.Subscript || reader.HasChild(rPr, "subscript")
	def.Superscript = def.Superscript || reader.HasChild(rPr, "superscript")

	if color := reader.FindChild(rPr, "color"); color != nil {
		def.Color = pkgcolor.Parse(attrVal(color, "val"))
	}
	if shd := reader.FindChild(rPr, "shd"); shd != nil {
		def.BackColor = pkgcolor.Parse(attrVal(shd, "fill"))
	}
	if fonts := reader.FindChild(rPr, "rFonts"); fonts != nil {
		def.FontFamily = attrVal(fonts, "ascii")
	}
	if sz := reader.FindChild(rPr, "sz"); sz != nil {
		if halfPoints, ok := parseFloatAttr(sz, "val"); ok {
			def.FontSize = halfPoints / constants.HalfPointsUnit
		}
	}
}

func applyParagraphProperties(def *domain.StyleDef, pPr *reader.Element) {
	if outline := reader.FindChild(pPr, "outlineLvl"); outline != nil {
		if n, ok := parseIntAttr(outline, "val"); ok {
			def.Level = n
		}
	}

	if numPr := reader.FindChild(pPr, "numPr"); numPr != nil {
		def.Numbered = true
		if reader.FindChild(numPr, "numId") != nil {
			def.NumberFormat = "decimal"
		}
		if ilvl := reader.FindChild(numPr, "ilvl"); ilvl != nil {
			if n, ok := parseIntAttr(ilvl, "val"); ok {
				def.Level = n
			}
		}
		if numStyle := reader.FindChild(numPr, "numStyle"); numStyle != nil {
			def.NumberStyle = attrVal(numStyle, "val")
		}
	}

	if spacing := reader.FindChild(pPr, "spacing"); spacing != nil {
		applySpacing(def, spacing)
	}

	if ind := reader.FindChild(pPr, "ind"); ind != nil {
		if v, ok := parseFloatAttr(ind, "left"); ok {
			def.IndentLeft = v / constants.TwipsPerPoint
		}
		if v, ok := parseFloatAttr(ind, "right"); ok {
			def.IndentRight = v / constants.TwipsPerPoint
		}
		if v, ok := parseFloatAttr(ind, "firstLine"); ok {
			def.IndentFirstLine = v / constants.TwipsPerPoint
		}
	}

	if jc := reader.FindChild(pPr, "jc"); jc != nil {
		def.Justification = parseJustification(attrVal(jc, "val"))
	}

	for _, tab := range reader.FindChildren(reader.FindChild(pPr, "tabs"), "tab") {
		def.Tabs = append(def.Tabs, parseTabStop(tab))
	}

	if reader.HasChild(pPr, "bidi") {
		def.RightDirection = true
	}
}

func applySpacing(def *domain.StyleDef, spacing *reader.Element) {
	if v, ok := parseFloatAttr(spacing, "line"); ok {
		def.LineSpacing = v / 240
	}
	if v, ok := parseFloatAttr(spacing, "before"); ok {
		def.SpaceBefore = v / constants.TwipsPerPoint
	}
	if v, ok := parseFloatAttr(spacing, "after"); ok {
		def.SpaceAfter = v / constants.TwipsPerPoint
	}
	if rule, ok := reader.GetAttr(spacing, "lineRule"); ok && rule == "exact" {
		def.SpaceBetweenSameStyle = true
	}
}

func parseTabStop(tab *reader.Element) domain.TabStop {
	stop := domain.TabStop{Alignment: domain.TabLeft}
	if v, ok := parseFloatAttr(tab, "pos"); ok {
		stop.Position = v / constants.TwipsPerPoint
	}
	if val := attrVal(tab, "val"); val != "" {
		stop.Alignment = domain.TabAlignment(strings.ToUpper(val)[0])
	}
	stop.Leader = attrVal(tab, "leader")
	return stop
}

func parseJustification(val string) domain.Justification {
	switch val {
	case constants.JustificationValueCenter:
		return domain.JustifyCenter
	case constants.JustificationValueRight:
		return domain.JustifyRight
	case constants.JustificationValueJustify:
		return domain.JustifyJustify
	default:
		return domain.JustifyLeft
	}
}

func attrVal(elem *reader.Element, local string) string {
	v, _ := reader.GetAttr(elem, local)
	return v
}

func parseIntAttr(elem *reader.Element, local string) (int, bool) {
	v, ok := reader.GetAttr(elem, local)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseFloatAttr(elem *reader.Element, local string) (float64, bool) {
	v, ok := reader.GetAttr(elem, local)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
