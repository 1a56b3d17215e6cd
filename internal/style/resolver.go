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

import "github.com/yonatan-v/minidocx/domain"

// Resolver flattens the basedOn inheritance chain of a style map into fully
// merged StyleDefs, memoising each result. A Resolver is scoped to a single
// document load: it is never shared across invocations, so concurrent reads
// on independent inputs never contend on the same cache.
type Resolver struct {
	styles map[string]*domain.StyleDef
	cache  map[string]*domain.StyleDef
}

// NewResolver builds a Resolver over a raw, unmerged style map.
func NewResolver(styles map[string]*domain.StyleDef) *Resolver {
	return &Resolver{
		styles: styles,
		cache:  map[string]*domain.StyleDef{},
	}
}

// Resolve returns the fully inherited StyleDef for id, flattening the
// basedOn chain. An empty id, or an id absent from the style map, returns
// the default (all-unset) StyleDef.
//
// The cache entry for id is inserted before recursing into its basedOn
// style, not after. That is what breaks basedOn cycles: a style that
// (directly or transitively) depends on itself observes the
// not-yet-fully-merged cache entry already associated with id on the
// second, cyclic visit, rather than recursing forever. The entry is then
// updated in place once the merge completes, so callers who obtained the
// pointer earlier (a style elsewhere in the same cycle) see the final
// result too.
func (r *Resolver) Resolve(id string) *domain.StyleDef {
	if id == "" {
		return &domain.StyleDef{}
	}
	if cached, ok := r.cache[id]; ok {
		return cached
	}

	placeholder := &domain.StyleDef{}
	r.cache[id] = placeholder

	def, ok := r.styles[id]
	if !ok {
		return placeholder
	}

	base := r.Resolve(def.BasedOn)
	*placeholder = *merge(base, def)
	return placeholder
}

// merge overlays cur's set fields onto base per the precedence rules: each
// rule fires only when cur's value counts as "set".
func merge(base, cur *domain.StyleDef) *domain.StyleDef {
	out := *base
	out.Kind = cur.Kind
	out.BasedOn = cur.BasedOn

	out.Bold = base.Bold || cur.Bold
	out.Italic = base.Italic || cur.Italic
	out.Underline = base.Underline || cur.Underline
	out.Strike = base.Strike || cur.Strike
	out.Subscript = base.Subscript || cur.Subscript
	out.Superscript = base.Superscript || cur.Superscript
	out.SpaceBetweenSameStyle = base.SpaceBetweenSameStyle || cur.SpaceBetweenSameStyle
	out.RightDirection = base.RightDirection || cur.RightDirection
	out.Numbered = base.Numbered || cur.Numbered

	if !cur.Color.IsEmpty() {
		out.Color = cur.Color
	}
	if !cur.BackColor.IsEmpty() {
		out.BackColor = cur.BackColor
	}

	if cur.FontFamily != "" {
		out.FontFamily = cur.FontFamily
	}
	if cur.NumberFormat != "" {
		out.NumberFormat = cur.NumberFormat
	}
	if cur.NumberStyle != "" {
		out.NumberStyle = cur.NumberStyle
	}

	if cur.FontSize > 0 {
		out.FontSize = cur.FontSize
	}
	if cur.LineSpacing > 0 {
		out.LineSpacing = cur.LineSpacing
	}
	if cur.SpaceBefore > 0 {
		out.SpaceBefore = cur.SpaceBefore
	}
	if cur.SpaceAfter > 0 {
		out.SpaceAfter = cur.SpaceAfter
	}
	if cur.IndentLeft > 0 {
		out.IndentLeft = cur.IndentLeft
	}
	if cur.IndentRight > 0 {
		out.IndentRight = cur.IndentRight
	}
	if cur.IndentFirstLine > 0 {
		out.IndentFirstLine = cur.IndentFirstLine
	}
	if cur.Level > 0 {
		out.Level = cur.Level
	}

	if cur.Justification != domain.JustifyLeft {
		out.Justification = cur.Justification
	}

	if len(cur.Tabs) > 0 {
		out.Tabs = append(append([]domain.TabStop{}, base.Tabs...), cur.Tabs...)
	}

	return &out
}
