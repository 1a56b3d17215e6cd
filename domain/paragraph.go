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

import "strings"

// Paragraph is a block container holding an ordered sequence of Runs plus
// paragraph-level formatting resolved from its style chain and overlaid
// with any direct (inline) properties.
type Paragraph struct {
	StyleID string

	Level                 int
	Numbered              bool
	NumberFormat          string
	NumberStyle           string
	Justification         Justification
	RightDirection        bool
	LineSpacing           float64
	SpaceBefore           float64
	SpaceAfter            float64
	SpaceBetweenSameStyle bool
	IndentLeft            float64
	IndentRight           float64
	IndentFirstLine       float64
	Tabs                  []TabStop

	Runs []Run
}

// Text concatenates the text of every run in paragraph order. It is
// unaffected by whether the runs have been coalesced.
func (p Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}
