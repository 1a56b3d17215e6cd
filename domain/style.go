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

// StyleKind distinguishes paragraph styles from character (run) styles.
type StyleKind int

const (
	StyleParagraph StyleKind = iota
	StyleRun
)

// Justification is the paragraph-level horizontal alignment. The zero value
// is Left, matching Word's default.
type Justification int

const (
	JustifyLeft Justification = iota
	JustifyCenter
	JustifyRight
	JustifyJustify
)

// TabAlignment is the alignment of a single tab stop.
type TabAlignment byte

const (
	TabLeft    TabAlignment = 'L'
	TabCenter  TabAlignment = 'C'
	TabRight   TabAlignment = 'R'
	TabDecimal TabAlignment = 'D'
)

// TabStop is one entry of a paragraph's tab-stop list.
type TabStop struct {
	Position  float64 // points
	Alignment TabAlignment
	Leader    string
}

// StyleDef is a single <w:style> definition as parsed from styles.xml,
// before inheritance is applied. Every field has a well-defined "unset"
// value that participates in the merge rules of the style resolver:
// booleans default false, Color defaults to its zero value (which
// Color.IsEmpty treats as unset, like domain.Empty), strings default to "",
// and points/sizes default to 0.
type StyleDef struct {
	Kind    StyleKind
	BasedOn string

	// Character properties.
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

	// Paragraph properties.
	Level                 int
	Numbered              bool
	NumberFormat          string
	NumberStyle           string
	LineSpacing           float64 // multiplier, 0 = unset
	SpaceBefore           float64 // points
	SpaceAfter            float64 // points
	SpaceBetweenSameStyle bool
	Justification         Justification
	RightDirection        bool
	IndentLeft            float64 // points
	IndentRight           float64 // points
	IndentFirstLine       float64 // points
	Tabs                  []TabStop
}
