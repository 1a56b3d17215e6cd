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

// Note is one footnote or endnote: its w:id and the paragraphs that make up
// its body.
type Note struct {
	ID         int
	Paragraphs []Paragraph
}

// Document is the fully-read representation of a .docx file: the body's
// paragraphs in order, the raw (uninherited) style map keyed by styleId,
// and the footnote/endnote collections keyed by w:id. It is assembled once
// by ReadDocument or ReadDocumentFromBytes and never mutated afterward.
type Document struct {
	Paragraphs []Paragraph
	Styles     map[string]*StyleDef
	Footnotes  map[int]*Note
	Endnotes   map[int]*Note
}

// EmptyDocument returns a zero-value Document with initialized, empty
// collections. It is what ReadDocument and ReadDocumentFromBytes return on a
// hard failure (the archive cannot be opened or is not a ZIP): an empty, not
// a nil, result. Soft failures such as a missing or malformed part still
// yield a Document holding whatever the other parts provided.
func EmptyDocument() *Document {
	return &Document{
		Paragraphs: nil,
		Styles:     map[string]*StyleDef{},
		Footnotes:  map[int]*Note{},
		Endnotes:   map[int]*Note{},
	}
}
