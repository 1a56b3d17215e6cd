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

// NoteElementName is the local name of the entries under a footnotes.xml or
// endnotes.xml root: "footnote" or "endnote" respectively.
type NoteElementName string

const (
	FootnoteElement NoteElementName = "footnote"
	EndnoteElement  NoteElementName = "endnote"
)

// ReadNotes walks the <w:footnotes> or <w:endnotes> root and returns the
// non-separator entries keyed by their w:id. Word always emits a
// "separator" and "continuationSeparator" entry even in documents with no
// real footnotes; both are skipped rather than surfaced as empty notes.
func ReadNotes(root *Element, name NoteElementName, resolve StyleLookup) map[int]*domain.Note {
	notes := map[int]*domain.Note{}
	if root == nil {
		return notes
	}

	for _, noteElem := range FindChildren(root, string(name)) {
		switch attrVal(noteElem, "type") {
		case constants.NoteTypeSeparator, constants.NoteTypeContinuationSeparator:
			continue
		}

		id, ok := parseIntAttr(noteElem, "id")
		if !ok {
			continue
		}

		var paragraphs []domain.Paragraph
		for _, p := range FindChildren(noteElem, "p") {
			paragraphs = append(paragraphs, ReadParagraph(p, resolve))
		}
		notes[id] = &domain.Note{ID: id, Paragraphs: paragraphs}
	}

	return notes
}
