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

// Package minidocx reads a .docx (WordprocessingML) archive into an
// in-memory domain.Document: resolved styles, paragraphs, runs, footnotes,
// and endnotes. It is a pure, synchronous function of byte input to
// document model; it never mutates its input and never panics or returns
// an error out of its two entry points.
//
// Example usage:
//
//	doc := minidocx.ReadDocument("report.docx")
//	for _, p := range doc.Paragraphs {
//	    fmt.Println(p.Text())
//	}
package minidocx

import (
	"github.com/yonatan-v/minidocx/domain"
	"github.com/yonatan-v/minidocx/internal/reader"
	"github.com/yonatan-v/minidocx/internal/style"
)

// ReadDocument opens a .docx archive at path and assembles a Document. Any
// failure to open the path or parse the archive (a hard error per the
// library's two-tier error taxonomy) yields an empty Document rather than
// an error return.
func ReadDocument(path string) *domain.Document {
	pkg, err := reader.LoadPackageFromPath(path)
	if err != nil {
		return domain.EmptyDocument()
	}
	return assemble(pkg)
}

// ReadDocumentFromBytes assembles a Document from an in-memory .docx
// archive. Like ReadDocument, it never returns an error: a malformed or
// unopenable archive yields an empty Document.
func ReadDocumentFromBytes(data []byte) *domain.Document {
	pkg, err := reader.LoadPackageFromBytes(data)
	if err != nil {
		return domain.EmptyDocument()
	}
	return assemble(pkg)
}

// assemble wires the style parser, a fresh per-call resolver, the notes
// parser, and the paragraph/run reader into the final Document. The
// resolver's memoisation cache is constructed here and never escapes this
// call, so concurrent reads on independent archives never share state.
func assemble(pkg *reader.Package) *domain.Document {
	styleTree, err := reader.ParseXMLTree(pkg.Styles)
	if err != nil {
		styleTree = nil
	}
	rawStyles := style.ParseStyles(styleTree)

	resolver := style.NewResolver(rawStyles)
	lookup := reader.StyleLookup(resolver.Resolve)

	doc := &domain.Document{
		Styles:    rawStyles,
		Footnotes: map[int]*domain.Note{},
		Endnotes:  map[int]*domain.Note{},
	}

	if footnoteTree, err := reader.ParseXMLTree(pkg.Footnotes); err == nil {
		doc.Footnotes = reader.ReadNotes(footnoteTree, reader.FootnoteElement, lookup)
	}
	if endnoteTree, err := reader.ParseXMLTree(pkg.Endnotes); err == nil {
		doc.Endnotes = reader.ReadNotes(endnoteTree, reader.EndnoteElement, lookup)
	}

	docTree, err := reader.ParseXMLTree(pkg.MainDocument)
	if err != nil {
		return doc
	}
	body := reader.FindChild(docTree, "body")
	if body == nil {
		return doc
	}
	for _, p := range reader.FindChildren(body, "p") {
		doc.Paragraphs = append(doc.Paragraphs, reader.ReadParagraph(p, lookup))
	}

	return doc
}
