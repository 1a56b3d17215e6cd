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

// Package constants holds the fixed archive paths and OOXML measurement
// and attribute-value constants the reader depends on.
package constants

// Measurement conversions. WordprocessingML expresses most lengths in
// twips (1/20 of a point) and font sizes in half-points.
const (
	TwipsPerPoint  = 20
	HalfPointsUnit = 2
	PointsPerInch  = 72
)

// File paths within the .docx (OPC ZIP) archive that the reader extracts.
// Word always uses these fixed part names for the corresponding content
// type; a missing entry is a soft failure (treated as absent data).
const (
	PathDocument  = "word/document.xml"
	PathStyles    = "word/styles.xml"
	PathFootnotes = "word/footnotes.xml"
	PathEndnotes  = "word/endnotes.xml"
)

// OOXML string values for paragraph justification (w:jc/@w:val).
const (
	JustificationValueLeft     = "left"
	JustificationValueStart    = "start"
	JustificationValueCenter   = "center"
	JustificationValueRight    = "right"
	JustificationValueEnd      = "end"
	JustificationValueJustify    = "both"
	JustificationValueDistribute = "distribute"
)

// Well-known footnote/endnote types (w:footnote/@w:type,
// w:endnote/@w:type) that are structural placeholders rather than
// author content and must be skipped when reading note bodies.
const (
	NoteTypeSeparator             = "separator"
	NoteTypeContinuationSeparator = "continuationSeparator"
)
