package main

import (
	"github.com/yonatan-v/minidocx/domain"
	pkgcolor "github.com/yonatan-v/minidocx/pkg/color"
)

// colorizedDocument mirrors domain.Document for a --colors dump: each
// paragraph gets an extra "runs" list whose Color fields are hex strings,
// easier to eyeball than raw RGBA channels. Style definitions and the
// fields of the embedded domain.Paragraph, including its own "Runs" list,
// keep their numeric channels.
type colorizedDocument struct {
	Paragraphs []colorizedParagraph       `json:"paragraphs"`
	Styles     map[string]*domain.StyleDef `json:"styles"`
	Footnotes  map[int]colorizedNote      `json:"footnotes"`
	Endnotes   map[int]colorizedNote      `json:"endnotes"`
}

type colorizedNote struct {
	ID         int                  `json:"id"`
	Paragraphs []colorizedParagraph `json:"paragraphs"`
}

type colorizedParagraph struct {
	domain.Paragraph
	Runs []colorizedRun `json:"runs"`
}

type colorizedRun struct {
	Text       string `json:"text"`
	Color      string `json:"color,omitempty"`
	BackColor  string `json:"backColor,omitempty"`
	FontFamily string `json:"fontFamily,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty"`
	Bold       bool   `json:"bold,omitempty"`
	Italic     bool   `json:"italic,omitempty"`
	NoteID     int    `json:"noteId,omitempty"`
}

func newColorizedView(doc *domain.Document) colorizedDocument {
	view := colorizedDocument{
		Styles:    doc.Styles,
		Footnotes: map[int]colorizedNote{},
		Endnotes:  map[int]colorizedNote{},
	}
	for _, p := range doc.Paragraphs {
		view.Paragraphs = append(view.Paragraphs, colorizeParagraph(p))
	}
	for id, note := range doc.Footnotes {
		view.Footnotes[id] = colorizeNote(note)
	}
	for id, note := range doc.Endnotes {
		view.Endnotes[id] = colorizeNote(note)
	}
	return view
}

func colorizeNote(note *domain.Note) colorizedNote {
	out := colorizedNote{ID: note.ID}
	for _, p := range note.Paragraphs {
		out.Paragraphs = append(out.Paragraphs, colorizeParagraph(p))
	}
	return out
}

func colorizeParagraph(p domain.Paragraph) colorizedParagraph {
	cp := colorizedParagraph{Paragraph: p}
	for _, r := range p.Runs {
		cr := colorizedRun{
			Text:       r.Text,
			FontFamily: r.FontFamily,
			FontSize:   r.FontSize,
			Bold:       r.Bold,
			Italic:     r.Italic,
			NoteID:     r.NoteID,
		}
		if !r.Color.IsEmpty() {
			cr.Color = "#" + pkgcolor.ToHex(r.Color)
		}
		if !r.BackColor.IsEmpty() {
			cr.BackColor = "#" + pkgcolor.ToHex(r.BackColor)
		}
		cp.Runs = append(cp.Runs, cr)
	}
	return cp
}
