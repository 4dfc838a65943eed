package hwp

import (
	"github.com/hwp5/hwp/document"
	"github.com/hwp5/hwp/schema/bodytext"
)

// Builder is a thin, record-level convenience wrapper over
// document.Document for callers assembling a document before calling
// Write. It stops at the level Write itself needs (sections,
// paragraphs) — heading/list/table convenience layers are out of scope
// and not built here.
type Builder struct {
	doc *document.Document
}

// NewBuilder starts a new, empty document.
func NewBuilder() *Builder {
	return &Builder{doc: document.New()}
}

// Document returns the document assembled so far, suitable for passing
// to Write once the caller has filled in DocInfo tables and paragraphs.
func (b *Builder) Document() *document.Document {
	return b.doc
}

// AddSection appends a new, empty section and returns it for the caller
// to populate with paragraphs.
func (b *Builder) AddSection() *bodytext.Section {
	s := &bodytext.Section{}
	b.doc.Sections = append(b.doc.Sections, s)
	return s
}

// AppendParagraph appends p to the end of section's paragraph list.
func (b *Builder) AppendParagraph(section *bodytext.Section, p *bodytext.Paragraph) {
	section.Paragraphs = append(section.Paragraphs, p)
}
