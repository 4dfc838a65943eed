// Package document is the in-memory value tree spec.md §3.3/§4.5
// describes: a Document owns its DocInfo tables and Sections outright,
// mutated directly by callers with no copy-on-write bookkeeping.
// Invariants (dangling shape/bin-data IDs) are not checked on mutation;
// they are re-checked only at write time, when the Writer in package hwp
// calls CheckInvariants.
package document

import (
	"github.com/hwp5/hwp/schema/bodytext"
	"github.com/hwp5/hwp/schema/docinfo"
	"github.com/hwp5/hwp/schema/filehdr"
)

// Document is the full in-memory model the Reader produces and the
// Writer consumes.
type Document struct {
	Header *filehdr.FileHeader
	Info   *docinfo.DocInfo

	Sections []*bodytext.Section

	// BinData is the pool of embedded/linked blobs keyed by their
	// 1-based BIN_DATA ID (spec.md §3.3: "bin-data references use
	// 1-based IDs").
	BinData *BinDataPool
}

// New builds an empty Document with the current FileHeader version and
// zeroed tables, ready for a caller to populate directly (spec.md §3.6:
// "constructed... by a builder in a target collaborator").
func New() *Document {
	return &Document{
		Header:  &filehdr.FileHeader{Version: filehdr.Current},
		Info:    &docinfo.DocInfo{},
		BinData: NewBinDataPool(nil),
	}
}

// Section returns the i'th section, or nil if out of range.
func (d *Document) Section(i int) *bodytext.Section {
	if i < 0 || i >= len(d.Sections) {
		return nil
	}
	return d.Sections[i]
}

// ParagraphsOf returns the paragraphs of the i'th section, or nil.
func (d *Document) ParagraphsOf(i int) []*bodytext.Paragraph {
	s := d.Section(i)
	if s == nil {
		return nil
	}
	return s.Paragraphs
}

// CharShape returns the char-shape at the given 0-based index, or nil
// if out of range (spec.md §3.3: "Shape/font/border tables are
// addressed by 0-based index").
func (d *Document) CharShape(id int) *docinfo.CharShape {
	if d.Info == nil || id < 0 || id >= len(d.Info.CharShapes) {
		return nil
	}
	return d.Info.CharShapes[id]
}

// ParaShape returns the para-shape at the given 0-based index, or nil.
func (d *Document) ParaShape(id int) *docinfo.ParaShape {
	if d.Info == nil || id < 0 || id >= len(d.Info.ParaShapes) {
		return nil
	}
	return d.Info.ParaShapes[id]
}

// Face returns the lang'th language's face-name table entry at the
// given 0-based index, or nil if either index is out of range.
func (d *Document) Face(lang, id int) *docinfo.FaceName {
	if d.Info == nil || lang < 0 || lang >= len(d.Info.Faces) {
		return nil
	}
	faces := d.Info.Faces[lang]
	if id < 0 || id >= len(faces) {
		return nil
	}
	return faces[id]
}

// BinDataByID returns the BIN_DATA table entry for the given 1-based
// ID, or nil if out of range.
func (d *Document) BinDataByID(oneBasedID int) *docinfo.BinData {
	if d.Info == nil || oneBasedID < 1 || oneBasedID > len(d.Info.BinData) {
		return nil
	}
	return d.Info.BinData[oneBasedID-1]
}
