package docinfo

import "github.com/hwp5/hwp/bytecursor"

// DocumentProperties is DOCUMENT_PROPERTIES (0x010): section count plus
// the starting numbers each section-spanning sequence (pages, footnotes,
// endnotes, pictures, tables, equations) resumes from, then whole-document
// counts and the last caret position.
type DocumentProperties struct {
	SectionCount uint16

	StartingPageNumber     uint32
	StartingFootnoteNumber uint32
	StartingEndnoteNumber  uint32
	StartingPictureNumber  uint32
	StartingTableNumber    uint32
	StartingEquationNumber uint32

	CharCount uint32
	WordCount uint32
	PageCount uint32

	CaretPosition uint32
}

func DecodeDocumentProperties(data []byte) (*DocumentProperties, error) {
	r := bytecursor.NewReader(data)
	p := &DocumentProperties{}
	var err error
	if p.SectionCount, err = r.U16(); err != nil {
		return nil, err
	}
	fields := []*uint32{
		&p.StartingPageNumber, &p.StartingFootnoteNumber, &p.StartingEndnoteNumber,
		&p.StartingPictureNumber, &p.StartingTableNumber, &p.StartingEquationNumber,
		&p.CharCount, &p.WordCount, &p.PageCount, &p.CaretPosition,
	}
	for _, f := range fields {
		if *f, err = r.U32(); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *DocumentProperties) Encode() []byte {
	w := bytecursor.NewWriter()
	w.U16(p.SectionCount)
	for _, v := range []uint32{
		p.StartingPageNumber, p.StartingFootnoteNumber, p.StartingEndnoteNumber,
		p.StartingPictureNumber, p.StartingTableNumber, p.StartingEquationNumber,
		p.CharCount, p.WordCount, p.PageCount, p.CaretPosition,
	} {
		w.U32(v)
	}
	return w.Bytes()
}

// IDMappings is ID_MAPPINGS (0x011): the table-size map — one count per
// indexed table in DocInfo. The reader uses its Fonts counts to assign
// FACE_NAME records to languages; before writing, the counts are
// recomputed from the table lengths (DocInfo.RebuildIDMappings).
type IDMappings struct {
	BinData      uint32
	Fonts        [7]uint32 // one per Lang, see face_name.go
	BorderFills  uint32
	CharShapes   uint32
	TabDefs      uint32
	Numberings   uint32
	Bullets      uint32
	ParaShapes   uint32
	Styles       uint32
	MemoShapes   uint32
}

func DecodeIDMappings(data []byte) (*IDMappings, error) {
	r := bytecursor.NewReader(data)
	m := &IDMappings{}
	var err error
	if m.BinData, err = r.U32(); err != nil {
		return nil, err
	}
	for i := range m.Fonts {
		if m.Fonts[i], err = r.U32(); err != nil {
			return nil, err
		}
	}
	fields := []*uint32{
		&m.BorderFills, &m.CharShapes, &m.TabDefs, &m.Numberings,
		&m.Bullets, &m.ParaShapes, &m.Styles, &m.MemoShapes,
	}
	for _, f := range fields {
		if *f, err = r.U32(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *IDMappings) Encode() []byte {
	w := bytecursor.NewWriter()
	w.U32(m.BinData)
	for _, v := range m.Fonts {
		w.U32(v)
	}
	for _, v := range []uint32{
		m.BorderFills, m.CharShapes, m.TabDefs, m.Numberings,
		m.Bullets, m.ParaShapes, m.Styles, m.MemoShapes,
	} {
		w.U32(v)
	}
	return w.Bytes()
}
