package bodytext

import (
	"github.com/hwp5/hwp/bytecursor"
	"github.com/hwp5/hwp/record"
)

// PageDef is PAGE_DEF (0x057): page geometry, all in HWPUnit (spec.md
// §6.3).
type PageDef struct {
	Width, Height                           uint32
	MarginLeft, MarginRight                 uint32
	MarginTop, MarginBottom                 uint32
	MarginHeader, MarginFooter, MarginGutter uint32
}

func decodePageDef(data []byte) (*PageDef, error) {
	r := bytecursor.NewReader(data)
	p := &PageDef{}
	fields := []*uint32{
		&p.Width, &p.Height, &p.MarginLeft, &p.MarginRight,
		&p.MarginTop, &p.MarginBottom, &p.MarginHeader, &p.MarginFooter, &p.MarginGutter,
	}
	for _, f := range fields {
		v, err := r.U32()
		if err != nil {
			return nil, err
		}
		*f = v
	}
	return p, nil
}

func (p *PageDef) encode() []byte {
	w := bytecursor.NewWriter()
	for _, v := range []uint32{
		p.Width, p.Height, p.MarginLeft, p.MarginRight,
		p.MarginTop, p.MarginBottom, p.MarginHeader, p.MarginFooter, p.MarginGutter,
	} {
		w.U32(v)
	}
	return w.Bytes()
}

// FootnoteShape is FOOTNOTE_SHAPE (0x058): footnote numbering and
// divider appearance. Kept minimal; unmodeled fields round-trip via
// Extra.
type FootnoteShape struct {
	NumberFormat uint8
	StartNumber  uint16
	Extra        []byte
}

func decodeFootnoteShape(data []byte) (*FootnoteShape, error) {
	r := bytecursor.NewReader(data)
	f := &FootnoteShape{}
	var err error
	if f.NumberFormat, err = r.U8(); err != nil {
		return nil, err
	}
	if f.StartNumber, err = r.U16(); err != nil {
		return nil, err
	}
	if f.Extra, err = r.Array(r.Remaining()); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *FootnoteShape) encode() []byte {
	w := bytecursor.NewWriter()
	w.U8(f.NumberFormat)
	w.U16(f.StartNumber)
	w.Raw(f.Extra)
	return w.Bytes()
}

// PageBorderFillRec is PAGE_BORDER_FILL (0x059): the page-level border
// and fill reference.
type PageBorderFillRec struct {
	Flags        uint16
	BorderFillID uint16
}

func decodePageBorderFill(data []byte) (*PageBorderFillRec, error) {
	r := bytecursor.NewReader(data)
	p := &PageBorderFillRec{}
	var err error
	if p.Flags, err = r.U16(); err != nil {
		return nil, err
	}
	if p.BorderFillID, err = r.U16(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *PageBorderFillRec) encode() []byte {
	w := bytecursor.NewWriter()
	w.U16(p.Flags)
	w.U16(p.BorderFillID)
	return w.Bytes()
}

// SectionDefine is the `secd` control: the mandatory first control of
// every section's opening paragraph (spec.md §3.5), carrying the
// section's page geometry via its PAGE_DEF/FOOTNOTE_SHAPE/
// PAGE_BORDER_FILL children.
type SectionDefine struct {
	Flags uint32

	PageDef        *PageDef
	FootnoteShape  *FootnoteShape
	PageBorderFill *PageBorderFillRec
}

func decodeSectionDefine(headerBody []byte, children []*record.Node) (*SectionDefine, error) {
	r := bytecursor.NewReader(headerBody)
	flags, err := r.U32()
	if err != nil {
		return nil, err
	}
	s := &SectionDefine{Flags: flags}
	for _, child := range children {
		switch child.Raw.Tag {
		case TagPageDef:
			if s.PageDef, err = decodePageDef(child.Raw.Data); err != nil {
				return nil, err
			}
		case TagFootnoteShape:
			if s.FootnoteShape, err = decodeFootnoteShape(child.Raw.Data); err != nil {
				return nil, err
			}
		case TagPageBorderFill:
			if s.PageBorderFill, err = decodePageBorderFill(child.Raw.Data); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

func encodeSectionDefine(s *SectionDefine) ([]byte, []*record.Node) {
	w := bytecursor.NewWriter()
	w.U32(s.Flags)

	var children []*record.Node
	if s.PageDef != nil {
		children = append(children, &record.Node{Raw: record.Raw{Tag: TagPageDef, Data: s.PageDef.encode()}})
	}
	if s.FootnoteShape != nil {
		children = append(children, &record.Node{Raw: record.Raw{Tag: TagFootnoteShape, Data: s.FootnoteShape.encode()}})
	}
	if s.PageBorderFill != nil {
		children = append(children, &record.Node{Raw: record.Raw{Tag: TagPageBorderFill, Data: s.PageBorderFill.encode()}})
	}
	return w.Bytes(), children
}

// ColumnDefine is the `cold` control: multi-column layout for the
// section, required alongside SectionDefine on every section's opening
// paragraph.
type ColumnDefine struct {
	Type        uint8
	ColumnCount uint16
	SameWidth   bool
	Spacing     uint32
	Widths      []uint32
}

func decodeColumnDefine(data []byte) (*ColumnDefine, error) {
	r := bytecursor.NewReader(data)
	c := &ColumnDefine{}
	var err error
	if c.Type, err = r.U8(); err != nil {
		return nil, err
	}
	if c.ColumnCount, err = r.U16(); err != nil {
		return nil, err
	}
	sameWidth, err := r.U8()
	if err != nil {
		return nil, err
	}
	c.SameWidth = sameWidth != 0
	if c.Spacing, err = r.U32(); err != nil {
		return nil, err
	}
	// Per-column widths follow only when the columns differ in width.
	if !c.SameWidth {
		c.Widths = make([]uint32, c.ColumnCount)
		for i := range c.Widths {
			if c.Widths[i], err = r.U32(); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

func encodeColumnDefine(c *ColumnDefine) []byte {
	w := bytecursor.NewWriter()
	w.U8(c.Type)
	w.U16(c.ColumnCount)
	if c.SameWidth {
		w.U8(1)
	} else {
		w.U8(0)
	}
	w.U32(c.Spacing)
	for _, width := range c.Widths {
		w.U32(width)
	}
	return w.Bytes()
}
