package docinfo

import "github.com/hwp5/hwp/bytecursor"

// Alignment is PARA_SHAPE's bits 2-4 (spec.md §4.4.2).
type Alignment uint8

const (
	AlignJustify Alignment = iota
	AlignLeft
	AlignRight
	AlignCenter
	AlignDistribute
)

// ParaShapeProperties is PARA_SHAPE's property bitfield.
type ParaShapeProperties struct {
	Alignment Alignment
}

func decodeParaShapeProperties(v uint32) ParaShapeProperties {
	return ParaShapeProperties{Alignment: Alignment((v >> 2) & 0x7)}
}

func (p ParaShapeProperties) encode() uint32 {
	return uint32(p.Alignment&0x7) << 2
}

// ParaShape is PARA_SHAPE (0x019): block-level paragraph formatting.
type ParaShape struct {
	Properties ParaShapeProperties

	LeftMargin  int32
	RightMargin int32
	Indent      int32

	PrevSpacing int32
	NextSpacing int32

	LineSpacingType  uint8
	LineSpacingValue uint32

	TabDefID     uint16
	NumberingID  uint16
	BorderFillID uint16

	BorderOffsetLeft   int16
	BorderOffsetRight  int16
	BorderOffsetTop    int16
	BorderOffsetBottom int16
}

func DecodeParaShape(data []byte) (*ParaShape, error) {
	r := bytecursor.NewReader(data)
	p := &ParaShape{}
	propWord, err := r.U32()
	if err != nil {
		return nil, err
	}
	p.Properties = decodeParaShapeProperties(propWord)

	i32Fields := []*int32{&p.LeftMargin, &p.RightMargin, &p.Indent, &p.PrevSpacing, &p.NextSpacing}
	for _, f := range i32Fields {
		if *f, err = r.I32(); err != nil {
			return nil, err
		}
	}
	if p.LineSpacingType, err = r.U8(); err != nil {
		return nil, err
	}
	if p.LineSpacingValue, err = r.U32(); err != nil {
		return nil, err
	}
	u16Fields := []*uint16{&p.TabDefID, &p.NumberingID, &p.BorderFillID}
	for _, f := range u16Fields {
		if *f, err = r.U16(); err != nil {
			return nil, err
		}
	}
	i16Fields := []*int16{&p.BorderOffsetLeft, &p.BorderOffsetRight, &p.BorderOffsetTop, &p.BorderOffsetBottom}
	for _, f := range i16Fields {
		if *f, err = r.I16(); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *ParaShape) Encode() []byte {
	w := bytecursor.NewWriter()
	w.U32(p.Properties.encode())
	for _, v := range []int32{p.LeftMargin, p.RightMargin, p.Indent, p.PrevSpacing, p.NextSpacing} {
		w.I32(v)
	}
	w.U8(p.LineSpacingType)
	w.U32(p.LineSpacingValue)
	for _, v := range []uint16{p.TabDefID, p.NumberingID, p.BorderFillID} {
		w.U16(v)
	}
	for _, v := range []int16{p.BorderOffsetLeft, p.BorderOffsetRight, p.BorderOffsetTop, p.BorderOffsetBottom} {
		w.I16(v)
	}
	return w.Bytes()
}
