package docinfo

import "github.com/hwp5/hwp/bytecursor"

// CharShapeProperties is CHAR_SHAPE's property bitfield.
type CharShapeProperties struct {
	Bold          bool
	Italic        bool
	Underline     bool
	Outline       bool
	Shadow        bool
	Emboss        bool
	Engrave       bool
	Superscript   bool
	Subscript     bool
	Strikeout     bool
}

func decodeCharShapeProperties(v uint32) CharShapeProperties {
	bit := func(n uint) bool { return v&(1<<n) != 0 }
	return CharShapeProperties{
		Bold: bit(0), Italic: bit(1), Underline: bit(2), Outline: bit(3),
		Shadow: bit(4), Emboss: bit(5), Engrave: bit(6),
		Superscript: bit(7), Subscript: bit(8), Strikeout: bit(9),
	}
}

func (p CharShapeProperties) encode() uint32 {
	var v uint32
	set := func(n uint, on bool) {
		if on {
			v |= 1 << n
		}
	}
	set(0, p.Bold)
	set(1, p.Italic)
	set(2, p.Underline)
	set(3, p.Outline)
	set(4, p.Shadow)
	set(5, p.Emboss)
	set(6, p.Engrave)
	set(7, p.Superscript)
	set(8, p.Subscript)
	set(9, p.Strikeout)
	return v
}

// CharShape is CHAR_SHAPE (0x015): run-level character formatting,
// carrying one value per Lang for the fields that vary by script.
type CharShape struct {
	FaceIDs     [7]uint16
	Ratios      [7]uint8
	CharSpaces  [7]int8
	RelSizes    [7]uint8
	CharOffsets [7]int8

	BaseSize   uint32 // points * 100, spec.md §6.3
	Properties CharShapeProperties

	ShadowGapX, ShadowGapY int8

	TextColor      uint32
	UnderlineColor uint32
	ShadeColor     uint32
	ShadowColor    uint32

	BorderFillID uint16
}

func DecodeCharShape(data []byte) (*CharShape, error) {
	r := bytecursor.NewReader(data)
	c := &CharShape{}
	var err error
	for i := range c.FaceIDs {
		if c.FaceIDs[i], err = r.U16(); err != nil {
			return nil, err
		}
	}
	for i := range c.Ratios {
		if c.Ratios[i], err = r.U8(); err != nil {
			return nil, err
		}
	}
	for i := range c.CharSpaces {
		v, err := r.U8()
		if err != nil {
			return nil, err
		}
		c.CharSpaces[i] = int8(v)
	}
	for i := range c.RelSizes {
		if c.RelSizes[i], err = r.U8(); err != nil {
			return nil, err
		}
	}
	for i := range c.CharOffsets {
		v, err := r.U8()
		if err != nil {
			return nil, err
		}
		c.CharOffsets[i] = int8(v)
	}
	if c.BaseSize, err = r.U32(); err != nil {
		return nil, err
	}
	propWord, err := r.U32()
	if err != nil {
		return nil, err
	}
	c.Properties = decodeCharShapeProperties(propWord)

	gx, err := r.U8()
	if err != nil {
		return nil, err
	}
	gy, err := r.U8()
	if err != nil {
		return nil, err
	}
	c.ShadowGapX, c.ShadowGapY = int8(gx), int8(gy)

	fields := []*uint32{&c.TextColor, &c.UnderlineColor, &c.ShadeColor, &c.ShadowColor}
	for _, f := range fields {
		if *f, err = r.U32(); err != nil {
			return nil, err
		}
	}
	if c.BorderFillID, err = r.U16(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *CharShape) Encode() []byte {
	w := bytecursor.NewWriter()
	for _, v := range c.FaceIDs {
		w.U16(v)
	}
	for _, v := range c.Ratios {
		w.U8(v)
	}
	for _, v := range c.CharSpaces {
		w.U8(uint8(v))
	}
	for _, v := range c.RelSizes {
		w.U8(v)
	}
	for _, v := range c.CharOffsets {
		w.U8(uint8(v))
	}
	w.U32(c.BaseSize)
	w.U32(c.Properties.encode())
	w.U8(uint8(c.ShadowGapX))
	w.U8(uint8(c.ShadowGapY))
	w.U32(c.TextColor)
	w.U32(c.UnderlineColor)
	w.U32(c.ShadeColor)
	w.U32(c.ShadowColor)
	w.U16(c.BorderFillID)
	return w.Bytes()
}
