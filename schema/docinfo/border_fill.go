package docinfo

import "github.com/hwp5/hwp/bytecursor"

// BorderSpec is one edge of a BORDER_FILL: a line style, its width, and
// its color (spec.md §4.4.2, §6.3's 0x00BBGGRR packing).
type BorderSpec struct {
	Type  uint8
	Width uint8
	Color uint32
}

func decodeBorderSpec(r *bytecursor.Reader) (BorderSpec, error) {
	var s BorderSpec
	var err error
	if s.Type, err = r.U8(); err != nil {
		return s, err
	}
	if s.Width, err = r.U8(); err != nil {
		return s, err
	}
	if s.Color, err = r.U32(); err != nil {
		return s, err
	}
	return s, nil
}

func (s BorderSpec) encode(w *bytecursor.Writer) {
	w.U8(s.Type)
	w.U8(s.Width)
	w.U32(s.Color)
}

// FillInfo is BORDER_FILL's fill description. Gradient and pattern
// parameters beyond the solid color are preserved verbatim in Extra
// rather than decoded field-by-field: the core only needs to round-trip
// them, not interpret them (mirrors the opaque-control approach of
// spec.md §9 for unknown shape bodies).
type FillInfo struct {
	Kind       uint8
	SolidColor uint32
	Extra      []byte
}

// BorderFill is BORDER_FILL (0x014): the border and fill appearance
// referenced by CHAR_SHAPE/PARA_SHAPE/table cells.
type BorderFill struct {
	Flags    uint16
	Left     BorderSpec
	Right    BorderSpec
	Top      BorderSpec
	Bottom   BorderSpec
	Diagonal BorderSpec
	Fill     FillInfo
}

func DecodeBorderFill(data []byte) (*BorderFill, error) {
	r := bytecursor.NewReader(data)
	b := &BorderFill{}
	var err error
	if b.Flags, err = r.U16(); err != nil {
		return nil, err
	}
	for _, spec := range []*BorderSpec{&b.Left, &b.Right, &b.Top, &b.Bottom, &b.Diagonal} {
		if *spec, err = decodeBorderSpec(r); err != nil {
			return nil, err
		}
	}
	if b.Fill.Kind, err = r.U8(); err != nil {
		return nil, err
	}
	if b.Fill.SolidColor, err = r.U32(); err != nil {
		return nil, err
	}
	if b.Fill.Extra, err = r.Array(r.Remaining()); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *BorderFill) Encode() []byte {
	w := bytecursor.NewWriter()
	w.U16(b.Flags)
	for _, spec := range []BorderSpec{b.Left, b.Right, b.Top, b.Bottom, b.Diagonal} {
		spec.encode(w)
	}
	w.U8(b.Fill.Kind)
	w.U32(b.Fill.SolidColor)
	w.Raw(b.Fill.Extra)
	return w.Bytes()
}
