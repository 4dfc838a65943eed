package bodytext

import (
	"github.com/hwp5/hwp/bytecursor"
	"github.com/hwp5/hwp/record"
)

// Picture is the `$pic` control: an embedded or linked image, addressed
// by its BinData ID (spec.md §4.4.2's BIN_DATA table is 1-based).
type Picture struct {
	BinDataID uint16

	Width, Height uint32 // HWPUnit

	// Extra preserves the remainder of the generic-shape-object header
	// (z-order, numbering, flags) this core doesn't model field-by-field.
	Extra []byte

	// ShapeComponents preserves any SHAPE_COMPONENT (0x05B+) records
	// nested beneath this control verbatim: their internal layout is
	// large and only partially documented (spec.md §9).
	ShapeComponents []*record.Node
}

func decodePicture(data []byte, children []*record.Node) (*Picture, error) {
	r := bytecursor.NewReader(data)
	p := &Picture{ShapeComponents: children}
	var err error
	if p.BinDataID, err = r.U16(); err != nil {
		return nil, err
	}
	if p.Width, err = r.U32(); err != nil {
		return nil, err
	}
	if p.Height, err = r.U32(); err != nil {
		return nil, err
	}
	if p.Extra, err = r.Array(r.Remaining()); err != nil {
		return nil, err
	}
	return p, nil
}

func encodePicture(p *Picture) ([]byte, []*record.Node) {
	w := bytecursor.NewWriter()
	w.U16(p.BinDataID)
	w.U32(p.Width)
	w.U32(p.Height)
	w.Raw(p.Extra)
	return w.Bytes(), p.ShapeComponents
}
