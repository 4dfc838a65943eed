package bodytext

import "github.com/hwp5/hwp/bytecursor"

// lastInList is the high bit of PARA_HEADER's control mask, set on the
// last paragraph of a list (spec.md §3.5).
const lastInList = 1 << 31

// ParaHeader is PARA_HEADER (0x050, level 0): the fixed-size record
// every paragraph starts with, giving its text length and the counts of
// its child records.
type ParaHeader struct {
	TextLen     uint32
	ControlMask uint32

	ParaShapeID uint16
	StyleID     uint8
	ColumnType  uint8

	CharShapeRunCount uint16
	LineSegCount      uint16
	CharShapeInfoCount uint16
	MemoInfoCount     uint16

	InstanceID uint32

	// ChangeTrackingID is present only when the document's change-tracking
	// flag is set; nil when absent.
	ChangeTrackingID *uint16
}

// LastInList reports whether this paragraph is the last in its list.
func (h *ParaHeader) LastInList() bool { return h.ControlMask&lastInList != 0 }

// SetLastInList sets or clears the high control-mask bit.
func (h *ParaHeader) SetLastInList(last bool) {
	if last {
		h.ControlMask |= lastInList
	} else {
		h.ControlMask &^= lastInList
	}
}

func DecodeParaHeader(data []byte, trackChanges bool) (*ParaHeader, error) {
	r := bytecursor.NewReader(data)
	h := &ParaHeader{}
	var err error
	if h.TextLen, err = r.U32(); err != nil {
		return nil, err
	}
	if h.ControlMask, err = r.U32(); err != nil {
		return nil, err
	}
	if h.ParaShapeID, err = r.U16(); err != nil {
		return nil, err
	}
	if h.StyleID, err = r.U8(); err != nil {
		return nil, err
	}
	if h.ColumnType, err = r.U8(); err != nil {
		return nil, err
	}
	u16Fields := []*uint16{&h.CharShapeRunCount, &h.LineSegCount, &h.CharShapeInfoCount, &h.MemoInfoCount}
	for _, f := range u16Fields {
		if *f, err = r.U16(); err != nil {
			return nil, err
		}
	}
	if h.InstanceID, err = r.U32(); err != nil {
		return nil, err
	}
	if trackChanges && r.Remaining() >= 2 {
		v, err := r.U16()
		if err != nil {
			return nil, err
		}
		h.ChangeTrackingID = &v
	}
	return h, nil
}

func (h *ParaHeader) Encode() []byte {
	w := bytecursor.NewWriter()
	w.U32(h.TextLen)
	w.U32(h.ControlMask)
	w.U16(h.ParaShapeID)
	w.U8(h.StyleID)
	w.U8(h.ColumnType)
	w.U16(h.CharShapeRunCount)
	w.U16(h.LineSegCount)
	w.U16(h.CharShapeInfoCount)
	w.U16(h.MemoInfoCount)
	w.U32(h.InstanceID)
	if h.ChangeTrackingID != nil {
		w.U16(*h.ChangeTrackingID)
	}
	return w.Bytes()
}
