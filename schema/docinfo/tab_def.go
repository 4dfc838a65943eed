package docinfo

import "github.com/hwp5/hwp/bytecursor"

// TabEntry is one tab stop within a TAB_DEF.
type TabEntry struct {
	Position uint32
	Type     uint8
	Fill     uint8
}

// TabDef is TAB_DEF (0x016): a named set of tab stops referenced by
// PARA_SHAPE.
type TabDef struct {
	Flags uint8
	Tabs  []TabEntry
}

func DecodeTabDef(data []byte) (*TabDef, error) {
	r := bytecursor.NewReader(data)
	t := &TabDef{}
	var err error
	if t.Flags, err = r.U8(); err != nil {
		return nil, err
	}
	count, err := r.U16()
	if err != nil {
		return nil, err
	}
	t.Tabs = make([]TabEntry, count)
	for i := range t.Tabs {
		if t.Tabs[i].Position, err = r.U32(); err != nil {
			return nil, err
		}
		if t.Tabs[i].Type, err = r.U8(); err != nil {
			return nil, err
		}
		if t.Tabs[i].Fill, err = r.U8(); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *TabDef) Encode() []byte {
	w := bytecursor.NewWriter()
	w.U8(t.Flags)
	w.U16(uint16(len(t.Tabs)))
	for _, tab := range t.Tabs {
		w.U32(tab.Position)
		w.U8(tab.Type)
		w.U8(tab.Fill)
	}
	return w.Bytes()
}
