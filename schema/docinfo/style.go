package docinfo

import "github.com/hwp5/hwp/bytecursor"

// Style is STYLE (0x01A): a named paragraph or character style binding
// a ParaShape and CharShape together.
type Style struct {
	LocalName   string
	EnglishName string

	IsParagraphStyle bool

	NextStyleID uint8
	LangID      uint16

	ParaShapeID uint16
	CharShapeID uint16
}

func DecodeStyle(data []byte) (*Style, error) {
	r := bytecursor.NewReader(data)
	s := &Style{}
	var err error
	if s.LocalName, err = r.UTF16String(); err != nil {
		return nil, err
	}
	if s.EnglishName, err = r.UTF16String(); err != nil {
		return nil, err
	}
	propByte, err := r.U8()
	if err != nil {
		return nil, err
	}
	s.IsParagraphStyle = propByte&0x1 != 0

	if s.NextStyleID, err = r.U8(); err != nil {
		return nil, err
	}
	if s.LangID, err = r.U16(); err != nil {
		return nil, err
	}
	if s.ParaShapeID, err = r.U16(); err != nil {
		return nil, err
	}
	if s.CharShapeID, err = r.U16(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Style) Encode() []byte {
	w := bytecursor.NewWriter()
	w.UTF16String(s.LocalName)
	w.UTF16String(s.EnglishName)
	var propByte uint8
	if s.IsParagraphStyle {
		propByte |= 0x1
	}
	w.U8(propByte)
	w.U8(s.NextStyleID)
	w.U16(s.LangID)
	w.U16(s.ParaShapeID)
	w.U16(s.CharShapeID)
	return w.Bytes()
}
