package docinfo

import "github.com/hwp5/hwp/bytecursor"

// Lang indexes the 7 parallel per-language font tables HWP keeps (one
// FACE_NAME sequence and one IDMappings.Fonts count per language),
// spec.md §4.4.2/§3.3.
type Lang int

const (
	LangKorean Lang = iota
	LangEnglish
	LangHanja
	LangJapanese
	LangOther
	LangSymbol
	LangUser
)

// FontTypeInfo is the PANOSE-like 10-field type descriptor FACE_NAME
// carries when its "has type info" flag is set.
type FontTypeInfo struct {
	FamilyType      uint8
	SerifStyle      uint8
	Weight          uint8
	Proportion      uint8
	Contrast        uint8
	StrokeVariation uint8
	ArmStyle        uint8
	Letterform      uint8
	Midline         uint8
	XHeight         uint8
}

const (
	faceHasSubstitute = 1 << 0
	faceHasTypeInfo   = 1 << 1
	faceHasDefault    = 1 << 2
)

// FaceName is FACE_NAME (0x013): a font face entry, optionally carrying
// a substitute face name, a type descriptor used to pick a similar
// installed font, and a default (non-substituted) face name.
type FaceName struct {
	Name string

	Substitute *string
	TypeInfo   *FontTypeInfo
	Default    *string
}

func DecodeFaceName(data []byte) (*FaceName, error) {
	r := bytecursor.NewReader(data)
	flags, err := r.U8()
	if err != nil {
		return nil, err
	}
	f := &FaceName{}
	if f.Name, err = r.UTF16String(); err != nil {
		return nil, err
	}
	if flags&faceHasSubstitute != 0 {
		s, err := r.UTF16String()
		if err != nil {
			return nil, err
		}
		f.Substitute = &s
	}
	if flags&faceHasTypeInfo != 0 {
		b, err := r.Bytes(10)
		if err != nil {
			return nil, err
		}
		f.TypeInfo = &FontTypeInfo{
			FamilyType: b[0], SerifStyle: b[1], Weight: b[2], Proportion: b[3],
			Contrast: b[4], StrokeVariation: b[5], ArmStyle: b[6], Letterform: b[7],
			Midline: b[8], XHeight: b[9],
		}
	}
	if flags&faceHasDefault != 0 {
		s, err := r.UTF16String()
		if err != nil {
			return nil, err
		}
		f.Default = &s
	}
	return f, nil
}

func (f *FaceName) Encode() []byte {
	var flags uint8
	if f.Substitute != nil {
		flags |= faceHasSubstitute
	}
	if f.TypeInfo != nil {
		flags |= faceHasTypeInfo
	}
	if f.Default != nil {
		flags |= faceHasDefault
	}

	w := bytecursor.NewWriter()
	w.U8(flags)
	w.UTF16String(f.Name)
	if f.Substitute != nil {
		w.UTF16String(*f.Substitute)
	}
	if t := f.TypeInfo; t != nil {
		w.Raw([]byte{t.FamilyType, t.SerifStyle, t.Weight, t.Proportion, t.Contrast,
			t.StrokeVariation, t.ArmStyle, t.Letterform, t.Midline, t.XHeight})
	}
	if f.Default != nil {
		w.UTF16String(*f.Default)
	}
	return w.Bytes()
}
