package docinfo

import (
	"fmt"

	"github.com/hwp5/hwp/herr"
	"github.com/hwp5/hwp/record"
)

// DocInfo is the fully decoded /DocInfo stream: the document-level
// properties record plus every shared table a Paragraph can reference
// by ID (spec.md §3.3).
type DocInfo struct {
	Properties *DocumentProperties
	IDMappings *IDMappings

	BinData     []*BinData
	Faces       [7][]*FaceName // indexed by Lang
	BorderFills []*BorderFill
	CharShapes  []*CharShape
	TabDefs     []*TabDef
	Numberings  []*Numbering
	Bullets     []*Bullet
	ParaShapes  []*ParaShape
	Styles      []*Style
}

// Decode parses a fully-decompressed /DocInfo stream: frame records,
// then dispatch each by tag per spec.md §4.4.2. FACE_NAME records are
// assigned to a Lang in the order they appear within each of the 7
// contiguous runs IDMappings.Fonts describes.
func Decode(data []byte) (*DocInfo, error) {
	raws, err := record.Decode(data)
	if err != nil {
		return nil, err
	}

	info := &DocInfo{}
	faceLang := 0
	faceRemaining := 0

	for _, raw := range raws {
		switch raw.Tag {
		case TagDocumentProperties:
			info.Properties, err = DecodeDocumentProperties(raw.Data)
		case TagIDMappings:
			info.IDMappings, err = DecodeIDMappings(raw.Data)
			if info.IDMappings != nil {
				faceLang = 0
				faceRemaining = int(info.IDMappings.Fonts[0])
			}
		case TagBinData:
			var b *BinData
			b, err = DecodeBinData(raw.Data)
			info.BinData = append(info.BinData, b)
		case TagFaceName:
			var f *FaceName
			f, err = DecodeFaceName(raw.Data)
			if err == nil {
				for faceRemaining == 0 && faceLang < 6 {
					faceLang++
					faceRemaining = int(info.IDMappings.Fonts[faceLang])
				}
				info.Faces[faceLang] = append(info.Faces[faceLang], f)
				faceRemaining--
			}
		case TagBorderFill:
			var b *BorderFill
			b, err = DecodeBorderFill(raw.Data)
			info.BorderFills = append(info.BorderFills, b)
		case TagCharShape:
			var c *CharShape
			c, err = DecodeCharShape(raw.Data)
			info.CharShapes = append(info.CharShapes, c)
		case TagTabDef:
			var t *TabDef
			t, err = DecodeTabDef(raw.Data)
			info.TabDefs = append(info.TabDefs, t)
		case TagNumbering:
			var n *Numbering
			n, err = DecodeNumbering(raw.Data)
			info.Numberings = append(info.Numberings, n)
		case TagBullet:
			var b *Bullet
			b, err = DecodeBullet(raw.Data)
			info.Bullets = append(info.Bullets, b)
		case TagParaShape:
			var p *ParaShape
			p, err = DecodeParaShape(raw.Data)
			info.ParaShapes = append(info.ParaShapes, p)
		case TagStyle:
			var s *Style
			s, err = DecodeStyle(raw.Data)
			info.Styles = append(info.Styles, s)
		default:
			// Unrecognized DocInfo tags are silently skipped: the schema
			// layer only needs the tables paragraphs can reference by ID.
		}
		if err != nil {
			return nil, herr.Wrap(herr.CorruptRecord, fmt.Sprintf("DocInfo tag 0x%03x", raw.Tag), err)
		}
	}
	return info, nil
}

// Encode serializes info in the fixed order spec.md §4.6 step 1
// requires: DOCUMENT_PROPERTIES, ID_MAPPINGS, then each table in turn.
func (info *DocInfo) Encode() []byte {
	var raws []record.Raw
	add := func(tag uint16, body []byte) {
		raws = append(raws, record.Raw{Tag: tag, Level: 0, Data: body})
	}

	if info.Properties != nil {
		add(TagDocumentProperties, info.Properties.Encode())
	}
	if info.IDMappings != nil {
		add(TagIDMappings, info.IDMappings.Encode())
	}
	for _, b := range info.BinData {
		add(TagBinData, b.Encode())
	}
	for _, faces := range info.Faces {
		for _, f := range faces {
			add(TagFaceName, f.Encode())
		}
	}
	for _, b := range info.BorderFills {
		add(TagBorderFill, b.Encode())
	}
	for _, c := range info.CharShapes {
		add(TagCharShape, c.Encode())
	}
	for _, t := range info.TabDefs {
		add(TagTabDef, t.Encode())
	}
	for _, n := range info.Numberings {
		add(TagNumbering, n.Encode())
	}
	for _, b := range info.Bullets {
		add(TagBullet, b.Encode())
	}
	for _, p := range info.ParaShapes {
		add(TagParaShape, p.Encode())
	}
	for _, s := range info.Styles {
		add(TagStyle, s.Encode())
	}
	return record.Encode(raws)
}

// RebuildIDMappings recomputes IDMappings from the current table
// lengths, for callers building a Document directly rather than through
// the Reader.
func (info *DocInfo) RebuildIDMappings() {
	m := &IDMappings{
		BinData:     uint32(len(info.BinData)),
		BorderFills: uint32(len(info.BorderFills)),
		CharShapes:  uint32(len(info.CharShapes)),
		TabDefs:     uint32(len(info.TabDefs)),
		Numberings:  uint32(len(info.Numberings)),
		Bullets:     uint32(len(info.Bullets)),
		ParaShapes:  uint32(len(info.ParaShapes)),
		Styles:      uint32(len(info.Styles)),
	}
	for i, faces := range info.Faces {
		m.Fonts[i] = uint32(len(faces))
	}
	info.IDMappings = m
}
