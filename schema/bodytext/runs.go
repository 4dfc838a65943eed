package bodytext

import "github.com/hwp5/hwp/bytecursor"

// CharShapeRun is one entry of PARA_CHAR_SHAPE (0x052): the char-shape
// applied starting at a code-unit position within the paragraph's text.
type CharShapeRun struct {
	Position    uint32
	CharShapeID uint32
}

func DecodeParaCharShape(data []byte) ([]CharShapeRun, error) {
	r := bytecursor.NewReader(data)
	var runs []CharShapeRun
	for r.Remaining() > 0 {
		var run CharShapeRun
		var err error
		if run.Position, err = r.U32(); err != nil {
			return nil, err
		}
		if run.CharShapeID, err = r.U32(); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func EncodeParaCharShape(runs []CharShapeRun) []byte {
	w := bytecursor.NewWriter()
	for _, run := range runs {
		w.U32(run.Position)
		w.U32(run.CharShapeID)
	}
	return w.Bytes()
}

// lineSegEntrySize is the fixed width of one PARA_LINE_SEG entry
// (spec.md §4.4.3): writers may emit a single minimal entry.
const lineSegEntrySize = 36

// LineSeg is one entry of PARA_LINE_SEG (0x053): a layout hint for one
// visual line within the paragraph. Only the fields the core actually
// produces are named; the remainder of the 36-byte entry is preserved
// verbatim in Extra.
type LineSeg struct {
	StartPosition uint32
	LineHeight    int32
	TextHeight    int32
	Extra         []byte
}

func DecodeParaLineSeg(data []byte) ([]LineSeg, error) {
	r := bytecursor.NewReader(data)
	var segs []LineSeg
	for r.Remaining() >= lineSegEntrySize {
		var seg LineSeg
		var err error
		if seg.StartPosition, err = r.U32(); err != nil {
			return nil, err
		}
		if seg.LineHeight, err = r.I32(); err != nil {
			return nil, err
		}
		if seg.TextHeight, err = r.I32(); err != nil {
			return nil, err
		}
		if seg.Extra, err = r.Array(lineSegEntrySize - 12); err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

func EncodeParaLineSeg(segs []LineSeg) []byte {
	w := bytecursor.NewWriter()
	for _, seg := range segs {
		w.U32(seg.StartPosition)
		w.I32(seg.LineHeight)
		w.I32(seg.TextHeight)
		extra := seg.Extra
		if len(extra) < lineSegEntrySize-12 {
			padded := make([]byte, lineSegEntrySize-12)
			copy(padded, extra)
			extra = padded
		}
		w.Raw(extra[:lineSegEntrySize-12])
	}
	return w.Bytes()
}

// RangeTag is PARA_RANGE_TAG (0x054): a tagged [start, end) code-unit
// range within the paragraph's text, used by hyperlinks to mark the
// span their gsh control applies to.
type RangeTag struct {
	Start, End uint32
	Tag        uint32
}

func DecodeParaRangeTag(data []byte) ([]RangeTag, error) {
	r := bytecursor.NewReader(data)
	var tags []RangeTag
	for r.Remaining() > 0 {
		var t RangeTag
		var err error
		if t.Start, err = r.U32(); err != nil {
			return nil, err
		}
		if t.End, err = r.U32(); err != nil {
			return nil, err
		}
		if t.Tag, err = r.U32(); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

func EncodeParaRangeTag(tags []RangeTag) []byte {
	w := bytecursor.NewWriter()
	for _, t := range tags {
		w.U32(t.Start)
		w.U32(t.End)
		w.U32(t.Tag)
	}
	return w.Bytes()
}
