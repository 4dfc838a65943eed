package bodytext

import (
	"unicode/utf16"

	"github.com/hwp5/hwp/herr"
	"github.com/hwp5/hwp/record"
)

// Paragraph is a PARA_HEADER node folded together with its children
// (spec.md §4.6 step 4): text, run-level formatting, layout hints,
// range tags, and nested controls, in source order.
type Paragraph struct {
	Header *ParaHeader
	Text   string // UTF-16 code units decoded straight to runes, control codes included

	CharShapeRuns []CharShapeRun
	LineSegs      []LineSeg
	RangeTags     []RangeTag
	Controls      []*Control
}

// foldParagraph assembles one Paragraph from a PARA_HEADER node and its
// already-parsed children, dispatching each child by tag.
func foldParagraph(node *record.Node, trackChanges bool) (*Paragraph, error) {
	header, err := DecodeParaHeader(node.Raw.Data, trackChanges)
	if err != nil {
		return nil, err
	}
	p := &Paragraph{Header: header}

	for _, child := range node.Children {
		switch child.Raw.Tag {
		case TagParaText:
			units := make([]uint16, len(child.Raw.Data)/2)
			for i := range units {
				units[i] = uint16(child.Raw.Data[2*i]) | uint16(child.Raw.Data[2*i+1])<<8
			}
			p.Text = string(utf16.Decode(units))
		case TagParaCharShape:
			runs, err := DecodeParaCharShape(child.Raw.Data)
			if err != nil {
				return nil, err
			}
			p.CharShapeRuns = runs
		case TagParaLineSeg:
			segs, err := DecodeParaLineSeg(child.Raw.Data)
			if err != nil {
				return nil, err
			}
			p.LineSegs = segs
		case TagParaRangeTag:
			tags, err := DecodeParaRangeTag(child.Raw.Data)
			if err != nil {
				return nil, err
			}
			p.RangeTags = tags
		case TagCtrlHeader:
			c, err := decodeControl(child)
			if err != nil {
				return nil, err
			}
			p.Controls = append(p.Controls, c)
		default:
			return nil, herr.New(herr.CorruptRecord, "unexpected record under PARA_HEADER")
		}
	}
	return p, nil
}

// unfoldParagraph is foldParagraph's inverse: it rebuilds the PARA_HEADER
// node tree, recomputing the header's child-count fields from the
// paragraph's actual content so callers never have to keep them in sync
// by hand.
func unfoldParagraph(p *Paragraph) *record.Node {
	units := utf16.Encode([]rune(p.Text))
	textBytes := make([]byte, len(units)*2)
	for i, u := range units {
		textBytes[2*i] = byte(u)
		textBytes[2*i+1] = byte(u >> 8)
	}

	header := *p.Header
	header.TextLen = uint32(len(units))
	header.CharShapeRunCount = uint16(len(p.CharShapeRuns))
	header.LineSegCount = uint16(len(p.LineSegs))

	root := &record.Node{Raw: record.Raw{Tag: TagParaHeader, Data: header.Encode()}}

	addChild := func(raw record.Raw, children []*record.Node) {
		root.Children = append(root.Children, &record.Node{Raw: raw, Children: children})
	}
	addChild(record.Raw{Tag: TagParaText, Data: textBytes}, nil)
	if len(p.CharShapeRuns) > 0 {
		addChild(record.Raw{Tag: TagParaCharShape, Data: EncodeParaCharShape(p.CharShapeRuns)}, nil)
	}
	if len(p.LineSegs) > 0 {
		addChild(record.Raw{Tag: TagParaLineSeg, Data: EncodeParaLineSeg(p.LineSegs)}, nil)
	}
	if len(p.RangeTags) > 0 {
		addChild(record.Raw{Tag: TagParaRangeTag, Data: EncodeParaRangeTag(p.RangeTags)}, nil)
	}
	for _, c := range p.Controls {
		raw, children := encodeControl(c)
		addChild(raw, children)
	}
	return root
}
