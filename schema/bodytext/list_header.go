package bodytext

import (
	"github.com/hwp5/hwp/bytecursor"
	"github.com/hwp5/hwp/record"
)

// ListHeader is LIST_HEADER (0x056): the header for a run of paragraphs
// nested inside a container control (table cell, header, footer).
type ListHeader struct {
	Flags      uint32
	Paragraphs []*Paragraph
}

// decodeListHeader folds a LIST_HEADER node and the PARA_HEADER children
// beneath it into a ListHeader.
func decodeListHeader(node *record.Node, trackChanges bool) (*ListHeader, error) {
	r := bytecursor.NewReader(node.Raw.Data)
	paraCount, err := r.U16()
	if err != nil {
		return nil, err
	}
	flags, err := r.U32()
	if err != nil {
		return nil, err
	}
	lh := &ListHeader{Flags: flags, Paragraphs: make([]*Paragraph, 0, paraCount)}
	for _, child := range node.Children {
		if child.Raw.Tag != TagParaHeader {
			continue
		}
		p, err := foldParagraph(child, trackChanges)
		if err != nil {
			return nil, err
		}
		lh.Paragraphs = append(lh.Paragraphs, p)
	}
	return lh, nil
}

func encodeListHeader(lh *ListHeader) *record.Node {
	w := bytecursor.NewWriter()
	w.U16(uint16(len(lh.Paragraphs)))
	w.U32(lh.Flags)

	node := &record.Node{Raw: record.Raw{Tag: TagListHeader, Data: w.Bytes()}}
	for _, p := range lh.Paragraphs {
		node.Children = append(node.Children, unfoldParagraph(p))
	}
	return node
}
