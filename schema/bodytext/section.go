package bodytext

import "github.com/hwp5/hwp/record"

// Section is one decoded /BodyText/SectionN stream: an ordered list of
// paragraphs, the first of which carries the mandatory secd/cold
// controls (spec.md §3.5).
type Section struct {
	Paragraphs []*Paragraph
}

// Decode frames and folds a fully-decompressed section stream into its
// paragraphs (spec.md §4.6 step 4): frame records, assemble the
// level-nested tree, then fold each top-level PARA_HEADER node.
func Decode(data []byte, trackChanges bool) (*Section, error) {
	raws, err := record.Decode(data)
	if err != nil {
		return nil, err
	}
	roots, err := record.AssembleTree(raws)
	if err != nil {
		return nil, err
	}

	s := &Section{}
	for _, root := range roots {
		if root.Raw.Tag != TagParaHeader {
			continue
		}
		p, err := foldParagraph(root, trackChanges)
		if err != nil {
			return nil, err
		}
		s.Paragraphs = append(s.Paragraphs, p)
	}
	return s, nil
}

// Encode serializes a section's paragraphs back into a record stream,
// marking the last paragraph's lastInList bit per spec.md §3.5.
func (s *Section) Encode() []byte {
	for i, p := range s.Paragraphs {
		p.Header.SetLastInList(i == len(s.Paragraphs)-1)
	}
	var roots []*record.Node
	for _, p := range s.Paragraphs {
		roots = append(roots, unfoldParagraph(p))
	}
	return record.Encode(record.AssignLevels(roots, 0))
}
