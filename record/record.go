// Package record frames and deframes the typed, hierarchical record
// streams HWP nests inside CFB payloads (spec.md §3.2/§4.3): a 32-bit
// header (tag, level, size) optionally followed by a 32-bit extended size,
// then the record body.
package record

import (
	"github.com/hwp5/hwp/bytecursor"
	"github.com/hwp5/hwp/herr"
)

// Raw is one decoded record: a tag, a nesting level, and its raw body.
// Bodies are interpreted by the schema layer; record itself only knows
// about framing.
type Raw struct {
	Tag   uint16
	Level uint16
	Data  []byte
}

const (
	tagBits   = 10
	levelBits = 10
	sizeBits  = 12
	tagMask   = 1<<tagBits - 1
	sizeMask  = 1<<sizeBits - 1
	extSize   = sizeMask // 0xFFF marker for an extended 32-bit size
)

// Decode frames the full contents of a record stream into a flat,
// source-ordered sequence of Raw records, per spec.md §4.3 steps 1-4.
func Decode(data []byte) ([]Raw, error) {
	r := bytecursor.NewReader(data)
	var out []Raw
	for r.Remaining() > 0 {
		header, err := r.U32()
		if err != nil {
			return nil, herr.Wrap(herr.CorruptRecord, "truncated record header", err)
		}
		tag := uint16(header & tagMask)
		level := uint16((header >> tagBits) & (1<<levelBits - 1))
		size := (header >> (tagBits + levelBits)) & sizeMask

		actualSize := size
		if size == extSize {
			ext, err := r.U32()
			if err != nil {
				return nil, herr.Wrap(herr.CorruptRecord, "truncated extended size", err)
			}
			actualSize = ext
		}

		body, err := r.Array(int(actualSize))
		if err != nil {
			return nil, herr.Wrap(herr.CorruptRecord, "record body shorter than declared size", err)
		}
		out = append(out, Raw{Tag: tag, Level: level, Data: body})
	}
	return out, nil
}

// Encode is the inverse of Decode: it emits each record's 4-byte header,
// appending a 4-byte extended size whenever the body is 0xFFF bytes or
// longer, per spec.md §4.3's encoder contract.
func Encode(records []Raw) []byte {
	w := bytecursor.NewWriter()
	for _, rec := range records {
		size12 := len(rec.Data)
		if size12 > extSize {
			size12 = extSize
		}
		header := uint32(rec.Tag&tagMask) |
			(uint32(rec.Level)&(1<<levelBits-1))<<tagBits |
			uint32(size12)<<(tagBits+levelBits)
		w.U32(header)
		if len(rec.Data) >= extSize {
			w.U32(uint32(len(rec.Data)))
		}
		w.Raw(rec.Data)
	}
	return w.Bytes()
}

// Node is a record reassembled into a tree by nesting level, used by the
// schema layer wherever record semantics nest (spec.md §4.3's
// assemble_tree, e.g. a paragraph header and its children).
type Node struct {
	Raw      Raw
	Children []*Node
}

// AssembleTree walks a flat, level-tagged record sequence into a forest:
// a record at level N attaches as a child of the most recently seen
// record at level N-1, per spec.md §3.2/§4.3.
func AssembleTree(records []Raw) ([]*Node, error) {
	var roots []*Node
	// stack[i] is the most recent node seen at level i.
	var stack []*Node
	for _, rec := range records {
		n := &Node{Raw: rec}
		if int(rec.Level) == 0 {
			roots = append(roots, n)
			stack = stack[:0]
			stack = append(stack, n)
			continue
		}
		if int(rec.Level) > len(stack) {
			return nil, herr.New(herr.CorruptRecord, "child level exceeds parent level + 1 with no plausible ancestor")
		}
		parent := stack[rec.Level-1]
		parent.Children = append(parent.Children, n)
		stack = stack[:rec.Level]
		stack = append(stack, n)
	}
	return roots, nil
}

// AssignLevels walks a forest top-down, stamping each node's Raw.Level
// from its depth (roots at base, each generation one deeper), then
// flattens it into source order. Schema-layer encoders build trees
// without tracking absolute levels by hand; AssignLevels is the single
// place that turns tree shape back into the level field the wire format
// actually carries.
func AssignLevels(roots []*Node, base uint16) []Raw {
	var out []Raw
	var walk func(n *Node, level uint16)
	walk = func(n *Node, level uint16) {
		n.Raw.Level = level
		out = append(out, n.Raw)
		for _, c := range n.Children {
			walk(c, level+1)
		}
	}
	for _, n := range roots {
		walk(n, base)
	}
	return out
}

// Flatten walks a forest back into source order, the inverse of
// AssembleTree, preserving sibling order per spec.md §4.3's ordering
// guarantee.
func Flatten(nodes []*Node) []Raw {
	var out []Raw
	var walk func(n *Node)
	walk = func(n *Node) {
		out = append(out, n.Raw)
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return out
}
