package bodytext

import (
	"github.com/hwp5/hwp/bytecursor"
	"github.com/hwp5/hwp/record"
)

// Cell is one TABLE cell: a grid position plus the paragraph content of
// its LIST_HEADER.
type Cell struct {
	Row, Col     uint16
	RowSpan      uint16
	ColSpan      uint16
	Width        uint32 // HWPUnit
	BorderFillID uint16

	Content *ListHeader
}

// Table is the `tbl ` control: a grid of cells, each holding its own
// paragraph list. Rows, Cols and CellSpacing are carried in the
// CTRL_HEADER body after the FOURCC, and each cell's grid position,
// spans, border-fill and width prefix its LIST_HEADER body. No TABLE
// (0x05F) record is written, and one met on read is skipped.
type Table struct {
	Rows, Cols uint16
	CellSpacing uint32

	Cells []Cell // row-major order
}

func decodeTable(headerBody []byte, children []*record.Node) (*Table, error) {
	r := bytecursor.NewReader(headerBody)
	t := &Table{}
	var err error
	if t.Rows, err = r.U16(); err != nil {
		return nil, err
	}
	if t.Cols, err = r.U16(); err != nil {
		return nil, err
	}
	if t.CellSpacing, err = r.U32(); err != nil {
		return nil, err
	}

	for _, child := range children {
		if child.Raw.Tag != TagListHeader {
			continue
		}
		cr := bytecursor.NewReader(child.Raw.Data)
		var cell Cell
		if cell.Row, err = cr.U16(); err != nil {
			return nil, err
		}
		if cell.Col, err = cr.U16(); err != nil {
			return nil, err
		}
		if cell.RowSpan, err = cr.U16(); err != nil {
			return nil, err
		}
		if cell.ColSpan, err = cr.U16(); err != nil {
			return nil, err
		}
		if cell.BorderFillID, err = cr.U16(); err != nil {
			return nil, err
		}
		if cell.Width, err = cr.U32(); err != nil {
			return nil, err
		}

		suffix, err := cr.Bytes(cr.Remaining())
		if err != nil {
			return nil, err
		}

		// Reuse decodeListHeader for the paragraph-count/flags prefix and
		// the nested PARA_HEADER children; the cell-grid prefix above
		// (10+4 = 14 bytes) precedes it within the same record body, so
		// build a synthetic node carrying only the LIST_HEADER suffix.
		lhNode := &record.Node{
			Raw:      record.Raw{Tag: TagListHeader, Data: suffix},
			Children: child.Children,
		}
		lh, err := decodeListHeader(lhNode, false)
		if err != nil {
			return nil, err
		}
		cell.Content = lh
		t.Cells = append(t.Cells, cell)
	}
	return t, nil
}

func encodeTable(t *Table) ([]byte, []*record.Node) {
	w := bytecursor.NewWriter()
	w.U16(t.Rows)
	w.U16(t.Cols)
	w.U32(t.CellSpacing)

	var children []*record.Node
	for _, cell := range t.Cells {
		cw := bytecursor.NewWriter()
		cw.U16(cell.Row)
		cw.U16(cell.Col)
		cw.U16(cell.RowSpan)
		cw.U16(cell.ColSpan)
		cw.U16(cell.BorderFillID)
		cw.U32(cell.Width)

		lhNode := encodeListHeader(cell.Content)
		cw.Raw(lhNode.Raw.Data)

		children = append(children, &record.Node{
			Raw:      record.Raw{Tag: TagListHeader, Data: cw.Bytes()},
			Children: lhNode.Children,
		})
	}
	return w.Bytes(), children
}
